// Package binding holds the named, typed storage cells of the language and
// the descriptors of formal function parameters.
package binding

import (
	"fmt"

	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
)

// Reference is a named storage cell. Its value starts out absent (nil) and
// is replaced in place by Set.
type Reference struct {
	name  string
	typ   *rtype.Type
	value any
}

// New creates a statically typed reference. A nil type makes it dynamic.
func New(name string, typ *rtype.Type) *Reference {
	if typ == nil {
		typ = rtype.Any
	}
	return &Reference{name: name, typ: typ}
}

// NewDynamic creates a reference that accepts values of any type.
func NewDynamic(name string) *Reference {
	return &Reference{name: name, typ: rtype.Any}
}

func (r *Reference) Name() string      { return r.name }
func (r *Reference) Type() *rtype.Type { return r.typ }
func (r *Reference) Get() any          { return r.value }

// IsDynamic reports whether the reference accepts any value.
func (r *Reference) IsDynamic() bool {
	return r.typ.Kind() == rtype.KindAny
}

// Set replaces the current value, failing with a type mismatch when the
// value is not accepted by the declared type. A nil pointer is stored as an
// absent value.
func (r *Reference) Set(v any) error {
	if !r.typ.Accepts(v) {
		return fmt.Errorf("%w: cannot assign %s to '%s' of type %s",
			failure.ErrTypeMismatch, rtype.NameOf(v), r.name, r.typ)
	}
	if rtype.IsAbsent(v) {
		v = nil
	}
	r.value = v
	return nil
}

// Fresh returns an empty reference with the same name and type.
func (r *Reference) Fresh() *Reference {
	return &Reference{name: r.name, typ: r.typ}
}

func (r *Reference) String() string {
	return fmt.Sprintf("%s: %s = %v", r.name, r.typ, r.value)
}
