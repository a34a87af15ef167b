// Package rtype provides the runtime type descriptors attached to bindings
// and function parameters.
//
// Every descriptor is backed by a cty.Type: cty.DynamicPseudoType for any,
// the cty primitives for scalars, cty.List for collections and a capsule
// type for each domain value such as a melody. The closed Kind tag is read
// off the cty type, so questions like "is this a collection" never inspect
// Go values with reflection.
package rtype

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// Kind is the coarse classification of a runtime type.
type Kind uint8

const (
	KindAny Kind = iota
	KindScalar
	KindCollection
	KindCustom
)

var kindNames = [...]string{
	KindAny:        "any",
	KindScalar:     "scalar",
	KindCollection: "collection",
	KindCustom:     "custom",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Type describes the set of values a binding may hold.
type Type struct {
	name string
	ty   cty.Type
	elem *Type
	// holds checks values of a capsule type.
	holds func(v any) bool
}

// Built-in types. Any accepts every value and is the type of dynamically
// typed bindings.
var (
	Any    = &Type{name: "any", ty: cty.DynamicPseudoType}
	Bool   = &Type{name: "bool", ty: cty.Bool}
	String = &Type{name: "string", ty: cty.String}
	Number = &Type{name: "number", ty: cty.Number}
)

// Of describes a domain value type T, such as a melody, as a cty capsule.
func Of[T any](name string) *Type {
	return &Type{
		name: name,
		ty:   cty.Capsule(name, reflect.TypeOf((*T)(nil)).Elem()),
		holds: func(v any) bool {
			_, ok := v.(T)
			return ok
		},
	}
}

// CollectionOf describes a []any whose elements are all accepted by elem.
func CollectionOf(elem *Type) *Type {
	return &Type{name: elem.name + "[]", ty: cty.List(elem.ty), elem: elem}
}

// Name returns the name used in diagnostics.
func (t *Type) Name() string { return t.name }

// Cty returns the cty type backing t.
func (t *Type) Cty() cty.Type { return t.ty }

// Kind returns the classification tag.
func (t *Type) Kind() Kind {
	switch {
	case t.ty == cty.DynamicPseudoType:
		return KindAny
	case t.ty.IsListType():
		return KindCollection
	case t.ty.IsCapsuleType():
		return KindCustom
	default:
		return KindScalar
	}
}

// Elem returns the element type of a collection, or nil.
func (t *Type) Elem() *Type { return t.elem }

// IsCollection reports whether values of this type are sequences.
func (t *Type) IsCollection() bool { return t.ty.IsListType() }

// Accepts reports whether v may be stored in a binding of this type. An
// absent value is accepted by every type; a nil pointer counts as absent.
func (t *Type) Accepts(v any) bool {
	if IsAbsent(v) {
		return true
	}
	switch t.Kind() {
	case KindAny:
		return true
	case KindCollection:
		items, ok := v.([]any)
		if !ok {
			return false
		}
		for _, item := range items {
			if !t.elem.Accepts(item) {
				return false
			}
		}
		return true
	case KindCustom:
		return t.holds(v)
	}
	switch t.ty {
	case cty.Bool:
		_, ok := v.(bool)
		return ok
	case cty.String:
		_, ok := v.(string)
		return ok
	case cty.Number:
		switch v.(type) {
		case int, int64, float64:
			return true
		}
	}
	return false
}

func (t *Type) String() string { return t.name }

// IsAbsent reports whether v holds no value: nil itself or a nil pointer
// stored in an interface.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// NameOf returns a short name for the runtime type of v, used in
// type-mismatch messages.
func NameOf(v any) string {
	if IsAbsent(v) {
		return "nothing"
	}
	return fmt.Sprintf("%T", v)
}
