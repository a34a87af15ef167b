package binding

import "github.com/World-Enterprise-Collision/MellowD/internal/rtype"

// Parameter describes one formal parameter of a function. The wrapped
// reference is a template: calls bind arguments into fresh copies of it.
type Parameter struct {
	ref          *Reference
	optional     bool
	isCollection bool
}

// NewParameter wraps ref. The parameter is a collection parameter when the
// reference's type is a collection type.
func NewParameter(ref *Reference, optional bool) Parameter {
	return Parameter{
		ref:          ref,
		optional:     optional,
		isCollection: ref.Type().IsCollection(),
	}
}

func Required(name string, typ *rtype.Type) Parameter {
	return NewParameter(New(name, typ), false)
}

func Optional(name string, typ *rtype.Type) Parameter {
	return NewParameter(New(name, typ), true)
}

func RequiredDynamic(name string) Parameter {
	return NewParameter(NewDynamic(name), false)
}

func OptionalDynamic(name string) Parameter {
	return NewParameter(NewDynamic(name), true)
}

func (p Parameter) Binding() *Reference { return p.ref }
func (p Parameter) Name() string        { return p.ref.Name() }
func (p Parameter) IsOptional() bool    { return p.optional }
func (p Parameter) IsCollection() bool  { return p.isCollection }
