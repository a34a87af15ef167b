package failure

import "errors"

var (
	// ErrInvalidArgument reports a malformed duration parameter, such as a
	// non-positive tuplet ratio.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch reports a value whose runtime type does not match the
	// declared type of a binding or the expected type of an expression.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnresolved reports a name that is not bound in any enclosing scope.
	ErrUnresolved = errors.New("unresolved binding")

	// ErrRedeclared reports a name that is already bound in the current scope.
	ErrRedeclared = errors.New("redeclaration")

	// ErrMissingArgument reports a required function parameter that received
	// no argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrArity reports arguments that cannot be matched to any parameter.
	ErrArity = errors.New("arity mismatch")

	// ErrOutOfRange reports an index or MIDI value outside its valid range.
	ErrOutOfRange = errors.New("out of range")
)
