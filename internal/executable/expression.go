package executable

import (
	"fmt"
	"strings"

	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
)

// Expression produces a value of type T.
type Expression[T any] interface {
	Evaluate(env *environment.Environment) (T, error)
}

// Statement is executed for its effect on the environment or the output.
type Statement interface {
	Execute(env *environment.Environment, out output.Output) error
}

// Constant always evaluates to Value.
type Constant[T any] struct {
	Value T
}

func (c Constant[T]) Evaluate(*environment.Environment) (T, error) {
	return c.Value, nil
}

// Identifier evaluates to the current value of a binding.
type Identifier[T any] struct {
	Name string
}

func (id Identifier[T]) Evaluate(env *environment.Environment) (T, error) {
	ref, err := env.Lookup(id.Name)
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](ref.Get(), "'"+id.Name+"'")
}

// As adapts an expression to a different static type, checking the value at
// run time. It is how a melody expression becomes a Concatable part or an
// argument of type any.
func As[U, T any](e Expression[T]) Expression[U] {
	return cast[U, T]{inner: e}
}

// Erase adapts e to Expression[any].
func Erase[T any](e Expression[T]) Expression[any] {
	return As[any](e)
}

type cast[U, T any] struct {
	inner Expression[T]
}

func (c cast[U, T]) Evaluate(env *environment.Environment) (U, error) {
	v, err := c.inner.Evaluate(env)
	if err != nil {
		var zero U
		return zero, err
	}
	return as[U](any(v), "expression")
}

// as converts v to T or fails with a type mismatch. An absent value,
// including a nil pointer, only converts to any.
func as[T any](v any, what string) (T, error) {
	var zero T
	if rtype.IsAbsent(v) {
		if _, isAny := any(&zero).(*any); isAny {
			return zero, nil
		}
	} else if t, ok := v.(T); ok {
		return t, nil
	}
	expected := strings.TrimPrefix(fmt.Sprintf("%T", &zero), "*")
	return zero, fmt.Errorf("%w: %s is %s, expected %s",
		failure.ErrTypeMismatch, what, rtype.NameOf(v), expected)
}

// present fails with a type mismatch when v holds no value, so that a nil
// pointer produced by an expression is never dereferenced.
func present[T any](v T, what string) error {
	if rtype.IsAbsent(v) {
		return fmt.Errorf("%w: %s has no value", failure.ErrTypeMismatch, what)
	}
	return nil
}
