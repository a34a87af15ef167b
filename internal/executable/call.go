package executable

import (
	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
)

// CallArgument is an unevaluated call argument. An empty Name makes it
// positional.
type CallArgument struct {
	Name  string
	Value Expression[any]
}

// Call invokes a function and converts its result to T. Used as an
// expression it has no output, so the called body cannot perform; use
// CallStatement for calls that play music.
type Call[T any] struct {
	Name      string
	Arguments []CallArgument
}

func (c Call[T]) Evaluate(env *environment.Environment) (T, error) {
	return c.invoke(env, nil)
}

func (c Call[T]) invoke(env *environment.Environment, out output.Output) (T, error) {
	var zero T
	args := make([]environment.Argument, len(c.Arguments))
	for i, a := range c.Arguments {
		v, err := a.Value.Evaluate(env)
		if err != nil {
			return zero, err
		}
		args[i] = environment.Argument{Name: a.Name, Value: v}
	}
	result, err := env.Call(c.Name, args, out)
	if err != nil {
		return zero, err
	}
	return as[T](result, "result of '"+c.Name+"'")
}

// CallStatement calls a function for its effects, discarding the result.
type CallStatement struct {
	Call Call[any]
}

func (s CallStatement) Execute(env *environment.Environment, out output.Output) error {
	_, err := s.Call.invoke(env, out)
	return err
}
