package executable

import (
	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
)

// RuntimeSlur sets the slur flag of a value decided at run time. ToSlur is
// evaluated before Slur, and the value ToSlur produced is returned itself,
// not a copy, so whoever already holds it sees the change.
type RuntimeSlur[T music.Slurrable] struct {
	ToSlur Expression[T]
	Slur   Expression[bool]
}

func (s RuntimeSlur[T]) Evaluate(env *environment.Environment) (T, error) {
	target, err := s.ToSlur.Evaluate(env)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := present(target, "slurred value"); err != nil {
		var zero T
		return zero, err
	}
	slurred, err := s.Slur.Evaluate(env)
	if err != nil {
		var zero T
		return zero, err
	}
	target.SetSlurred(slurred)
	return target, nil
}
