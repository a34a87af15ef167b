package executable_test

import (
	"testing"

	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/executable"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
	"github.com/stretchr/testify/require"
)

// probe is an expression that records when it is evaluated and optionally
// runs a side effect against the environment.
type probe[T any] struct {
	log    *[]string
	name   string
	value  T
	effect func(env *environment.Environment)
}

func (p probe[T]) Evaluate(env *environment.Environment) (T, error) {
	*p.log = append(*p.log, p.name)
	if p.effect != nil {
		p.effect(env)
	}
	return p.value, nil
}

func pitch(t *testing.T, name string, octave int) music.Pitch {
	t.Helper()
	p, err := music.NewPitch(name, octave)
	require.NoError(t, err)
	return p
}

// note builds an articulated-sound expression for a constant pitch.
func note(p music.Pitch, a music.Articulation) executable.Expression[music.Concatable] {
	return executable.As[music.Concatable, *music.Articulated](executable.Articulate{
		Sound:        executable.Constant[music.Sound]{Value: p},
		Articulation: a,
	})
}

func run(t *testing.T, env *environment.Environment, stmts ...executable.Statement) {
	t.Helper()
	for _, s := range stmts {
		require.NoError(t, s.Execute(env, nil))
	}
}
