// Package core provides the builtin bindings and functions every MellowD
// program can use.
package core

import (
	"fmt"
	"math"

	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"github.com/World-Enterprise-Collision/MellowD/internal/binding"
	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/executable"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
)

// Plugin installs the named durations and the builtin functions.
type Plugin struct {
	compiler.BasePlugin
}

type builtin struct {
	name   string
	params []binding.Parameter
	body   environment.BodyFunc
}

var builtins = []builtin{
	{
		name:   "repeat",
		params: []binding.Parameter{binding.Required("melody", executable.TypeMelody), binding.Required("times", rtype.Number)},
		body:   repeat,
	},
	{
		name:   "octave",
		params: []binding.Parameter{binding.Required("melody", executable.TypeMelody), binding.Required("shift", rtype.Number)},
		body:   octave,
	},
	{
		name:   "concat",
		params: []binding.Parameter{binding.Optional("melodies", rtype.CollectionOf(executable.TypeMelody))},
		body:   concat,
	},
	{
		name:   "legato",
		params: []binding.Parameter{binding.Required("melody", executable.TypeMelody)},
		body:   legato,
	},
	{
		name: "perform",
		params: []binding.Parameter{
			binding.Required("melody", executable.TypeMelody),
			binding.Required("rhythm", executable.TypeRhythm),
			binding.Optional("channel", rtype.Number),
			binding.Optional("velocity", rtype.Number),
		},
		body: perform,
	},
}

func (Plugin) Apply(u *compiler.Unit) error {
	for _, name := range beat.Names() {
		d, _ := beat.ByName(name)
		ref := binding.New(name, executable.TypeBeat)
		if err := ref.Set(d); err != nil {
			return err
		}
		if err := u.Root.Declare(name, ref); err != nil {
			return err
		}
	}
	for _, b := range builtins {
		if err := u.Root.DefineFunction(b.name, b.params, b.body); err != nil {
			return err
		}
	}
	return nil
}

// repeat(melody, times) plays melody times times in a row.
func repeat(scope *environment.Environment, _ output.Output) (any, error) {
	m, err := melodyArg(scope, "melody")
	if err != nil {
		return nil, err
	}
	times, err := intArg(scope, "times")
	if err != nil {
		return nil, err
	}
	if times < 0 {
		return nil, fmt.Errorf("%w: cannot repeat a melody %d times", failure.ErrInvalidArgument, times)
	}
	result := music.NewMelody()
	for i := 0; i < times; i++ {
		result.AddMelody(m)
	}
	return result, nil
}

// octave(melody, shift) moves melody by shift octaves.
func octave(scope *environment.Environment, _ output.Output) (any, error) {
	m, err := melodyArg(scope, "melody")
	if err != nil {
		return nil, err
	}
	shift, err := intArg(scope, "shift")
	if err != nil {
		return nil, err
	}
	return m.ShiftOctave(shift), nil
}

// concat(melodies...) joins every argument into one new melody.
func concat(scope *environment.Environment, _ output.Output) (any, error) {
	parts, err := arg[[]any](scope, "melodies")
	if err != nil {
		return nil, err
	}
	result := music.NewMelody()
	for _, p := range parts {
		m, ok := p.(*music.Melody)
		if !ok || m == nil {
			return nil, fmt.Errorf("%w: concat takes melodies, got %s", failure.ErrTypeMismatch, rtype.NameOf(p))
		}
		m.AppendTo(result)
	}
	return result, nil
}

// legato(melody) slurs every sound of melody and returns it.
func legato(scope *environment.Environment, _ output.Output) (any, error) {
	m, err := melodyArg(scope, "melody")
	if err != nil {
		return nil, err
	}
	m.SetSlurred(true)
	return m, nil
}

// perform(melody, rhythm, channel, velocity) plays melody into the output.
func perform(scope *environment.Environment, out output.Output) (any, error) {
	channel, err := intArg(scope, "channel")
	if err != nil {
		return nil, err
	}
	velocity, err := intArg(scope, "velocity")
	if err != nil {
		return nil, err
	}
	play := executable.Play{
		Melody:   executable.Identifier[*music.Melody]{Name: "melody"},
		Rhythm:   executable.Identifier[beat.Rhythm]{Name: "rhythm"},
		Channel:  channel,
		Velocity: velocity,
	}
	return nil, play.Execute(scope, out)
}

// arg reads a bound parameter. An omitted optional parameter yields the
// zero value.
func arg[T any](scope *environment.Environment, name string) (T, error) {
	var zero T
	ref, err := scope.Lookup(name)
	if err != nil {
		return zero, err
	}
	v := ref.Get()
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: '%s' is %s", failure.ErrTypeMismatch, name, rtype.NameOf(v))
	}
	return t, nil
}

// melodyArg reads a melody parameter that must hold a melody.
func melodyArg(scope *environment.Environment, name string) (*music.Melody, error) {
	m, err := arg[*music.Melody](scope, name)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: '%s' is empty", failure.ErrInvalidArgument, name)
	}
	return m, nil
}

// intArg reads a number parameter that must be whole. An omitted optional
// parameter yields 0.
func intArg(scope *environment.Environment, name string) (int, error) {
	ref, err := scope.Lookup(name)
	if err != nil {
		return 0, err
	}
	switch n := ref.Get().(type) {
	case nil:
		return 0, nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: '%s' must be a whole number, got %v", failure.ErrInvalidArgument, name, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: '%s' is %s, expected number", failure.ErrTypeMismatch, name, rtype.NameOf(n))
	}
}
