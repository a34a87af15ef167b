package executable_test

import (
	"testing"

	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"github.com/World-Enterprise-Collision/MellowD/internal/binding"
	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/executable"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	env := environment.NewRoot(nil)
	run(t, env,
		executable.Declare{Name: "n", Type: rtype.Number, Value: executable.Erase[int](executable.Constant[int]{Value: 3})},
		executable.Declare{Name: "empty"},
	)

	got, err := executable.Identifier[int]{Name: "n"}.Evaluate(env)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = executable.Identifier[string]{Name: "n"}.Evaluate(env)
	require.ErrorIs(t, err, failure.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "expected string")

	_, err = executable.Identifier[int]{Name: "missing"}.Evaluate(env)
	require.ErrorIs(t, err, failure.ErrUnresolved)

	v, err := executable.Identifier[any]{Name: "empty"}.Evaluate(env)
	require.NoError(t, err)
	assert.Nil(t, v)
	_, err = executable.Identifier[*music.Melody]{Name: "empty"}.Evaluate(env)
	require.ErrorIs(t, err, failure.ErrTypeMismatch)
}

func TestRuntimeSlur(t *testing.T) {
	for _, slur := range []bool{true, false} {
		env := environment.NewRoot(nil)
		sound := music.NewArticulated(music.Pitch(60), music.None)

		got, err := executable.RuntimeSlur[*music.Articulated]{
			ToSlur: executable.Constant[*music.Articulated]{Value: sound},
			Slur:   executable.Constant[bool]{Value: slur},
		}.Evaluate(env)

		require.NoError(t, err)
		assert.Same(t, sound, got)
		assert.Equal(t, slur, sound.IsSlurred())
	}
}

func TestRuntimeSlur_EvaluationOrder(t *testing.T) {
	env := environment.NewRoot(nil)
	flag := binding.New("flag", rtype.Bool)
	require.NoError(t, flag.Set(false))
	require.NoError(t, env.Declare("flag", flag))

	var log []string
	sound := music.NewArticulated(music.Pitch(60), music.None)
	target := probe[*music.Articulated]{log: &log, name: "target", value: sound}
	condition := probe[bool]{log: &log, name: "condition", value: true, effect: func(env *environment.Environment) {
		ref, _ := env.Lookup("flag")
		_ = ref.Set(true)
	}}

	_, err := executable.RuntimeSlur[*music.Articulated]{ToSlur: target, Slur: condition}.Evaluate(env)
	require.NoError(t, err)
	assert.Equal(t, []string{"target", "condition"}, log)
	assert.True(t, sound.IsSlurred())
}

func TestRuntimeSlur_VisibleThroughMelody(t *testing.T) {
	env := environment.NewRoot(nil)
	sound := music.NewArticulated(music.Pitch(62), music.None)
	melody := music.NewMelody(sound)

	_, err := executable.RuntimeSlur[*music.Articulated]{
		ToSlur: executable.Constant[*music.Articulated]{Value: sound},
		Slur:   executable.Constant[bool]{Value: true},
	}.Evaluate(env)
	require.NoError(t, err)

	inside, err := melody.At(0)
	require.NoError(t, err)
	assert.True(t, inside.IsSlurred())
}

func TestRuntimeSlur_WholeMelody(t *testing.T) {
	env := environment.NewRoot(nil)
	m := music.NewMelody(music.NewArticulated(music.Pitch(60), music.None), music.NewArticulated(music.Pitch(64), music.None))
	got, err := executable.RuntimeSlur[*music.Melody]{
		ToSlur: executable.Constant[*music.Melody]{Value: m},
		Slur:   executable.Constant[bool]{Value: true},
	}.Evaluate(env)
	require.NoError(t, err)
	assert.Same(t, m, got)
	assert.True(t, m.IsSlurred())
}

func TestOctaveShift(t *testing.T) {
	env := environment.NewRoot(nil)
	m := music.NewMelody(music.NewArticulated(music.Pitch(60), music.None))

	same, err := executable.OctaveShift[*music.Melody]{
		Source:  executable.Constant[*music.Melody]{Value: m},
		Octaves: executable.Constant[int]{Value: 0},
	}.Evaluate(env)
	require.NoError(t, err)
	assert.Same(t, m, same)

	up, err := executable.OctaveShift[*music.Melody]{
		Source:  executable.Constant[*music.Melody]{Value: m},
		Octaves: executable.Constant[int]{Value: -1},
	}.Evaluate(env)
	require.NoError(t, err)
	first, _ := up.At(0)
	assert.Equal(t, music.Pitch(48), first.Sound())

	sound, err := executable.OctaveShift[music.Sound]{
		Source:  executable.Constant[music.Sound]{Value: music.Chord{60, 64}},
		Octaves: executable.Constant[int]{Value: 1},
	}.Evaluate(env)
	require.NoError(t, err)
	assert.Equal(t, music.Chord{72, 76}, sound)
}

func TestMelodyLiteral(t *testing.T) {
	env := environment.NewRoot(nil)
	motif := music.NewMelody(music.NewArticulated(pitch(t, "E", 4), music.None), music.NewArticulated(pitch(t, "G", 4), music.None))
	require.NoError(t, env.Declare("motif", binding.New("motif", executable.TypeMelody)))
	ref, _ := env.Lookup("motif")
	require.NoError(t, ref.Set(motif))

	m, err := executable.MelodyLiteral{Parts: []executable.Expression[music.Concatable]{
		note(pitch(t, "C", 4), music.Staccato),
		executable.As[music.Concatable, *music.Melody](executable.Identifier[*music.Melody]{Name: "motif"}),
		note(music.Rest, music.None),
	}}.Evaluate(env)
	require.NoError(t, err)

	require.Equal(t, 4, m.Size())
	assert.Equal(t, "[C4.staccato, E4, G4, *]", m.String())
	assert.Equal(t, 2, motif.Size(), "a spliced melody is left as it was")

	_, err = executable.MelodyLiteral{Parts: []executable.Expression[music.Concatable]{
		executable.As[music.Concatable, int](executable.Constant[int]{Value: 1}),
	}}.Evaluate(env)
	require.ErrorIs(t, err, failure.ErrTypeMismatch)
}

func TestDurations(t *testing.T) {
	env := environment.NewRoot(nil)

	dotted, err := executable.Dotted{Beat: executable.Constant[beat.Beat]{Value: beat.Quarter}, Dots: 3}.Evaluate(env)
	require.NoError(t, err)
	assert.Equal(t, 1.875, dotted.NumQuarters())

	triplet, err := executable.Tuplet{Beat: executable.Constant[beat.Beat]{Value: beat.Eighth}, Num: 3}.Evaluate(env)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, triplet.NumQuarters(), 1e-9)

	_, err = executable.Tuplet{Beat: executable.Constant[beat.Beat]{Value: beat.Eighth}, Num: 1}.Evaluate(env)
	require.ErrorIs(t, err, failure.ErrInvalidArgument)

	quint, err := executable.Tuplet{Beat: executable.Constant[beat.Beat]{Value: beat.Half}, Num: 5, Div: 4}.Evaluate(env)
	require.NoError(t, err)
	assert.Equal(t, 1.6, quint.NumQuarters())

	r, err := executable.RhythmLiteral{Beats: []executable.Expression[beat.Beat]{
		executable.Constant[beat.Beat]{Value: beat.Half},
		executable.Dotted{Beat: executable.Constant[beat.Beat]{Value: beat.Eighth}, Dots: 1},
	}}.Evaluate(env)
	require.NoError(t, err)
	require.Len(t, r, 2)
	assert.Equal(t, 0.75, r[1].NumQuarters())
}

func TestTypeByName(t *testing.T) {
	typ, ok := executable.TypeByName("melody")
	require.True(t, ok)
	assert.Same(t, executable.TypeMelody, typ)

	typ, ok = executable.TypeByName("number[]")
	require.True(t, ok)
	assert.True(t, typ.IsCollection())
	assert.Same(t, rtype.Number, typ.Elem())

	_, ok = executable.TypeByName("tempo")
	assert.False(t, ok)
	_, ok = executable.TypeByName("[]")
	assert.False(t, ok)
}

func TestNilPointerValues(t *testing.T) {
	env := environment.NewRoot(nil)
	require.NoError(t, env.Declare("m", binding.New("m", executable.TypeMelody)))
	ref, _ := env.Lookup("m")
	require.NoError(t, ref.Set((*music.Melody)(nil)))

	t.Run("identifier reads as empty", func(t *testing.T) {
		_, err := executable.Identifier[*music.Melody]{Name: "m"}.Evaluate(env)
		require.ErrorIs(t, err, failure.ErrTypeMismatch)
	})

	t.Run("melody literal part", func(t *testing.T) {
		_, err := executable.MelodyLiteral{Parts: []executable.Expression[music.Concatable]{
			executable.As[music.Concatable, *music.Melody](executable.Identifier[*music.Melody]{Name: "m"}),
		}}.Evaluate(env)
		require.ErrorIs(t, err, failure.ErrTypeMismatch)

		_, err = executable.MelodyLiteral{Parts: []executable.Expression[music.Concatable]{
			executable.Constant[music.Concatable]{Value: (*music.Melody)(nil)},
		}}.Evaluate(env)
		require.ErrorIs(t, err, failure.ErrTypeMismatch)
	})

	t.Run("slur", func(t *testing.T) {
		_, err := executable.RuntimeSlur[*music.Articulated]{
			ToSlur: executable.Constant[*music.Articulated]{},
			Slur:   executable.Constant[bool]{Value: true},
		}.Evaluate(env)
		require.ErrorIs(t, err, failure.ErrTypeMismatch)
	})

	t.Run("octave shift", func(t *testing.T) {
		_, err := executable.OctaveShift[*music.Melody]{
			Source:  executable.Constant[*music.Melody]{},
			Octaves: executable.Constant[int]{Value: 1},
		}.Evaluate(env)
		require.ErrorIs(t, err, failure.ErrTypeMismatch)
	})

	t.Run("articulate", func(t *testing.T) {
		_, err := executable.Articulate{Sound: executable.Constant[music.Sound]{}}.Evaluate(env)
		require.ErrorIs(t, err, failure.ErrTypeMismatch)
	})
}
