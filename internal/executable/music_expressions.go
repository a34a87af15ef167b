package executable

import (
	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
)

// OctaveShifter is a value that can be moved by whole octaves.
type OctaveShifter[T any] interface {
	ShiftOctave(n int) T
}

// OctaveShift moves the value of Source by the number of octaves Octaves
// evaluates to.
type OctaveShift[T OctaveShifter[T]] struct {
	Source  Expression[T]
	Octaves Expression[int]
}

func (o OctaveShift[T]) Evaluate(env *environment.Environment) (T, error) {
	src, err := o.Source.Evaluate(env)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := present(src, "octave shift source"); err != nil {
		var zero T
		return zero, err
	}
	n, err := o.Octaves.Evaluate(env)
	if err != nil {
		var zero T
		return zero, err
	}
	return src.ShiftOctave(n), nil
}

// Articulate attaches an articulation to a sound, producing a new
// unslurred articulated sound on every evaluation.
type Articulate struct {
	Sound        Expression[music.Sound]
	Articulation music.Articulation
}

func (a Articulate) Evaluate(env *environment.Environment) (*music.Articulated, error) {
	sound, err := a.Sound.Evaluate(env)
	if err != nil {
		return nil, err
	}
	if err := present(sound, "articulated sound"); err != nil {
		return nil, err
	}
	return music.NewArticulated(sound, a.Articulation), nil
}

// MelodyLiteral concatenates its parts, in order, into a new melody.
type MelodyLiteral struct {
	Parts []Expression[music.Concatable]
}

func (m MelodyLiteral) Evaluate(env *environment.Environment) (*music.Melody, error) {
	melody := music.NewMelody()
	for _, part := range m.Parts {
		v, err := part.Evaluate(env)
		if err != nil {
			return nil, err
		}
		if err := present(v, "melody part"); err != nil {
			return nil, err
		}
		v.AppendTo(melody)
	}
	return melody, nil
}

// Dotted extends a duration by Dots dots.
type Dotted struct {
	Beat Expression[beat.Beat]
	Dots int
}

func (d Dotted) Evaluate(env *environment.Environment) (beat.Beat, error) {
	b, err := d.Beat.Evaluate(env)
	if err != nil {
		return beat.Beat{}, err
	}
	return b.Dot(d.Dots), nil
}

// Tuplet compresses a duration into a Num:Div tuplet. A zero Div means the
// usual Num:Num-1 tuplet.
type Tuplet struct {
	Beat Expression[beat.Beat]
	Num  int
	Div  int
}

func (t Tuplet) Evaluate(env *environment.Environment) (beat.Beat, error) {
	b, err := t.Beat.Evaluate(env)
	if err != nil {
		return beat.Beat{}, err
	}
	if t.Div == 0 {
		return b.Tuplet(t.Num)
	}
	return b.TupletRatio(t.Num, t.Div)
}

// RhythmLiteral evaluates each duration in order.
type RhythmLiteral struct {
	Beats []Expression[beat.Beat]
}

func (r RhythmLiteral) Evaluate(env *environment.Environment) (beat.Rhythm, error) {
	rhythm := make(beat.Rhythm, 0, len(r.Beats))
	for _, e := range r.Beats {
		b, err := e.Evaluate(env)
		if err != nil {
			return nil, err
		}
		rhythm = append(rhythm, b)
	}
	return rhythm, nil
}
