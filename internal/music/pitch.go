package music

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
)

// Sound is a performable pitch or set of simultaneous pitches.
type Sound interface {
	// Keys returns the MIDI key numbers to strike; empty for a rest.
	Keys() []int
	// ShiftOctave returns the sound moved by n octaves.
	ShiftOctave(n int) Sound
	String() string
}

// Pitch is a MIDI key number, middle C being 60.
type Pitch int

// Rest is the silent pitch. It lies far outside the MIDI range and shifting
// it is a no-op.
const Rest Pitch = -1 << 20

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// NewPitch parses a note name like "C", "F#" or "Bb" in the given octave,
// where octave 4 holds middle C.
func NewPitch(name string, octave int) (Pitch, error) {
	if name == "" {
		return Rest, fmt.Errorf("%w: empty pitch name", failure.ErrInvalidArgument)
	}
	base, ok := semitones[strings.ToUpper(name[:1])[0]]
	if !ok {
		return Rest, fmt.Errorf("%w: unknown pitch name %q", failure.ErrInvalidArgument, name)
	}
	for _, acc := range name[1:] {
		switch acc {
		case '#':
			base++
		case 'b':
			base--
		default:
			return Rest, fmt.Errorf("%w: unknown accidental %q in pitch %q", failure.ErrInvalidArgument, acc, name)
		}
	}
	return Pitch((octave+1)*12 + base), nil
}

// ParsePitch reads a pitch written with its octave, like "C4", "F#3" or
// "Bb-1". "*" is the rest.
func ParsePitch(s string) (Pitch, error) {
	if s == "*" {
		return Rest, nil
	}
	i := strings.IndexFunc(s, func(r rune) bool { return r == '-' || (r >= '0' && r <= '9') })
	if i <= 0 {
		return Rest, fmt.Errorf("%w: pitch %q needs a name and an octave", failure.ErrInvalidArgument, s)
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Rest, fmt.Errorf("%w: invalid octave in pitch %q", failure.ErrInvalidArgument, s)
	}
	return NewPitch(s[:i], octave)
}

func (p Pitch) Keys() []int {
	if p == Rest {
		return nil
	}
	return []int{int(p)}
}

func (p Pitch) ShiftOctave(n int) Sound {
	if p == Rest {
		return p
	}
	return p + Pitch(12*n)
}

var pitchNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (p Pitch) String() string {
	if p == Rest {
		return "*"
	}
	k := int(p)
	octave := k / 12
	if k < 0 && k%12 != 0 {
		octave--
	}
	return fmt.Sprintf("%s%d", pitchNames[k-octave*12], octave-1)
}

// Chord is a set of pitches struck together, kept in the order given.
type Chord []Pitch

func (c Chord) Keys() []int {
	keys := make([]int, 0, len(c))
	for _, p := range c {
		keys = append(keys, p.Keys()...)
	}
	return keys
}

func (c Chord) ShiftOctave(n int) Sound {
	shifted := make(Chord, len(c))
	for i, p := range c {
		shifted[i] = p.ShiftOctave(n).(Pitch)
	}
	return shifted
}

func (c Chord) String() string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.String()
	}
	return "(" + strings.Join(names, ", ") + ")"
}
