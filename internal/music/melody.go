package music

import (
	"fmt"
	"strings"

	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
)

// Melody is an ordered sequence of sounds played one after the other. The
// order is the performance order and is never rearranged.
type Melody struct {
	sounds []*Articulated
}

func NewMelody(sounds ...*Articulated) *Melody {
	return &Melody{sounds: append([]*Articulated(nil), sounds...)}
}

// Add appends a single sound.
func (m *Melody) Add(sound *Articulated) {
	m.sounds = append(m.sounds, sound)
}

// AddMelody appends every sound of other, in order. other is not modified.
func (m *Melody) AddMelody(other *Melody) {
	m.sounds = append(m.sounds, other.sounds...)
}

func (m *Melody) Size() int { return len(m.sounds) }

// At returns the sound at index i.
func (m *Melody) At(i int) (*Articulated, error) {
	if i < 0 || i >= len(m.sounds) {
		return nil, fmt.Errorf("%w: index %d in melody of size %d", failure.ErrOutOfRange, i, len(m.sounds))
	}
	return m.sounds[i], nil
}

// Sounds returns the sounds in order. The slice is a copy; the sounds are
// shared.
func (m *Melody) Sounds() []*Articulated {
	return append([]*Articulated(nil), m.sounds...)
}

// ShiftOctave returns m itself when n is zero, otherwise a new melody of
// newly shifted sounds.
func (m *Melody) ShiftOctave(n int) *Melody {
	if n == 0 {
		return m
	}
	shifted := make([]*Articulated, len(m.sounds))
	for i, s := range m.sounds {
		shifted[i] = s.ShiftOctave(n)
	}
	return &Melody{sounds: shifted}
}

// SetSlurred slurs or unslurs every sound of the melody.
func (m *Melody) SetSlurred(slurred bool) {
	for _, s := range m.sounds {
		s.SetSlurred(slurred)
	}
}

// IsSlurred reports whether the melody is non-empty and every sound in it
// is slurred.
func (m *Melody) IsSlurred() bool {
	if len(m.sounds) == 0 {
		return false
	}
	for _, s := range m.sounds {
		if !s.IsSlurred() {
			return false
		}
	}
	return true
}

func (m *Melody) AppendTo(root *Melody) {
	root.AddMelody(m)
}

func (m *Melody) String() string {
	parts := make([]string, len(m.sounds))
	for i, s := range m.sounds {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
