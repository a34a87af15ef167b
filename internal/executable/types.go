package executable

import (
	"strings"

	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
)

// Runtime types of the musical values, for declaring typed bindings and
// parameters.
var (
	TypeBeat        = rtype.Of[beat.Beat]("beat")
	TypeRhythm      = rtype.Of[beat.Rhythm]("rhythm")
	TypePitch       = rtype.Of[music.Pitch]("pitch")
	TypeChord       = rtype.Of[music.Chord]("chord")
	TypeArticulated = rtype.Of[*music.Articulated]("articulated")
	TypeMelody      = rtype.Of[*music.Melody]("melody")
)

var typesByName = map[string]*rtype.Type{
	"any":         rtype.Any,
	"bool":        rtype.Bool,
	"number":      rtype.Number,
	"string":      rtype.String,
	"beat":        TypeBeat,
	"rhythm":      TypeRhythm,
	"pitch":       TypePitch,
	"chord":       TypeChord,
	"articulated": TypeArticulated,
	"melody":      TypeMelody,
}

// TypeByName resolves a type keyword. A trailing "[]" makes a collection of
// the named element type, e.g. "melody[]".
func TypeByName(name string) (*rtype.Type, bool) {
	if elem, ok := strings.CutSuffix(name, "[]"); ok && elem != "" {
		t, found := TypeByName(elem)
		if !found {
			return nil, false
		}
		return rtype.CollectionOf(t), true
	}
	t, ok := typesByName[name]
	return t, ok
}

