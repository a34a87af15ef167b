package beat

import (
	"fmt"
	"math/big"

	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
)

// Beat is a note duration measured in quarter notes. The zero value is not a
// valid duration; use one of the named base durations.
type Beat struct {
	quarters *big.Rat // never mutated once the Beat exists
}

// The base durations every Beat is derived from.
var (
	Whole        = newBeat(big.NewRat(4, 1))
	Half         = newBeat(big.NewRat(2, 1))
	Quarter      = newBeat(big.NewRat(1, 1))
	Eighth       = newBeat(big.NewRat(1, 2))
	Sixteenth    = newBeat(big.NewRat(1, 4))
	ThirtySecond = newBeat(big.NewRat(1, 8))
)

var names = []string{"whole", "half", "quarter", "eighth", "sixteenth", "thirtysecond"}

var byName = map[string]Beat{
	"whole":        Whole,
	"half":         Half,
	"quarter":      Quarter,
	"eighth":       Eighth,
	"sixteenth":    Sixteenth,
	"thirtysecond": ThirtySecond,
}

// ByName returns the base duration called name, e.g. "eighth".
func ByName(name string) (Beat, bool) {
	b, ok := byName[name]
	return b, ok
}

// Names lists the base duration names from longest to shortest.
func Names() []string {
	return append([]string(nil), names...)
}

func newBeat(quarters *big.Rat) Beat {
	return Beat{quarters: quarters}
}

func (b Beat) rat() *big.Rat {
	if b.quarters == nil {
		return new(big.Rat)
	}
	return b.quarters
}

// Dot extends the duration by n dots. The first dot adds half of the base
// duration and every further dot adds half of the amount the previous dot
// added, so a quarter with three dots lasts 1 + 1/2 + 1/4 + 1/8 quarters.
// A non-positive n returns b unchanged.
func (b Beat) Dot(n int) Beat {
	if n <= 0 {
		return b
	}
	total := new(big.Rat).Set(b.rat())
	added := new(big.Rat).Set(b.rat())
	half := big.NewRat(1, 2)
	for i := 0; i < n; i++ {
		added.Mul(added, half)
		total.Add(total, added)
	}
	return newBeat(total)
}

// Tuplet squeezes num beats into the time of num-1 of them, e.g. Tuplet(3)
// is a triplet.
func (b Beat) Tuplet(num int) (Beat, error) {
	if num <= 1 {
		return Beat{}, fmt.Errorf("%w: cannot create a tuplet of %d", failure.ErrInvalidArgument, num)
	}
	return b.TupletRatio(num, num-1)
}

// TupletRatio plays num beats in the time normally taken by div of them,
// scaling the duration by div/num.
func (b Beat) TupletRatio(num, div int) (Beat, error) {
	if num <= 0 || div <= 0 {
		return Beat{}, fmt.Errorf("%w: cannot create a tuplet of %d:%d", failure.ErrInvalidArgument, num, div)
	}
	scaled := new(big.Rat).Mul(b.rat(), big.NewRat(int64(div), int64(num)))
	return newBeat(scaled), nil
}

// NumQuarters returns the duration in quarter notes as the nearest float64.
func (b Beat) NumQuarters() float64 {
	f, _ := b.rat().Float64()
	return f
}

// Quarters returns a copy of the exact duration in quarter notes.
func (b Beat) Quarters() *big.Rat {
	return new(big.Rat).Set(b.rat())
}

// Ticks converts the duration into MIDI ticks for the given pulses per
// quarter note, rounding half up.
func (b Beat) Ticks(ppqn int) int64 {
	scaled := new(big.Rat).Mul(b.rat(), big.NewRat(int64(ppqn), 1))
	num := new(big.Int).Mul(scaled.Num(), big.NewInt(2))
	num.Add(num, scaled.Denom())
	den := new(big.Int).Mul(scaled.Denom(), big.NewInt(2))
	return new(big.Int).Div(num, den).Int64()
}

// Equal reports whether both beats last exactly as long.
func (b Beat) Equal(other Beat) bool {
	return b.rat().Cmp(other.rat()) == 0
}

func (b Beat) String() string {
	return b.rat().RatString() + "q"
}

// Rhythm is the sequence of durations a melody is performed against.
type Rhythm []Beat

