package compiler

import (
	"errors"
	"fmt"

	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
)

// Options are the song-wide settings of a compilation.
type Options struct {
	Title       string
	Tempo       int // beats per minute
	Numerator   int
	Denominator int
	PPQN        int
	// Silent keeps progress messages at debug level.
	Silent bool
}

// DefaultOptions is 4/4 at 120 BPM.
func DefaultOptions() Options {
	return Options{
		Tempo:       120,
		Numerator:   4,
		Denominator: 4,
		PPQN:        output.DefaultPPQN,
	}
}

// Validate reports every setting that cannot be written to a MIDI file.
func (o Options) Validate() error {
	var errs []error
	if o.Tempo <= 0 || o.Tempo > 1000 {
		errs = append(errs, fmt.Errorf("%w: tempo %d is outside 1-1000", failure.ErrInvalidArgument, o.Tempo))
	}
	if o.Numerator <= 0 || o.Numerator > 255 {
		errs = append(errs, fmt.Errorf("%w: time signature numerator %d is outside 1-255", failure.ErrInvalidArgument, o.Numerator))
	}
	if o.Denominator <= 0 || o.Denominator > 128 || o.Denominator&(o.Denominator-1) != 0 {
		errs = append(errs, fmt.Errorf("%w: time signature denominator %d is not a power of two up to 128", failure.ErrInvalidArgument, o.Denominator))
	}
	if o.PPQN <= 0 || o.PPQN > 0x7fff {
		errs = append(errs, fmt.Errorf("%w: ppqn %d is outside 1-32767", failure.ErrInvalidArgument, o.PPQN))
	}
	return errors.Join(errs...)
}

// Meta returns the tempo track settings for output.WriteSMF.
func (o Options) Meta() output.Meta {
	return output.Meta{
		Title:       o.Title,
		Tempo:       float64(o.Tempo),
		Numerator:   uint8(o.Numerator),
		Denominator: uint8(o.Denominator),
	}
}
