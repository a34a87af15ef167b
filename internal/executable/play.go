package executable

import (
	"fmt"

	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
)

// DefaultVelocity is used when a Play statement does not set one.
const DefaultVelocity = 96

// Play performs a melody against a rhythm, starting at the output's
// current position. The rhythm repeats when it is shorter than the melody.
// Slurred sounds hold for their whole duration; other sounds are cut to
// their articulation's gate.
type Play struct {
	Melody   Expression[*music.Melody]
	Rhythm   Expression[beat.Rhythm]
	Channel  int
	Velocity int
}

func (p Play) Execute(env *environment.Environment, out output.Output) error {
	if out == nil {
		return fmt.Errorf("%w: nothing to play into, music can only be performed by a statement", failure.ErrInvalidArgument)
	}
	melody, err := p.Melody.Evaluate(env)
	if err != nil {
		return err
	}
	rhythm, err := p.Rhythm.Evaluate(env)
	if err != nil {
		return err
	}
	if rtype.IsAbsent(melody) {
		return fmt.Errorf("%w: cannot play an empty binding", failure.ErrTypeMismatch)
	}
	if len(rhythm) == 0 {
		return fmt.Errorf("%w: cannot play a melody against an empty rhythm", failure.ErrInvalidArgument)
	}

	base := p.Velocity
	if base <= 0 {
		base = DefaultVelocity
	}
	start := out.Position()
	pos := start
	for i, sound := range melody.Sounds() {
		ticks := out.Ticks(rhythm[i%len(rhythm)])
		if ticks < 1 {
			return fmt.Errorf("%w: %s is shorter than one tick", failure.ErrInvalidArgument, rhythm[i%len(rhythm)])
		}
		if err := present(sound, "melody sound"); err != nil {
			return err
		}
		if err := p.perform(out, sound, pos, ticks, base); err != nil {
			return err
		}
		pos += ticks
	}
	out.Advance(pos - start)
	env.Logger().Debug("Played melody.", "sounds", melody.Size(), "channel", p.Channel, "from", start, "to", pos)
	return nil
}

func (p Play) perform(out output.Output, sound *music.Articulated, at, ticks int64, base int) error {
	keys := sound.Sound().Keys()
	if len(keys) == 0 {
		return out.Append(output.Event{Kind: output.Rest, Channel: p.Channel}, at)
	}
	gate := ticks
	if !sound.IsSlurred() {
		gate = ticks * int64(sound.Articulation().GatePercent()) / 100
	}
	if gate < 1 {
		gate = 1
	}
	velocity := min(max(base+sound.Articulation().VelocityOffset(), 1), 127)
	for _, key := range keys {
		if err := out.Append(output.Event{Kind: output.NoteOn, Channel: p.Channel, Key: key, Velocity: velocity}, at); err != nil {
			return err
		}
	}
	for _, key := range keys {
		if err := out.Append(output.Event{Kind: output.NoteOff, Channel: p.Channel, Key: key}, at+gate); err != nil {
			return err
		}
	}
	return nil
}
