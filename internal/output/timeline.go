package output

import (
	"fmt"
	"sort"

	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
)

// DefaultPPQN is the resolution used when none is configured.
const DefaultPPQN = 960

// TimedEvent is an Event at an absolute tick.
type TimedEvent struct {
	Tick  int64 `yaml:"tick"`
	Event `yaml:",inline"`
}

// Timeline is an in-memory Output.
type Timeline struct {
	ppqn     int
	position int64
	events   []TimedEvent
}

// NewTimeline creates an empty timeline. A non-positive ppqn selects
// DefaultPPQN.
func NewTimeline(ppqn int) *Timeline {
	if ppqn <= 0 {
		ppqn = DefaultPPQN
	}
	return &Timeline{ppqn: ppqn}
}

func (t *Timeline) PPQN() int { return t.ppqn }

// Append validates ev and records it.
func (t *Timeline) Append(ev Event, at int64) error {
	if at < 0 {
		return fmt.Errorf("%w: tick %d is negative", failure.ErrOutOfRange, at)
	}
	if ev.Channel < 0 || ev.Channel > 15 {
		return fmt.Errorf("%w: channel %d is outside 0-15", failure.ErrOutOfRange, ev.Channel)
	}
	if ev.Kind != Rest {
		if ev.Key < 0 || ev.Key > 127 {
			return fmt.Errorf("%w: key %d is outside 0-127", failure.ErrOutOfRange, ev.Key)
		}
		if ev.Velocity < 0 || ev.Velocity > 127 {
			return fmt.Errorf("%w: velocity %d is outside 0-127", failure.ErrOutOfRange, ev.Velocity)
		}
	}
	t.events = append(t.events, TimedEvent{Tick: at, Event: ev})
	return nil
}

func (t *Timeline) Position() int64 { return t.position }

func (t *Timeline) Advance(ticks int64) {
	t.position += ticks
}

func (t *Timeline) Ticks(d beat.Beat) int64 {
	return d.Ticks(t.ppqn)
}

// Len returns the number of recorded events.
func (t *Timeline) Len() int { return len(t.events) }

// Events returns the events in the order they were appended.
func (t *Timeline) Events() []TimedEvent {
	return append([]TimedEvent(nil), t.events...)
}

// Sorted returns the events ordered by tick. Events on the same tick keep
// their append order, except that note-offs come before note-ons so a
// re-struck key is not cut short.
func (t *Timeline) Sorted() []TimedEvent {
	sorted := t.Events()
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Tick != sorted[j].Tick {
			return sorted[i].Tick < sorted[j].Tick
		}
		return sorted[i].Kind == NoteOff && sorted[j].Kind != NoteOff
	})
	return sorted
}

// Channels returns the distinct channels used by note events, ascending.
func (t *Timeline) Channels() []int {
	seen := map[int]bool{}
	var channels []int
	for _, ev := range t.events {
		if ev.Kind == Rest || seen[ev.Channel] {
			continue
		}
		seen[ev.Channel] = true
		channels = append(channels, ev.Channel)
	}
	sort.Ints(channels)
	return channels
}

// End returns the tick of the last event or the current position, whichever
// is later.
func (t *Timeline) End() int64 {
	end := t.position
	for _, ev := range t.events {
		if ev.Tick > end {
			end = ev.Tick
		}
	}
	return end
}
