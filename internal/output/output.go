package output

import (
	"fmt"

	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"gopkg.in/yaml.v3"
)

// Kind identifies what an Event does.
type Kind int

const (
	NoteOn Kind = iota
	NoteOff
	// Rest marks a silent beat. It produces no MIDI message.
	Rest
)

var kindNames = map[Kind]string{NoteOn: "note_on", NoteOff: "note_off", Rest: "rest"}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalYAML writes Kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML parses the names written by MarshalYAML.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	for kind, name := range kindNames {
		if name == node.Value {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown event kind %q", node.Line, node.Value)
}

// Event is a single symbolic performance event.
type Event struct {
	Kind     Kind `yaml:"kind"`
	Channel  int  `yaml:"channel"`
	Key      int  `yaml:"key,omitempty"`
	Velocity int  `yaml:"velocity,omitempty"`
}

// Output receives the events produced while executing statements.
type Output interface {
	// Append records ev at the absolute tick at.
	Append(ev Event, at int64) error
	// Position is the tick where the next sound starts.
	Position() int64
	// Advance moves Position forward by ticks.
	Advance(ticks int64)
	// Ticks converts a duration into ticks.
	Ticks(d beat.Beat) int64
}
