package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type timelineDoc struct {
	PPQN   int          `yaml:"ppqn"`
	End    int64        `yaml:"end"`
	Events []TimedEvent `yaml:"events"`
}

// WriteYAML dumps tl in tick order.
func WriteYAML(w io.Writer, tl *Timeline) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := timelineDoc{PPQN: tl.PPQN(), End: tl.End(), Events: tl.Sorted()}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode timeline: %w", err)
	}
	return enc.Close()
}

// ReadYAML loads a timeline written by WriteYAML.
func ReadYAML(r io.Reader) (*Timeline, error) {
	var doc timelineDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode timeline: %w", err)
	}
	tl := NewTimeline(doc.PPQN)
	for _, ev := range doc.Events {
		if err := tl.Append(ev.Event, ev.Tick); err != nil {
			return nil, err
		}
	}
	tl.position = doc.End
	return tl, nil
}
