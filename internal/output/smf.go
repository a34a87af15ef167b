package output

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Meta holds the song-wide settings written into the tempo track.
type Meta struct {
	Title       string
	Tempo       float64 // beats per minute
	Numerator   uint8
	Denominator uint8
}

// WriteSMF writes tl as a type 1 MIDI file: a tempo track carrying meta,
// followed by one track per used channel.
func WriteSMF(w io.Writer, tl *Timeline, meta Meta) error {
	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(tl.PPQN())

	var tempoTrack smf.Track
	if meta.Title != "" {
		tempoTrack.Add(0, smf.MetaTrackSequenceName(meta.Title))
	}
	if meta.Numerator > 0 && meta.Denominator > 0 {
		tempoTrack.Add(0, smf.MetaMeter(meta.Numerator, meta.Denominator))
	}
	if meta.Tempo > 0 {
		tempoTrack.Add(0, smf.MetaTempo(meta.Tempo))
	}
	tempoTrack.Close(0)
	if err := s.Add(tempoTrack); err != nil {
		return fmt.Errorf("failed to add tempo track: %w", err)
	}

	sorted := tl.Sorted()
	for _, channel := range tl.Channels() {
		var track smf.Track
		var last int64
		for _, ev := range sorted {
			if ev.Channel != channel || ev.Kind == Rest {
				continue
			}
			var msg midi.Message
			if ev.Kind == NoteOn {
				msg = midi.NoteOn(uint8(ev.Channel), uint8(ev.Key), uint8(ev.Velocity))
			} else {
				msg = midi.NoteOff(uint8(ev.Channel), uint8(ev.Key))
			}
			track.Add(uint32(ev.Tick-last), msg)
			last = ev.Tick
		}
		track.Close(0)
		if err := s.Add(track); err != nil {
			return fmt.Errorf("failed to add track for channel %d: %w", channel, err)
		}
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write MIDI file: %w", err)
	}
	return nil
}

// ReadSMF rebuilds a Timeline from a MIDI file written by WriteSMF. Only
// note messages are kept, so rests do not survive the round trip.
func ReadSMF(r io.Reader) (*Timeline, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read MIDI file: %w", err)
	}
	ppqn := DefaultPPQN
	if ticks, ok := s.TimeFormat.(smf.MetricTicks); ok {
		ppqn = int(ticks)
	}
	tl := NewTimeline(ppqn)
	for _, track := range s.Tracks {
		var tick int64
		for _, ev := range track {
			tick += int64(ev.Delta)
			var channel, key, velocity uint8
			msg := midi.Message(ev.Message)
			switch {
			case msg.GetNoteOn(&channel, &key, &velocity):
				err = tl.Append(Event{Kind: NoteOn, Channel: int(channel), Key: int(key), Velocity: int(velocity)}, tick)
			case msg.GetNoteOff(&channel, &key, &velocity):
				err = tl.Append(Event{Kind: NoteOff, Channel: int(channel), Key: int(key)}, tick)
			default:
				continue
			}
			if err != nil {
				return nil, err
			}
		}
		if tick > tl.position {
			tl.position = tick
		}
	}
	return tl, nil
}
