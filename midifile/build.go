// Package midifile renders sequenced tracks into standard MIDI files and
// reads them back for inspection.
package midifile

import (
	"bytes"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/model"
)

// Build assembles a format 1 SMF from sequenced tracks. Each logical track
// becomes one SMF track on channel trackIndex mod 16, and every track is
// closed at its TotalTicks so trailing rests keep their length.
func Build(tracks []model.TrackEvents) (*smf.SMF, error) {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)

	for i, te := range tracks {
		ch := uint8(i % 16)
		var tr smf.Track
		if te.Label != "" {
			tr.Add(0, smf.MetaTrackSequenceName(te.Label))
		}

		var last int64
		for _, e := range te.Events {
			if e.Tick < last {
				return nil, errors.Errorf("track %d: event ticks run backwards at %d", i+1, e.Tick)
			}
			delta := uint32(e.Tick - last)
			switch e.Kind {
			case model.EventNoteOn:
				tr.Add(delta, midi.NoteOn(ch, e.Pitch, e.Velocity))
			case model.EventNoteOff:
				tr.Add(delta, midi.NoteOff(ch, e.Pitch))
			case model.EventLyric:
				tr.Add(delta, smf.MetaLyric(e.Text))
			case model.EventTempo:
				tr.Add(delta, smf.MetaTempo(e.BPM))
			case model.EventTimeSignature:
				tr.Add(delta, smf.MetaMeter(e.Numerator, e.Denominator))
			case model.EventInstrument:
				tr.Add(delta, midi.ProgramChange(ch, e.Program))
			default:
				return nil, errors.Errorf("track %d: unknown event kind %d", i+1, e.Kind)
			}
			last = e.Tick
		}

		tail := te.TotalTicks - last
		if tail < 0 {
			tail = 0
		}
		tr.Close(uint32(tail))
		res.Tracks = append(res.Tracks, tr)
	}
	return &res, nil
}

// Bytes renders tracks to an in-memory .mid image.
func Bytes(tracks []model.TrackEvents) ([]byte, error) {
	s, err := Build(tracks)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "encoding midi")
	}
	return buf.Bytes(), nil
}

// WriteFile renders tracks and writes the .mid to path.
func WriteFile(path string, tracks []model.TrackEvents) error {
	s, err := Build(tracks)
	if err != nil {
		return err
	}
	return errors.Wrapf(s.WriteFile(path), "writing %s", path)
}
