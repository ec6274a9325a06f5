// Package sequencer flattens parsed tracks into timed event streams.
package sequencer

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/model"
	"github.com/qupu/jianpu/notation"
	"github.com/qupu/jianpu/pitch"
)

// Events flattens one track. The tick cursor starts at zero; the tempo,
// meter and instrument metas land at tick 0; every token advances the
// cursor by its duration whether or not it sounds, so trailing rests are
// part of TotalTicks. Emitted ticks never decrease.
func Events(t model.Track) (model.TrackEvents, error) {
	cfg := t.Config
	res := model.TrackEvents{Label: t.Label}
	res.Events = append(res.Events,
		model.TimedEvent{Kind: model.EventTempo, BPM: cfg.TempoBPM},
		model.TimedEvent{
			Kind:        model.EventTimeSignature,
			Numerator:   uint8(cfg.TimeSignature.Numerator),
			Denominator: uint8(cfg.TimeSignature.Denominator),
		},
		model.TimedEvent{Kind: model.EventInstrument, Program: uint8(cfg.Instrument)},
	)

	var cursor int64
	for i, tok := range t.Tokens {
		ticks := notation.Ticks(notation.TokenBeats(tok))
		if tok.Lyric != "" {
			res.Events = append(res.Events, model.TimedEvent{Kind: model.EventLyric, Tick: cursor, Text: tok.Lyric})
		}
		if tok.Kind == model.TokenPitched {
			p, err := pitch.Resolve(tok, cfg.Key)
			if err != nil {
				return model.TrackEvents{}, errors.Wrapf(err, "token %d", i+1)
			}
			res.Events = append(res.Events,
				model.TimedEvent{Kind: model.EventNoteOn, Tick: cursor, Pitch: p, Velocity: constants.DefaultVelocity},
				model.TimedEvent{Kind: model.EventNoteOff, Tick: cursor + ticks, Pitch: p},
			)
		}
		cursor += ticks
	}
	res.TotalTicks = cursor
	return res, nil
}

// All sequences every track of a document concurrently; tracks share
// nothing, so each goroutine fills its own slot. On failure the error of
// the lowest-indexed failing track is reported, keeping reruns identical.
func All(doc *model.Document) ([]model.TrackEvents, error) {
	res := make([]model.TrackEvents, len(doc.Tracks))
	errs := make([]error, len(doc.Tracks))

	var wg sync.WaitGroup
	for i := range doc.Tracks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res[i], errs[i] = Events(doc.Tracks[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "track %d", i+1)
		}
	}
	return res, nil
}
