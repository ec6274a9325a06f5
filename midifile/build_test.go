package midifile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/model"
)

func metaEvents() []model.TimedEvent {
	return []model.TimedEvent{
		{Kind: model.EventTempo, BPM: 120},
		{Kind: model.EventTimeSignature, Numerator: 4, Denominator: 4},
		{Kind: model.EventInstrument, Program: 5},
	}
}

type noteAt struct {
	key uint8
	at  uint64
	on  bool
}

func collectNotes(t *testing.T, track smf.Track) (notes []noteAt, lyrics []string, length uint64) {
	t.Helper()
	var abs uint64
	for _, evt := range track {
		abs += uint64(evt.Delta)
		var ch, key, vel uint8
		var text string
		switch {
		case evt.Message.GetNoteStart(&ch, &key, &vel):
			notes = append(notes, noteAt{key, abs, true})
		case evt.Message.GetNoteEnd(&ch, &key):
			notes = append(notes, noteAt{key, abs, false})
		case evt.Message.GetMetaLyric(&text):
			lyrics = append(lyrics, text)
		}
	}
	return notes, lyrics, abs
}

func TestBuildRoundTrip(t *testing.T) {
	events := append(metaEvents(),
		model.TimedEvent{Kind: model.EventLyric, Tick: 0, Text: "la"},
		model.TimedEvent{Kind: model.EventNoteOn, Tick: 0, Pitch: 60, Velocity: 64},
		model.TimedEvent{Kind: model.EventNoteOff, Tick: 480, Pitch: 60},
		model.TimedEvent{Kind: model.EventNoteOn, Tick: 480, Pitch: 62, Velocity: 64},
		model.TimedEvent{Kind: model.EventNoteOff, Tick: 1440, Pitch: 62},
	)
	tracks := []model.TrackEvents{{Label: "lead", Events: events, TotalTicks: 1920}}

	dat, err := Bytes(tracks)
	require.NoError(t, err)

	mf, err := smf.ReadFrom(bytes.NewReader(dat))
	require.NoError(t, err)
	require.Len(t, mf.Tracks, 1)

	assert := assert.New(t)
	assert.Equal(smf.MetricTicks(constants.TicksPerBeat), mf.TimeFormat)

	notes, lyrics, length := collectNotes(t, mf.Tracks[0])
	assert.Equal([]noteAt{
		{60, 0, true},
		{60, 480, false},
		{62, 480, true},
		{62, 1440, false},
	}, notes)
	assert.Equal([]string{"la"}, lyrics)

	// the trailing rest pushes end of track past the last note-off
	assert.Equal(uint64(1920), length)
}

func TestBuildAssignsChannelsPerTrack(t *testing.T) {
	one := model.TrackEvents{
		Events: append(metaEvents(),
			model.TimedEvent{Kind: model.EventNoteOn, Tick: 0, Pitch: 60, Velocity: 64},
			model.TimedEvent{Kind: model.EventNoteOff, Tick: 480, Pitch: 60},
		),
		TotalTicks: 480,
	}
	two := model.TrackEvents{
		Events: append(metaEvents(),
			model.TimedEvent{Kind: model.EventNoteOn, Tick: 0, Pitch: 48, Velocity: 64},
			model.TimedEvent{Kind: model.EventNoteOff, Tick: 480, Pitch: 48},
		),
		TotalTicks: 480,
	}

	dat, err := Bytes([]model.TrackEvents{one, two})
	require.NoError(t, err)

	mf, err := smf.ReadFrom(bytes.NewReader(dat))
	require.NoError(t, err)
	require.Len(t, mf.Tracks, 2)

	channels := make(map[uint8]bool)
	for i, track := range mf.Tracks {
		for _, evt := range track {
			var ch, key, vel uint8
			if evt.Message.GetNoteStart(&ch, &key, &vel) {
				assert.Equal(t, uint8(i), ch)
				channels[ch] = true
			}
		}
	}
	assert.Len(t, channels, 2)
}

func TestBuildRejectsBackwardsTicks(t *testing.T) {
	tracks := []model.TrackEvents{{
		Events: []model.TimedEvent{
			{Kind: model.EventNoteOn, Tick: 480, Pitch: 60, Velocity: 64},
			{Kind: model.EventNoteOff, Tick: 240, Pitch: 60},
		},
	}}

	_, err := Build(tracks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "track 1")
}

func TestBuildEmptyInputStillWrites(t *testing.T) {
	dat, err := Bytes(nil)
	require.NoError(t, err)

	mf, err := smf.ReadFrom(bytes.NewReader(dat))
	require.NoError(t, err)
	assert.Empty(t, mf.Tracks)
}

func TestWriteFileReadFileRoundTrip(t *testing.T) {
	tracks := []model.TrackEvents{{
		Events: append(metaEvents(),
			model.TimedEvent{Kind: model.EventNoteOn, Tick: 0, Pitch: 67, Velocity: 64},
			model.TimedEvent{Kind: model.EventNoteOff, Tick: 960, Pitch: 67},
		),
		TotalTicks: 960,
	}}

	path := filepath.Join(t.TempDir(), "out.mid")
	require.NoError(t, WriteFile(path, tracks))

	mf, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, mf.Tracks, 1)

	notes, _, _ := collectNotes(t, mf.Tracks[0])
	assert.Equal(t, []noteAt{{67, 0, true}, {67, 960, false}}, notes)
}

func TestReadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.mid")
	require.NoError(t, os.WriteFile(path, []byte("this is not midi"), 0o644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}
