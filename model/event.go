package model

// EventKind discriminates TimedEvent payloads.
type EventKind uint8

const (
	EventNoteOn EventKind = iota + 1
	EventNoteOff
	EventLyric
	EventTempo
	EventTimeSignature
	EventInstrument
)

// TimedEvent is one scheduled event, Tick ticks from the start of its track.
// Only the fields belonging to Kind are meaningful: Pitch/Velocity for note
// events, Text for lyrics, BPM for tempo, Numerator/Denominator for time
// signatures, Program for instrument changes.
type TimedEvent struct {
	Tick        int64
	Kind        EventKind
	Pitch       uint8
	Velocity    uint8
	Text        string
	BPM         float64
	Numerator   uint8
	Denominator uint8
	Program     uint8
}

// TrackEvents is one sequenced track. TotalTicks is the final cursor
// position; it exceeds the last event's tick when the track ends in rests,
// and the writer closes the track there so that trailing silence survives.
type TrackEvents struct {
	Label      string
	Events     []TimedEvent
	TotalTicks int64
}
