package model

import "fmt"

// Mode of a key signature.
type Mode uint8

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "major"
}

var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Key is a resolved key signature: the tonic's pitch class (0 = C ... 11 = B),
// the mode, and the scale's seven semitone intervals.
type Key struct {
	Tonic     int
	Mode      Mode
	Intervals [7]int
}

func (k Key) String() string {
	name := pitchClassNames[((k.Tonic%12)+12)%12]
	if k.Mode == Minor {
		return name + "m"
	}
	return name
}

type TimeSignature struct {
	Numerator   int
	Denominator int
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Numerator, ts.Denominator)
}

// TrackConfig is the fully resolved playback metadata for one track.
// Assembly never leaves a field unset.
type TrackConfig struct {
	TempoBPM      float64
	TimeSignature TimeSignature
	Key           Key
	Instrument    int
}

// Directive is one @name=value line. The 1-based source line is kept for
// diagnostics.
type Directive struct {
	Name  string
	Value string
	Line  int
}

// Track pairs the resolved config with the token stream of one [track] block.
type Track struct {
	Label  string
	Config TrackConfig
	Tokens []NoteToken
}

// Document is a fully parsed score: resolved global defaults, the tracks in
// source order, and any non-fatal warnings collected along the way.
type Document struct {
	Defaults TrackConfig
	Tracks   []Track
	Warnings []string
}
