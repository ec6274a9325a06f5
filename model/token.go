package model

// TokenKind separates rests from sounding notes.
type TokenKind uint8

const (
	TokenRest TokenKind = iota
	TokenPitched
)

// Accidental is the semitone adjustment written before a degree digit.
type Accidental int8

const (
	Natural Accidental = 0
	Sharp   Accidental = 1
	Flat    Accidental = -1
)

// Offset is the signed semitone shift the accidental applies.
func (a Accidental) Offset() int { return int(a) }

// NoteToken is one whitespace-delimited unit of a track's note text.
// Degree, Accidental and OctaveShift are only meaningful for pitched
// tokens; the tokenizer never produces a rest carrying them. Lyric is
// empty when no quoted text followed the unit.
type NoteToken struct {
	Kind        TokenKind
	Degree      int
	Accidental  Accidental
	OctaveShift int
	Extends     int // count of '-' marks, each doubling the duration
	Dots        int // count of '.' marks, each multiplying it by 1.5
	Lyric       string
}
