// Package pitch maps pitched tokens onto MIDI note numbers.
package pitch

import (
	"github.com/pkg/errors"

	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/model"
)

// middleC anchors degree 1 of C major at MIDI 60.
const middleC = 60

// Resolve computes a token's MIDI note number in the given key. Degree 1 is
// the tonic; the key's interval pattern spaces the remaining degrees; the
// accidental moves the result one semitone and each octave mark twelve.
// Results outside 0-127 are rejected, never clamped.
func Resolve(tok model.NoteToken, k model.Key) (uint8, error) {
	if tok.Kind != model.TokenPitched {
		return 0, errors.Wrap(model.ErrInvalidNote, "rest has no pitch")
	}
	if tok.Degree < 1 || tok.Degree > 7 {
		return 0, errors.Wrapf(model.ErrInvalidNote, "degree %d out of range", tok.Degree)
	}

	semis := 0
	for i := 0; i < tok.Degree-1; i++ {
		semis += k.Intervals[i]
	}
	p := middleC + k.Tonic + semis + tok.Accidental.Offset() + 12*tok.OctaveShift
	if p < 0 || p > constants.MaxMIDIValue {
		return 0, errors.Wrapf(model.ErrInvalidNote, "pitch %d outside the MIDI range", p)
	}
	return uint8(p), nil
}
