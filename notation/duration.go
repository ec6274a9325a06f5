package notation

import (
	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/model"
)

// Beats computes a unit's length in beats from its written duration marks:
// each '-' doubles it, each '.' multiplies it by one and a half. The marks
// combine multiplicatively, so the order they were written in cannot change
// the result.
func Beats(base float64, extends, dots int) float64 {
	beats := base
	for i := 0; i < extends; i++ {
		beats *= 2
	}
	for i := 0; i < dots; i++ {
		beats *= 1.5
	}
	return beats
}

// TokenBeats is Beats applied to a token with the standard one-beat base.
func TokenBeats(tok model.NoteToken) float64 {
	return Beats(1, tok.Extends, tok.Dots)
}

// Ticks converts beats to MIDI ticks at the fixed resolution, truncating
// toward zero. Tempo never enters tick math; it travels as a meta event.
func Ticks(beats float64) int64 {
	return int64(beats * constants.TicksPerBeat)
}
