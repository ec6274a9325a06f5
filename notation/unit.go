package notation

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/qupu/jianpu/model"
)

// unitPattern is the shape of one unit: optional accidental, octave marks
// on either side of a single degree digit, then duration marks in any order.
var unitPattern = regexp.MustCompile(`^([#b]?)([\^_]*)([0-9])([\^_]*)([.\-]*)$`)

func parseUnit(lit string) (model.NoteToken, error) {
	m := unitPattern.FindStringSubmatch(lit)
	if m == nil {
		return model.NoteToken{}, errors.Wrapf(model.ErrInvalidNote, "malformed unit %q", lit)
	}

	degree := int(m[3][0] - '0')
	if degree > 7 {
		return model.NoteToken{}, errors.Wrapf(model.ErrInvalidNote, "degree %d out of range in %q", degree, lit)
	}

	var tok model.NoteToken
	tok.Extends = strings.Count(m[5], "-")
	tok.Dots = strings.Count(m[5], ".")

	if degree == 0 {
		if m[1] != "" {
			return model.NoteToken{}, errors.Wrapf(model.ErrInvalidNote, "rest cannot take an accidental in %q", lit)
		}
		if m[2] != "" || m[4] != "" {
			return model.NoteToken{}, errors.Wrapf(model.ErrInvalidNote, "rest cannot take octave marks in %q", lit)
		}
		tok.Kind = model.TokenRest
		return tok, nil
	}

	tok.Kind = model.TokenPitched
	tok.Degree = degree
	switch m[1] {
	case "#":
		tok.Accidental = model.Sharp
	case "b":
		tok.Accidental = model.Flat
	}
	marks := m[2] + m[4]
	tok.OctaveShift = strings.Count(marks, "^") - strings.Count(marks, "_")
	return tok, nil
}
