// Package key resolves written key names ("C", "F#", "bbm", "Eb major")
// into tonic pitch classes and scale interval patterns.
package key

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/qupu/jianpu/model"
)

var namePattern = regexp.MustCompile(`^([a-g])([#b]?)(m|min|minor|maj|major)?$`)

var tonicClasses = map[string]int{
	"c": 0, "d": 2, "e": 4, "f": 5, "g": 7, "a": 9, "b": 11,
}

var (
	majorIntervals = [7]int{2, 2, 1, 2, 2, 2, 1}
	minorIntervals = [7]int{2, 1, 2, 2, 1, 2, 2}
)

// Resolve parses a key name case-insensitively: a letter A-G, an optional
// '#' or 'b', and an optional mode suffix (m, min, minor for minor; maj,
// major or nothing for major). Anything else fails with ErrInvalidKey.
func Resolve(name string) (model.Key, error) {
	m := namePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(name)))
	if m == nil {
		return model.Key{}, errors.Wrapf(model.ErrInvalidKey, "%q", name)
	}

	tonic := tonicClasses[m[1]]
	switch m[2] {
	case "#":
		tonic = (tonic + 1) % 12
	case "b":
		tonic = (tonic + 11) % 12
	}

	switch m[3] {
	case "m", "min", "minor":
		return model.Key{Tonic: tonic, Mode: model.Minor, Intervals: minorIntervals}, nil
	default:
		return model.Key{Tonic: tonic, Mode: model.Major, Intervals: majorIntervals}, nil
	}
}

// Default is the key assumed when a score names none: C major.
func Default() model.Key {
	return model.Key{Tonic: 0, Mode: model.Major, Intervals: majorIntervals}
}
