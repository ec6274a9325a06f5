package score

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/qupu/jianpu/constants"
	"github.com/qupu/jianpu/key"
	"github.com/qupu/jianpu/model"
)

var knownDirectives = map[string]bool{
	"tempo":          true,
	"time_signature": true,
	"key":            true,
	"instrument":     true,
}

// Defaults is the built-in TrackConfig in force before any directive applies:
// 120 bpm, 4/4, C major, instrument 0.
func Defaults() model.TrackConfig {
	return model.TrackConfig{
		TempoBPM: constants.DefaultTempoBPM,
		TimeSignature: model.TimeSignature{
			Numerator:   constants.DefaultNumerator,
			Denominator: constants.DefaultDenominator,
		},
		Key:        key.Default(),
		Instrument: constants.DefaultInstrument,
	}
}

// Assemble resolves one track's config: built-in defaults overridden by
// global directives overridden by track directives, field by field. Every
// directive is validated as it applies, in source order; unknown names
// produce a warning rather than an error.
func Assemble(global, track []model.Directive) (model.TrackConfig, []string, error) {
	cfg := Defaults()
	var warnings []string
	for _, dirs := range [2][]model.Directive{global, track} {
		for _, d := range dirs {
			if err := apply(&cfg, d, &warnings); err != nil {
				return model.TrackConfig{}, warnings, err
			}
		}
	}
	return cfg, warnings, nil
}

func apply(cfg *model.TrackConfig, d model.Directive, warnings *[]string) error {
	switch d.Name {
	case "tempo":
		bpm, err := strconv.ParseFloat(d.Value, 64)
		if err != nil || bpm <= 0 {
			return errors.Wrapf(model.ErrInvalidTempo, "line %d: %q", d.Line, d.Value)
		}
		cfg.TempoBPM = bpm
	case "time_signature":
		ts, err := parseTimeSignature(d.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d", d.Line)
		}
		cfg.TimeSignature = ts
	case "key":
		k, err := key.Resolve(d.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d", d.Line)
		}
		cfg.Key = k
	case "instrument":
		program, err := strconv.Atoi(d.Value)
		if err != nil || program < 0 || program > constants.MaxMIDIValue {
			return errors.Wrapf(model.ErrInstrumentRange, "line %d: %q", d.Line, d.Value)
		}
		cfg.Instrument = program
	default:
		*warnings = append(*warnings, fmt.Sprintf("line %d: unknown directive %q", d.Line, d.Name))
	}
	return nil
}

func parseTimeSignature(value string) (model.TimeSignature, error) {
	var ts model.TimeSignature
	num, den, ok := strings.Cut(value, "/")
	if !ok {
		return ts, errors.Wrapf(model.ErrInvalidTimeSignature, "%q", value)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return ts, errors.Wrapf(model.ErrInvalidTimeSignature, "%q", value)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return ts, errors.Wrapf(model.ErrInvalidTimeSignature, "%q", value)
	}
	if n < 1 || d < 1 || n > constants.MaxMeterValue || d > constants.MaxMeterValue {
		return ts, errors.Wrapf(model.ErrInvalidTimeSignature, "%q", value)
	}
	if d&(d-1) != 0 {
		return ts, errors.Wrapf(model.ErrInvalidTimeSignature, "denominator %d is not a power of two", d)
	}
	ts.Numerator = n
	ts.Denominator = d
	return ts, nil
}
