package model

import "github.com/pkg/errors"

// Sentinel validation errors. Callers wrap these with positional context
// (source line, or track and token indexes) and match them with errors.Is
// through the wrap chain.
var (
	ErrInvalidKey           = errors.New("invalid key")
	ErrInstrumentRange      = errors.New("instrument out of range")
	ErrInvalidTimeSignature = errors.New("invalid time signature")
	ErrInvalidNote          = errors.New("invalid note")
	ErrUnterminatedLyric    = errors.New("unterminated lyric")
	ErrInvalidTempo         = errors.New("invalid tempo")
	ErrDocumentSyntax       = errors.New("malformed document")
)
