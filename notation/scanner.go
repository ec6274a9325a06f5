// Package notation tokenizes jianpu note text. Units are runs of
// non-whitespace characters: an optional accidental, octave marks around a
// single degree digit, and trailing duration marks. Double-quoted lyrics
// attach to the unit they follow.
package notation

import (
	"github.com/pkg/errors"

	"github.com/qupu/jianpu/model"
)

// Scanner walks note text one token at a time, in the manner of
// bufio.Scanner: Scan advances, Token returns the current token, Err
// reports what stopped the scan. A fresh Scanner over the same text yields
// the same tokens again.
type Scanner struct {
	src string
	pos int
	n   int // tokens produced so far
	tok model.NoteToken
	err error
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Scan advances to the next token, absorbing a quoted lyric that follows
// it. It returns false at the end of input or on the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	s.skipSpace()
	if s.pos >= len(s.src) {
		return false
	}
	if s.src[s.pos] == '"' {
		s.err = errors.Wrapf(model.ErrInvalidNote, "token %d: lyric has no note to attach to", s.n+1)
		return false
	}

	start := s.pos
	for s.pos < len(s.src) && !isSpace(s.src[s.pos]) && s.src[s.pos] != '"' {
		s.pos++
	}
	tok, err := parseUnit(s.src[start:s.pos])
	if err != nil {
		s.err = errors.Wrapf(err, "token %d", s.n+1)
		return false
	}

	attached := false
	for {
		s.skipSpace()
		if s.pos >= len(s.src) || s.src[s.pos] != '"' {
			break
		}
		if attached {
			s.err = errors.Wrapf(model.ErrInvalidNote, "token %d: more than one lyric", s.n+1)
			return false
		}
		text, err := s.scanLyric()
		if err != nil {
			s.err = errors.Wrapf(err, "token %d", s.n+1)
			return false
		}
		tok.Lyric = text
		attached = true
	}

	s.tok = tok
	s.n++
	return true
}

// Token returns the token produced by the last successful Scan.
func (s *Scanner) Token() model.NoteToken { return s.tok }

func (s *Scanner) Err() error { return s.err }

func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func (s *Scanner) scanLyric() (string, error) {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		if s.src[s.pos] == '"' {
			text := s.src[start+1 : s.pos]
			s.pos++
			return text, nil
		}
		s.pos++
	}
	tail := s.src[start:]
	if len(tail) > 24 {
		tail = tail[:24] + "..."
	}
	return "", errors.Wrapf(model.ErrUnterminatedLyric, "%q", tail)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// Tokenize collects every token in src.
func Tokenize(src string) ([]model.NoteToken, error) {
	var toks []model.NoteToken
	s := NewScanner(src)
	for s.Scan() {
		toks = append(toks, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}
