// Package score parses whole documents: a global directive section followed
// by [track] blocks of directives and note text.
package score

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/qupu/jianpu/model"
	"github.com/qupu/jianpu/notation"
)

type section struct {
	label      string
	directives []model.Directive
	noteLines  []string
}

// Parse reads a score document. The returned Document has every track
// tokenized and its config fully resolved; non-fatal oddities are collected
// as warnings. The first hard error aborts the parse.
func Parse(input string) (*model.Document, error) {
	var (
		doc    model.Document
		global []model.Directive
		secs   []*section
	)

	for i, raw := range strings.Split(input, "\n") {
		num := i + 1
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			// '#' comments whole lines only; inside note text it is a sharp
		case strings.HasPrefix(line, "["):
			if strings.HasPrefix(strings.ToLower(line), "[track") {
				secs = append(secs, &section{label: trackLabel(line)})
			} else {
				doc.Warnings = append(doc.Warnings, fmt.Sprintf("line %d: ignoring unknown section %s", num, line))
			}
		case strings.HasPrefix(line, "@"):
			d, err := parseDirective(line, num)
			if err != nil {
				return nil, err
			}
			if len(secs) == 0 {
				d.Name = strings.TrimPrefix(d.Name, "global_")
			}
			if !knownDirectives[d.Name] {
				doc.Warnings = append(doc.Warnings, fmt.Sprintf("line %d: unknown directive %q", num, d.Name))
				continue
			}
			if len(secs) == 0 {
				global = append(global, d)
			} else {
				cur := secs[len(secs)-1]
				cur.directives = append(cur.directives, d)
			}
		default:
			if len(secs) == 0 {
				return nil, errors.Wrapf(model.ErrDocumentSyntax, "line %d: note text before any [track] section", num)
			}
			cur := secs[len(secs)-1]
			cur.noteLines = append(cur.noteLines, line)
		}
	}

	defaults, warns, err := Assemble(global, nil)
	if err != nil {
		return nil, err
	}
	doc.Defaults = defaults
	doc.Warnings = append(doc.Warnings, warns...)

	for i, sec := range secs {
		cfg, _, err := Assemble(global, sec.directives)
		if err != nil {
			return nil, errors.Wrapf(err, "track %d", i+1)
		}
		toks, err := notation.Tokenize(strings.Join(sec.noteLines, "\n"))
		if err != nil {
			return nil, errors.Wrapf(err, "track %d", i+1)
		}
		doc.Tracks = append(doc.Tracks, model.Track{Label: sec.label, Config: cfg, Tokens: toks})
	}

	if len(doc.Tracks) == 0 {
		doc.Warnings = append(doc.Warnings, "score has no [track] sections")
	}
	return &doc, nil
}

func trackLabel(line string) string {
	rest := strings.TrimSpace(line[len("[track"):])
	return strings.TrimSpace(strings.TrimSuffix(rest, "]"))
}

func parseDirective(line string, num int) (model.Directive, error) {
	// an inline comment needs whitespace before the '#' so values like C# survive
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			line = strings.TrimSpace(line[:i])
			break
		}
	}
	name, value, ok := strings.Cut(line[1:], "=")
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)
	if !ok || name == "" || value == "" {
		return model.Directive{}, errors.Wrapf(model.ErrDocumentSyntax, "line %d: want @name=value, got %q", num, line)
	}
	return model.Directive{Name: name, Value: value, Line: num}, nil
}
