// seehuhn.de/go/dalmatian - generative brush-stroke graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dlmt implements the DLMT vector media container.
//
// A DLMT document holds headers, views, tag descriptions, brushes and
// brushstrokes.  Brushes are paths in a local coordinate system; every
// brushstroke places a brush on the page at a position, with a scale and a
// rotation.  Views select a rectangle of the page and a subset of the
// brushstrokes, and are used to render the document to SVG.
//
// The text form of a document consists of five sections in fixed order,
// separated by lines consisting of eight dashes:
//
//	section header
//	header dlmt-version 0.8
//	...
//	--------
//	section views
//	view i:1 lang en xy 0 0 width 1 height 1 flags o tags all but [ ] -> everything
//	--------
//	section tag-descriptions
//	tag i:1 lang en-gb same-as [ geospecies:bioclasses/P632y ] -> part of head
//	--------
//	section brushes
//	brush i:1 ext-id brushes:square path [ M -1/2 -1/2, L 1/2 -1/2, L 1/2 1/2, Z ]
//	--------
//	section brushstrokes
//	brushstroke i:1 xy 1/2 1/3 scale 1 angle 1/4 tags [ i:1 ]
//
// All coordinates use the exact rational types from package fracgeom.
package dlmt

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Errors which can occur while parsing a document.
var (
	ErrMalformedLine    = errors.New("malformed line")
	ErrUnknownHeader    = errors.New("unknown header")
	ErrCoordinateSystem = errors.New("unsupported coordinate system")
	ErrMissingSection   = errors.New("missing section")
	ErrLanguage         = errors.New("invalid language tag")
	ErrUnknownView      = errors.New("unknown view")
	ErrEmptyView        = errors.New("view has no area")
)

// ParseError identifies the line which could not be parsed.
type ParseError struct {
	Line int // 1-based line number, or 0 for a single entity line
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func lineError(line string, err error) error {
	return &ParseError{Text: line, Err: err}
}

func malformed(line, format string, args ...any) error {
	return lineError(line, fmt.Errorf("%w: "+format, append([]any{ErrMalformedLine}, args...)...))
}

// splitDescription splits "... -> free text" into its two parts.  Only the
// single space after the arrow is removed from the free text.
func splitDescription(line string) (head, description string, ok bool) {
	head, description, ok = strings.Cut(line, "->")
	description = strings.TrimPrefix(description, " ")
	return strings.TrimSpace(head), description, ok
}

// parseList parses a bracketed list like "[ a, b ]".  The second result is
// the remaining text after the closing bracket.
func parseList(s string) (items []string, rest string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		return nil, "", false
	}
	end := strings.Index(s, "]")
	if end < 0 {
		return nil, "", false
	}
	items = []string{}
	for _, item := range strings.Split(s[1:end], ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items, strings.TrimSpace(s[end+1:]), true
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "[ ]"
	}
	return "[ " + strings.Join(items, ", ") + " ]"
}

// tagSet returns the sorted tag ids without duplicates.
func tagSet(tags []string) []string {
	res := slices.Clone(tags)
	slices.Sort(res)
	return slices.Compact(res)
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if slices.Contains(b, x) {
			return true
		}
	}
	return false
}

func checkLanguage(line, lang string) error {
	if _, err := language.Parse(lang); err != nil {
		return lineError(line, fmt.Errorf("%w: %q", ErrLanguage, lang))
	}
	return nil
}

// expectKeys checks that fields has the form "k0 v0 k1 v1 ..." for the
// given keys, and returns the values.  A key given as "" matches any
// token, which is returned as a value as well.
func expectKeys(line string, fields []string, keys ...string) ([]string, error) {
	var values []string
	i := 0
	for _, key := range keys {
		if i >= len(fields) {
			return nil, malformed(line, "missing %q", key)
		}
		if key == "" {
			values = append(values, fields[i])
		} else if fields[i] != key {
			return nil, malformed(line, "expected %q, found %q", key, fields[i])
		}
		i++
	}
	if i != len(fields) {
		return nil, malformed(line, "unexpected %q", strings.Join(fields[i:], " "))
	}
	return values, nil
}
