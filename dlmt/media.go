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

package dlmt

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/dalmatian/fracgeom"
)

// sectionSeparator separates the sections of the text form.
const sectionSeparator = "--------"

var sectionNames = [...]string{"header", "views", "tag-descriptions", "brushes", "brushstrokes"}

// Media is a DLMT document.
type Media struct {
	Headers         Headers
	Views           map[string]View
	TagDescriptions []TagDescription
	Brushes         map[string]Brush
	Brushstrokes    []Brushstroke
}

// NewMedia returns an empty document with the given headers.
func NewMedia(headers Headers) *Media {
	return &Media{
		Headers: headers,
		Views:   map[string]View{},
		Brushes: map[string]Brush{},
	}
}

// AddView adds a view, replacing any view with the same id.
func (m *Media) AddView(v View) {
	if m.Views == nil {
		m.Views = map[string]View{}
	}
	m.Views[v.ID] = v
}

// AddTagDescription appends a tag description.
func (m *Media) AddTagDescription(t TagDescription) {
	m.TagDescriptions = append(m.TagDescriptions, t)
}

// AddBrush adds a brush, replacing any brush with the same id.
func (m *Media) AddBrush(b Brush) {
	if m.Brushes == nil {
		m.Brushes = map[string]Brush{}
	}
	m.Brushes[b.ID] = b
}

// AddBrushstrokes appends brushstrokes.
func (m *Media) AddBrushstrokes(strokes ...Brushstroke) {
	m.Brushstrokes = append(m.Brushstrokes, strokes...)
}

// View returns the view with the given id.
func (m *Media) View(id string) (View, bool) {
	v, ok := m.Views[id]
	return v, ok
}

// Brush returns the brush with the given id.
func (m *Media) Brush(id string) (Brush, bool) {
	b, ok := m.Brushes[id]
	return b, ok
}

// BrushstrokePoints returns the positions of all brushstrokes.
func (m *Media) BrushstrokePoints() fracgeom.V2dList {
	res := make(fracgeom.V2dList, len(m.Brushstrokes))
	for i, s := range m.Brushstrokes {
		res[i] = s.XY
	}
	return res
}

// CheckReferences returns a list of problems with the references between
// the parts of the document: tags used by brushstrokes without a
// description, brushes which are used but not declared, and prefixes
// used in tag cross-references but missing from the headers.
// An empty list means that all references can be resolved.
func (m *Media) CheckReferences() []string {
	var problems []string

	declaredTags := map[string]bool{}
	for _, t := range m.TagDescriptions {
		declaredTags[t.ID] = true
	}
	missingTags := map[string]bool{}
	missingBrushes := map[string]bool{}
	for _, s := range m.Brushstrokes {
		for _, tag := range s.Tags {
			if !declaredTags[tag] {
				missingTags[tag] = true
			}
		}
		if _, ok := m.Brushes[s.BrushID]; !ok {
			missingBrushes[s.BrushID] = true
		}
	}

	missingPrefixes := map[string]bool{}
	for _, t := range m.TagDescriptions {
		for _, prefix := range t.Prefixes() {
			if _, ok := m.Headers.Prefixes[prefix]; !ok {
				missingPrefixes[prefix] = true
			}
		}
	}

	report := func(what string, ids map[string]bool) {
		if len(ids) > 0 {
			problems = append(problems, fmt.Sprintf("undeclared %s: %s",
				what, strings.Join(slices.Sorted(maps.Keys(ids)), ", ")))
		}
	}
	report("tags", missingTags)
	report("brushes", missingBrushes)
	report("prefixes", missingPrefixes)
	return problems
}

// PageBrushstrokes returns the brushstrokes shown in the view v, with
// position and scale converted to view coordinates.  An empty view shows
// no brushstrokes.
func (m *Media) PageBrushstrokes(v View) []Brushstroke {
	if v.IsEmpty() {
		return nil
	}
	zoom := v.zoomFactor()
	var res []Brushstroke
	for _, s := range m.Brushstrokes {
		if !v.Accept(s) {
			continue
		}
		s.XY = v.Zoom(s.XY)
		s.Scale = s.Scale.Mul(zoom)
		res = append(res, s)
	}
	return res
}

// PagePaths returns the outlines of the brushstrokes shown in the view v,
// in view coordinates.  Brushstrokes which refer to an unknown brush are
// skipped.
func (m *Media) PagePaths(v View) []fracgeom.Path {
	if v.IsEmpty() {
		return nil
	}
	zoom := v.zoomFactor()
	shift := v.XY.Neg()
	var res []fracgeom.Path
	for _, s := range m.Brushstrokes {
		b, ok := m.Brushes[s.BrushID]
		if !ok || !v.Accept(s) {
			continue
		}
		p := s.PagePath(b, m.Headers.BrushPageRatio)
		res = append(res, p.Translate(shift).Scale(zoom))
	}
	return res
}

// DefaultView returns a view of the unit square which shows all
// brushstrokes placed inside it.
func DefaultView() View {
	return View{
		ID:          "i:1",
		Lang:        "en",
		Width:       fracgeom.Int(1),
		Height:      fracgeom.Int(1),
		Flags:       string(FlagOutside),
		Rule:        AllBut,
		Description: "everything",
	}
}

// CroppedView returns a view of the smallest rectangle containing the
// positions of all brushstrokes.  Degenerate sides are extended to
// length 1.
func (m *Media) CroppedView() View {
	r := m.BrushstrokePoints().ContainingRect()
	if r.Width.IsZero() {
		r.Width = fracgeom.Int(1)
	}
	if r.Height.IsZero() {
		r.Height = fracgeom.Int(1)
	}
	return View{
		ID:          "i:2",
		Lang:        "en",
		XY:          r.XY,
		Width:       r.Width,
		Height:      r.Height,
		Flags:       string(FlagOutside),
		Rule:        AllBut,
		Description: "cropped",
	}
}

// String returns the text form of the document.
func (m *Media) String() string {
	var sections [len(sectionNames)][]string
	sections[0] = m.Headers.Lines()
	for _, id := range slices.Sorted(maps.Keys(m.Views)) {
		sections[1] = append(sections[1], m.Views[id].String())
	}
	for _, t := range m.TagDescriptions {
		sections[2] = append(sections[2], t.String())
	}
	for _, id := range slices.Sorted(maps.Keys(m.Brushes)) {
		sections[3] = append(sections[3], m.Brushes[id].String())
	}
	for _, s := range m.Brushstrokes {
		sections[4] = append(sections[4], s.String())
	}

	var b strings.Builder
	for i, name := range sectionNames {
		if i > 0 {
			b.WriteString(sectionSeparator + "\n")
		}
		b.WriteString("section " + name + "\n")
		for _, line := range sections[i] {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Parse parses the text form of a document.
func Parse(text string) (*Media, error) {
	m := NewMedia(Headers{})
	section := -1
	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		// trailing blanks may belong to a free-text description
		line = strings.TrimLeft(strings.TrimSuffix(line, "\r"), " \t")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == sectionSeparator {
			if section < 0 {
				return nil, &ParseError{Line: lineNo, Text: line, Err: ErrMissingSection}
			}
			continue
		}
		if name, ok := strings.CutPrefix(trimmed, "section "); ok {
			if section+1 >= len(sectionNames) || strings.TrimSpace(name) != sectionNames[section+1] {
				return nil, &ParseError{Line: lineNo, Text: line,
					Err: fmt.Errorf("%w: expected %q", ErrMissingSection, nextSection(section))}
			}
			section++
			continue
		}
		if section < 0 || firstToken(line) != entityKeyword(section) {
			continue
		}
		if err := m.parseEntity(section, line); err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
				return nil, pe
			}
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
	}
	if section != len(sectionNames)-1 {
		return nil, &ParseError{Err: fmt.Errorf("%w: %q", ErrMissingSection, nextSection(section))}
	}
	return m, nil
}

// Read reads the text form of a document from r.
func Read(r io.Reader) (*Media, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

func nextSection(section int) string {
	if section+1 < len(sectionNames) {
		return sectionNames[section+1]
	}
	return "end of document"
}

func entityKeyword(section int) string {
	switch section {
	case 0:
		return "header"
	case 1:
		return "view"
	case 2:
		return "tag"
	case 3:
		return "brush"
	default:
		return "brushstroke"
	}
}

func (m *Media) parseEntity(section int, line string) error {
	switch section {
	case 0:
		return m.Headers.parseLine(line)
	case 1:
		v, err := ParseView(line)
		if err != nil {
			return err
		}
		m.AddView(v)
	case 2:
		t, err := ParseTagDescription(line)
		if err != nil {
			return err
		}
		m.AddTagDescription(t)
	case 3:
		b, err := ParseBrush(line)
		if err != nil {
			return err
		}
		m.AddBrush(b)
	case 4:
		s, err := ParseBrushstroke(line)
		if err != nil {
			return err
		}
		m.AddBrushstrokes(s)
	}
	return nil
}
