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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/dalmatian/fracgeom"
)

const exampleDocument = `section header
header dlmt-version 0.8
header id-urn urn:cid:abc
header page-coordinate-system system cartesian right-dir + up-dir -
header brush-coordinate-system system cartesian right-dir + up-dir - origin-x 1/2 origin-y 1/2
header brush-page-ratio 1/50
header prefix geospecies http://rdf.geospecies.org/ont/geospecies#
header text author en -> Jane Doe
header text title en -> Dalmatian
header url license-url en -> https://creativecommons.org/licenses/by-sa/4.0/
--------
section views
view i:1 lang en xy 0 0 width 1 height 1 flags o tags all but [ ] -> everything
view i:2 lang en-gb xy 1/2 0 width 1/2 height 1/4 flags - tags none but [ i:1 ] -> head only
--------
section tag-descriptions
tag i:1 lang en-gb same-as [ geospecies:bioclasses/P632y ] -> part of head
--------
section brushes
brush i:1 ext-id brushes:square path [ M -1/2 -1/2, L 1/2 -1/2, L 1/2 1/2, L -1/2 1/2, Z ]
--------
section brushstrokes
brushstroke i:1 xy 1/2 1/3 scale 1 angle 1/4 tags [ i:1 ]
brushstroke i:1 xy 3/4 1/8 scale 2 angle 0 tags [ ]
brushstroke i:1 xy 2 2 scale 1 angle 1/2 tags [ ]
`

func TestEntityRoundTrip(t *testing.T) {
	views := []string{
		"view i:1 lang en xy 0 0 width 1 height 1 flags o tags all but [ ] -> everything",
		"view i:3 lang en-gb xy 1/2 -1/3 width 1 height 1/2 flags ox tags none but [ i:1, i:2 ] -> some",
	}
	for _, line := range views {
		v, err := ParseView(line)
		require.NoError(t, err)
		assert.Equal(t, line, v.String())
	}

	tags := []string{
		"tag i:1 lang en-gb same-as [ geospecies:bioclasses/P632y, geospecies:bioclasses/P631y ] -> part of head",
		"tag i:2 lang fr same-as [ ] -> tête",
	}
	for _, line := range tags {
		tag, err := ParseTagDescription(line)
		require.NoError(t, err)
		assert.Equal(t, line, tag.String())
	}

	brushes := []string{
		"brush i:1 ext-id brushes:square path [ M -1/2 -1/2, L 1/2 -1/2, L 1/2 1/2, L -1/2 1/2, Z ]",
		"brush i:2 ext-id brushes:curl path [ M 0 0, Q 1/3 1/3 1/2 0, T 1 0 ]",
	}
	for _, line := range brushes {
		b, err := ParseBrush(line)
		require.NoError(t, err)
		assert.Equal(t, line, b.String())
	}

	strokes := []string{
		"brushstroke i:1 xy 1/2 1/3 scale 1 angle 1/4 tags [ i:1 ]",
		"brushstroke i:2 xy -1/2 0 scale 3/2 angle -1/8 tags [ i:1, i:4 ]",
	}
	for _, line := range strokes {
		s, err := ParseBrushstroke(line)
		require.NoError(t, err)
		assert.Equal(t, line, s.String())
	}
}

func TestParseViewLegacy(t *testing.T) {
	v, err := ParseView("view i:1 lang en-gb xy 1/2 -1/3 width 1 height 1/2 -> everything")
	require.NoError(t, err)
	assert.Equal(t, "en-gb", v.Lang)
	assert.Equal(t, AllBut, v.Rule)
	assert.Empty(t, v.Flags)
	assert.Equal(t,
		"view i:1 lang en-gb xy 1/2 -1/3 width 1 height 1/2 flags - tags all but [ ] -> everything",
		v.String())
}

func TestTagSetsAreSorted(t *testing.T) {
	s, err := ParseBrushstroke("brushstroke i:1 xy 0 0 scale 1 angle 0 tags [ i:3, i:1, i:3 ]")
	require.NoError(t, err)
	assert.Equal(t, []string{"i:1", "i:3"}, s.Tags)

	tag, err := ParseTagDescription("tag i:1 lang en same-as [ b:x, a:y ] -> keeps order")
	require.NoError(t, err)
	assert.Equal(t, []string{"b:x", "a:y"}, tag.SameAs)
}

func TestParseEntityErrors(t *testing.T) {
	cases := []struct {
		line  string
		parse func(string) error
		err   error
	}{
		{"view i:1 lang en xy 0 0 width 1 -> x", parseErr(ParseView), ErrMalformedLine},
		{"view i:1 lang en xy 0 0 width 1 height 1", parseErr(ParseView), ErrMalformedLine},
		{"view i:1 lang en xy 0 0 width 0 height 1 -> x", parseErr(ParseView), ErrMalformedLine},
		{"view i:1 lang en xy 0 0 width 1 height 1 flags o tags some but [ ] -> x", parseErr(ParseView), ErrMalformedLine},
		{"view i:1 lang 12345678 xy 0 0 width 1 height 1 -> x", parseErr(ParseView), ErrLanguage},
		{"view i:1 lang en xy 0 a width 1 height 1 -> x", parseErr(ParseView), fracgeom.ErrSyntax},
		{"tag i:1 lang en -> x", parseErr(ParseTagDescription), ErrMalformedLine},
		{"brush i:1 ext-id a path [ X 1 2 ]", parseErr(ParseBrush), fracgeom.ErrUnsupportedAction},
		{"brush i:1 path [ M 0 0 ]", parseErr(ParseBrush), ErrMalformedLine},
		{"brushstroke i:1 xy 0 0 scale 1 tags [ ]", parseErr(ParseBrushstroke), ErrMalformedLine},
	}
	for _, c := range cases {
		err := c.parse(c.line)
		assert.ErrorIs(t, err, c.err, c.line)

		var pe *ParseError
		if assert.True(t, errors.As(err, &pe), c.line) {
			assert.Equal(t, 0, pe.Line)
			assert.Equal(t, c.line, pe.Text)
		}
	}
}

func parseErr[T any](parse func(string) (T, error)) func(string) error {
	return func(line string) error {
		_, err := parse(line)
		return err
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	m, err := Parse(exampleDocument)
	require.NoError(t, err)

	assert.Len(t, m.Views, 2)
	assert.Len(t, m.TagDescriptions, 1)
	assert.Len(t, m.Brushes, 1)
	assert.Len(t, m.Brushstrokes, 3)
	assert.Equal(t, "1/50", m.Headers.BrushPageRatio.String())

	text := m.String()
	assert.Equal(t, exampleDocument, text)

	m2, err := Read(strings.NewReader(text))
	require.NoError(t, err)
	assert.True(t, m.Headers.Equal(m2.Headers))
	assert.Equal(t, text, m2.String())
}

func TestHeaderlessRoundTrip(t *testing.T) {
	doc := "section header\n--------\nsection views\n--------\nsection tag-descriptions\n" +
		"--------\nsection brushes\n--------\nsection brushstrokes\n"
	m, err := Parse(doc)
	require.NoError(t, err)

	m2, err := Parse(m.String())
	require.NoError(t, err)
	assert.True(t, m.Headers.Equal(m2.Headers))
	assert.Equal(t, m.String(), m2.String())

	_, err = Parse(NewMedia(Headers{}).String())
	assert.NoError(t, err)
}

func TestPaddedTextRoundTrip(t *testing.T) {
	m := NewMedia(NewHeaders(fracgeom.MustParseFrac("1/50")))
	m.Headers.SetText("title", "en", "  padded  ")
	v := DefaultView()
	v.Description = " wide "
	m.AddView(v)

	m2, err := Parse(m.String())
	require.NoError(t, err)
	title, ok := m2.Headers.Text("title", "en")
	assert.True(t, ok)
	assert.Equal(t, "  padded  ", title)
	assert.Equal(t, " wide ", m2.Views[v.ID].Description)
}

func TestParseDocumentErrors(t *testing.T) {
	unknownHeader := strings.Replace(exampleDocument, "header id-urn", "header colour", 1)
	_, err := Parse(unknownHeader)
	assert.ErrorIs(t, err, ErrUnknownHeader)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)

	badSystem := strings.Replace(exampleDocument, "up-dir -\n", "up-dir +\n", 1)
	_, err = Parse(badSystem)
	assert.ErrorIs(t, err, ErrCoordinateSystem)

	truncated := exampleDocument[:strings.Index(exampleDocument, "section brushes")]
	_, err = Parse(truncated)
	assert.ErrorIs(t, err, ErrMissingSection)

	swapped := strings.Replace(exampleDocument, "section views", "section brushes", 1)
	_, err = Parse(swapped)
	assert.ErrorIs(t, err, ErrMissingSection)

	badStroke := exampleDocument + "brushstroke i:1 xy 0 0 scale one angle 0 tags [ ]\n"
	_, err = Parse(badStroke)
	assert.ErrorIs(t, err, fracgeom.ErrSyntax)
}

func TestParseDropsForeignLines(t *testing.T) {
	doc := strings.Replace(exampleDocument, "section brushstrokes\n",
		"section brushstrokes\n# a comment\n\nnote to self\n", 1)
	m, err := Parse(doc)
	require.NoError(t, err)
	assert.Len(t, m.Brushstrokes, 3)
}

func TestAcceptTags(t *testing.T) {
	allButT := MustParseView("view i:1 lang en xy 0 0 width 1 height 1 flags - tags all but [ t ] -> x")
	noneButT := MustParseView("view i:1 lang en xy 0 0 width 1 height 1 flags - tags none but [ t ] -> x")
	noneButNothing := MustParseView("view i:1 lang en xy 0 0 width 1 height 1 flags - tags none but [ ] -> x")

	assert.True(t, allButT.AcceptTags(nil))
	assert.True(t, allButT.AcceptTags([]string{"u"}))
	assert.False(t, allButT.AcceptTags([]string{"t", "u"}))

	assert.False(t, noneButT.AcceptTags(nil))
	assert.True(t, noneButT.AcceptTags([]string{"t", "u"}))
	assert.False(t, noneButT.AcceptTags([]string{"u"}))

	assert.True(t, noneButNothing.AcceptTags(nil))
	assert.False(t, noneButNothing.AcceptTags([]string{"u"}))
}

func TestCheckReferences(t *testing.T) {
	m, err := Parse(exampleDocument)
	require.NoError(t, err)
	assert.Empty(t, m.CheckReferences())

	m.AddBrushstrokes(Brushstroke{
		BrushID: "i:9",
		Scale:   fracgeom.Int(1),
		Tags:    []string{"i:1"},
	})
	assert.Equal(t, []string{"undeclared brushes: i:9"}, m.CheckReferences())

	m.AddTagDescription(TagDescription{ID: "i:2", Lang: "en", SameAs: []string{"dbpedia:Head"}})
	m.AddBrushstrokes(Brushstroke{BrushID: "i:1", Scale: fracgeom.Int(1), Tags: []string{"i:5", "i:4"}})
	assert.Equal(t, []string{
		"undeclared tags: i:4, i:5",
		"undeclared brushes: i:9",
		"undeclared prefixes: dbpedia",
	}, m.CheckReferences())
}

func TestPageBrushstrokes(t *testing.T) {
	m, err := Parse(exampleDocument)
	require.NoError(t, err)

	// the third stroke lies outside the unit square
	all := m.PageBrushstrokes(DefaultView())
	require.Len(t, all, 2)

	head := m.Views["i:2"]
	strokes := m.PageBrushstrokes(head)
	require.Len(t, strokes, 1)
	// (1/2, 1/3) relative to (1/2, 0), zoomed by 2
	assert.Equal(t, "0 2/3", strokes[0].XY.String())
	assert.Equal(t, "2", strokes[0].Scale.String())
}

func TestPagePaths(t *testing.T) {
	m, err := Parse(exampleDocument)
	require.NoError(t, err)

	paths := m.PagePaths(DefaultView())
	require.Len(t, paths, 2)
	// square of side 1/50, rotated by a quarter turn, centered at (1/2, 1/3)
	assert.Equal(t,
		"[ M 51/100 97/300, L 51/100 103/300, L 49/100 103/300, L 49/100 97/300, Z ]",
		paths[0].String())

	// zooming into the unit square is the identity
	for i, s := range m.Brushstrokes[:2] {
		want := s.PagePath(m.Brushes[s.BrushID], m.Headers.BrushPageRatio)
		assert.True(t, want.Equal(paths[i]))
	}

	// brushstrokes with unknown brushes are skipped
	m.AddBrushstrokes(Brushstroke{BrushID: "i:9", XY: fracgeom.MustParseV2d("1/2 1/2"), Scale: fracgeom.Int(1)})
	assert.Len(t, m.PagePaths(DefaultView()), 2)
}

func TestCroppedView(t *testing.T) {
	m, err := Parse(exampleDocument)
	require.NoError(t, err)

	v := m.CroppedView()
	assert.Equal(t, "view i:2 lang en xy 1/2 1/8 width 3/2 height 15/8 flags o tags all but [ ] -> cropped", v.String())
	assert.Len(t, m.PageBrushstrokes(v), 3)
}

func TestHeaderLookup(t *testing.T) {
	h := NewHeaders(fracgeom.NewFrac(1, 50))
	h.SetText("title", "en", "Dalmatian")
	h.SetText("title", "fr", "Dalmatien")

	title, ok := h.Text("title", "fr")
	assert.True(t, ok)
	assert.Equal(t, "Dalmatien", title)

	title, ok = h.Text("title", "en-GB")
	assert.True(t, ok)
	assert.Equal(t, "Dalmatian", title)

	_, ok = h.Text("author", "en")
	assert.False(t, ok)
}

func TestWriteSVG(t *testing.T) {
	m, err := Parse(exampleDocument)
	require.NoError(t, err)

	var buf strings.Builder
	err = m.WriteSVG(&buf, SVGConfig{ViewID: "i:1", Width: 100, Background: "white"})
	require.NoError(t, err)
	svg := buf.String()

	assert.Contains(t, svg, `width="100.000" height="100.000"`)
	assert.Contains(t, svg, `xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`)
	assert.Contains(t, svg, `<symbol id="brush-i-1" viewBox="-1.000 -1.000 2.000 2.000" overflow="visible"><path d="M -1.000 1.000 L 1.000 1.000 L 1.000 -1.000 L -1.000 -1.000 Z" fill="black"/></symbol>`)
	assert.Contains(t, svg, `<g transform="translate(50.000 66.667) rotate(-90.000) scale(1.000)"><use xlink:href="#brush-i-1" x="-1.000" y="-1.000" width="2.000" height="2.000"/></g>`)
	assert.Contains(t, svg, `<g transform="translate(75.000 87.500) rotate(0.000) scale(2.000)"><use xlink:href="#brush-i-1" x="-1.000" y="-1.000" width="2.000" height="2.000"/></g>`)
	assert.Equal(t, 2, strings.Count(svg, "<use "))
	assert.Contains(t, svg, "<dc:title>Dalmatian</dc:title>")
	assert.Contains(t, svg, "<dc:title>Jane Doe</dc:title>")
	assert.Contains(t, svg, `<cc:license rdf:resource="https://creativecommons.org/licenses/by-sa/4.0/"/>`)
	assert.Contains(t, svg, "<dc:language>en</dc:language>")
	assert.Contains(t, svg, `<rect width="100.000" height="100.000" fill="white"/>`)

	err = m.WriteSVG(&buf, SVGConfig{ViewID: "i:7", Width: 100})
	assert.ErrorIs(t, err, ErrUnknownView)

	flat := m.Views["i:1"]
	flat.Width = fracgeom.Int(0)
	err = m.WriteSVG(&buf, SVGConfig{View: &flat, Width: 100})
	assert.ErrorIs(t, err, ErrEmptyView)
	assert.Empty(t, m.PagePaths(flat))
	assert.Empty(t, m.PageBrushstrokes(flat))
}
