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

package dalmatian

import (
	"bytes"
	"maps"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/testcases"
)

func TestExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				m, err := Media(tc)
				if err != nil {
					t.Fatal(err)
				}
				if len(m.Brushstrokes) == 0 {
					t.Fatal("no brushstrokes")
				}
				if problems := m.CheckReferences(); len(problems) > 0 {
					t.Errorf("reference problems: %v", problems)
				}

				text := m.String()
				m2, err := dlmt.Parse(text)
				if err != nil {
					t.Fatalf("parsing own output: %v", err)
				}
				if m2.String() != text {
					t.Errorf("document does not survive a round trip")
				}

				img, err := RenderExample(tc)
				if err != nil {
					t.Fatal(err)
				}
				if w := img.Bounds().Dx(); w != tc.Width {
					t.Errorf("expected width %d, got %d", tc.Width, w)
				}
				if ink(img.Pix) == 0 {
					t.Error("nothing was drawn")
				}

				again, err := RenderExample(tc)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(img.Pix, again.Pix) {
					t.Error("rendering is not deterministic")
				}
			})
		}
	}
}

func TestStraightWalk(t *testing.T) {
	tc := testcases.All["walk"][0]
	m, err := Media(tc)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"7/20 1/2", "9/20 1/2", "11/20 1/2", "13/20 1/2", "3/4 1/2", "17/20 1/2"}
	if len(m.Brushstrokes) != len(want) {
		t.Fatalf("expected %d brushstrokes, got %d", len(want), len(m.Brushstrokes))
	}
	for i, s := range m.Brushstrokes {
		if got := s.XY.String(); got != want[i] {
			t.Errorf("brushstroke %d: expected xy %s, got %s", i, want[i], got)
		}
		if !s.Angle.IsZero() {
			t.Errorf("brushstroke %d: expected angle 0, got %s", i, s.Angle)
		}
	}
}

func TestTagViews(t *testing.T) {
	var tagged, untagged testcases.TestCase
	for _, tc := range testcases.All["view"] {
		switch tc.Name {
		case "tagged":
			tagged = tc
		case "untagged":
			untagged = tc
		}
	}

	m, err := Media(tagged)
	if err != nil {
		t.Fatal(err)
	}
	a := len(m.PageBrushstrokes(tagged.View))
	b := len(m.PageBrushstrokes(untagged.View))
	all := len(m.PageBrushstrokes(dlmt.DefaultView()))
	if a == 0 || b == 0 {
		t.Errorf("expected both views to show strokes, got %d and %d", a, b)
	}
	if a+b != all {
		t.Errorf("tagged %d + untagged %d != all %d", a, b, all)
	}
}

func TestSVG(t *testing.T) {
	tc := testcases.All["brush"][0]
	m, err := Media(tc)
	if err != nil {
		t.Fatal(err)
	}
	v := View(tc)

	buf := &bytes.Buffer{}
	err = m.WriteSVG(buf, dlmt.SVGConfig{View: &v, Width: tc.Width})
	if err != nil {
		t.Fatal(err)
	}
	svg := buf.String()
	if n, want := strings.Count(svg, "<use "), len(m.PageBrushstrokes(v)); n != want {
		t.Errorf("expected %d brushstrokes in SVG, got %d", want, n)
	}
	for _, b := range tc.Brushes {
		if !strings.Contains(svg, "<symbol") || !strings.Contains(svg, strings.ReplaceAll(b.ID, ":", "-")) {
			t.Errorf("brush %s missing from SVG", b.ID)
		}
	}
}

// ink sums the darkness of all pixels.
func ink(pix []byte) int {
	total := 0
	for _, p := range pix {
		total += 0xFF - int(p)
	}
	return total
}
