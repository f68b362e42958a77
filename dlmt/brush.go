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
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/dalmatian/fracgeom"
)

// Brush is a reusable shape, given as a path in brush coordinates.
type Brush struct {
	ID    string
	ExtID string
	Path  fracgeom.Path
}

// ParseBrush parses a brush line.
func ParseBrush(line string) (Brush, error) {
	before, after, ok := strings.Cut(line, " path ")
	if !ok {
		return Brush{}, malformed(line, "missing path")
	}
	v, err := expectKeys(line, strings.Fields(before), "brush", "", "ext-id", "")
	if err != nil {
		return Brush{}, err
	}
	p, err := fracgeom.ParsePath(after)
	if err != nil {
		return Brush{}, lineError(line, err)
	}
	return Brush{ID: v[0], ExtID: v[1], Path: p}, nil
}

func (b Brush) String() string {
	return fmt.Sprintf("brush %s ext-id %s path %s", b.ID, b.ExtID, b.Path)
}

// Equal reports whether b and other are the same brush.
func (b Brush) Equal(other Brush) bool {
	return b.ID == other.ID && b.ExtID == other.ExtID && b.Path.Equal(other.Path)
}

// Brushstroke places a brush on the page.
type Brushstroke struct {
	BrushID string
	XY      fracgeom.V2d
	Scale   fracgeom.Frac
	Angle   fracgeom.Frac // fraction of a turn
	Tags    []string
}

// ParseBrushstroke parses a brushstroke line.
func ParseBrushstroke(line string) (Brushstroke, error) {
	before, after, ok := strings.Cut(line, " tags ")
	if !ok {
		return Brushstroke{}, malformed(line, "missing tags")
	}
	tags, rest, ok := parseList(after)
	if !ok || rest != "" {
		return Brushstroke{}, malformed(line, "invalid tag list")
	}
	v, err := expectKeys(line, strings.Fields(before),
		"brushstroke", "", "xy", "", "", "scale", "", "angle", "")
	if err != nil {
		return Brushstroke{}, err
	}
	var nums [4]fracgeom.Frac
	for i, s := range v[1:] {
		nums[i], err = fracgeom.ParseFrac(s)
		if err != nil {
			return Brushstroke{}, lineError(line, err)
		}
	}
	return Brushstroke{
		BrushID: v[0],
		XY:      fracgeom.V2d{X: nums[0], Y: nums[1]},
		Scale:   nums[2],
		Angle:   nums[3],
		Tags:    tagSet(tags),
	}, nil
}

func (s Brushstroke) String() string {
	return fmt.Sprintf("brushstroke %s xy %s scale %s angle %s tags %s",
		s.BrushID, s.XY, s.Scale, s.Angle, formatList(tagSet(s.Tags)))
}

// Equal reports whether s and other place the same brush in the same way.
func (s Brushstroke) Equal(other Brushstroke) bool {
	return s.BrushID == other.BrushID && s.XY.Equal(other.XY) &&
		s.Scale.Equal(other.Scale) && s.Angle.Equal(other.Angle) &&
		slices.Equal(tagSet(s.Tags), tagSet(other.Tags))
}

// PagePath returns the outline of the brush b placed by s, in page
// coordinates.  The brush is rotated, scaled by the brush to page ratio
// and the stroke scale, and then moved to the stroke position.
func (s Brushstroke) PagePath(b Brush, brushPageRatio fracgeom.Frac) fracgeom.Path {
	return b.Path.Rotate(s.Angle).Scale(brushPageRatio).Scale(s.Scale).Translate(s.XY)
}
