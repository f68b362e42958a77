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

package fracgeom

import (
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path is an ordered list of segments.  A well-formed path starts with a
// move-to segment, see [Path.Validate].
type Path []Segment

// ParsePath parses the bracketed text form of a path, for example
// "[ M 0 0, L 1 0, Q 1 1 0 1, Z ]".
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("%w: %q is not bracketed", ErrPathSyntax, s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return Path{}, nil
	}
	parts := strings.Split(inner, ",")
	res := make(Path, 0, len(parts))
	for _, part := range parts {
		seg, err := ParseSegment(part)
		if err != nil {
			return nil, err
		}
		res = append(res, seg)
	}
	return res, nil
}

// MustParsePath is like [ParsePath] but panics on invalid input.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	if len(p) == 0 {
		return "[ ]"
	}
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

// Equal reports whether p and other consist of the same segments.
func (p Path) Equal(other Path) bool {
	return slices.EqualFunc(p, other, Segment.Equal)
}

// Validate checks that p is not empty and starts with a move-to.
func (p Path) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if p[0].action != ActionMoveTo {
		return fmt.Errorf("%w: starts with %q", ErrNoMoveTo, p[0].action.Letter())
	}
	return nil
}

func (p Path) transform(fn func(Segment) Segment) Path {
	res := make(Path, len(p))
	for i, seg := range p {
		res[i] = fn(seg)
	}
	return res
}

// Translate returns p shifted by d.
func (p Path) Translate(d V2d) Path {
	return p.transform(func(s Segment) Segment { return s.Translate(d) })
}

// Scale returns p scaled by f around the origin.
func (p Path) Scale(f Frac) Path {
	return p.transform(func(s Segment) Segment { return s.Scale(f) })
}

// Rotate returns p rotated by the angle a around the origin.
func (p Path) Rotate(a Frac) Path {
	return p.transform(func(s Segment) Segment { return s.Rotate(a) })
}

// CorePoints returns the points of all segments, in order.
func (p Path) CorePoints() V2dList {
	var res V2dList
	for _, seg := range p {
		res = append(res, seg.pts...)
	}
	return res
}

// ActionFrequency counts the segments of a path by action.
type ActionFrequency struct {
	Close           int
	MoveTo          int
	LineTo          int
	CubicBezier     int
	SmoothBezier    int
	QuadraticBezier int
	FluidBezier     int
	Unsupported     int
	Total           int
}

// ActionFrequency returns the number of segments of each kind.
func (p Path) ActionFrequency() ActionFrequency {
	var f ActionFrequency
	for _, seg := range p {
		switch seg.action {
		case ActionClose:
			f.Close++
		case ActionMoveTo:
			f.MoveTo++
		case ActionLineTo:
			f.LineTo++
		case ActionCubicBezier:
			f.CubicBezier++
		case ActionSmoothBezier:
			f.SmoothBezier++
		case ActionQuadraticBezier:
			f.QuadraticBezier++
		case ActionFluidBezier:
			f.FluidBezier++
		default:
			f.Unsupported++
		}
		f.Total++
	}
	return f
}

// SVG returns the "d" attribute of an SVG path element for p, with all
// coordinates scaled by width and the y axis flipped.
func (p Path) SVG(width Frac) string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.SVG(width)
	}
	return strings.Join(parts, " ")
}

// Data converts p to a floating point path.  Smooth and fluid segments are
// expanded into explicit cubic and quadratic Bézier curves, using the
// reflection of the previous control point as in SVG.
func (p Path) Data() *path.Data {
	d := &path.Data{}
	var current, start, ctrl vec.Vec2
	prev := ActionClose
	for _, seg := range p {
		pts := make([]vec.Vec2, len(seg.pts))
		for i, pt := range seg.pts {
			pts[i] = pt.Float()
		}

		switch seg.action {
		case ActionMoveTo:
			d = d.MoveTo(pts[0])
			start = pts[0]
		case ActionLineTo:
			d = d.LineTo(pts[0])
		case ActionCubicBezier:
			d = d.CubeTo(pts[0], pts[1], pts[2])
			ctrl = pts[1]
		case ActionSmoothBezier:
			c1 := current
			if prev == ActionCubicBezier || prev == ActionSmoothBezier {
				c1 = current.Mul(2).Sub(ctrl)
			}
			d = d.CubeTo(c1, pts[0], pts[1])
			ctrl = pts[0]
		case ActionQuadraticBezier:
			d = d.QuadTo(pts[0], pts[1])
			ctrl = pts[0]
		case ActionFluidBezier:
			c := current
			if prev == ActionQuadraticBezier || prev == ActionFluidBezier {
				c = current.Mul(2).Sub(ctrl)
			}
			d = d.QuadTo(c, pts[0])
			ctrl = c
		case ActionClose:
			d = d.Close()
			current = start
		default:
			continue
		}
		if len(pts) > 0 {
			current = pts[len(pts)-1]
		}
		prev = seg.action
	}
	return d
}

// PathFromActions builds a path from a string of action letters and a
// supply of points.  The path starts with a move-to the first point; each
// following letter consumes as many points as its action needs.  Letters
// which are not path actions are skipped, and the path ends as soon as
// the remaining points do not suffice for the next action.
func PathFromActions(actions string, pts V2dList) (Path, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyPath
	}
	res := Path{MoveTo(pts[0])}
	rest := pts[1:]
	for _, r := range actions {
		a := ParseAction(string(r))
		if a == ActionUnsupported || a == ActionMoveTo {
			continue
		}
		n := a.Arity()
		if n > len(rest) {
			break
		}
		res = append(res, Segment{action: a, pts: slices.Clone(rest[:n])})
		rest = rest[n:]
	}
	return res, nil
}
