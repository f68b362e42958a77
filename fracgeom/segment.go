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
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Errors returned when parsing segments and paths.
var (
	ErrUnsupportedAction = errors.New("unsupported path action")
	ErrArity             = errors.New("wrong number of points for action")
	ErrPathSyntax        = errors.New("malformed path")
	ErrEmptyPath         = errors.New("empty path")
	ErrNoMoveTo          = errors.New("path does not start with a move-to")
)

// Action is the drawing instruction of a path segment.
type Action int

// These are the supported actions.  The letters in the comments are used
// in the text form of a path.
const (
	ActionClose           Action = iota // Z
	ActionMoveTo                        // M
	ActionLineTo                        // L
	ActionCubicBezier                   // C
	ActionSmoothBezier                  // S
	ActionQuadraticBezier               // Q
	ActionFluidBezier                   // T
	ActionUnsupported
)

var actionLetters = [...]string{"Z", "M", "L", "C", "S", "Q", "T", "?"}

var actionArity = [...]int{0, 1, 1, 3, 2, 2, 1, 0}

// ParseAction returns the action for the given letter, or ActionUnsupported.
func ParseAction(letter string) Action {
	for i, l := range actionLetters[:ActionUnsupported] {
		if l == letter {
			return Action(i)
		}
	}
	return ActionUnsupported
}

// Letter returns the one-letter code of a.
func (a Action) Letter() string {
	if a < 0 || a > ActionUnsupported {
		a = ActionUnsupported
	}
	return actionLetters[a]
}

// Arity returns the number of points a segment with this action carries.
func (a Action) Arity() int {
	if a < 0 || a > ActionUnsupported {
		return 0
	}
	return actionArity[a]
}

func (a Action) String() string {
	switch a {
	case ActionClose:
		return "close"
	case ActionMoveTo:
		return "move-to"
	case ActionLineTo:
		return "line-to"
	case ActionCubicBezier:
		return "cubic-bezier"
	case ActionSmoothBezier:
		return "smooth-bezier"
	case ActionQuadraticBezier:
		return "quadratic-bezier"
	case ActionFluidBezier:
		return "fluid-bezier"
	default:
		return "unsupported"
	}
}

// Segment is one drawing instruction of a path, together with its points.
// Segments are immutable.
type Segment struct {
	action Action
	pts    []V2d
}

// NewSegment returns a segment for the given action.  The number of points
// must match the arity of the action.
func NewSegment(a Action, pts ...V2d) (Segment, error) {
	if a < 0 || a >= ActionUnsupported {
		return Segment{}, fmt.Errorf("%w: %d", ErrUnsupportedAction, a)
	}
	if len(pts) != a.Arity() {
		return Segment{}, fmt.Errorf("%w: %s needs %d, got %d",
			ErrArity, a.Letter(), a.Arity(), len(pts))
	}
	return Segment{action: a, pts: slices.Clone(pts)}, nil
}

func mustSegment(a Action, pts ...V2d) Segment {
	s, err := NewSegment(a, pts...)
	if err != nil {
		panic(err)
	}
	return s
}

// ClosePath returns a segment which closes the current subpath.
func ClosePath() Segment { return Segment{action: ActionClose} }

// MoveTo returns a segment which starts a new subpath at p.
func MoveTo(p V2d) Segment { return mustSegment(ActionMoveTo, p) }

// LineTo returns a straight line segment to p.
func LineTo(p V2d) Segment { return mustSegment(ActionLineTo, p) }

// CubicTo returns a cubic Bézier segment with control points c1, c2.
func CubicTo(c1, c2, p V2d) Segment { return mustSegment(ActionCubicBezier, c1, c2, p) }

// SmoothTo returns a cubic Bézier segment whose first control point is
// the reflection of the previous second control point.
func SmoothTo(c2, p V2d) Segment { return mustSegment(ActionSmoothBezier, c2, p) }

// QuadTo returns a quadratic Bézier segment with control point c.
func QuadTo(c, p V2d) Segment { return mustSegment(ActionQuadraticBezier, c, p) }

// FluidTo returns a quadratic Bézier segment whose control point is the
// reflection of the previous control point.
func FluidTo(p V2d) Segment { return mustSegment(ActionFluidBezier, p) }

// ParseSegment parses the text form of a segment, for example "L 1/2 0"
// or "Z".
func ParseSegment(s string) (Segment, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Segment{}, fmt.Errorf("%w: empty segment", ErrPathSyntax)
	}
	a := ParseAction(fields[0])
	if a == ActionUnsupported {
		return Segment{}, fmt.Errorf("%w: %q", ErrUnsupportedAction, fields[0])
	}
	coords := fields[1:]
	if len(coords) != 2*a.Arity() {
		return Segment{}, fmt.Errorf("%w: %q", ErrArity, s)
	}
	pts := make([]V2d, a.Arity())
	for i := range pts {
		x, err := ParseFrac(coords[2*i])
		if err != nil {
			return Segment{}, err
		}
		y, err := ParseFrac(coords[2*i+1])
		if err != nil {
			return Segment{}, err
		}
		pts[i] = V2d{X: x, Y: y}
	}
	return Segment{action: a, pts: pts}, nil
}

// Action returns the drawing instruction of s.
func (s Segment) Action() Action {
	return s.action
}

// Points returns a copy of the points of s.
func (s Segment) Points() V2dList {
	return slices.Clone(V2dList(s.pts))
}

// End returns the final point of s.  The second result is false for
// segments without points.
func (s Segment) End() (V2d, bool) {
	if len(s.pts) == 0 {
		return V2d{}, false
	}
	return s.pts[len(s.pts)-1], true
}

// Equal reports whether s and other describe the same instruction.
func (s Segment) Equal(other Segment) bool {
	return s.action == other.action && slices.EqualFunc(s.pts, other.pts, V2d.Equal)
}

func (s Segment) transform(fn func(V2d) V2d) Segment {
	res := Segment{action: s.action, pts: make([]V2d, len(s.pts))}
	for i, p := range s.pts {
		res.pts[i] = fn(p)
	}
	return res
}

// Translate returns s shifted by d.
func (s Segment) Translate(d V2d) Segment {
	return s.transform(func(p V2d) V2d { return p.Add(d) })
}

// Scale returns s scaled by f around the origin.
func (s Segment) Scale(f Frac) Segment {
	return s.transform(func(p V2d) V2d { return p.Mul(f) })
}

// Rotate returns s rotated by the angle a around the origin.
func (s Segment) Rotate(a Frac) Segment {
	return s.transform(func(p V2d) V2d { return p.Rotate(a) })
}

func (s Segment) String() string {
	if len(s.pts) == 0 {
		return s.action.Letter()
	}
	parts := make([]string, 0, len(s.pts)+1)
	parts = append(parts, s.action.Letter())
	for _, p := range s.pts {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}

// SVG returns the segment as an SVG path command, with all coordinates
// scaled by width and the y axis flipped.
func (s Segment) SVG(width Frac) string {
	if len(s.pts) == 0 {
		return s.action.Letter()
	}
	parts := make([]string, 0, len(s.pts)+1)
	parts = append(parts, s.action.Letter())
	for _, p := range s.pts {
		parts = append(parts, p.SVG(width))
	}
	return strings.Join(parts, " ")
}
