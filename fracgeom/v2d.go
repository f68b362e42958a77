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
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// V2d is a point or vector in the plane with exact coordinates.
type V2d struct {
	X, Y Frac
}

// ParseV2d parses the text form "x y" of a point.
func ParseV2d(s string) (V2d, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return V2d{}, fmt.Errorf("%w: point %q needs two coordinates", ErrSyntax, s)
	}
	x, err := ParseFrac(fields[0])
	if err != nil {
		return V2d{}, err
	}
	y, err := ParseFrac(fields[1])
	if err != nil {
		return V2d{}, err
	}
	return V2d{X: x, Y: y}, nil
}

// MustParseV2d is like [ParseV2d] but panics on invalid input.
func MustParseV2d(s string) V2d {
	v, err := ParseV2d(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromMagnitudeAngle returns the vector of length m pointing in direction a,
// given as a fraction of a full turn.  The direction is quantized as
// described for [CosTurn].
func FromMagnitudeAngle(m, a Frac) V2d {
	return V2d{X: m.Mul(CosTurn(a)), Y: m.Mul(SinTurn(a))}
}

func (v V2d) String() string {
	return v.X.String() + " " + v.Y.String()
}

// Equal reports whether v and w are the same point.
func (v V2d) Equal(w V2d) bool {
	return v.X.Equal(w.X) && v.Y.Equal(w.Y)
}

// Add returns v+w.
func (v V2d) Add(w V2d) V2d {
	return V2d{X: v.X.Add(w.X), Y: v.Y.Add(w.Y)}
}

// Sub returns v-w.
func (v V2d) Sub(w V2d) V2d {
	return V2d{X: v.X.Sub(w.X), Y: v.Y.Sub(w.Y)}
}

// Neg returns -v.
func (v V2d) Neg() V2d {
	return V2d{X: v.X.Neg(), Y: v.Y.Neg()}
}

// NegX returns v with the x coordinate negated.
func (v V2d) NegX() V2d {
	return V2d{X: v.X.Neg(), Y: v.Y}
}

// NegY returns v with the y coordinate negated.
func (v V2d) NegY() V2d {
	return V2d{X: v.X, Y: v.Y.Neg()}
}

// Mul returns s*v.
func (v V2d) Mul(s Frac) V2d {
	return V2d{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// SquareMagnitude returns the squared length of v.
func (v V2d) SquareMagnitude() Frac {
	return v.Dot(v)
}

// IsInsideRect reports whether v lies in r, boundary included.
func (v V2d) IsInsideRect(r Rect) bool {
	return r.Contains(v)
}

// Dot returns the scalar product of v and w.
func (v V2d) Dot(w V2d) Frac {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y))
}

// Cmp orders points by x first and then by y.
func (v V2d) Cmp(w V2d) int {
	if c := v.X.Cmp(w.X); c != 0 {
		return c
	}
	return v.Y.Cmp(w.Y)
}

// Rotate rotates v around the origin by the angle a (fraction of a turn),
// counter-clockwise.
func (v V2d) Rotate(a Frac) V2d {
	c, s := CosTurn(a), SinTurn(a)
	return V2d{
		X: v.X.Mul(c).Sub(v.Y.Mul(s)),
		Y: v.X.Mul(s).Add(v.Y.Mul(c)),
	}
}

// Angle returns the direction of v as a fraction of a turn.  The value is
// computed from atan(y/x), so opposite vectors have the same angle.  A zero
// x coordinate is replaced by 1/1000000.
func (v V2d) Angle() Frac {
	x := v.X
	if x.IsZero() {
		x = NewFrac(1, 1000000)
	}
	return AtanTurn(v.Y.Div(x))
}

// Float returns v as a floating point vector.
func (v V2d) Float() vec.Vec2 {
	return vec.Vec2{X: v.X.Float64(), Y: v.Y.Float64()}
}

// Cartesian formats v as "(x,y)" with three decimals, after scaling by
// width.  The y axis is flipped.
func (v V2d) Cartesian(width Frac) string {
	return "(" + v.X.format3(width) + "," + v.Y.Neg().format3(width) + ")"
}

// SVG formats v as "x y" with three decimals, after scaling by width.
// The y axis is flipped.
func (v V2d) SVG(width Frac) string {
	return v.X.format3(width) + " " + v.Y.Neg().format3(width)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (v V2d) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (v *V2d) UnmarshalText(text []byte) error {
	w, err := ParseV2d(string(text))
	if err != nil {
		return err
	}
	*v = w
	return nil
}

// Rect is an axis-aligned rectangle given by its lower-left corner
// and its size.
type Rect struct {
	XY            V2d
	Width, Height Frac
}

// Float returns r as a floating point rectangle.
func (r Rect) Float() rect.Rect {
	return rect.Rect{
		LLx: r.XY.X.Float64(),
		LLy: r.XY.Y.Float64(),
		URx: r.XY.X.Add(r.Width).Float64(),
		URy: r.XY.Y.Add(r.Height).Float64(),
	}
}

// Contains reports whether p lies in r, boundary included.
func (r Rect) Contains(p V2d) bool {
	x, y := p.X.Sub(r.XY.X), p.Y.Sub(r.XY.Y)
	return x.Sign() >= 0 && x.Cmp(r.Width) <= 0 &&
		y.Sign() >= 0 && y.Cmp(r.Height) <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("xy %s width %s height %s", r.XY, r.Width, r.Height)
}

// Errors returned by [V2dList.Correlation].
var (
	ErrTooFewPoints = errors.New("too few points")
	ErrZeroVariance = errors.New("zero variance")
)

// V2dList is an ordered list of points.
type V2dList []V2d

// ParseV2dList parses a list of points in the form "x1 y1, x2 y2, ...".
func ParseV2dList(s string) (V2dList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return V2dList{}, nil
	}
	var res V2dList
	for _, part := range strings.Split(s, ",") {
		v, err := ParseV2d(part)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// MustParseV2dList is like [ParseV2dList] but panics on invalid input.
func MustParseV2dList(s string) V2dList {
	l, err := ParseV2dList(s)
	if err != nil {
		panic(err)
	}
	return l
}

func (l V2dList) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether both lists hold the same points in the same order.
func (l V2dList) Equal(other V2dList) bool {
	return slices.EqualFunc(l, other, V2d.Equal)
}

// Clone returns a copy of l.
func (l V2dList) Clone() V2dList {
	return slices.Clone(l)
}

// Reverse returns the points of l in reverse order.
func (l V2dList) Reverse() V2dList {
	res := slices.Clone(l)
	slices.Reverse(res)
	return res
}

// Neg returns the list with every point negated.
func (l V2dList) Neg() V2dList {
	return l.mapPoints(V2d.Neg)
}

// Translate returns the list with every point shifted by d.
func (l V2dList) Translate(d V2d) V2dList {
	return l.mapPoints(func(v V2d) V2d { return v.Add(d) })
}

// Mul returns the list with every point scaled by s.
func (l V2dList) Mul(s Frac) V2dList {
	return l.mapPoints(func(v V2d) V2d { return v.Mul(s) })
}

// Add returns the pointwise sum of l and other.  The shorter list is
// padded with zero vectors.
func (l V2dList) Add(other V2dList) V2dList {
	return l.zip(other, V2d.Add)
}

// Sub returns the pointwise difference of l and other.  The shorter list is
// padded with zero vectors.
func (l V2dList) Sub(other V2dList) V2dList {
	return l.zip(other, V2d.Sub)
}

func (l V2dList) zip(other V2dList, fn func(a, b V2d) V2d) V2dList {
	res := make(V2dList, max(len(l), len(other)))
	for i := range res {
		var a, b V2d
		if i < len(l) {
			a = l[i]
		}
		if i < len(other) {
			b = other[i]
		}
		res[i] = fn(a, b)
	}
	return res
}

// Rotate returns the list with every point rotated by the angle a.
func (l V2dList) Rotate(a Frac) V2dList {
	return l.mapPoints(func(v V2d) V2d { return v.Rotate(a) })
}

func (l V2dList) mapPoints(fn func(V2d) V2d) V2dList {
	res := make(V2dList, len(l))
	for i, v := range l {
		res[i] = fn(v)
	}
	return res
}

// Mirror returns l followed by the reverse of l.
func (l V2dList) Mirror() V2dList {
	return append(l.Clone(), l.Reverse()...)
}

// Circular returns l followed by its own first point.
func (l V2dList) Circular() V2dList {
	if len(l) == 0 {
		return V2dList{}
	}
	return append(l.Clone(), l[0])
}

// Extend returns l followed by other.
func (l V2dList) Extend(other V2dList) V2dList {
	return append(l.Clone(), other...)
}

// Sorted returns the points of l ordered by x and then by y.
func (l V2dList) Sorted() V2dList {
	res := slices.Clone(l)
	slices.SortFunc(res, V2d.Cmp)
	return res
}

// Bigrams returns all pairs of consecutive points.
func (l V2dList) Bigrams() [][2]V2d {
	if len(l) < 2 {
		return nil
	}
	res := make([][2]V2d, len(l)-1)
	for i := range res {
		res[i] = [2]V2d{l[i], l[i+1]}
	}
	return res
}

// Choice returns a random point of l.  The list must not be empty.
func (l V2dList) Choice(rng *rand.Rand) V2d {
	return l[rng.IntN(len(l))]
}

// Sample returns n distinct points of l in random order.
// If n exceeds the length of the list, all points are returned.
func (l V2dList) Sample(rng *rand.Rand, n int) V2dList {
	n = min(max(n, 0), len(l))
	res := make(V2dList, n)
	for i, j := range rng.Perm(len(l))[:n] {
		res[i] = l[j]
	}
	return res
}

// Mean returns the centroid of l, or the origin for an empty list.
func (l V2dList) Mean() V2d {
	if len(l) == 0 {
		return V2d{}
	}
	var sum V2d
	for _, v := range l {
		sum = sum.Add(v)
	}
	return sum.Mul(NewFrac(1, int64(len(l))))
}

// ContainingRect returns the smallest axis-aligned rectangle which contains
// all points of l.
func (l V2dList) ContainingRect() Rect {
	if len(l) == 0 {
		return Rect{}
	}
	minX, maxX := l[0].X, l[0].X
	minY, maxY := l[0].Y, l[0].Y
	for _, v := range l[1:] {
		if v.X.Cmp(minX) < 0 {
			minX = v.X
		}
		if v.X.Cmp(maxX) > 0 {
			maxX = v.X
		}
		if v.Y.Cmp(minY) < 0 {
			minY = v.Y
		}
		if v.Y.Cmp(maxY) > 0 {
			maxY = v.Y
		}
	}
	return Rect{
		XY:     V2d{X: minX, Y: minY},
		Width:  maxX.Sub(minX),
		Height: maxY.Sub(minY),
	}
}

// Correlation returns Pearson's correlation coefficient between the x and
// the y coordinates of l.  Coordinates are first truncated to multiples of
// 1/1000000.
func (l V2dList) Correlation() (float64, error) {
	if len(l) < 2 {
		return 0, ErrTooFewPoints
	}
	n := float64(len(l))
	xs := make([]float64, len(l))
	ys := make([]float64, len(l))
	var mx, my float64
	for i, v := range l {
		xs[i] = float64(v.X.truncMul(1000000))
		ys[i] = float64(v.Y.truncMul(1000000))
		mx += xs[i]
		my += ys[i]
	}
	mx /= n
	my /= n

	var sxx, syy, sxy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, ErrZeroVariance
	}
	return sxy / math.Sqrt(sxx*syy), nil
}

// MedianRange returns, separately for x and y, the width of the range left
// after discarding the len/n smallest and the len/n largest coordinates.
func (l V2dList) MedianRange(n int) V2d {
	if len(l) == 0 {
		return V2d{}
	}
	k := 0
	if n > 0 {
		k = len(l) / n
	}
	k = min(k, (len(l)-1)/2)
	xs := make(FracList, len(l))
	ys := make(FracList, len(l))
	for i, v := range l {
		xs[i], ys[i] = v.X, v.Y
	}
	sortFracs(xs)
	sortFracs(ys)
	last := len(l) - 1 - k
	return V2d{X: xs[last].Sub(xs[k]), Y: ys[last].Sub(ys[k])}
}

// Cartesian formats all points of l with [V2d.Cartesian], separated by
// spaces.
func (l V2dList) Cartesian(width Frac) string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.Cartesian(width)
	}
	return strings.Join(parts, " ")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (l V2dList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (l *V2dList) UnmarshalText(text []byte) error {
	m, err := ParseV2dList(string(text))
	if err != nil {
		return err
	}
	*l = m
	return nil
}

func sortFracs(l FracList) {
	slices.SortFunc(l, Frac.Cmp)
}
