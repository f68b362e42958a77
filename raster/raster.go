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

// Package raster converts brush outlines into anti-aliased grey-scale
// images.
//
// The [Rasterizer] implements a signed-area scanline algorithm for filling
// paths with the nonzero or even-odd rule.  [Render] uses it to draw the
// brushstrokes shown by a view of a [dlmt.Media] document.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	defaultFlatness = 0.25

	// maxCurveSegments bounds the number of line segments a single curve is
	// split into.
	maxCurveSegments = 1000

	// Edges with a smaller vertical extent (in pixels) are ignored.
	horizontalEdgeThreshold = 1e-12
)

// edge is a line segment in device coordinates, stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the segment was traversed downwards, -1 otherwise
}

// xAt returns the x-coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer converts paths to pixel coverage values.
// A single instance can be reused for many paths; the internal
// buffers grow as needed and are kept between calls.
type Rasterizer struct {
	// CTM maps path coordinates to device coordinates.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32
	breaks []float64

	bbox    rect.Rect
	hasBBox bool
}

// NewRasterizer returns a rasterizer with the identity transformation
// and the given clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset changes the clip rectangle and restores the default transformation
// and flatness.  Buffers are retained.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
}

// FillNonZero fills the path using the nonzero winding rule.
//
// The emit callback is called once for every pixel row which contains
// non-zero coverage, in increasing order of y.  The coverage slice gives
// values in [0, 1] for the pixels xMin, xMin+1, ... and is only valid
// during the call.  Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, false, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// The emit callback is used as for [Rasterizer.FillNonZero].
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, true, emit)
}

func (r *Rasterizer) fill(p *path.Data, evenOdd bool, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	active := r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		for next < len(r.edges) && r.edges[next].y0 < top+1 {
			active = append(active, next)
			next++
		}
		keep := active[:0]
		for _, i := range active {
			if r.edges[i].y1 > top {
				keep = append(keep, i)
			}
		}
		active = keep
		if len(active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range active {
			r.accumulate(&r.edges[i], y, xMin, xMax)
		}
		if evenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}

		row, offset := trimZeros(r.cover)
		if row != nil {
			emit(y, xMin+offset, row)
		}
	}
	r.active = active
}

// collectEdges flattens the path into device space line segments.
// The returned pixel range is the bounding box of the edges, clamped
// to the clip rectangle.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.hasBBox = false

	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addEdge(current, start)
			current = start
			open = false
		}
	}
	if open {
		r.addEdge(current, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Ceil(r.bbox.URy)), int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// device maps a point from path coordinates to device coordinates.
func (r *Rasterizer) device(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// addEdge adds the segment from p0 to p1, given in path coordinates.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	a := r.device(p0)
	b := r.device(p1)

	var dir float32 = 1
	if a.Y > b.Y {
		a, b = b, a
		dir = -1
	}
	if b.Y-a.Y < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		dir:  dir,
	})

	if !r.hasBBox {
		r.bbox = rect.Rect{LLx: a.X, LLy: a.Y, URx: a.X, URy: b.Y}
		r.hasBBox = true
	}
	r.bbox.LLx = min(r.bbox.LLx, a.X, b.X)
	r.bbox.URx = max(r.bbox.URx, a.X, b.X)
	r.bbox.LLy = min(r.bbox.LLy, a.Y)
	r.bbox.URy = max(r.bbox.URy, b.Y)
}

// curveSegments returns the number of line segments needed to approximate
// a curve whose second differences have device-space length dev.
func (r *Rasterizer) curveSegments(dev float64) int {
	n := int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	return min(max(n, 1), maxCurveSegments)
}

// linearLength returns the device space length of the vector v, ignoring
// the translation part of the CTM.
func (r *Rasterizer) linearLength(v vec.Vec2) float64 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}.Length()
}

func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dd := p0.Sub(p1.Mul(2)).Add(p2)
	n := r.curveSegments(r.linearLength(dd) / 4)

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linearLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linearLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := r.curveSegments(0.75 * max(d1, d2))

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Coverage is accumulated per scanline in two buffers.  An edge piece
// with signed vertical extent d, crossing pixel column i at horizontal
// offset f inside the pixel, adds d to cover[i] and d*(1-f) to area[i].
// The coverage of pixel i is then area[i] plus the sum of cover[j]
// over all j < i.

// accumulate adds the part of e inside the scanline [y, y+1) to the
// cover and area buffers.
func (r *Rasterizer) accumulate(e *edge, y int, xMin, xMax int) {
	top := max(float64(y), e.y0)
	bot := min(float64(y+1), e.y1)
	if bot <= top {
		return
	}
	xa := e.xAt(top)
	xb := e.xAt(bot)
	dy := bot - top

	if math.Floor(xa) == math.Floor(xb) {
		xm := (xa + xb) / 2
		r.deposit(xm, e.dir*float32(dy), xMin, xMax)
		return
	}

	// split the piece at the integer x-coordinates it crosses
	lo, hi := min(xa, xb), max(xa, xb)
	dx := xb - xa
	ts := r.breaks[:0]
	ts = append(ts, 0)
	for b := math.Floor(lo) + 1; b < hi; b++ {
		ts = append(ts, (b-xa)/dx)
	}
	ts = append(ts, 1)
	if dx < 0 {
		slices.Reverse(ts[1 : len(ts)-1])
	}
	for i := 1; i < len(ts); i++ {
		t0, t1 := ts[i-1], ts[i]
		xm := xa + dx*(t0+t1)/2
		r.deposit(xm, e.dir*float32(dy*(t1-t0)), xMin, xMax)
	}
	r.breaks = ts
}

// deposit records a vertical extent d centred at device x-coordinate xm.
// Contributions left of the buffer count as full coverage of the first
// pixel, contributions right of the buffer are dropped.
func (r *Rasterizer) deposit(xm float64, d float32, xMin, xMax int) {
	px := math.Floor(xm)
	switch {
	case px < float64(xMin):
		r.cover[0] += d
		r.area[0] += d
	case px >= float64(xMax):
		return
	default:
		i := int(px) - xMin
		r.cover[i] += d
		r.area[i] += d * float32(1-(xm-px))
	}
}

// integrateNonZero turns the accumulated buffers into coverage values
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns the accumulated buffers into coverage values
// using the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(math.Floor(float64(v/2)))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the smallest sub-slice holding all non-zero values,
// together with its offset.  The result is nil if all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
