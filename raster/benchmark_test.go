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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/fracgeom"
)

// circleK is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const circleK = 0.5522847498

// makeOPath returns an "O" shape: the outer circle runs counter-clockwise,
// the inner circle clockwise.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	d := addCircle(&path.Data{}, cx, cy, outerR, false)
	return addCircle(d, cx, cy, innerR, true)
}

func addCircle(d *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	kr := circleK * r
	s := 1.0
	if clockwise {
		s = -1
	}
	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: cx + s*x, Y: cy + y}
	}
	return d.MoveTo(pt(0, -r)).
		CubeTo(pt(kr, -r), pt(r, -kr), pt(r, 0)).
		CubeTo(pt(r, kr), pt(kr, r), pt(0, r)).
		CubeTo(pt(-kr, r), pt(-r, kr), pt(-r, 0)).
		CubeTo(pt(-r, -kr), pt(-kr, -r), pt(0, -r)).
		Close()
}

// addCircleToVector adds the same circle as addCircle to a
// golang.org/x/image/vector rasterizer.
func addCircleToVector(z *vector.Rasterizer, cx, cy, r float32, clockwise bool) {
	kr := float32(circleK) * r
	var s float32 = 1
	if clockwise {
		s = -1
	}
	x := func(dx float32) float32 { return cx + s*dx }
	z.MoveTo(x(0), cy-r)
	z.CubeTo(x(kr), cy-r, x(r), cy-kr, x(r), cy)
	z.CubeTo(x(r), cy+kr, x(kr), cy+r, x(0), cy+r)
	z.CubeTo(x(-kr), cy+r, x(-r), cy+kr, x(-r), cy)
	z.CubeTo(x(-r), cy-kr, x(-kr), cy-r, x(0), cy-r)
	z.ClosePath()
}

var benchmarkSizes = []int{20, 200, 2000}

func BenchmarkRasterizerO(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			o := makeOPath(c, c, 0.45*float64(size), 0.30*float64(size))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillEvenOdd(o, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			c := float32(size) / 2

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				addCircleToVector(z, c, c, 0.45*float32(size), false)
				addCircleToVector(z, c, c, 0.30*float32(size), true)
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// TestAgainstVector compares the coverage of the "O" shape with the
// output of golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 64
	c := float64(size) / 2

	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.Flatness = 0.05
	ours := image.NewAlpha(image.Rect(0, 0, size, size))
	r.FillNonZero(makeOPath(c, c, 28, 18), func(y, xMin int, coverage []float32) {
		row := ours.Pix[y*ours.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
	})

	z := vector.NewRasterizer(size, size)
	addCircleToVector(z, float32(c), float32(c), 28, false)
	addCircleToVector(z, float32(c), float32(c), 18, true)
	theirs := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(theirs, theirs.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	var worst int
	for i := range ours.Pix {
		d := int(ours.Pix[i]) - int(theirs.Pix[i])
		worst = max(worst, d, -d)
	}
	if worst > 24 {
		t.Errorf("maximum pixel difference %d exceeds tolerance", worst)
	}
}

func BenchmarkRender(b *testing.B) {
	m := dlmt.NewMedia(dlmt.NewHeaders(fracgeom.MustParseFrac("1/20")))
	brush, err := dlmt.ParseBrush("brush i:1 ext-id brushes:diamond path [ M 0 -1/2, Q 1/2 0 0 1/2, T 0 -1/2, Z ]")
	if err != nil {
		b.Fatal(err)
	}
	m.AddBrush(brush)
	for i := range 100 {
		x := fracgeom.NewFrac(int64(i%10), 10)
		y := fracgeom.NewFrac(int64(i/10), 10)
		m.AddBrushstrokes(dlmt.Brushstroke{
			BrushID: "i:1",
			XY:      fracgeom.V2d{X: x, Y: y},
			Scale:   fracgeom.Int(1),
			Angle:   fracgeom.NewFrac(int64(i), 100),
		})
	}
	v := dlmt.DefaultView()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Render(m, v, 400); err != nil {
			b.Fatal(err)
		}
	}
}
