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
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dalmatian/dlmt"
)

// ErrInvalidSize is returned when an image would have no pixels.
var ErrInvalidSize = errors.New("invalid image size")

// Render draws the brushstrokes shown in the view v as black shapes on a
// white background.  The image is width pixels wide; the height follows
// from the aspect ratio of the view.
func Render(m *dlmt.Media, v dlmt.View, width int) (*image.Gray, error) {
	if v.IsEmpty() {
		return nil, ErrInvalidSize
	}
	ratio := v.Height.Float64() / v.Width.Float64()
	height := int(math.Ceil(float64(width)*ratio - 1e-9))
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	w := float64(width)
	r := NewRasterizer(rect.Rect{URx: w, URy: float64(height)})
	r.CTM = matrix.Matrix{w, 0, 0, -w, 0, w * ratio}
	for _, p := range m.PagePaths(v) {
		r.FillNonZero(p.Data(), func(y, xMin int, coverage []float32) {
			row := img.Pix[y*img.Stride+xMin:]
			for i, c := range coverage {
				row[i] = uint8(float32(row[i])*(1-c) + 0.5)
			}
		})
	}
	return img, nil
}

// ContactSheet arranges the images in a grid with the given number of
// columns.  Every image is scaled to fit into a square cell of size
// cell×cell pixels, keeping its aspect ratio, and is centred in the cell.
func ContactSheet(images []image.Image, columns, cell int) (*image.Gray, error) {
	if columns <= 0 || cell <= 0 || len(images) == 0 {
		return nil, ErrInvalidSize
	}
	rows := (len(images) + columns - 1) / columns
	columns = min(columns, len(images))

	sheet := image.NewGray(image.Rect(0, 0, columns*cell, rows*cell))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, img := range images {
		src := img.Bounds()
		if src.Empty() {
			continue
		}
		x0 := (i % columns) * cell
		y0 := (i / columns) * cell

		w, h := cell, cell
		if src.Dx() > src.Dy() {
			h = max(1, cell*src.Dy()/src.Dx())
		} else {
			w = max(1, cell*src.Dx()/src.Dy())
		}
		x0 += (cell - w) / 2
		y0 += (cell - h) / 2

		dst := image.Rect(x0, y0, x0+w, y0+h)
		draw.CatmullRom.Scale(sheet, dst, img, src, draw.Src, nil)
	}
	return sheet, nil
}

// WritePNG encodes the image in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
