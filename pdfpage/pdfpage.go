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

// Package pdfpage writes views of a dalmatian document as single-page
// PDF files.
package pdfpage

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/dalmatian/dlmt"
)

// DefaultWidth is the page width in PDF points used when no width is
// specified.
const DefaultWidth = 595.0

// ErrInvalidSize is returned when the page would have zero area.
var ErrInvalidSize = errors.New("invalid page size")

// Options control the appearance of the generated page.
type Options struct {
	// Width is the page width in PDF points.  The page height follows from
	// the aspect ratio of the view.
	Width float64

	// Gray is the grey level of the brushes, from 0 (black) to 1 (white).
	Gray float64

	// Background, if set, is the grey level of the page background.
	Background *float64
}

// WriteView writes the brushstrokes shown in the view v to a new PDF
// file.  If opt is nil, an A4-wide page with black brushes is produced.
func WriteView(fname string, m *dlmt.Media, v dlmt.View, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	if v.IsEmpty() {
		return ErrInvalidSize
	}
	width := opt.Width
	if width == 0 {
		width = DefaultWidth
	}
	height := width * v.Height.Float64() / v.Width.Float64()
	if !(width > 0 && height > 0) {
		return ErrInvalidSize
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if opt.Background != nil {
		page.SetFillColor(color.DeviceGray(*opt.Background))
		page.Rectangle(0, 0, width, height)
		page.Fill()
	}

	// PDF user space has y pointing up, like the page coordinate system
	// of the document, so only a scale is needed.
	page.Transform(matrix.Scale(width, width))
	page.SetFillColor(color.DeviceGray(opt.Gray))

	for _, p := range m.PagePaths(v) {
		for cmd, pts := range p.Data().Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}
