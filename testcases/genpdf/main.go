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

// Command genpdf generates reference files for the test cases: an SVG
// image, a single-page PDF and a PNG preview for each case.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/dalmatian"
	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/pdfpage"
	"seehuhn.de/go/dalmatian/raster"
	"seehuhn.de/go/dalmatian/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(name, tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(name string, tc testcases.TestCase) error {
	m, err := dalmatian.Media(tc)
	if err != nil {
		return err
	}
	v := dalmatian.View(tc)
	base := filepath.Join(refDir, name)

	if err := writeSVG(base+".svg", m, v, tc.Width); err != nil {
		return err
	}

	// one PDF point per pixel
	opt := &pdfpage.Options{Width: float64(tc.Width)}
	if err := pdfpage.WriteView(base+".pdf", m, v, opt); err != nil {
		return err
	}

	img, err := raster.Render(m, v, tc.Width)
	if err != nil {
		return err
	}
	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	defer f.Close()
	if err := raster.WritePNG(f, img); err != nil {
		return err
	}
	return f.Close()
}

func writeSVG(fname string, m *dlmt.Media, v dlmt.View, width int) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	err = m.WriteSVG(f, dlmt.SVGConfig{
		View:       &v,
		Width:      width,
		Background: "white",
	})
	if err != nil {
		return err
	}
	return f.Close()
}
