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

// Package dalmatian generates brush-stroke graphics.  A grammar produces
// a chain of turtle instructions, the turtle places brushes on a page,
// and the resulting dlmt document can be rendered as SVG, PDF or PNG.
package dalmatian

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"
	"image"

	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/raster"
	"seehuhn.de/go/dalmatian/testcases"
	"seehuhn.de/go/dalmatian/tortuga"
)

// Media runs the grammar and the turtle of a test case and returns the
// resulting document.  The document holds the brushes of the test case,
// one description per tag used by the turtle, and the view returned by
// [View].
func Media(tc testcases.TestCase) (*dlmt.Media, error) {
	if err := tc.Game.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	chain, err := tc.Game.Produce().CoreChain(tc.Game.ChainLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}

	cfg := tc.Turtle
	cfg.Chain = chain
	p, err := tortuga.NewProducer(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}

	h := dlmt.NewHeaders(tc.BrushPageRatio)
	h.SetText("title", "en", tc.Name)
	m := dlmt.NewMedia(h)
	m.AddView(View(tc))
	seen := make(map[string]bool)
	for _, id := range cfg.TagIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		m.AddTagDescription(dlmt.TagDescription{
			ID:          id,
			Lang:        "en",
			Description: "tag " + id,
		})
	}
	for _, b := range tc.Brushes {
		m.AddBrush(b)
	}
	m.AddBrushstrokes(p.Produce()...)
	return m, nil
}

// View returns the view used to render a test case.
func View(tc testcases.TestCase) dlmt.View {
	if tc.View.ID == "" {
		return dlmt.DefaultView()
	}
	return tc.View
}

// RenderExample renders a test case into a grayscale image, with black
// brushes on a white background.  The image is tc.Width pixels wide.
func RenderExample(tc testcases.TestCase) (*image.Gray, error) {
	m, err := Media(tc)
	if err != nil {
		return nil, err
	}
	return raster.Render(m, View(tc), tc.Width)
}
