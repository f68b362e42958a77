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

package testcases

import (
	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/fracgeom"
	"seehuhn.de/go/dalmatian/tortuga"
)

var brushCases = []TestCase{
	{
		Name:           "alternate",
		Game:           game("PB>", 12, "I", "PB>I"),
		Turtle:         withBrushes(turtle("1/10 1/2", "0", "1"), "i:1", "i:2"),
		Brushes:        []dlmt.Brush{squareBrush, triangleBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 20),
		Width:          64,
	},
	{
		Name:           "curves",
		Game:           game("PB>A>", 20, "I", "PB>A>I"),
		Turtle:         withBrushes(turtle("1/4 1/4", "1/12 1/6", "2"), "i:3", "i:4"),
		Brushes:        []dlmt.Brush{blobBrush, leafBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 15),
		Width:          64,
	},
	{
		Name:           "scaled",
		Game:           game("PL>", 12, "I", "PL>I"),
		Turtle:         scaledTurtle(),
		Brushes:        []dlmt.Brush{blobBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 40),
		Width:          64,
	},
}

func withBrushes(cfg tortuga.Config, ids ...string) tortuga.Config {
	cfg.BrushIDs = ids
	return cfg
}

// scaledTurtle draws larger brushes than the stride would suggest, turned
// by a constant offset.
func scaledTurtle() tortuga.Config {
	cfg := withBrushes(turtle("1/10 1/2", "0", "1 2 3"), "i:3")
	cfg.ScaleMagnitudeRatio = fracgeom.NewFrac(3, 2)
	cfg.AngleOffset = fracgeom.NewFrac(1, 8)
	return cfg
}
