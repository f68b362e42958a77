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

var turnCases = []TestCase{
	{
		Name:           "square_loop",
		Game:           game("P", 8, "I", "PPPPI"),
		Turtle:         turtle("1/2 1/5", "1/4", "3"),
		Brushes:        []dlmt.Brush{squareBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 20),
		Width:          64,
	},
	{
		Name:           "spiral",
		Game:           game("PL>", 24, "I", "PL>I"),
		Turtle:         spiralTurtle(),
		Brushes:        []dlmt.Brush{triangleBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 40),
		Width:          64,
	},
	{
		Name:           "negate",
		Game:           game("PA-", 18, "I", "PA-I"),
		Turtle:         turtle("1/10 1/3", "1/6", "1"),
		Brushes:        []dlmt.Brush{blobBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 20),
		Width:          64,
	},
}

// spiralTurtle turns left on every step and lengthens its stride.
func spiralTurtle() tortuga.Config {
	cfg := turtle("1/2 1/2", "1/4", "1 2 3 4 5 6")
	cfg.MagnitudePageRatio = fracgeom.NewFrac(1, 20)
	return cfg
}
