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
)

var branchCases = []TestCase{
	{
		Name:           "fork",
		Game:           game("P[]A>", 24, "I", "P[A>PP]PI"),
		Turtle:         turtle("1/10 1/2", "0 1/8", "1"),
		Brushes:        []dlmt.Brush{squareBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 30),
		Width:          64,
	},
	{
		Name:           "tree",
		Game:           game("P[]A<>", 40, "I", "P[A>PI][A<PI]"),
		Turtle:         turtle("1/10 1/2", "0 1/12 -1/12", "1"),
		Brushes:        []dlmt.Brush{leafBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 30),
		Width:          64,
	},
}
