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

var viewCases = []TestCase{
	{
		Name:           "zoom",
		Game:           game("P", 6, "I", "PI"),
		Turtle:         turtle("1/4 1/2", "0", "1"),
		Brushes:        []dlmt.Brush{squareBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 20),
		View:           dlmt.MustParseView("view i:2 lang en xy 1/4 1/4 width 1/2 height 1/2 flags o tags all but [ ] -> centre"),
		Width:          64,
	},
	{
		Name:           "wide",
		Game:           game("PA>", 12, "I", "PA>I"),
		Turtle:         turtle("1/4 1/2", "1/8 3/4", "1"),
		Brushes:        []dlmt.Brush{triangleBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 20),
		View:           dlmt.MustParseView("view i:3 lang en xy 0 1/4 width 1 height 1/2 flags - tags all but [ ] -> band"),
		Width:          64,
	},
	{
		Name:           "untagged",
		Game:           game("PT>", 12, "I", "PT>I"),
		Turtle:         taggedTurtle(),
		Brushes:        []dlmt.Brush{squareBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 20),
		View:           dlmt.MustParseView("view i:4 lang en xy 0 0 width 1 height 1 flags o tags none but [ ] -> untagged"),
		Width:          64,
	},
	{
		Name:           "tagged",
		Game:           game("PT>", 12, "I", "PT>I"),
		Turtle:         taggedTurtle(),
		Brushes:        []dlmt.Brush{squareBrush},
		BrushPageRatio: fracgeom.NewFrac(1, 20),
		View:           dlmt.MustParseView("view i:5 lang en xy 0 0 width 1 height 1 flags o tags none but [ i:1 ] -> tagged"),
		Width:          64,
	},
}

// taggedTurtle tags every second brushstroke with i:1.
func taggedTurtle() tortuga.Config {
	cfg := turtle("1/10 1/2", "0", "1")
	cfg.TagIDs = []string{"", "i:1"}
	return cfg
}
