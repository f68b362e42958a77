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
	"seehuhn.de/go/dalmatian/grammar"
	"seehuhn.de/go/dalmatian/tortuga"
)

// TestCase defines a single end-to-end test: a grammar whose chain drives
// the turtle, and the brushes the turtle places on the page.
type TestCase struct {
	Name   string         // lowercase a-z and _ only
	Game   grammar.Game   // produces the turtle instructions
	Turtle tortuga.Config // the chain is filled in from Game

	Brushes        []dlmt.Brush
	BrushPageRatio fracgeom.Frac

	View  dlmt.View // zero value means the default view
	Width int       // image width in pixels
}

// game builds a grammar with a single start variable I.  The rules are
// given as search/replace pairs.
func game(constants string, chainLength int, rules ...string) grammar.Game {
	g := grammar.Game{
		Variables:   "I",
		Constants:   constants,
		Start:       "I",
		ChainLength: chainLength,
	}
	for i := 0; i+1 < len(rules); i += 2 {
		if rules[i] != "I" {
			g.Variables += rules[i]
		}
		g.Rules = append(g.Rules, grammar.Rule{Search: rules[i], Replace: rules[i+1]})
	}
	return g
}

// turtle returns the default turtle configuration with the given start
// position and cyclic lists.
func turtle(xy, angles, magnitudes string) tortuga.Config {
	cfg := tortuga.DefaultConfig()
	cfg.XY = fracgeom.MustParseV2d(xy)
	cfg.Angles = fracgeom.MustParseFracList(angles)
	cfg.Magnitudes = fracgeom.MustParseFracList(magnitudes)
	cfg.MagnitudePageRatio = fracgeom.NewFrac(1, 10)
	return cfg
}

// brush parses a brush line and panics on error.
func brush(line string) dlmt.Brush {
	b, err := dlmt.ParseBrush(line)
	if err != nil {
		panic(err)
	}
	return b
}

var (
	squareBrush   = brush("brush i:1 ext-id brushes:square path [ M -1/2 -1/2, L 1/2 -1/2, L 1/2 1/2, L -1/2 1/2, Z ]")
	triangleBrush = brush("brush i:2 ext-id brushes:triangle path [ M -1/2 -1/2, L 1/2 0, L -1/2 1/2, Z ]")
	blobBrush     = brush("brush i:3 ext-id brushes:blob path [ M -1/2 0, Q -1/2 -1/2 0 -1/2, T 1/2 0, T 0 1/2, T -1/2 0, Z ]")
	leafBrush     = brush("brush i:4 ext-id brushes:leaf path [ M -1/2 0, C -1/4 -1/2 1/4 -1/2 1/2 0, S -1/4 1/2 -1/2 0, Z ]")
)
