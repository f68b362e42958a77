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

// Package tortuga implements a turtle graphics interpreter which turns a
// chain of instruction symbols into brushstrokes.
//
// The turtle has a position and remembers its previous position; the
// heading is the direction between the two.  Four cyclic cursors select
// the current angle, magnitude, brush and tag from the lists in the
// [Config].  The instructions are:
//
//	A  select the angle cursor
//	L  select the magnitude cursor
//	B  select the brush cursor
//	T  select the tag cursor
//	>  advance the selected cursor
//	<  move the selected cursor back
//	Z  reset the selected cursor
//	-  negate the selected angle or magnitude
//	P  move and emit a brushstroke
//	[  save the state
//	]  restore the last saved state
//
// All other symbols are ignored.
package tortuga

import (
	"errors"
	"fmt"

	"seehuhn.de/go/dalmatian/fracgeom"
)

// ErrEmptyCycle is returned when one of the cyclic lists of a
// configuration is empty.
var ErrEmptyCycle = errors.New("empty cycle")

// Config is the input of a turtle run.
type Config struct {
	Chain      string            `yaml:"chain"`
	XY         fracgeom.V2d      `yaml:"xy"`
	Angles     fracgeom.FracList `yaml:"angles"`
	Magnitudes fracgeom.FracList `yaml:"magnitudes"`
	BrushIDs   []string          `yaml:"brushes"`

	// TagIDs may contain the empty string, which stands for no tag.
	TagIDs []string `yaml:"tags"`

	// MagnitudePageRatio converts magnitudes into page distances.
	MagnitudePageRatio fracgeom.Frac `yaml:"magnitude-page-ratio"`

	// ScaleMagnitudeRatio converts magnitudes into brushstroke scales.
	ScaleMagnitudeRatio fracgeom.Frac `yaml:"scale-magnitude-ratio"`

	// AngleOffset is added to the angle of every brushstroke.
	AngleOffset fracgeom.Frac `yaml:"angle-offset"`
}

// DefaultConfig returns a configuration with four right angles, the
// magnitudes 1 to 4, a single brush and no tags.
func DefaultConfig() Config {
	return Config{
		XY:                  fracgeom.V2d{},
		Angles:              fracgeom.MustParseFracList("0/4 1/4 1/2 3/4"),
		Magnitudes:          fracgeom.MustParseFracList("1 2 3 4"),
		BrushIDs:            []string{"i:1"},
		TagIDs:              []string{""},
		MagnitudePageRatio:  fracgeom.NewFrac(1, 100),
		ScaleMagnitudeRatio: fracgeom.Int(1),
		AngleOffset:         fracgeom.Int(0),
	}
}

// Validate checks that none of the cyclic lists is empty.
func (c Config) Validate() error {
	switch {
	case len(c.Angles) == 0:
		return fmt.Errorf("%w: angles", ErrEmptyCycle)
	case len(c.Magnitudes) == 0:
		return fmt.Errorf("%w: magnitudes", ErrEmptyCycle)
	case len(c.BrushIDs) == 0:
		return fmt.Errorf("%w: brushes", ErrEmptyCycle)
	case len(c.TagIDs) == 0:
		return fmt.Errorf("%w: tags", ErrEmptyCycle)
	}
	return nil
}
