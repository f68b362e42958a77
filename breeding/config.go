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

package breeding

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/dalmatian/fracgeom"
	"seehuhn.de/go/dalmatian/grammar"
	"seehuhn.de/go/dalmatian/tortuga"
)

// ErrConfig is returned for invalid experiment configurations.
var ErrConfig = errors.New("invalid configuration")

// Config describes a breeding experiment.
type Config struct {
	// Population is the number of specimens in a generation.
	Population int `toml:"population"`

	// MaxAttempts bounds the number of candidates generated for a single
	// population slot before the slot is given up.
	MaxAttempts int `toml:"max-attempts"`

	Grammar grammar.Template `toml:"grammar"`
	Turtle  tortuga.Pool     `toml:"turtle"`
	Fitness Fitness          `toml:"fitness"`
	Brush   BrushPool        `toml:"brush"`
}

// DefaultConfig returns the configuration used for values missing from a
// configuration file.
func DefaultConfig() Config {
	return Config{
		Population:  12,
		MaxAttempts: 40,
		Grammar: grammar.Template{
			Variables:   "IJK",
			Constants:   "PAL<>-[]",
			Keys:        []string{"P", "AP", "L>P", "[A>P]"},
			Levels:      3,
			ChainLength: 120,
		},
		Turtle: tortuga.Pool{
			XY:                  fracgeom.MustParseV2d("1/2 1/2"),
			Angles:              fracgeom.MustParseFracList("0 1/12 1/8 1/4 1/3 1/2"),
			AngleCount:          3,
			Magnitudes:          fracgeom.MustParseFracList("1 2 3"),
			MagnitudeCount:      2,
			BrushIDs:            []string{"i:1"},
			BrushCount:          1,
			TagIDs:              []string{""},
			TagCount:            1,
			MagnitudePageRatio:  fracgeom.NewFrac(1, 100),
			ScaleMagnitudeRatio: fracgeom.Int(1),
			AngleOffset:         fracgeom.Int(0),
		},
		Fitness: DefaultFitness(),
		Brush:   DefaultBrushPool(),
	}
}

// LoadConfig reads a TOML experiment configuration.  Values not given in
// the file are taken from [DefaultConfig]; unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("%w: line %d, column %d: %v", ErrConfig, row, col, derr)
		}
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadConfigFile reads a TOML experiment configuration from a file.
func ReadConfigFile(fname string) (Config, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return Config{}, err
	}
	defer fd.Close()
	return LoadConfig(fd)
}

// Validate checks the configuration for values which would make every
// breeding attempt fail.
func (c Config) Validate() error {
	switch {
	case c.Population <= 0:
		return fmt.Errorf("%w: population must be positive", ErrConfig)
	case c.MaxAttempts <= 0:
		return fmt.Errorf("%w: max-attempts must be positive", ErrConfig)
	case c.Grammar.Levels < grammar.MinLevels || c.Grammar.Levels > grammar.MaxLevels:
		return fmt.Errorf("%w: %d", grammar.ErrUnsupportedLevels, c.Grammar.Levels)
	case len(c.Grammar.Keys) == 0:
		return grammar.ErrNoKeys
	case c.Grammar.ChainLength <= 0:
		return fmt.Errorf("%w: chain-length must be positive", ErrConfig)
	case c.Fitness.MinCorrelation > c.Fitness.MaxCorrelation:
		return fmt.Errorf("%w: empty correlation range", ErrConfig)
	}
	g := grammar.Game{Variables: c.Grammar.Variables, Constants: c.Grammar.Constants}
	if err := g.Validate(); err != nil {
		return err
	}
	if err := c.Turtle.Validate(); err != nil {
		return err
	}
	return c.Brush.Validate()
}
