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
	"math/rand/v2"
	"strings"

	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/fracgeom"
	"seehuhn.de/go/dalmatian/grammar"
)

// ErrDegenerateBrush is returned when a generated brush outline has no
// drawing segments.
var ErrDegenerateBrush = errors.New("degenerate brush")

// BrushPool describes how brush outlines are generated.
//
// A brush is built from a randomly chosen stake, a list of points which
// gives the rough shape, by moving every point by a random offset.  The
// offset coordinates are taken from Fractions, with random sign.  The
// points are then joined by the segments named in the chain of a random
// grammar over the constants L (line), S (smooth curve) and Q (fluid
// curve).
type BrushPool struct {
	Stakes    []fracgeom.V2dList `toml:"stakes"`
	Fractions fracgeom.FracList  `toml:"fractions"`
	Grammar   grammar.Template   `toml:"grammar"`
}

// DefaultBrushPool returns a pool with a spiral and a sine wave stake.
func DefaultBrushPool() BrushPool {
	sine := fracgeom.SineStake{
		AmplitudeFirst: fracgeom.NewFrac(1, 2),
		AmplitudeLast:  fracgeom.NewFrac(1, 4),
		AmplitudeInc:   fracgeom.NewFrac(-1, 64),
		AmplitudeNext:  fracgeom.Int(1),
		PeriodLast:     fracgeom.Int(1),
		PeriodInc:      fracgeom.NewFrac(1, 16),
		PeriodNext:     fracgeom.Int(1),
	}
	return BrushPool{
		Stakes: []fracgeom.V2dList{
			fracgeom.DefaultCircleStake().Points(),
			sine.Points(),
		},
		Fractions: fracgeom.FractionsBetween(fracgeom.NewFrac(1, 64), fracgeom.NewFrac(1, 16), 64),
		Grammar: grammar.Template{
			Variables:   "XY",
			Constants:   "LSQ",
			Keys:        []string{"L", "S", "Q", "LS", "QL"},
			Levels:      2,
			ChainLength: 40,
		},
	}
}

// Validate checks that brushes can be generated from the pool.
func (p BrushPool) Validate() error {
	if len(p.Stakes) == 0 {
		return fmt.Errorf("%w: no brush stakes", ErrConfig)
	}
	for i, s := range p.Stakes {
		if len(s) < 2 {
			return fmt.Errorf("%w: brush stake %d has fewer than two points", ErrConfig, i+1)
		}
	}
	if len(p.Fractions) == 0 {
		return fmt.Errorf("%w: no brush fractions", ErrConfig)
	}
	return nil
}

// brushActions maps the constants of a brush grammar to path actions.
var brushActions = strings.NewReplacer("Q", "T")

// RandomBrush returns a random closed brush outline.
func RandomBrush(rng *rand.Rand, p BrushPool) (fracgeom.Path, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	stake := p.Stakes[rng.IntN(len(p.Stakes))]

	deltas := make(fracgeom.V2dList, len(stake))
	for i := range deltas {
		deltas[i] = fracgeom.V2d{
			X: randomSign(rng, p.Fractions.Choice(rng)),
			Y: randomSign(rng, p.Fractions.Choice(rng)),
		}
	}
	pts := stake.Add(deltas)

	g, err := grammar.RandomGame(rng, p.Grammar)
	if err != nil {
		return nil, err
	}
	chain, err := g.Produce().CoreChain(p.Grammar.ChainLength)
	if err != nil {
		return nil, err
	}

	path, err := fracgeom.PathFromActions(brushActions.Replace(chain), pts)
	if err != nil {
		return nil, err
	}
	if len(path) < 2 {
		return nil, ErrDegenerateBrush
	}
	return append(path, fracgeom.ClosePath()), nil
}

// NewBrush returns a brush with a random outline.
func NewBrush(rng *rand.Rand, p BrushPool, id, extID string) (dlmt.Brush, error) {
	path, err := RandomBrush(rng, p)
	if err != nil {
		return dlmt.Brush{}, err
	}
	return dlmt.Brush{ID: id, ExtID: extID, Path: path}, nil
}

func randomSign(rng *rand.Rand, f fracgeom.Frac) fracgeom.Frac {
	if rng.IntN(2) == 0 {
		return f.Neg()
	}
	return f
}
