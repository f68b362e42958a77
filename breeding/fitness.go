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
	"fmt"

	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/fracgeom"
)

// Fitness holds the predicates a specimen must satisfy to join a
// population.
type Fitness struct {
	// MinCorrelation and MaxCorrelation bound Pearson's correlation
	// between the x and y coordinates of the brushstroke positions.
	// Strongly correlated positions mean the turtle walks a straight line.
	MinCorrelation float64 `toml:"min-correlation"`
	MaxCorrelation float64 `toml:"max-correlation"`

	// MinVisibility is the minimum fraction of brushstrokes inside the
	// unit square of the page.
	MinVisibility fracgeom.Frac `toml:"min-visibility"`

	// MinSpread is the minimum width, on both axes, of the brushstroke
	// positions after discarding the outermost ones.
	MinSpread fracgeom.Frac `toml:"min-spread"`

	// MedianRangeEdge selects the share 1/MedianRangeEdge of positions
	// discarded at each end before measuring the spread.
	MedianRangeEdge int `toml:"median-range-edge"`
}

// DefaultFitness returns moderately strict predicates.
func DefaultFitness() Fitness {
	return Fitness{
		MinCorrelation:  -0.9,
		MaxCorrelation:  0.9,
		MinVisibility:   fracgeom.NewFrac(4, 5),
		MinSpread:       fracgeom.NewFrac(1, 10),
		MedianRangeEdge: 5,
	}
}

// Evaluate checks the brushstrokes of m against the predicates.  If a
// predicate fails, the result is false together with a short reason.
func (f Fitness) Evaluate(m *dlmt.Media) (bool, string) {
	total := len(m.Brushstrokes)
	if total == 0 {
		return false, "no brushstrokes"
	}
	pts := m.BrushstrokePoints()

	corr, err := pts.Correlation()
	if err != nil {
		return false, err.Error()
	}
	if corr < f.MinCorrelation || corr > f.MaxCorrelation {
		return false, fmt.Sprintf("correlation %.3f out of range", corr)
	}

	visible := len(m.PageBrushstrokes(dlmt.DefaultView()))
	ratio := fracgeom.NewFrac(int64(visible), int64(total))
	if ratio.Cmp(f.MinVisibility) < 0 {
		return false, fmt.Sprintf("visibility %s too low", ratio)
	}

	spread := pts.MedianRange(f.MedianRangeEdge)
	if spread.X.Cmp(f.MinSpread) < 0 || spread.Y.Cmp(f.MinSpread) < 0 {
		return false, fmt.Sprintf("spread %s too small", spread)
	}
	return true, ""
}
