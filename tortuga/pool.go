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

package tortuga

import (
	"math/rand/v2"

	"seehuhn.de/go/dalmatian/fracgeom"
)

// Pool holds the values from which turtle configurations are sampled.
// The counts give the length of the sampled cycles; a count of zero or
// more than the pool size uses the whole pool.
type Pool struct {
	XY             fracgeom.V2d      `toml:"xy" yaml:"xy"`
	Angles         fracgeom.FracList `toml:"angles" yaml:"angles"`
	AngleCount     int               `toml:"angle-count" yaml:"angle-count"`
	Magnitudes     fracgeom.FracList `toml:"magnitudes" yaml:"magnitudes"`
	MagnitudeCount int               `toml:"magnitude-count" yaml:"magnitude-count"`
	BrushIDs       []string          `toml:"brushes" yaml:"brushes"`
	BrushCount     int               `toml:"brush-count" yaml:"brush-count"`
	TagIDs         []string          `toml:"tags" yaml:"tags"`
	TagCount       int               `toml:"tag-count" yaml:"tag-count"`

	MagnitudePageRatio  fracgeom.Frac `toml:"magnitude-page-ratio" yaml:"magnitude-page-ratio"`
	ScaleMagnitudeRatio fracgeom.Frac `toml:"scale-magnitude-ratio" yaml:"scale-magnitude-ratio"`
	AngleOffset         fracgeom.Frac `toml:"angle-offset" yaml:"angle-offset"`
}

// DefaultPool returns a pool which samples from the lists of
// [DefaultConfig].
func DefaultPool() Pool {
	c := DefaultConfig()
	return Pool{
		XY:                  c.XY,
		Angles:              c.Angles,
		Magnitudes:          c.Magnitudes,
		BrushIDs:            c.BrushIDs,
		TagIDs:              c.TagIDs,
		MagnitudePageRatio:  c.MagnitudePageRatio,
		ScaleMagnitudeRatio: c.ScaleMagnitudeRatio,
		AngleOffset:         c.AngleOffset,
	}
}

// Validate checks that none of the lists of the pool is empty.
func (p Pool) Validate() error {
	cfg := Config{
		Angles:     p.Angles,
		Magnitudes: p.Magnitudes,
		BrushIDs:   p.BrushIDs,
		TagIDs:     p.TagIDs,
	}
	return cfg.Validate()
}

// Sample returns a configuration for the given chain, with cycles drawn
// at random from the pool.
func (p Pool) Sample(rng *rand.Rand, chain string) (Config, error) {
	cfg := Config{
		Chain:               chain,
		XY:                  p.XY,
		Angles:              p.Angles.Sample(rng, count(p.AngleCount, len(p.Angles))),
		Magnitudes:          p.Magnitudes.Sample(rng, count(p.MagnitudeCount, len(p.Magnitudes))),
		BrushIDs:            sampleStrings(rng, p.BrushIDs, count(p.BrushCount, len(p.BrushIDs))),
		TagIDs:              sampleStrings(rng, p.TagIDs, count(p.TagCount, len(p.TagIDs))),
		MagnitudePageRatio:  p.MagnitudePageRatio,
		ScaleMagnitudeRatio: p.ScaleMagnitudeRatio,
		AngleOffset:         p.AngleOffset,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func count(n, size int) int {
	if n <= 0 || n > size {
		return size
	}
	return n
}

func sampleStrings(rng *rand.Rand, pool []string, n int) []string {
	res := make([]string, n)
	for i, j := range rng.Perm(len(pool))[:n] {
		res[i] = pool[j]
	}
	return res
}
