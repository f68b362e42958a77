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

package grammar

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Bounds for the levels parameter of [RandomValue].
const (
	MinLevels = 2
	MaxLevels = 5
)

// RandomValue returns a random start string or rule replacement.  The
// value is a random key fragment, joined in random order with a random
// combination of 2 to levels variables.
func RandomValue(rng *rand.Rand, variables string, levels int, keys []string) (string, error) {
	if levels < MinLevels || levels > MaxLevels {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedLevels, levels)
	}
	if len(keys) == 0 {
		return "", ErrNoKeys
	}
	vars := []rune(variables)
	if len(vars) == 0 {
		return "", fmt.Errorf("%w: no variables", ErrInvalidRule)
	}

	n := MinLevels + rng.IntN(levels-MinLevels+1)
	var combo strings.Builder
	for range n {
		combo.WriteRune(vars[rng.IntN(len(vars))])
	}
	key := keys[rng.IntN(len(keys))]
	if rng.IntN(2) == 0 {
		return key + combo.String(), nil
	}
	return combo.String() + key, nil
}

// Template describes the shape of randomly generated grammars.
type Template struct {
	Variables   string   `yaml:"variables" toml:"variables"`
	Constants   string   `yaml:"constants" toml:"constants"`
	Keys        []string `yaml:"keys" toml:"keys"`
	Levels      int      `yaml:"levels" toml:"levels"`
	ChainLength int      `yaml:"chain-length" toml:"chain-length"`
}

// RandomGame returns a grammar with a random start string and one random
// rule for every variable.
func RandomGame(rng *rand.Rand, t Template) (Game, error) {
	g := Game{
		Variables:   t.Variables,
		Constants:   t.Constants,
		ChainLength: t.ChainLength,
	}
	if err := g.Validate(); err != nil {
		return Game{}, err
	}

	start, err := RandomValue(rng, t.Variables, t.Levels, t.Keys)
	if err != nil {
		return Game{}, err
	}
	g.Start = start
	for _, v := range t.Variables {
		repl, err := RandomValue(rng, t.Variables, t.Levels, t.Keys)
		if err != nil {
			return Game{}, err
		}
		g.Rules = append(g.Rules, Rule{Search: string(v), Replace: repl})
	}
	return g, nil
}

// Mutate returns a copy of g in which either the start string or the
// replacement of one rule is replaced by a fresh random value.
func Mutate(rng *rand.Rand, g Game, levels int, keys []string) (Game, error) {
	value, err := RandomValue(rng, g.Variables, levels, keys)
	if err != nil {
		return Game{}, err
	}
	res := g.Clone()
	i := rng.IntN(len(res.Rules) + 1)
	if i == 0 {
		res.Start = value
	} else {
		res.Rules[i-1].Replace = value
	}
	return res, nil
}
