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

// Package grammar implements parallel string-rewriting grammars
// (L-systems) together with the genetic operators used to breed them.
//
// A [Game] describes the alphabets, the start string and the rules.
// [Game.Produce] rewrites the start string until enough terminal symbols
// (constants) are present, and [Production.CoreChain] extracts a chain of
// terminal symbols of fixed length from the result.
package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// MaxIterations bounds the number of rewriting passes in [Game.Produce].
const MaxIterations = 100

// Configuration errors.
var (
	ErrNoConstants       = errors.New("no constant symbols")
	ErrInvalidRule       = errors.New("invalid rule")
	ErrAlphabetOverlap   = errors.New("variables and constants overlap")
	ErrUnsupportedLevels = errors.New("unsupported number of levels")
	ErrNoKeys            = errors.New("no key fragments")
	ErrReservedSymbol    = errors.New("symbol in the reserved range")
)

// Rule replaces every occurrence of the variable Search by Replace.
type Rule struct {
	Search  string `yaml:"s"`
	Replace string `yaml:"r"`
}

func (r Rule) String() string {
	return r.Search + ":" + r.Replace
}

// Game is a production grammar.
//
// Every symbol is a single rune.  Variables are rewritten by the rules,
// constants are the terminal symbols which make up the output.
type Game struct {
	Variables   string `yaml:"variables"`
	Constants   string `yaml:"constants"`
	Start       string `yaml:"start"`
	Rules       []Rule `yaml:"rules"`
	ChainLength int    `yaml:"chain-length"`
}

// Validate checks the alphabets and the rules of g.
func (g Game) Validate() error {
	if g.Constants == "" {
		return ErrNoConstants
	}
	symbols := g.Variables + g.Constants + g.Start
	for _, r := range g.Rules {
		symbols += r.Replace
	}
	for _, c := range symbols {
		if c >= sentinelBase {
			return fmt.Errorf("%w: %U", ErrReservedSymbol, c)
		}
	}
	if strings.ContainsAny(g.Variables, g.Constants) {
		return fmt.Errorf("%w: %q and %q", ErrAlphabetOverlap, g.Variables, g.Constants)
	}
	for _, r := range g.Rules {
		if len([]rune(r.Search)) != 1 || !strings.Contains(g.Variables, r.Search) {
			return fmt.Errorf("%w: %s", ErrInvalidRule, r)
		}
	}
	return nil
}

// Equal reports whether g and other have the same alphabets, start
// string and rules.  The chain length is not compared.
func (g Game) Equal(other Game) bool {
	if g.Variables != other.Variables || g.Constants != other.Constants ||
		g.Start != other.Start || len(g.Rules) != len(other.Rules) {
		return false
	}
	for i, r := range g.Rules {
		if r != other.Rules[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of g which does not share the rule list.
func (g Game) Clone() Game {
	g.Rules = append([]Rule(nil), g.Rules...)
	return g
}

func (g Game) String() string {
	rules := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		rules[i] = r.String()
	}
	return fmt.Sprintf("vars %s const %s start %s rules [%s]",
		g.Variables, g.Constants, g.Start, strings.Join(rules, ", "))
}

// sentinelBase is the start of the supplementary private use areas.
// Symbols from there on are reserved for the placeholders used by
// [Game.Produce].
const sentinelBase = 0xF0000

// sentinel returns the placeholder for the i-th rule during a rewriting
// pass.
func sentinel(i int) string {
	return string(rune(sentinelBase + i))
}

// Production is the result of running a [Game].
type Production struct {
	Game       Game
	Chain      string
	Iterations int
}

// Produce applies all rules simultaneously to the start string, until the
// chain holds at least ChainLength constants or [MaxIterations] passes
// have been made.  At least one pass is always made.
func (g Game) Produce() Production {
	var search, hide []string
	for i, r := range g.Rules {
		if r.Search == "" {
			continue
		}
		search = append(search, r.Search, sentinel(i))
		hide = append(hide, sentinel(i), r.Replace)
	}

	chain := g.Start
	i := 0
	for {
		i++
		// hide all variables before inserting any replacement
		for j := 0; j < len(search); j += 2 {
			chain = strings.ReplaceAll(chain, search[j], search[j+1])
		}
		for j := 0; j < len(hide); j += 2 {
			chain = strings.ReplaceAll(chain, hide[j], hide[j+1])
		}
		if i >= MaxIterations || g.countConstants(chain) >= g.ChainLength {
			break
		}
	}
	return Production{Game: g, Chain: chain, Iterations: i}
}

func (g Game) countConstants(chain string) int {
	n := 0
	for _, c := range chain {
		if strings.ContainsRune(g.Constants, c) {
			n++
		}
	}
	return n
}

// CoreChain returns exactly n constants: the constants of the chain,
// repeated cyclically as often as needed.
func (p Production) CoreChain(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	var usable []rune
	for _, c := range p.Chain {
		if strings.ContainsRune(p.Game.Constants, c) {
			usable = append(usable, c)
		}
	}
	if len(usable) == 0 {
		return "", ErrNoConstants
	}
	res := make([]rune, n)
	for i := range res {
		res[i] = usable[i%len(usable)]
	}
	return string(res), nil
}
