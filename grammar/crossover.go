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
	"slices"
	"strings"
)

// Crossover combines two grammars.
//
// The alphabets of the child are the sorted unions of the parents'
// alphabets.  The start strings are spliced together, and so are the
// replacements of rules which both parents have.  Rules which only one
// parent has are passed on unchanged: first the rules of g1 in order, then
// the remaining rules of g2.
func Crossover(g1, g2 Game, length int) Game {
	child := Game{
		Variables:   mergeAlphabets(g1.Variables, g2.Variables),
		Constants:   mergeAlphabets(g1.Constants, g2.Constants),
		Start:       splice(g1.Start, g2.Start),
		ChainLength: length,
	}

	other := make(map[string]string, len(g2.Rules))
	for _, r := range g2.Rules {
		other[r.Search] = r.Replace
	}
	seen := make(map[string]bool, len(g1.Rules))
	for _, r := range g1.Rules {
		seen[r.Search] = true
		if repl, ok := other[r.Search]; ok {
			r.Replace = splice(r.Replace, repl)
		}
		child.Rules = append(child.Rules, r)
	}
	for _, r := range g2.Rules {
		if !seen[r.Search] {
			seen[r.Search] = true
			child.Rules = append(child.Rules, r)
		}
	}
	return child
}

func mergeAlphabets(a, b string) string {
	symbols := []rune(a + b)
	slices.Sort(symbols)
	return string(slices.Compact(symbols))
}

// splice keeps the middle half of s1 and surrounds it with the first and
// the last quarter of s2.  For strings shorter than four symbols the
// quarters are empty; an empty quarter of s1 drops the middle part, while
// an empty last quarter of s2 stands for the whole of s2.
func splice(s1, s2 string) string {
	r1, r2 := []rune(s1), []rune(s2)
	cut1, cut2 := len(r1)/4, len(r2)/4

	var b strings.Builder
	b.WriteString(string(r2[:cut2]))
	if cut1 > 0 {
		b.WriteString(string(r1[cut1 : len(r1)-cut1]))
	}
	if cut2 > 0 {
		b.WriteString(string(r2[len(r2)-cut2:]))
	} else {
		b.WriteString(s2)
	}
	return b.String()
}
