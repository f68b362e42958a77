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

// Package breeding evolves populations of grammar-driven turtle drawings.
//
// A [Specimen] couples a production grammar with a turtle configuration.
// The [Breeder] creates random specimens, crosses and mutates them, and
// keeps only candidates which pass the [Fitness] predicates.  Every
// generation step makes at most Config.MaxAttempts attempts per
// population slot, so that a badly tuned experiment ends instead of
// looping forever.
package breeding

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"seehuhn.de/go/dalmatian/collection"
	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/grammar"
	"seehuhn.de/go/dalmatian/tortuga"
)

// Breeder generates specimens.
type Breeder struct {
	Config Config
	Rand   *rand.Rand

	// Logger receives progress messages.  If nil, slog.Default() is used.
	Logger *slog.Logger

	// Base provides the headers, views, tag descriptions and brushes of the
	// documents built for fitness evaluation.
	Base *dlmt.Media

	count int
}

// NewBreeder returns a breeder for the given experiment.
func NewBreeder(cfg Config, rng *rand.Rand, base *dlmt.Media) *Breeder {
	return &Breeder{
		Config: cfg,
		Rand:   rng,
		Base:   base,
	}
}

func (b *Breeder) log() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// try calls gen until a candidate passes the fitness test, at most
// MaxAttempts times.
func (b *Breeder) try(op string, gen func() (Specimen, error)) (Specimen, bool) {
	for attempt := 1; attempt <= b.Config.MaxAttempts; attempt++ {
		s, err := gen()
		if err == nil {
			s.Turtle.Chain, err = s.Chain()
		}
		var m *dlmt.Media
		if err == nil {
			m, err = s.Media(b.Base)
		}
		if err != nil {
			b.log().Debug("candidate failed", "op", op, "attempt", attempt, "error", err)
			continue
		}
		if ok, reason := b.Config.Fitness.Evaluate(m); !ok {
			b.log().Debug("candidate rejected", "op", op, "attempt", attempt, "reason", reason)
			continue
		}

		b.count++
		s.ID = fmt.Sprintf("s%d", b.count)
		b.log().Debug("candidate accepted", "op", op, "attempt", attempt, "id", s.ID)
		return s, true
	}
	return Specimen{}, false
}

// NewSpecimen returns a random specimen which passes the fitness test.
// The second return value is false if no such specimen was found.
func (b *Breeder) NewSpecimen() (Specimen, bool) {
	return b.try("new", func() (Specimen, error) {
		g, err := grammar.RandomGame(b.Rand, b.Config.Grammar)
		if err != nil {
			return Specimen{}, err
		}
		cfg, err := b.Config.Turtle.Sample(b.Rand, "")
		if err != nil {
			return Specimen{}, err
		}
		return Specimen{Game: g, Turtle: cfg}, nil
	})
}

// Population returns a new random population.  Slots for which no fit
// specimen is found are dropped, so the result may be shorter than
// Config.Population.
func (b *Breeder) Population() []Specimen {
	var res []Specimen
	for slot := range b.Config.Population {
		s, ok := b.NewSpecimen()
		if !ok {
			b.log().Warn("dropping population slot",
				"slot", slot, "attempts", b.Config.MaxAttempts)
			continue
		}
		res = append(res, s)
	}
	return res
}

// Crossover combines the grammars of x and y, and mixes their turtle
// configurations list by list.
func (b *Breeder) Crossover(x, y Specimen) (Specimen, bool) {
	g := grammar.Crossover(x.Game, y.Game, b.Config.Grammar.ChainLength)
	return b.try("crossover", func() (Specimen, error) {
		return Specimen{Game: g.Clone(), Turtle: b.mixTurtles(x.Turtle, y.Turtle)}, nil
	})
}

// Mutate changes the start string or one rule of the grammar of s.  Half
// of the mutants also get a freshly sampled turtle configuration.
func (b *Breeder) Mutate(s Specimen) (Specimen, bool) {
	return b.try("mutate", func() (Specimen, error) {
		g, err := grammar.Mutate(b.Rand, s.Game, b.Config.Grammar.Levels, b.Config.Grammar.Keys)
		if err != nil {
			return Specimen{}, err
		}
		turtle := s.Turtle
		if b.Rand.IntN(2) == 0 {
			turtle, err = b.Config.Turtle.Sample(b.Rand, "")
			if err != nil {
				return Specimen{}, err
			}
		}
		return Specimen{Game: g, Turtle: turtle}, nil
	})
}

// Breed returns up to n children of randomly chosen pairs of parents.
// Every child is a crossover, and half of the children are mutated in
// addition.
func (b *Breeder) Breed(parents []Specimen, n int) []Specimen {
	if len(parents) == 0 {
		return nil
	}
	var res []Specimen
	for slot := range n {
		x := parents[b.Rand.IntN(len(parents))]
		y := parents[b.Rand.IntN(len(parents))]
		child, ok := b.Crossover(x, y)
		if !ok {
			b.log().Warn("dropping population slot",
				"slot", slot, "parents", []string{x.ID, y.ID})
			continue
		}
		if b.Rand.IntN(2) == 0 {
			if mutant, ok := b.Mutate(child); ok {
				child = mutant
			}
		}
		res = append(res, child)
	}
	return res
}

// NextGeneration selects the parents tagged with keep by the curator and
// breeds a full population from them.
func (b *Breeder) NextGeneration(ctx context.Context, current []Specimen, src collection.TagSource, keep string) ([]Specimen, error) {
	infos, err := src.TagInfos(ctx)
	if err != nil {
		return nil, err
	}
	parents := Select(current, infos, keep)
	b.log().Info("selected parents", "kept", len(parents), "of", len(current), "tag", keep)
	if len(parents) == 0 {
		return nil, fmt.Errorf("no specimen is tagged %q", keep)
	}
	return b.Breed(parents, b.Config.Population), nil
}

// mixTurtles takes each cyclic list from x or y at random.
func (b *Breeder) mixTurtles(x, y tortuga.Config) tortuga.Config {
	pick := func() bool { return b.Rand.IntN(2) == 0 }
	res := x
	if pick() {
		res.Angles = y.Angles
	}
	if pick() {
		res.Magnitudes = y.Magnitudes
	}
	if pick() {
		res.BrushIDs = y.BrushIDs
	}
	if pick() {
		res.TagIDs = y.TagIDs
	}
	res.Angles = slices.Clone(res.Angles)
	res.Magnitudes = slices.Clone(res.Magnitudes)
	res.BrushIDs = slices.Clone(res.BrushIDs)
	res.TagIDs = slices.Clone(res.TagIDs)
	return res
}
