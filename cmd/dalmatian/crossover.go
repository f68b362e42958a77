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

package main

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/dalmatian/breeding"
)

type crossoverOptions struct {
	config string
	base   string
	out    string
	seed   uint64
	mutate bool
}

func newCrossoverCmd() *cobra.Command {
	opt := &crossoverOptions{}
	cmd := &cobra.Command{
		Use:   "crossover <a.yaml> <b.yaml>",
		Short: "cross two specimens",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrossover(args[0], args[1], opt)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opt.config, "config", "c", "", "experiment configuration (TOML)")
	flags.StringVar(&opt.base, "base", "", "document providing headers, views and brushes")
	flags.StringVarP(&opt.out, "output", "o", "", "output file (default: standard output)")
	flags.Uint64Var(&opt.seed, "seed", 1, "seed of the random number generator")
	flags.BoolVar(&opt.mutate, "mutate", false, "mutate the child after crossing")
	return cmd
}

func runCrossover(aName, bName string, opt *crossoverOptions) error {
	cfg := breeding.DefaultConfig()
	if opt.config != "" {
		var err error
		cfg, err = breeding.ReadConfigFile(opt.config)
		if err != nil {
			return err
		}
	}
	a, err := readFile(aName, breeding.ReadSpecimen)
	if err != nil {
		return err
	}
	b, err := readFile(bName, breeding.ReadSpecimen)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(opt.seed, 0x6461_6c6d_6174))
	base, err := loadBase(rng, cfg, &breedOptions{base: opt.base})
	if err != nil {
		return err
	}
	br := breeding.NewBreeder(cfg, rng, base)
	br.Logger = slog.Default()

	child, ok := br.Crossover(a, b)
	if ok && opt.mutate {
		child, ok = br.Mutate(child)
	}
	if !ok {
		return errors.New("no child passed the fitness test")
	}

	if opt.out == "" {
		return child.Write(os.Stdout)
	}
	return writeFile(opt.out, func(f *os.File) error {
		return child.Write(f)
	})
}
