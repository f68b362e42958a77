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
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"seehuhn.de/go/dalmatian/breeding"
	"seehuhn.de/go/dalmatian/collection"
	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/fracgeom"
	"seehuhn.de/go/dalmatian/raster"
)

// baseFileName holds the brushes shared by all specimens of a generation.
const baseFileName = "base.dlmt"

type breedOptions struct {
	config     string
	out        string
	seed       uint64
	base       string
	from       string
	tags       string
	collection string
	keep       string
	width      int
	columns    int
}

func newBreedCmd() *cobra.Command {
	opt := &breedOptions{}
	cmd := &cobra.Command{
		Use:   "breed",
		Short: "generate a new population of specimens",
		Long: "Generate a population of specimens.  Without --from, a random\n" +
			"population is created.  With --from, the specimens of the given\n" +
			"generation which carry the --keep tag are crossed and mutated.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreed(cmd.Context(), opt)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opt.config, "config", "c", "", "experiment configuration (TOML)")
	flags.StringVarP(&opt.out, "output", "o", "", "directory for the new generation")
	flags.Uint64Var(&opt.seed, "seed", 1, "seed of the random number generator")
	flags.StringVar(&opt.base, "base", "", "document providing headers, views and brushes")
	flags.StringVar(&opt.from, "from", "", "directory of the previous generation")
	flags.StringVar(&opt.tags, "tags", "", "tag listing for the previous generation")
	flags.StringVar(&opt.collection, "collection", "", "keyword collection (YAML) for the previous generation")
	flags.StringVar(&opt.keep, "keep", "keep", "tag which marks the parents")
	flags.IntVarP(&opt.width, "width", "w", 300, "width of the preview images")
	flags.IntVar(&opt.columns, "columns", 4, "columns of the contact sheet")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("tags", "collection")
	return cmd
}

func runBreed(ctx context.Context, opt *breedOptions) error {
	cfg := breeding.DefaultConfig()
	if opt.config != "" {
		var err error
		cfg, err = breeding.ReadConfigFile(opt.config)
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(opt.seed, 0x6461_6c6d_6174))

	base, err := loadBase(rng, cfg, opt)
	if err != nil {
		return err
	}

	b := breeding.NewBreeder(cfg, rng, base)
	b.Logger = slog.Default()

	var next []breeding.Specimen
	if opt.from == "" {
		next = b.Population()
	} else {
		current, err := breeding.LoadGeneration(opt.from)
		if err != nil {
			return err
		}
		src, err := tagSource(opt)
		if err != nil {
			return err
		}
		next, err = b.NextGeneration(ctx, current, src, opt.keep)
		if err != nil {
			return err
		}
	}
	if len(next) == 0 {
		return errors.New("no specimen passed the fitness test")
	}

	if err := breeding.SaveGeneration(opt.out, next); err != nil {
		return err
	}
	err = os.WriteFile(filepath.Join(opt.out, baseFileName), []byte(base.String()), 0o644)
	if err != nil {
		return err
	}
	return writePreviews(opt, base, next)
}

// loadBase returns the document which provides the brushes.  It is read
// from --base, from the previous generation, or generated at random.
func loadBase(rng *rand.Rand, cfg breeding.Config, opt *breedOptions) (*dlmt.Media, error) {
	fname := opt.base
	if fname == "" && opt.from != "" {
		fname = filepath.Join(opt.from, baseFileName)
		if _, err := os.Stat(fname); errors.Is(err, fs.ErrNotExist) {
			fname = ""
		}
	}
	if fname != "" {
		return readFile(fname, dlmt.Read)
	}

	m := dlmt.NewMedia(dlmt.NewHeaders(fracgeom.NewFrac(1, 50)))
	m.Headers.SetText("title", "en", "Dalmatian")
	m.AddView(dlmt.DefaultView())
	for i, id := range cfg.Turtle.BrushIDs {
		brush, err := breeding.NewBrush(rng, cfg.Brush, id, "brushes:random-"+strconv.Itoa(i+1))
		if err != nil {
			return nil, err
		}
		m.AddBrush(brush)
	}
	seen := make(map[string]bool)
	for _, id := range cfg.Turtle.TagIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		m.AddTagDescription(dlmt.TagDescription{ID: id, Lang: "en", Description: "tag " + id})
	}
	return m, nil
}

func tagSource(opt *breedOptions) (collection.TagSource, error) {
	switch {
	case opt.tags != "":
		return &collection.FileSource{
			Path:   opt.tags,
			Prefix: collection.DefaultPrefix,
			Ext:    collection.DefaultExtension,
		}, nil
	case opt.collection != "":
		c, err := readFile(opt.collection, collection.Read)
		if err != nil {
			return nil, err
		}
		return &collection.CollectionSource{
			Collection: c,
			Prefix:     collection.DefaultPrefix,
			Ext:        collection.DefaultExtension,
		}, nil
	default:
		return nil, errors.New("--from needs --tags or --collection")
	}
}

// writePreviews writes a document and a PNG image for every specimen,
// and a contact sheet of all images.
func writePreviews(opt *breedOptions, base *dlmt.Media, specimens []breeding.Specimen) error {
	var images []image.Image
	for i, s := range specimens {
		m, err := s.Media(base)
		if err != nil {
			return fmt.Errorf("%s: %w", s.ID, err)
		}
		name := filepath.Join(opt.out, breeding.SpecimenFileName(i))
		if err := os.WriteFile(name+".dlmt", []byte(m.String()), 0o644); err != nil {
			return err
		}

		img, err := raster.Render(m, dlmt.DefaultView(), opt.width)
		if err != nil {
			return err
		}
		err = writeFile(name+collection.DefaultExtension, func(f *os.File) error {
			return raster.WritePNG(f, img)
		})
		if err != nil {
			return err
		}
		images = append(images, img)
	}

	sheet, err := raster.ContactSheet(images, opt.columns, opt.width/2)
	if err != nil {
		return err
	}
	sheetName := filepath.Join(opt.out, "sheet.png")
	err = writeFile(sheetName, func(f *os.File) error {
		return raster.WritePNG(f, sheet)
	})
	if err != nil {
		return err
	}
	slog.Info("generation written", "dir", opt.out, "specimens", len(specimens))
	return nil
}
