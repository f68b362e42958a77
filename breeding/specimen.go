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
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/dalmatian/collection"
	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/grammar"
	"seehuhn.de/go/dalmatian/tortuga"
)

// Specimen is a member of a population: a grammar whose chain drives a
// turtle.
type Specimen struct {
	ID     string         `yaml:"id"`
	Game   grammar.Game   `yaml:"grammar"`
	Turtle tortuga.Config `yaml:"turtle"`
}

// Chain returns the turtle instructions produced by the grammar.
func (s Specimen) Chain() (string, error) {
	return s.Game.Produce().CoreChain(s.Game.ChainLength)
}

// Brushstrokes runs the turtle on the chain of the specimen.
func (s Specimen) Brushstrokes() ([]dlmt.Brushstroke, error) {
	chain, err := s.Chain()
	if err != nil {
		return nil, err
	}
	cfg := s.Turtle
	cfg.Chain = chain
	p, err := tortuga.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	return p.Produce(), nil
}

// Media returns a document holding the brushstrokes of the specimen.
// Headers, views, tag descriptions and brushes are copied from base.  If
// base has no views, the default view is added.
func (s Specimen) Media(base *dlmt.Media) (*dlmt.Media, error) {
	strokes, err := s.Brushstrokes()
	if err != nil {
		return nil, err
	}

	m := dlmt.NewMedia(base.Headers)
	for _, v := range base.Views {
		m.AddView(v)
	}
	if len(m.Views) == 0 {
		m.AddView(dlmt.DefaultView())
	}
	for _, t := range base.TagDescriptions {
		m.AddTagDescription(t)
	}
	for _, b := range base.Brushes {
		m.AddBrush(b)
	}
	m.AddBrushstrokes(strokes...)
	return m, nil
}

// ReadSpecimen decodes a specimen from YAML.
func ReadSpecimen(r io.Reader) (Specimen, error) {
	var s Specimen
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Specimen{}, err
	}
	return s, nil
}

// Write encodes the specimen as YAML.
func (s Specimen) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// SpecimenFileName returns the base name of the files belonging to the
// specimen at position i of a generation, without extension.
func SpecimenFileName(i int) string {
	return fmt.Sprintf("%s%d", collection.DefaultPrefix, i)
}

// SaveGeneration writes every specimen to a YAML file in dir.  The file
// names encode the position in the list, so that tags attached to
// rendered files can be mapped back by [Select].
func SaveGeneration(dir string, specimens []Specimen) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, s := range specimens {
		fname := filepath.Join(dir, SpecimenFileName(i)+".yaml")
		if err := writeSpecimenFile(fname, s); err != nil {
			return err
		}
	}
	return nil
}

func writeSpecimenFile(fname string, s Specimen) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return s.Write(fd)
}

// LoadGeneration reads the specimens written by [SaveGeneration].
func LoadGeneration(dir string) ([]Specimen, error) {
	var res []Specimen
	for i := 0; ; i++ {
		fname := filepath.Join(dir, SpecimenFileName(i)+".yaml")
		fd, err := os.Open(fname)
		if errors.Is(err, fs.ErrNotExist) {
			break
		} else if err != nil {
			return nil, err
		}
		s, err := ReadSpecimen(fd)
		fd.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		res = append(res, s)
	}
	return res, nil
}

// Select returns the specimens whose curator tags contain keep.  The ID of
// a tag record is the position of the specimen in the list.
func Select(specimens []Specimen, infos []collection.TagInfo, keep string) []Specimen {
	var picked []int
	for _, info := range infos {
		if info.ID < 0 || info.ID >= len(specimens) || !info.Tags.Has(keep) {
			continue
		}
		if !slices.Contains(picked, info.ID) {
			picked = append(picked, info.ID)
		}
	}
	slices.Sort(picked)

	res := make([]Specimen, len(picked))
	for i, id := range picked {
		res[i] = specimens[id]
	}
	return res
}
