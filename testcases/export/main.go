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

// Command export writes the test cases as specimen files and as dlmt
// documents.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/dalmatian"
	"seehuhn.de/go/dalmatian/breeding"
	"seehuhn.de/go/dalmatian/testcases"
)

const outDir = "testdata/specimens"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(name, tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(name string, tc testcases.TestCase) error {
	s := breeding.Specimen{
		ID:     name,
		Game:   tc.Game,
		Turtle: tc.Turtle,
	}
	chain, err := s.Chain()
	if err != nil {
		return err
	}
	s.Turtle.Chain = chain

	f, err := os.Create(filepath.Join(outDir, name+".yaml"))
	if err != nil {
		return err
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	m, err := dalmatian.Media(tc)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, name+".dlmt"), []byte(m.String()), 0644)
}
