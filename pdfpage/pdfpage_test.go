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

package pdfpage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/fracgeom"
)

const testDocument = `section header
header dlmt-version 0.8
header id-urn urn:cid:pdfpage
header page-coordinate-system system cartesian right-dir + up-dir -
header brush-coordinate-system system cartesian right-dir + up-dir - origin-x 1/2 origin-y 1/2
header brush-page-ratio 1/10
--------
section views
view i:1 lang en xy 0 0 width 1 height 1 flags o tags all but [ ] -> everything
--------
section tag-descriptions
--------
section brushes
brush i:1 ext-id brushes:drop path [ M 0 0, Q 1/2 1/2 0 1, T 0 0, Z ]
--------
section brushstrokes
brushstroke i:1 xy 1/2 1/2 scale 1 angle 0 tags [ ]
brushstroke i:1 xy 1/4 1/3 scale 2 angle 1/8 tags [ ]
`

func TestWriteView(t *testing.T) {
	m, err := dlmt.Parse(testDocument)
	if err != nil {
		t.Fatal(err)
	}

	fname := filepath.Join(t.TempDir(), "view.pdf")
	bg := 0.9
	err = WriteView(fname, m, m.Views["i:1"], &Options{Width: 200, Background: &bg})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7")) {
		t.Errorf("missing PDF header, got %q", data[:min(len(data), 16)])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("missing end-of-file marker")
	}
}

func TestWriteViewDefaults(t *testing.T) {
	m, err := dlmt.Parse(testDocument)
	if err != nil {
		t.Fatal(err)
	}
	fname := filepath.Join(t.TempDir(), "default.pdf")
	if err := WriteView(fname, m, m.CroppedView(), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(fname); err != nil {
		t.Error(err)
	}
}

func TestInvalidSize(t *testing.T) {
	m, err := dlmt.Parse(testDocument)
	if err != nil {
		t.Fatal(err)
	}
	fname := filepath.Join(t.TempDir(), "bad.pdf")
	err = WriteView(fname, m, m.Views["i:1"], &Options{Width: -1})
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}

	v := m.Views["i:1"]
	v.Width = fracgeom.Int(0)
	err = WriteView(fname, m, v, nil)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize for an empty view, got %v", err)
	}
}
