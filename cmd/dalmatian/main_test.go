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
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/dalmatian/breeding"
	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/fracgeom"
)

func TestLevelFromFlags(t *testing.T) {
	cases := []struct {
		verbose, quiet bool
		want           slog.Level
	}{
		{false, false, slog.LevelInfo},
		{true, false, slog.LevelDebug},
		{false, true, slog.LevelError},
		{true, true, slog.LevelDebug},
	}
	for _, c := range cases {
		if got := levelFromFlags(c.verbose, c.quiet); got != c.want {
			t.Errorf("levelFromFlags(%t, %t) = %v, want %v", c.verbose, c.quiet, got, c.want)
		}
	}
}

// writeDocument writes a small document with one brushstroke.  If
// broken is set, the brushstroke refers to an undeclared brush.
func writeDocument(t *testing.T, dir string, broken bool) string {
	t.Helper()
	m := dlmt.NewMedia(dlmt.NewHeaders(fracgeom.NewFrac(1, 2)))
	m.AddView(dlmt.DefaultView())
	b, err := dlmt.ParseBrush("brush i:1 ext-id brushes:square path [ M -1/2 -1/2, L 1/2 -1/2, L 1/2 1/2, L -1/2 1/2, Z ]")
	if err != nil {
		t.Fatal(err)
	}
	m.AddBrush(b)
	id := "i:1"
	if broken {
		id = "i:9"
	}
	m.AddBrushstrokes(dlmt.Brushstroke{
		BrushID: id,
		XY:      fracgeom.MustParseV2d("1/2 1/2"),
		Scale:   fracgeom.Int(1),
		Angle:   fracgeom.Int(0),
	})

	fname := filepath.Join(dir, "doc.dlmt")
	if broken {
		fname = filepath.Join(dir, "broken.dlmt")
	}
	if err := os.WriteFile(fname, []byte(m.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func run(args ...string) (string, error) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeDocument(t, dir, false)
	bad := writeDocument(t, dir, true)

	if _, err := run("check", good); err != nil {
		t.Errorf("check of a valid document failed: %v", err)
	}

	out, err := run("check", good, bad)
	if !errors.Is(err, errCheckFailed) {
		t.Errorf("expected errCheckFailed, got %v", err)
	}
	if !strings.Contains(out, "broken.dlmt") || strings.Contains(out, "doc.dlmt") {
		t.Errorf("unexpected report %q", out)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocument(t, dir, false)

	for _, ext := range []string{".svg", ".png", ".pdf"} {
		out := filepath.Join(dir, "out"+ext)
		if _, err := run("render", doc, "-o", out, "-w", "32"); err != nil {
			t.Errorf("%s: %v", ext, err)
			continue
		}
		info, err := os.Stat(out)
		if err != nil {
			t.Errorf("%s: %v", ext, err)
		} else if info.Size() == 0 {
			t.Errorf("%s: empty output", ext)
		}
	}

	if _, err := run("render", doc, "-o", filepath.Join(dir, "out.gif")); err == nil {
		t.Error("expected an error for an unsupported format")
	}
	if _, err := run("render", doc, "--view", "i:7"); !errors.Is(err, dlmt.ErrUnknownView) {
		t.Errorf("expected ErrUnknownView, got %v", err)
	}
}

func TestLoadBase(t *testing.T) {
	cfg := breeding.DefaultConfig()
	cfg.Turtle.BrushIDs = []string{"i:1", "i:2"}
	cfg.Turtle.TagIDs = []string{"", "i:1", "i:1"}
	rng := rand.New(rand.NewPCG(1, 2))

	m, err := loadBase(rng, cfg, &breedOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Brushes) != 2 {
		t.Errorf("expected 2 brushes, got %d", len(m.Brushes))
	}
	if len(m.TagDescriptions) != 1 {
		t.Errorf("expected 1 tag description, got %d", len(m.TagDescriptions))
	}
	if problems := m.CheckReferences(); len(problems) > 0 {
		t.Errorf("unexpected problems: %v", problems)
	}

	// the previous generation provides the base if it has one
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, baseFileName), []byte(m.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	again, err := loadBase(rng, cfg, &breedOptions{from: dir})
	if err != nil {
		t.Fatal(err)
	}
	if again.String() != m.String() {
		t.Error("base was not read from the previous generation")
	}
}
