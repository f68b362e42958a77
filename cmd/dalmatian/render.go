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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/dalmatian/dlmt"
	"seehuhn.de/go/dalmatian/pdfpage"
	"seehuhn.de/go/dalmatian/raster"
)

type renderOptions struct {
	out        string
	viewID     string
	cropped    bool
	width      int
	background string
}

func newRenderCmd() *cobra.Command {
	opt := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <document.dlmt>",
		Short: "render a view of a document as SVG, PNG or PDF",
		Long: "Render a view of a document.  The output format is chosen by the\n" +
			"extension of the output file: .svg, .png or .pdf.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], opt)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opt.out, "output", "o", "", "output file (default: input name with .svg)")
	flags.StringVar(&opt.viewID, "view", "i:1", "id of the view to render")
	flags.BoolVar(&opt.cropped, "cropped", false, "render the smallest view containing all brushstrokes")
	flags.IntVarP(&opt.width, "width", "w", 600, "image width in pixels (PDF: points)")
	flags.StringVar(&opt.background, "background", "white", "SVG background color, empty for none")
	return cmd
}

func runRender(fname string, opt *renderOptions) error {
	m, err := readFile(fname, dlmt.Read)
	if err != nil {
		return err
	}
	for _, problem := range m.CheckReferences() {
		slog.Warn("unresolved reference", "file", fname, "problem", problem)
	}

	var v dlmt.View
	if opt.cropped {
		v = m.CroppedView()
	} else {
		var ok bool
		v, ok = m.View(opt.viewID)
		if !ok {
			return fmt.Errorf("%s: %w: %q", fname, dlmt.ErrUnknownView, opt.viewID)
		}
	}

	out := opt.out
	if out == "" {
		out = strings.TrimSuffix(fname, filepath.Ext(fname)) + ".svg"
	}
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".svg":
		err = writeFile(out, func(f *os.File) error {
			return m.WriteSVG(f, dlmt.SVGConfig{View: &v, Width: opt.width, Background: opt.background})
		})
	case ".png":
		err = writeFile(out, func(f *os.File) error {
			img, err := raster.Render(m, v, opt.width)
			if err != nil {
				return err
			}
			return raster.WritePNG(f, img)
		})
	case ".pdf":
		err = pdfpage.WriteView(out, m, v, &pdfpage.Options{Width: float64(opt.width)})
	default:
		return fmt.Errorf("%s: unsupported output format %q", out, ext)
	}
	if err != nil {
		return err
	}
	slog.Info("rendered", "view", v.ID, "strokes", len(m.PageBrushstrokes(v)), "output", out)
	return nil
}

// writeFile creates fname and calls write on it.  The file is removed if
// write fails.
func writeFile(fname string, write func(*os.File) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fname)
	}
	return err
}
