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

package dlmt

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"seehuhn.de/go/dalmatian/fracgeom"
)

// SVGConfig controls the SVG output of a document.
type SVGConfig struct {
	// ViewID selects the view to render.  It is ignored if View is set.
	ViewID string
	View   *View

	// Width is the width of the image in pixels.  The height is derived
	// from the aspect ratio of the view.
	Width int

	// Background is the fill color of the page.  If empty, the page is
	// transparent.
	Background string

	// Foreground is the fill color of the brushes, black by default.
	Foreground string
}

func (cfg SVGConfig) view(m *Media) (View, error) {
	if cfg.View != nil {
		return *cfg.View, nil
	}
	v, ok := m.Views[cfg.ViewID]
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrUnknownView, cfg.ViewID)
	}
	return v, nil
}

// WriteSVG renders the brushstrokes shown in a view as an SVG image.
// Every brush becomes a symbol, and every brushstroke a transformed use of
// that symbol.
func (m *Media) WriteSVG(w io.Writer, cfg SVGConfig) error {
	v, err := cfg.view(m)
	if err != nil {
		return err
	}
	if v.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrEmptyView, v.ID)
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("invalid image width %d", cfg.Width)
	}
	fg := cfg.Foreground
	if fg == "" {
		fg = "black"
	}

	width := fracgeom.Int(int64(cfg.Width))
	height := width.Mul(v.Height).Div(v.Width)

	out := bufio.NewWriter(w)
	fmt.Fprintln(out, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`)
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg"`+
		` xmlns:xlink="http://www.w3.org/1999/xlink"`+
		` xmlns:dc="http://purl.org/dc/elements/1.1/"`+
		` xmlns:cc="http://creativecommons.org/ns#"`+
		` xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`+
		` version="1.1" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))

	m.writeMetadata(out, v)

	// Each symbol has the brush unit square, centred on the origin, as its
	// box.  The <use> elements map this box onto itself, so that brush
	// paths reaching outside the square are drawn unchanged.
	brushScale := m.Headers.BrushPageRatio.Mul(width)
	var viewBox, useBox string
	if brushScale.Sign() > 0 {
		lo, size := num(brushScale.Div(fracgeom.Int(-2))), num(brushScale)
		viewBox = fmt.Sprintf(` viewBox="%s %s %s %s"`, lo, lo, size, size)
		useBox = fmt.Sprintf(` x="%s" y="%s" width="%s" height="%s"`, lo, lo, size, size)
	}
	fmt.Fprintln(out, "  <defs>")
	for _, id := range slices.Sorted(maps.Keys(m.Brushes)) {
		fmt.Fprintf(out, `    <symbol id="%s"%s overflow="visible"><path d="%s" fill="%s"/></symbol>`+"\n",
			symbolID(id), viewBox, m.Brushes[id].Path.SVG(brushScale), esc(fg))
	}
	fmt.Fprintln(out, "  </defs>")

	if cfg.Background != "" {
		fmt.Fprintf(out, `  <rect width="%s" height="%s" fill="%s"/>`+"\n",
			num(width), num(height), esc(cfg.Background))
	}

	for _, s := range m.PageBrushstrokes(v) {
		if _, ok := m.Brushes[s.BrushID]; !ok {
			continue
		}
		x := s.XY.X.Mul(width)
		y := height.Sub(s.XY.Y.Mul(width))
		rot := s.Angle.Mul(fracgeom.Int(-360))
		fmt.Fprintf(out, `  <g transform="translate(%s %s) rotate(%s) scale(%s)"><use xlink:href="#%s"%s/></g>`+"\n",
			num(x), num(y), num(rot), num(s.Scale), symbolID(s.BrushID), useBox)
	}

	fmt.Fprintln(out, "</svg>")
	return out.Flush()
}

func (m *Media) writeMetadata(out io.Writer, v View) {
	h := m.Headers
	title, ok := h.Text("title", v.Lang)
	if !ok {
		title, _ = h.Text("name", v.Lang)
	}

	fmt.Fprintln(out, "  <metadata>")
	fmt.Fprintln(out, "    <rdf:RDF>")
	fmt.Fprintln(out, `      <cc:Work rdf:about="">`)
	fmt.Fprintln(out, "        <dc:format>image/svg+xml</dc:format>")
	fmt.Fprintln(out, `        <dc:type rdf:resource="http://purl.org/dc/dcmitype/StillImage"/>`)
	fmt.Fprintf(out, "        <dc:title>%s</dc:title>\n", esc(title))
	if author, ok := h.Text("author", v.Lang); ok {
		fmt.Fprintf(out, "        <dc:creator><cc:Agent><dc:title>%s</dc:title></cc:Agent></dc:creator>\n", esc(author))
	}
	if license, ok := h.URL("license-url", v.Lang); ok {
		fmt.Fprintf(out, `        <cc:license rdf:resource="%s"/>`+"\n", esc(license))
	}
	fmt.Fprintf(out, "        <dc:language>%s</dc:language>\n", esc(language.Make(v.Lang).String()))
	fmt.Fprintln(out, "      </cc:Work>")
	fmt.Fprintln(out, "    </rdf:RDF>")
	fmt.Fprintln(out, "  </metadata>")
}

var symbolReplacer = strings.NewReplacer(":", "-", " ", "-")

func symbolID(brushID string) string {
	return "brush-" + symbolReplacer.Replace(brushID)
}

func num(f fracgeom.Frac) string {
	return strconv.FormatFloat(f.Float64(), 'f', 3, 64)
}

func esc(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
