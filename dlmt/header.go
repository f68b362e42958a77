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
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"seehuhn.de/go/dalmatian/fracgeom"
)

// Version is the format version written by this package.
const Version = "0.8"

// The supported coordinate systems.
const (
	PageCoordinateSystem  = "system cartesian right-dir + up-dir -"
	BrushCoordinateSystem = "system cartesian right-dir + up-dir - origin-x 1/2 origin-y 1/2"
)

// TextKey identifies a free-form header text or URL.
type TextKey struct {
	Name string
	Lang string
}

func (k TextKey) compare(other TextKey) int {
	return cmp.Or(cmp.Compare(k.Name, other.Name), cmp.Compare(k.Lang, other.Lang))
}

// Headers holds the document-wide settings and metadata.
type Headers struct {
	Version               string
	IDURN                 string
	PageCoordinateSystem  string
	BrushCoordinateSystem string

	// BrushPageRatio is the size of a brush unit in page units.
	BrushPageRatio fracgeom.Frac

	// Prefixes maps namespace prefixes, as used by tag cross-references,
	// to URLs.
	Prefixes map[string]string

	Texts map[TextKey]string
	URLs  map[TextKey]string
}

// NewHeaders returns headers with the supported coordinate systems and the
// given brush to page ratio.
func NewHeaders(brushPageRatio fracgeom.Frac) Headers {
	return Headers{
		Version:               Version,
		PageCoordinateSystem:  PageCoordinateSystem,
		BrushCoordinateSystem: BrushCoordinateSystem,
		BrushPageRatio:        brushPageRatio,
		Prefixes:              map[string]string{},
		Texts:                 map[TextKey]string{},
		URLs:                  map[TextKey]string{},
	}
}

// SetText sets a free-form text, for example the title or the author.
func (h *Headers) SetText(name, lang, value string) {
	if h.Texts == nil {
		h.Texts = map[TextKey]string{}
	}
	h.Texts[TextKey{name, lang}] = value
}

// SetURL sets a free-form URL, for example the license URL.
func (h *Headers) SetURL(name, lang, value string) {
	if h.URLs == nil {
		h.URLs = map[TextKey]string{}
	}
	h.URLs[TextKey{name, lang}] = value
}

// SetPrefix declares a namespace prefix.
func (h *Headers) SetPrefix(name, url string) {
	if h.Prefixes == nil {
		h.Prefixes = map[string]string{}
	}
	h.Prefixes[name] = url
}

// Text returns the text with the given name, in the language which best
// matches lang.
func (h Headers) Text(name, lang string) (string, bool) {
	return lookup(h.Texts, name, lang)
}

// URL returns the URL with the given name, in the language which best
// matches lang.
func (h Headers) URL(name, lang string) (string, bool) {
	return lookup(h.URLs, name, lang)
}

func lookup(m map[TextKey]string, name, lang string) (string, bool) {
	if v, ok := m[TextKey{name, lang}]; ok {
		return v, true
	}

	var keys []TextKey
	for key := range m {
		if key.Name == name {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	slices.SortFunc(keys, TextKey.compare)

	tags := make([]language.Tag, len(keys))
	for i, key := range keys {
		tags[i] = language.Make(key.Lang)
	}
	_, idx, conf := language.NewMatcher(tags).Match(language.Make(lang))
	if conf == language.No {
		idx = 0
	}
	return m[keys[idx]], true
}

// Equal reports whether h and other hold the same values.
func (h Headers) Equal(other Headers) bool {
	return h.Version == other.Version &&
		h.IDURN == other.IDURN &&
		h.PageCoordinateSystem == other.PageCoordinateSystem &&
		h.BrushCoordinateSystem == other.BrushCoordinateSystem &&
		h.BrushPageRatio.Equal(other.BrushPageRatio) &&
		maps.Equal(h.Prefixes, other.Prefixes) &&
		maps.Equal(h.Texts, other.Texts) &&
		maps.Equal(h.URLs, other.URLs)
}

// Lines returns the header lines of the text form.
func (h Headers) Lines() []string {
	var lines []string
	for _, kv := range [][2]string{
		{"dlmt-version", h.Version},
		{"id-urn", h.IDURN},
		{"page-coordinate-system", h.PageCoordinateSystem},
		{"brush-coordinate-system", h.BrushCoordinateSystem},
	} {
		// empty values have no text form
		if kv[1] != "" {
			lines = append(lines, "header "+kv[0]+" "+kv[1])
		}
	}
	lines = append(lines, "header brush-page-ratio "+h.BrushPageRatio.String())
	for _, name := range slices.Sorted(maps.Keys(h.Prefixes)) {
		lines = append(lines, fmt.Sprintf("header prefix %s %s", name, h.Prefixes[name]))
	}
	for _, key := range slices.SortedFunc(maps.Keys(h.Texts), TextKey.compare) {
		lines = append(lines, fmt.Sprintf("header text %s %s -> %s", key.Name, key.Lang, h.Texts[key]))
	}
	for _, key := range slices.SortedFunc(maps.Keys(h.URLs), TextKey.compare) {
		lines = append(lines, fmt.Sprintf("header url %s %s -> %s", key.Name, key.Lang, h.URLs[key]))
	}
	return lines
}

// parseLine applies a single header line to h.
func (h *Headers) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "header" {
		return malformed(line, "expected a header")
	}
	key, rest := fields[1], strings.Join(fields[2:], " ")

	switch key {
	case "dlmt-version":
		h.Version = rest
	case "id-urn":
		h.IDURN = rest
	case "page-coordinate-system":
		if rest != PageCoordinateSystem {
			return lineError(line, fmt.Errorf("%w: %q", ErrCoordinateSystem, rest))
		}
		h.PageCoordinateSystem = rest
	case "brush-coordinate-system":
		if rest != BrushCoordinateSystem {
			return lineError(line, fmt.Errorf("%w: %q", ErrCoordinateSystem, rest))
		}
		h.BrushCoordinateSystem = rest
	case "brush-page-ratio":
		ratio, err := fracgeom.ParseFrac(rest)
		if err != nil {
			return lineError(line, err)
		}
		h.BrushPageRatio = ratio
	case "prefix":
		if len(fields) != 4 {
			return malformed(line, "prefix needs a name and a URL")
		}
		h.SetPrefix(fields[2], fields[3])
	case "text", "url":
		head, value, ok := splitDescription(line)
		parts := strings.Fields(head)
		if !ok || len(parts) != 4 {
			return malformed(line, "%s needs a name, a language and a value", key)
		}
		if err := checkLanguage(line, parts[3]); err != nil {
			return err
		}
		if key == "text" {
			h.SetText(parts[2], parts[3], value)
		} else {
			h.SetURL(parts[2], parts[3], value)
		}
	default:
		return lineError(line, fmt.Errorf("%w: %q", ErrUnknownHeader, key))
	}
	return nil
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
