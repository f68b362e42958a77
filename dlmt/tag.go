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
	"fmt"
	"slices"
	"strings"
)

// TagDescription describes the meaning of a tag id in one language.
// SameAs lists equivalent concepts in external vocabularies, written as
// "prefix:name" with a prefix declared in the headers.
type TagDescription struct {
	ID          string
	Lang        string
	SameAs      []string
	Description string
}

// ParseTagDescription parses a tag description line.
func ParseTagDescription(line string) (TagDescription, error) {
	head, description, ok := splitDescription(line)
	if !ok {
		return TagDescription{}, malformed(line, "missing description")
	}
	before, after, ok := strings.Cut(head, " same-as ")
	if !ok {
		return TagDescription{}, malformed(line, "missing same-as list")
	}
	sameAs, rest, ok := parseList(after)
	if !ok || rest != "" {
		return TagDescription{}, malformed(line, "invalid same-as list")
	}
	v, err := expectKeys(line, strings.Fields(before), "tag", "", "lang", "")
	if err != nil {
		return TagDescription{}, err
	}
	if err := checkLanguage(line, v[1]); err != nil {
		return TagDescription{}, err
	}
	return TagDescription{
		ID:          v[0],
		Lang:        v[1],
		SameAs:      sameAs,
		Description: description,
	}, nil
}

func (t TagDescription) String() string {
	return fmt.Sprintf("tag %s lang %s same-as %s -> %s",
		t.ID, t.Lang, formatList(t.SameAs), t.Description)
}

// Equal reports whether t and other are the same description.
func (t TagDescription) Equal(other TagDescription) bool {
	return t.ID == other.ID && t.Lang == other.Lang &&
		t.Description == other.Description && slices.Equal(t.SameAs, other.SameAs)
}

// Prefixes returns the namespace prefixes used by the cross-references.
func (t TagDescription) Prefixes() []string {
	var res []string
	for _, ref := range t.SameAs {
		if prefix, _, ok := strings.Cut(ref, ":"); ok {
			res = append(res, prefix)
		}
	}
	return res
}
