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
	"strings"

	"seehuhn.de/go/dalmatian/fracgeom"
)

// TagRule decides how a view uses its tag list.
type TagRule int

const (
	// AllBut accepts the brushstrokes which carry none of the view's tags.
	AllBut TagRule = iota

	// NoneBut accepts the brushstrokes which carry at least one of the
	// view's tags.  With an empty tag list, only untagged brushstrokes are
	// accepted.
	NoneBut
)

func (r TagRule) String() string {
	if r == NoneBut {
		return "none but"
	}
	return "all but"
}

// FlagOutside is the view flag which drops brushstrokes placed outside the
// view rectangle.
const FlagOutside = 'o'

// View selects a rectangle of the page and a subset of the brushstrokes.
type View struct {
	ID          string
	Lang        string
	XY          fracgeom.V2d
	Width       fracgeom.Frac
	Height      fracgeom.Frac
	Flags       string
	Rule        TagRule
	Tags        []string
	Description string
}

// ParseView parses a view line.  The older form without flags and tags,
// "view i:1 lang en xy 0 0 width 1 height 1 -> everything", is accepted
// as well and is equivalent to "flags - tags all but [ ]".
func ParseView(line string) (View, error) {
	head, description, ok := splitDescription(line)
	if !ok {
		return View{}, malformed(line, "missing description")
	}

	var rule TagRule
	var tags []string
	if before, after, found := strings.Cut(head, " tags "); found {
		head = before
		switch {
		case strings.HasPrefix(after, "all but "):
			rule = AllBut
		case strings.HasPrefix(after, "none but "):
			rule = NoneBut
		default:
			return View{}, malformed(line, "unknown tag rule")
		}
		list, rest, ok := parseList(after[strings.Index(after, "but ")+4:])
		if !ok || rest != "" {
			return View{}, malformed(line, "invalid tag list")
		}
		tags = list
	}

	fields := strings.Fields(head)
	flags := ""
	if n := len(fields); n >= 2 && fields[n-2] == "flags" {
		if fields[n-1] != "-" {
			flags = fields[n-1]
		}
		fields = fields[:n-2]
	}
	v, err := expectKeys(line, fields,
		"view", "", "lang", "", "xy", "", "", "width", "", "height", "")
	if err != nil {
		return View{}, err
	}
	if err := checkLanguage(line, v[1]); err != nil {
		return View{}, err
	}

	var nums [4]fracgeom.Frac
	for i, s := range v[2:] {
		nums[i], err = fracgeom.ParseFrac(s)
		if err != nil {
			return View{}, lineError(line, err)
		}
	}
	if nums[2].Sign() <= 0 || nums[3].Sign() <= 0 {
		return View{}, malformed(line, "view size must be positive")
	}

	return View{
		ID:          v[0],
		Lang:        v[1],
		XY:          fracgeom.V2d{X: nums[0], Y: nums[1]},
		Width:       nums[2],
		Height:      nums[3],
		Flags:       flags,
		Rule:        rule,
		Tags:        tagSet(tags),
		Description: description,
	}, nil
}

// MustParseView is like [ParseView] but panics on invalid input.
func MustParseView(line string) View {
	v, err := ParseView(line)
	if err != nil {
		panic(err)
	}
	return v
}

func (v View) String() string {
	flags := v.Flags
	if flags == "" {
		flags = "-"
	}
	return fmt.Sprintf("view %s lang %s xy %s width %s height %s flags %s tags %s %s -> %s",
		v.ID, v.Lang, v.XY, v.Width, v.Height, flags, v.Rule, formatList(tagSet(v.Tags)), v.Description)
}

// Equal reports whether v and other describe the same view.
func (v View) Equal(other View) bool {
	return v.String() == other.String()
}

// Rect returns the page rectangle covered by v.
func (v View) Rect() fracgeom.Rect {
	return fracgeom.Rect{XY: v.XY, Width: v.Width, Height: v.Height}
}

// IsEmpty reports whether the view rectangle has no area.  Nothing can be
// shown in an empty view.
func (v View) IsEmpty() bool {
	return v.Width.Sign() <= 0 || v.Height.Sign() <= 0
}

// HasFlag reports whether the given flag letter is set.
func (v View) HasFlag(flag rune) bool {
	return strings.ContainsRune(v.Flags, flag)
}

// AcceptTags reports whether a brushstroke with the given tags is shown in
// this view.
func (v View) AcceptTags(tags []string) bool {
	if v.Rule == NoneBut {
		if len(v.Tags) == 0 {
			return len(tags) == 0
		}
		return intersects(tags, v.Tags)
	}
	return !intersects(tags, v.Tags)
}

// Accept reports whether the brushstroke s is shown in this view.
func (v View) Accept(s Brushstroke) bool {
	if !v.AcceptTags(s.Tags) {
		return false
	}
	return !v.HasFlag(FlagOutside) || v.Rect().Contains(s.XY)
}

// Zoom maps a page point into the coordinates of the view, where the view
// rectangle has width 1 and its lower left corner is at the origin.
func (v View) Zoom(p fracgeom.V2d) fracgeom.V2d {
	return p.Sub(v.XY).Mul(v.zoomFactor())
}

func (v View) zoomFactor() fracgeom.Frac {
	return fracgeom.Int(1).Div(v.Width)
}
