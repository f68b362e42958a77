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

package collection

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alpha   = NewItem("alpha", "jupiter", "moon")
	bravo   = NewItem("bravo")
	charlie = NewItem("charlie", "moon")
	delta   = NewItem("delta", "saturn")
	golf    = NewItem("golf", "pluto")
	hotel   = NewItem("hotel", "pluto")
)

func alphaDelta() *Collection { return New(alpha, bravo, charlie, delta) }
func golfHotel() *Collection  { return New(golf, hotel) }

func keywordsOf(t *testing.T, c *Collection, name string) Keywords {
	t.Helper()
	it, ok := c.Get(name)
	require.True(t, ok, "missing item %q", name)
	return it.Keywords
}

func TestNewKeywords(t *testing.T) {
	assert.Equal(t, Keywords{"blue", "yellow"}, NewKeywords(" yellow", "blue ", "", "yellow"))
	assert.Equal(t, Keywords{"blue", "yellow"}, SplitKeywords("blue , yellow ,"))
	assert.Equal(t, Keywords{}, SplitKeywords("  "))
	assert.Equal(t, "blue,yellow", SplitKeywords("yellow,blue").String())
}

func TestAdd(t *testing.T) {
	c := alphaDelta().Add(hotel)
	it, ok := c.Get("hotel")
	require.True(t, ok)
	assert.True(t, it.Equal(hotel))
	assert.Equal(t, 5, c.Len())

	// replacing an item keeps names unique
	c.Add(NewItem("alpha", "venus"))
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, Keywords{"venus"}, keywordsOf(t, c, "alpha"))

	_, ok = c.Get("zulu")
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	c := alphaDelta().Remove("bravo")
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Equal(New(alpha, charlie, delta)))

	c.Remove("zulu")
	assert.Equal(t, 3, c.Len())
}

func TestClone(t *testing.T) {
	c := alphaDelta()
	d := c.Clone()
	d.AddKeywordsForAll("moon")
	assert.False(t, keywordsOf(t, c, "bravo").Has("moon"))
	assert.True(t, keywordsOf(t, d, "bravo").Has("moon"))
}

func TestAddKeywords(t *testing.T) {
	c := alphaDelta()
	assert.Equal(t, Keywords{"jupiter", "moon"}, keywordsOf(t, c.AddKeywords("alpha", "moon"), "alpha"))
	assert.Equal(t, Keywords{"earth"}, keywordsOf(t, c.AddKeywords("bravo", "earth"), "bravo"))
	assert.Equal(t, Keywords{"earth", "moon"}, keywordsOf(t, c.AddKeywords("charlie", "earth"), "charlie"))
	assert.Equal(t, Keywords{"new"}, keywordsOf(t, c.AddKeywords("echo", "new"), "echo"))
}

func TestRemoveKeywords(t *testing.T) {
	c := alphaDelta()
	assert.Equal(t, Keywords{"jupiter"}, keywordsOf(t, c.RemoveKeywords("alpha", "moon"), "alpha"))
	assert.Empty(t, keywordsOf(t, c.RemoveKeywords("bravo", "moon"), "bravo"))
	assert.Empty(t, keywordsOf(t, c.RemoveKeywords("charlie", "moon"), "charlie"))
	assert.Equal(t, Keywords{"saturn"}, keywordsOf(t, c.RemoveKeywords("delta", "moon"), "delta"))
}

func TestKeywordsForAll(t *testing.T) {
	c := alphaDelta().AddKeywordsForAll("moon")
	for _, name := range []string{"alpha", "bravo", "charlie", "delta"} {
		it, _ := c.Get(name)
		assert.True(t, it.HasKeyword("moon"), name)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, c.FindMatchingNames("moon"))

	c.RemoveKeywordsForAll("moon")
	for _, name := range []string{"alpha", "bravo", "charlie", "delta"} {
		it, _ := c.Get(name)
		assert.False(t, it.HasKeyword("moon"), name)
	}
	it, _ := c.Get("bravo")
	assert.False(t, it.HasKeywords())
}

func TestFindMatching(t *testing.T) {
	c := alphaDelta()
	assert.Equal(t, []string{"alpha", "charlie"}, c.FindMatchingNames("moon"))
	assert.Equal(t, []string{"bravo", "delta"}, c.FindNotMatchingNames("moon"))
	assert.Equal(t, []string{"delta"}, c.FindMatchingNames("saturn"))
	assert.Empty(t, c.FindMatchingNames("other"))
	assert.Equal(t, []string{"alpha", "charlie", "delta"}, c.FindMatchingNames("moon", "saturn"))
}

func TestMergeAndSplit(t *testing.T) {
	all := New(alpha, bravo, charlie, delta, golf, hotel)
	assert.True(t, alphaDelta().Merge(golfHotel()).Equal(all))

	matching, rest := all.Split("pluto")
	assert.True(t, matching.Equal(golfHotel()), "matching: %v", matching.Items())
	assert.True(t, rest.Equal(alphaDelta()), "rest: %v", rest.Items())
}

func TestYAML(t *testing.T) {
	c := alphaDelta()
	buf := &bytes.Buffer{}
	require.NoError(t, c.Write(buf))

	d, err := Read(buf)
	require.NoError(t, err)
	assert.True(t, c.Equal(d), "got %v", d.Items())
}

func TestReadCommaSeparated(t *testing.T) {
	const text = `- name: alpha
  keywords: moon, jupiter
- name: bravo
  keywords: ""
- name: charlie
  keywords: [moon]
`
	c, err := Read(strings.NewReader(text))
	require.NoError(t, err)
	assert.True(t, c.Equal(New(alpha, bravo, charlie)), "got %v", c.Items())

	empty, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = Read(strings.NewReader("- name: alpha\n  keywords: {a: b}\n"))
	assert.Error(t, err)
}

func TestParseTagInfo(t *testing.T) {
	cases := []struct {
		line string
		want TagInfo
	}{
		{"eval-2.png\tblue,yellow", TagInfo{2, Keywords{"blue", "yellow"}}},
		{"eval-07.png\tblue , yellow ", TagInfo{7, Keywords{"blue", "yellow"}}},
		{"eval-07.png\tblue", TagInfo{7, Keywords{"blue"}}},
		{"eval-07.png\t blue ", TagInfo{7, Keywords{"blue"}}},
		{" eval-07.png\t", TagInfo{7, Keywords{}}},
		{" eval-07.png \t ", TagInfo{7, Keywords{}}},
		{"renders/eval-12.png\tred", TagInfo{12, Keywords{"red"}}},
	}
	for _, tc := range cases {
		got, err := ParseTagInfo(tc.line, DefaultPrefix, DefaultExtension)
		require.NoError(t, err, tc.line)
		assert.True(t, got.Equal(tc.want), "%q: got %v, want %v", tc.line, got, tc.want)
	}

	for _, bad := range []string{"eval-x.png\tred", "eval-1.png", "eval-1.png\ta\tb"} {
		_, err := ParseTagInfo(bad, DefaultPrefix, DefaultExtension)
		assert.ErrorIs(t, err, ErrTagLine, bad)
	}
}

func TestParseTagInfos(t *testing.T) {
	lines := []string{"eval-1.png\t", "eval-2.png\tblue,yellow ", "", "eval-3.png\tred"}
	infos, err := ParseTagInfos(lines, DefaultPrefix, DefaultExtension)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.True(t, infos[0].Equal(TagInfo{1, Keywords{}}))
	assert.True(t, infos[1].Equal(TagInfo{2, Keywords{"blue", "yellow"}}))
	assert.True(t, infos[2].Equal(TagInfo{3, Keywords{"red"}}))

	_, err = ParseTagInfos([]string{"eval-1.png\t", "oops\tred"}, DefaultPrefix, DefaultExtension)
	assert.ErrorIs(t, err, ErrTagLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestTagSources(t *testing.T) {
	ctx := context.Background()

	fname := filepath.Join(t.TempDir(), "tags.txt")
	require.NoError(t, os.WriteFile(fname, []byte("eval-4.svg\tkeep\neval-5.svg\t\n"), 0o644))

	var src TagSource = &FileSource{Path: fname, Prefix: DefaultPrefix, Ext: ".svg"}
	infos, err := src.TagInfos(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.True(t, infos[0].Equal(TagInfo{4, Keywords{"keep"}}))

	c := FromTagInfos(infos, DefaultPrefix, ".svg")
	assert.Equal(t, []string{"eval-4.svg"}, c.FindMatchingNames("keep"))
	c.Add(NewItem("notes.txt", "keep"))

	src = &CollectionSource{Collection: c, Prefix: DefaultPrefix, Ext: ".svg"}
	again, err := src.TagInfos(ctx)
	require.NoError(t, err)
	require.Len(t, again, 2)
	for i := range infos {
		assert.True(t, infos[i].Equal(again[i]))
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = src.TagInfos(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}
