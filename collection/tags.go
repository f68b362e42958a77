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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"
)

// Default file name parts of rendered specimens, as in "eval-7.png".
const (
	DefaultPrefix    = "eval-"
	DefaultExtension = ".png"
)

// ErrTagLine is returned for tag listing lines which cannot be parsed.
var ErrTagLine = errors.New("malformed tag line")

// TagInfo gives the curator tags of the specimen with the given number.
type TagInfo struct {
	ID   int
	Tags Keywords
}

// Equal reports whether both values have the same ID and tags.
func (t TagInfo) Equal(other TagInfo) bool {
	return t.ID == other.ID && t.Tags.Equal(other.Tags)
}

func (t TagInfo) String() string {
	return fmt.Sprintf("%d tags [%s]", t.ID, strings.Join(t.Tags, " "))
}

// SpecimenID extracts the specimen number from a file name like
// "renders/eval-07.png".
func SpecimenID(fname, prefix, ext string) (int, error) {
	base := path.Base(strings.TrimSpace(fname))
	base = strings.TrimSuffix(strings.TrimPrefix(base, prefix), ext)
	id, err := strconv.Atoi(base)
	if err != nil {
		return 0, fmt.Errorf("%w: file name %q", ErrTagLine, fname)
	}
	return id, nil
}

// ParseTagInfo parses a line of the form "eval-07.png\tblue, yellow"
// where the part before the tab is a file name and the part after the tab
// a comma-separated list of tags.
func ParseTagInfo(line, prefix, ext string) (TagInfo, error) {
	fname, csv, ok := strings.Cut(line, "\t")
	if !ok || strings.Contains(csv, "\t") {
		return TagInfo{}, fmt.Errorf("%w: %q", ErrTagLine, line)
	}
	id, err := SpecimenID(fname, prefix, ext)
	if err != nil {
		return TagInfo{}, err
	}
	return TagInfo{ID: id, Tags: SplitKeywords(csv)}, nil
}

// ParseTagInfos parses a tag listing.  Lines without a tab character are
// ignored.
func ParseTagInfos(lines []string, prefix, ext string) ([]TagInfo, error) {
	var res []TagInfo
	for i, line := range lines {
		if !strings.Contains(line, "\t") {
			continue
		}
		info, err := ParseTagInfo(line, prefix, ext)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		res = append(res, info)
	}
	return res, nil
}

// ReadTagInfos reads a tag listing from r.
func ReadTagInfos(r io.Reader, prefix, ext string) ([]TagInfo, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseTagInfos(lines, prefix, ext)
}

// TagSource provides the curator tags for the specimens of a generation.
type TagSource interface {
	TagInfos(ctx context.Context) ([]TagInfo, error)
}

// FileSource reads tags from a tag listing file, as written by
// file-manager tools.
type FileSource struct {
	Path   string
	Prefix string
	Ext    string
}

// TagInfos implements the [TagSource] interface.
func (s *FileSource) TagInfos(ctx context.Context) ([]TagInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fd, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return ReadTagInfos(fd, s.Prefix, s.Ext)
}

// CollectionSource derives tags from the item names and keywords of a
// collection.  Items whose name is not a specimen file name are skipped.
type CollectionSource struct {
	Collection *Collection
	Prefix     string
	Ext        string
}

// TagInfos implements the [TagSource] interface.
func (s *CollectionSource) TagInfos(ctx context.Context) ([]TagInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var res []TagInfo
	for _, it := range s.Collection.items {
		id, err := SpecimenID(it.Name, s.Prefix, s.Ext)
		if err != nil {
			continue
		}
		res = append(res, TagInfo{ID: id, Tags: slices.Clone(it.Keywords)})
	}
	return res, nil
}

// FromTagInfos returns a collection with one item per specimen, named
// after its file.
func FromTagInfos(infos []TagInfo, prefix, ext string) *Collection {
	c := &Collection{}
	for _, info := range infos {
		c.Add(Item{Name: prefix + strconv.Itoa(info.ID) + ext, Keywords: info.Tags})
	}
	return c
}
