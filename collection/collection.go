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

// Package collection keeps track of curator keywords attached to rendered
// images.
//
// A curator looks at the rendered specimens of a generation and tags the
// ones worth keeping.  The tags reach the program either as a
// [Collection], stored as a YAML file, or as tab-separated tag listings
// produced by file-manager tools, parsed by [ParseTagInfo].
package collection

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keywords is a sorted set of keywords without duplicates.
//
// In YAML files, keywords are written as a list.  A single string holding
// comma-separated keywords is also accepted when reading.
type Keywords []string

// NewKeywords returns the set of non-empty keywords, with surrounding white
// space removed.
func NewKeywords(words ...string) Keywords {
	res := make(Keywords, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			res = append(res, w)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// SplitKeywords parses a comma-separated list of keywords.
func SplitKeywords(csv string) Keywords {
	return NewKeywords(strings.Split(csv, ",")...)
}

// Has reports whether w is one of the keywords.
func (k Keywords) Has(w string) bool {
	_, found := slices.BinarySearch(k, w)
	return found
}

// Intersects reports whether k and other have a keyword in common.
func (k Keywords) Intersects(other Keywords) bool {
	for _, w := range other {
		if k.Has(w) {
			return true
		}
	}
	return false
}

// Union returns the keywords present in k or other.
func (k Keywords) Union(other Keywords) Keywords {
	return NewKeywords(slices.Concat(k, other)...)
}

// Difference returns the keywords of k which are not in other.
func (k Keywords) Difference(other Keywords) Keywords {
	res := Keywords{}
	for _, w := range k {
		if !other.Has(w) {
			res = append(res, w)
		}
	}
	return res
}

// Equal reports whether both sets contain the same keywords.
func (k Keywords) Equal(other Keywords) bool {
	return slices.Equal(k, other)
}

// String returns the keywords as a comma-separated list.
func (k Keywords) String() string {
	return strings.Join(k, ",")
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (k *Keywords) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var csv string
		if err := node.Decode(&csv); err != nil {
			return err
		}
		*k = SplitKeywords(csv)
	case yaml.SequenceNode:
		var words []string
		if err := node.Decode(&words); err != nil {
			return err
		}
		*k = NewKeywords(words...)
	default:
		return fmt.Errorf("line %d: keywords must be a list or a string", node.Line)
	}
	return nil
}

// Item is a named entry of a collection, usually an image file name.
type Item struct {
	Name     string   `yaml:"name"`
	Keywords Keywords `yaml:"keywords"`
}

// NewItem returns an item with the given name and keywords.
func NewItem(name string, keywords ...string) Item {
	return Item{Name: name, Keywords: NewKeywords(keywords...)}
}

// HasKeyword reports whether the item is tagged with w.
func (it Item) HasKeyword(w string) bool {
	return it.Keywords.Has(w)
}

// HasKeywords reports whether the item has at least one keyword.
func (it Item) HasKeywords() bool {
	return len(it.Keywords) > 0
}

// Equal reports whether both items have the same name and keywords.
func (it Item) Equal(other Item) bool {
	return it.Name == other.Name && it.Keywords.Equal(other.Keywords)
}

func (it Item) String() string {
	return fmt.Sprintf("%s keywords [%s]", it.Name, strings.Join(it.Keywords, " "))
}

// Collection is an ordered list of items with unique names.
// The zero value is an empty collection ready to use.
type Collection struct {
	items []Item
}

// New returns a collection holding the given items.  Later items replace
// earlier ones with the same name.
func New(items ...Item) *Collection {
	c := &Collection{}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// Items returns a copy of the items, in order.
func (c *Collection) Items() []Item {
	res := make([]Item, len(c.items))
	for i, it := range c.items {
		res[i] = Item{Name: it.Name, Keywords: slices.Clone(it.Keywords)}
	}
	return res
}

// Clone returns an independent copy of c.
func (c *Collection) Clone() *Collection {
	return &Collection{items: c.Items()}
}

// Equal reports whether both collections hold equal items in the same
// order.
func (c *Collection) Equal(other *Collection) bool {
	return slices.EqualFunc(c.items, other.items, Item.Equal)
}

func (c *Collection) index(name string) int {
	return slices.IndexFunc(c.items, func(it Item) bool { return it.Name == name })
}

// Get returns the item with the given name.
func (c *Collection) Get(name string) (Item, bool) {
	i := c.index(name)
	if i < 0 {
		return Item{}, false
	}
	return c.items[i], true
}

// Add appends an item to the collection.  An existing item with the same
// name is removed first.
func (c *Collection) Add(it Item) *Collection {
	c.Remove(it.Name)
	it.Keywords = NewKeywords(it.Keywords...)
	c.items = append(c.items, it)
	return c
}

// Remove deletes the item with the given name, if present.
func (c *Collection) Remove(name string) *Collection {
	c.items = slices.DeleteFunc(c.items, func(it Item) bool { return it.Name == name })
	return c
}

// SetKeywords replaces the keywords of the named item.  The item is
// created if needed, and moves to the end of the collection.
func (c *Collection) SetKeywords(name string, keywords ...string) *Collection {
	return c.Add(NewItem(name, keywords...))
}

// AddKeywords adds keywords to the named item.
func (c *Collection) AddKeywords(name string, keywords ...string) *Collection {
	it, _ := c.Get(name)
	return c.SetKeywords(name, it.Keywords.Union(keywords)...)
}

// RemoveKeywords removes keywords from the named item.
func (c *Collection) RemoveKeywords(name string, keywords ...string) *Collection {
	it, _ := c.Get(name)
	return c.SetKeywords(name, it.Keywords.Difference(NewKeywords(keywords...))...)
}

// AddKeywordsForAll adds keywords to every item, keeping the order.
func (c *Collection) AddKeywordsForAll(keywords ...string) *Collection {
	for i := range c.items {
		c.items[i].Keywords = c.items[i].Keywords.Union(keywords)
	}
	return c
}

// RemoveKeywordsForAll removes keywords from every item, keeping the order.
func (c *Collection) RemoveKeywordsForAll(keywords ...string) *Collection {
	del := NewKeywords(keywords...)
	for i := range c.items {
		c.items[i].Keywords = c.items[i].Keywords.Difference(del)
	}
	return c
}

// FindMatchingNames returns the names of the items tagged with at least
// one of the keywords.
func (c *Collection) FindMatchingNames(keywords ...string) []string {
	return c.names(NewKeywords(keywords...), true)
}

// FindNotMatchingNames returns the names of the items tagged with none of
// the keywords.
func (c *Collection) FindNotMatchingNames(keywords ...string) []string {
	return c.names(NewKeywords(keywords...), false)
}

func (c *Collection) names(keywords Keywords, match bool) []string {
	res := []string{}
	for _, it := range c.items {
		if it.Keywords.Intersects(keywords) == match {
			res = append(res, it.Name)
		}
	}
	return res
}

// Merge returns a new collection with the items of c followed by the items
// of other.  Items of other replace items of c with the same name.
func (c *Collection) Merge(other *Collection) *Collection {
	return New(slices.Concat(c.Items(), other.Items())...)
}

// Split divides the collection into the items tagged with at least one of
// the keywords, and the rest.
func (c *Collection) Split(keywords ...string) (matching, rest *Collection) {
	keys := NewKeywords(keywords...)
	matching, rest = &Collection{}, &Collection{}
	for _, it := range c.Items() {
		if it.Keywords.Intersects(keys) {
			matching.items = append(matching.items, it)
		} else {
			rest.items = append(rest.items, it)
		}
	}
	return matching, rest
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (c *Collection) MarshalYAML() (any, error) {
	return c.Items(), nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (c *Collection) UnmarshalYAML(node *yaml.Node) error {
	var items []Item
	if err := node.Decode(&items); err != nil {
		return err
	}
	*c = *New(items...)
	return nil
}

// Read decodes a collection from YAML.
func Read(r io.Reader) (*Collection, error) {
	c := &Collection{}
	err := yaml.NewDecoder(r).Decode(c)
	if err == io.EOF {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Write encodes the collection as YAML.
func (c *Collection) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
