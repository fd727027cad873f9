// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// catalog.go - The store's item catalog. Maps lowercase item names to the
// aisle and shelf where they can be found.

package catalog

import "fmt"

// Entry pairs an item name with its place in the store.
type Entry struct {
	Item  string
	Place string
}

// Location is the result of a catalog lookup. Callers branch on Found
// rather than inspecting the rendered text.
type Location struct {
	Item  string
	Place string
	Found bool
}

// String renders the location the way the bot reports it to a shopper.
func (l Location) String() string {
	if l.Found {
		return fmt.Sprintf("The %s is located at %s", l.Item, l.Place)
	}
	return fmt.Sprintf("Sorry, I couldn't find the location for %s. Please check with our staff.", l.Item)
}

// Catalog is an immutable item-to-place lookup table.
type Catalog struct {
	entries []Entry
	places  map[string]string
}

// New builds a Catalog from the given entries. The entries are copied, so
// later changes to the slice do not affect the catalog. A repeated item
// keeps its first place.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		places:  make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.places[e.Item]; dup {
			continue
		}
		c.places[e.Item] = e.Place
		c.entries = append(c.entries, e)
	}
	return c
}

// Locate looks up item by exact, case-sensitive name.
func (c *Catalog) Locate(item string) Location {
	place, ok := c.places[item]
	return Location{Item: item, Place: place, Found: ok}
}

// Items returns a copy of the catalog entries in their configured order.
func (c *Catalog) Items() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports the number of distinct items.
func (c *Catalog) Len() int {
	return len(c.entries)
}
