// Package catalog implements an ordered, growable collection of media items
// with non-panicking indexed lookup.
package catalog

import (
	"iter"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Entry is one catalog slot: the stored media and the ID minted when it was
// added.
type Entry struct {
	ID    string      // UUID v7, generated on Add.
	Media types.Media // The stored item.
}

// Catalog owns an ordered list of media items. Indices are assigned in
// insertion order and never change because nothing is ever removed.
// A Catalog has a single owner; it does no locking. The zero value is an
// empty catalog ready to use.
type Catalog struct {
	entries []Entry
	newID   func() string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{newID: newUUID}
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Add appends item to the end of the catalog and returns the new entry's ID.
// item must not be nil.
func (c *Catalog) Add(item types.Media) string {
	newID := c.newID
	if newID == nil {
		newID = newUUID
	}
	id := newID()
	c.entries = append(c.entries, Entry{ID: id, Media: item})
	return id
}

// Get returns the item at index i. The second result is false when i is
// outside [0, Len()); Get never panics.
func (c *Catalog) Get(i int) (types.Media, bool) {
	e, ok := c.Entry(i)
	if !ok {
		return nil, false
	}
	return e.Media, true
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index i, or false when i is out of range.
func (c *Catalog) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Find returns the entry whose ID is id and its index.
func (c *Catalog) Find(id string) (Entry, int, bool) {
	for i, e := range c.entries {
		if e.ID == id {
			return e, i, true
		}
	}
	return Entry{}, -1, false
}

// All yields every item with its index, in insertion order.
func (c *Catalog) All() iter.Seq2[int, types.Media] {
	return func(yield func(int, types.Media) bool) {
		for i, e := range c.entries {
			if !yield(i, e.Media) {
				return
			}
		}
	}
}

// GetOr returns the item at index i, or fallback when i is out of range.
func (c *Catalog) GetOr(i int, fallback types.Media) types.Media {
	if m, ok := c.Get(i); ok {
		return m
	}
	return fallback
}

// MustGet returns the item at index i and panics with msg when i is out of
// range. Callers opt into it where a missing item is a programming error;
// Get is the non-panicking form.
func (c *Catalog) MustGet(i int, msg string) types.Media {
	m, ok := c.Get(i)
	if !ok {
		panic(msg)
	}
	return m
}
