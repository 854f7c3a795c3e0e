// Package container implements the container shapes that satisfy
// types.Container, plus helpers written once against the capability.
package container

import "github.com/mesh-intelligence/pantry/pkg/types"

// Basket holds at most one item. Put replaces whatever the basket holds;
// the replaced item is dropped, not returned.
type Basket[T any] struct {
	item T
	full bool
}

var _ types.Container[string] = (*Basket[string])(nil)

// NewBasket returns a basket pre-loaded with item.
func NewBasket[T any](item T) *Basket[T] {
	return &Basket[T]{item: item, full: true}
}

// NewEmptyBasket returns a basket holding nothing.
func NewEmptyBasket[T any]() *Basket[T] {
	return &Basket[T]{}
}

// Put stores item, discarding any item already held.
func (b *Basket[T]) Put(item T) {
	b.item = item
	b.full = true
}

// Get takes the item out of the basket, leaving it empty.
func (b *Basket[T]) Get() (T, bool) {
	var zero T
	if !b.full {
		return zero, false
	}
	item := b.item
	b.item = zero
	b.full = false
	return item, true
}

// IsEmpty reports whether the basket holds nothing.
func (b *Basket[T]) IsEmpty() bool {
	return !b.full
}
