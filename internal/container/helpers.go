package container

import "github.com/mesh-intelligence/pantry/pkg/types"

// AddString puts s into any string container, whatever its shape.
func AddString(c types.Container[string], s string) {
	c.Put(s)
}

// PutAll puts each item into c in argument order.
func PutAll[T any](c types.Container[T], items ...T) {
	for _, item := range items {
		c.Put(item)
	}
}

// Drain gets items from c until it reports absence and returns them in
// retrieval order. c is empty afterwards.
func Drain[T any](c types.Container[T]) []T {
	var out []T
	for {
		item, ok := c.Get()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

// MustGet gets the next item from c and panics with msg if c is empty.
// Use it only where an empty container is a programming error.
func MustGet[T any](c types.Container[T], msg string) T {
	item, ok := c.Get()
	if !ok {
		panic(msg)
	}
	return item
}
