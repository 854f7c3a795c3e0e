package container

import (
	"slices"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Stack is a LIFO container backed by a slice. The zero value is an empty
// stack ready to use.
type Stack[T any] struct {
	items []T
}

var _ types.Container[string] = (*Stack[string])(nil)

// NewStack returns a stack holding a copy of items. The last element of items
// is the first one Get returns.
func NewStack[T any](items []T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

// Put pushes item onto the top of the stack.
func (s *Stack[T]) Put(item T) {
	s.items = append(s.items, item)
}

// Get pops the most recently put item.
func (s *Stack[T]) Get() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	top := s.items[last]
	// Clear the vacated slot so the stack stops referencing the item.
	s.items[last] = zero
	s.items = s.items[:last]
	return top, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds nothing.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
