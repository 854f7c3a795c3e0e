package types

import "errors"

// Container is the capability every container shape provides. A container
// owns the items it holds; Get hands ownership of one item to the caller.
type Container[T any] interface {
	// Put stores item so that it is retrievable by a later Get. How Put
	// treats an item already held depends on the shape (overwrite or append).
	// Put never fails.
	Put(item T)

	// Get removes and returns the next item in the shape's retrieval order.
	// The second result is false, and the first is T's zero value, when the
	// container holds nothing. Absence is not an error.
	Get() (T, bool)

	// IsEmpty reports whether Get would report absence. It has no side effects.
	IsEmpty() bool
}

// Supported container shape names.
const (
	ShapeBasket = "basket"
	ShapeStack  = "stack"
)

// ShapeNames lists the container shapes in display order.
var ShapeNames = []string{
	ShapeBasket,
	ShapeStack,
}

// Container errors.
var (
	ErrUnknownShape = errors.New("unknown container shape")
)
