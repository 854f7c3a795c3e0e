package container

import (
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// New builds the container named by shape and loads initial into it.
// A stack keeps every initial item with the last on top. A basket keeps only
// the last initial item, as if each had been Put in turn.
// Returns ErrUnknownShape for an unrecognized shape name.
func New[T any](shape string, initial []T) (types.Container[T], error) {
	switch shape {
	case types.ShapeBasket:
		if len(initial) == 0 {
			return NewEmptyBasket[T](), nil
		}
		return NewBasket(initial[len(initial)-1]), nil
	case types.ShapeStack:
		return NewStack(initial), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownShape, shape)
	}
}
