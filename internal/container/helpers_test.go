package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestAddStringAcceptsAnyShape(t *testing.T) {
	basket := NewBasket("hello")
	stack := NewStack([]string{"hello", "world"})

	AddString(basket, "hi")
	AddString(stack, "there")

	assert.Equal(t, []string{"hi"}, Drain[string](basket))
	assert.Equal(t, []string{"there", "world", "hello"}, Drain[string](stack))
}

func TestPutAll(t *testing.T) {
	s := NewStack[int](nil)
	PutAll[int](s, 1, 2, 3)
	assert.Equal(t, []int{3, 2, 1}, Drain[int](s))

	b := NewEmptyBasket[int]()
	PutAll[int](b, 1, 2, 3)
	assert.Equal(t, []int{3}, Drain[int](b))
}

func TestDrainEmpty(t *testing.T) {
	assert.Empty(t, Drain[string](NewEmptyBasket[string]()))
	assert.Empty(t, Drain[string](&Stack[string]{}))
}

func TestMustGet(t *testing.T) {
	b := NewBasket(5)
	assert.Equal(t, 5, MustGet[int](b, "basket should hold a value"))

	assert.PanicsWithValue(t, "basket should hold a value", func() {
		MustGet[int](b, "basket should hold a value")
	})
}

// emptinessCases drives every shape through the same operation sequence.
func emptinessCases() map[string]types.Container[int] {
	return map[string]types.Container[int]{
		types.ShapeBasket: NewEmptyBasket[int](),
		types.ShapeStack:  NewStack[int](nil),
	}
}

func TestIsEmptyTracksGet(t *testing.T) {
	for name, c := range emptinessCases() {
		t.Run(name, func(t *testing.T) {
			assert.True(t, c.IsEmpty(), "empty after construction")

			c.Put(1)
			assert.False(t, c.IsEmpty(), "not empty after Put")

			for !c.IsEmpty() {
				_, ok := c.Get()
				require.True(t, ok, "IsEmpty false means Get must succeed")
			}

			_, ok := c.Get()
			assert.False(t, ok)
			assert.True(t, c.IsEmpty(), "empty after Get reports absence")
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		shape   string
		initial []string
		want    []string
		wantErr error
	}{
		{
			name:    "stack keeps every initial item",
			shape:   types.ShapeStack,
			initial: []string{"hello", "world"},
			want:    []string{"world", "hello"},
		},
		{
			name:  "empty stack",
			shape: types.ShapeStack,
		},
		{
			name:    "basket keeps the last initial item",
			shape:   types.ShapeBasket,
			initial: []string{"hello", "world"},
			want:    []string{"world"},
		},
		{
			name:  "empty basket",
			shape: types.ShapeBasket,
		},
		{
			name:    "unknown shape",
			shape:   "queue",
			wantErr: types.ErrUnknownShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.shape, tt.initial)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, Drain(c))
		})
	}
}
