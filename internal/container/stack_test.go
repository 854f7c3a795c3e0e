package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackLIFO(t *testing.T) {
	var s Stack[string]
	s.Put("a")
	s.Put("b")
	s.Put("c")

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Get()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := s.Get()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
}

func TestNewStackOrder(t *testing.T) {
	s := NewStack([]int{1, 2, 3})
	assert.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top, "last element of the initial slice is on top")

	s.Put(4)
	assert.Equal(t, []int{4, 3, 2, 1}, Drain[int](s))
}

func TestNewStackCopiesInput(t *testing.T) {
	initial := []string{"hello", "world"}
	s := NewStack(initial)

	s.Put("there")
	_, _ = s.Get()
	_, _ = s.Get()
	s.Put("changed")

	assert.Equal(t, []string{"hello", "world"}, initial, "caller's slice must not be modified")
}

func TestStackRoundTrip(t *testing.T) {
	s := NewStack([]string{"hello"})
	s.Put("hi")

	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "hi", got, "Get right after Put returns the item just stored")
}

func TestStackPeekDoesNotRemove(t *testing.T) {
	s := NewStack([]int{7})

	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, s.Len())

	_, _ = s.Get()
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestStackEmptyGet(t *testing.T) {
	s := NewStack[int](nil)
	assert.True(t, s.IsEmpty())

	got, ok := s.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, got)
	assert.True(t, s.IsEmpty(), "a failed Get leaves the stack unchanged")
	assert.Equal(t, 0, s.Len())
}
