package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreSetReplaces(t *testing.T) {
	s := NewStore()
	s.Set("x", []string{"1", "2"})
	s.Set("x", []string{"3"})

	vals, ok := s.Get("x")
	assert.True(t, ok)
	assert.Equal(t, []string{"3"}, vals)
}

func TestStoreAppendExtends(t *testing.T) {
	s := NewStore()
	s.Append("x", []string{"1"})
	s.Append("x", []string{"2", "3"})

	vals, ok := s.Get("x")
	assert.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, vals)
}

// The resulting list equals the operands of the last Set followed by
// every later Append, in order.
func TestStoreAssignAppendAlgebra(t *testing.T) {
	s := NewStore()
	s.Append("x", []string{"a"})
	s.Set("x", []string{"b"})
	s.Append("x", []string{"c"})
	s.Set("x", []string{"d", "e"})
	s.Append("x", []string{"f"})
	s.Append("x", []string{"g"})

	vals, _ := s.Get("x")
	assert.Equal(t, []string{"d", "e", "f", "g"}, vals)
}

func TestStoreEmptyListRegisters(t *testing.T) {
	s := NewStore()
	s.Set("x", nil)

	assert.True(t, s.Has("x"))
	vals, ok := s.Get("x")
	assert.True(t, ok)
	assert.Empty(t, vals)

	joined, ok := s.Join("x", " ")
	assert.True(t, ok)
	assert.Equal(t, "", joined)
}

func TestStoreValuesDoNotShareStorage(t *testing.T) {
	src := []string{"1", "2"}
	s := NewStore()
	s.Set("x", src)
	src[0] = "mutated"

	vals, _ := s.Get("x")
	assert.Equal(t, []string{"1", "2"}, vals)
}

func TestStoreScalar(t *testing.T) {
	s := NewStore()
	s.Set("one", []string{"v"})
	s.Set("two", []string{"a", "b"})
	s.Set("none", nil)

	v, ok := s.Scalar("one")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = s.Scalar("two")
	assert.False(t, ok)
	_, ok = s.Scalar("none")
	assert.False(t, ok)
	_, ok = s.Scalar("missing")
	assert.False(t, ok)
}

func TestStoreNamesSorted(t *testing.T) {
	s := NewStore()
	s.Set("b", []string{"1"})
	s.Set("a", []string{"1"})
	s.Set("c", []string{"1"})

	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
}
