package catalog_test

import (
	"testing"

	"bookdb/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestOrderedSet(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var s catalog.OrderedSet[string]
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Contains("a"))
		assert.False(t, s.Remove("a"))
		assert.True(t, s.Add("a"))
		assert.Equal(t, []string{"a"}, s.Values())
	})

	t.Run("drops repeats", func(t *testing.T) {
		s := catalog.NewOrderedSet("b", "a", "b", "c", "a")
		assert.Equal(t, []string{"b", "a", "c"}, s.Values())
		assert.False(t, s.Add("c"))
		assert.Equal(t, 3, s.Len())
	})

	t.Run("remove keeps order", func(t *testing.T) {
		s := catalog.NewOrderedSet(1, 2, 3, 4)
		assert.True(t, s.Remove(2))
		assert.Equal(t, []int{1, 3, 4}, s.Values())

		assert.True(t, s.Remove(4))
		assert.True(t, s.Add(2))
		assert.Equal(t, []int{1, 3, 2}, s.Values())
		assert.True(t, s.Contains(3))
		assert.False(t, s.Contains(4))
	})

	t.Run("values is a copy", func(t *testing.T) {
		s := catalog.NewOrderedSet("x", "y")
		v := s.Values()
		v[0] = "z"
		assert.Equal(t, []string{"x", "y"}, s.Values())
	})
}
