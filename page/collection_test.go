// FILE: lixenwraith/sitecore/page/collection_test.go
package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	t.Run("NewCollectionKeepsLastDuplicate", func(t *testing.T) {
		c := NewCollection(New("a", WithTitle("1")), New("b"), New("a", WithTitle("2")))
		assert.Equal(t, []string{"a", "b"}, c.IDs())
		a, _ := c.Get("a")
		title, _ := a.Title()
		assert.Equal(t, "2", title)
	})

	t.Run("Add", func(t *testing.T) {
		c := NewCollection()
		require.NoError(t, c.Add(New("a")))
		require.NoError(t, c.Add(New("b")))

		err := c.Add(New("a"))
		assert.ErrorIs(t, err, ErrDuplicatePage)
		assert.Contains(t, err.Error(), `"a"`)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("SetReplacesInPlace", func(t *testing.T) {
		c := NewCollection(New("a"), New("b"), New("c"))
		assert.True(t, c.Set(New("b", WithTitle("B"))))
		assert.False(t, c.Set(New("d")))

		assert.Equal(t, []string{"a", "b", "c", "d"}, c.IDs())
		b, _ := c.Get("b")
		assert.True(t, b.HasTitle())
	})

	t.Run("FilterIsNonMutating", func(t *testing.T) {
		c := NewCollection(New("a", WithTitle("x")), New("b"), New("c", WithTitle("y")))
		titled := c.Filter(func(p Page) bool { return p.HasTitle() })

		assert.Equal(t, []string{"a", "c"}, titled.IDs())
		assert.Equal(t, []string{"a", "b", "c"}, c.IDs())

		titled.Set(New("z"))
		assert.False(t, c.Has("z"))
	})

	t.Run("AllIteratesInOrderAndStops", func(t *testing.T) {
		c := NewCollection(New("a"), New("b"), New("c"))

		var seen []string
		for p := range c.All() {
			seen = append(seen, p.ID())
			if p.ID() == "b" {
				break
			}
		}
		assert.Equal(t, []string{"a", "b"}, seen)
	})

	t.Run("PagesAndCloneAreIndependent", func(t *testing.T) {
		c := NewCollection(New("a"), New("b"))

		pages := c.Pages()
		pages[0] = New("zzz")
		assert.Equal(t, []string{"a", "b"}, c.IDs())

		clone := c.Clone()
		clone.Set(New("a", WithTitle("changed")))
		clone.Set(New("c"))

		a, _ := c.Get("a")
		assert.False(t, a.HasTitle())
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 3, clone.Len())
	})

	t.Run("NilCollection", func(t *testing.T) {
		var c *Collection
		assert.Equal(t, 0, c.Len())
		assert.False(t, c.Has("a"))
		_, ok := c.Get("a")
		assert.False(t, ok)
		assert.Nil(t, c.IDs())
		assert.Nil(t, c.Pages())
		assert.Equal(t, 0, c.Clone().Len())
		assert.Equal(t, 0, c.Filter(func(Page) bool { return true }).Len())
		for range c.All() {
			t.Fatal("nil collection yielded a page")
		}
	})

	t.Run("ZeroValueCollection", func(t *testing.T) {
		var c Collection
		assert.False(t, c.Set(New("a")))
		require.NoError(t, c.Add(New("b")))
		assert.Equal(t, []string{"a", "b"}, c.IDs())
	})
}
