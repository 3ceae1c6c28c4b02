// FILE: lixenwraith/sitecore/config/value_test.go
package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapping tests the ordered mapping primitives
func TestMapping(t *testing.T) {
	t.Run("SetKeepsPosition", func(t *testing.T) {
		m := NewMapping()
		m.Set("b", Scalar(1))
		m.Set("a", Scalar(2))
		m.Set("b", Scalar(3))

		assert.Equal(t, []string{"b", "a"}, m.Keys())
		v, ok := m.Get("b")
		require.True(t, ok)
		assert.Equal(t, 3, v.Scalar())
	})

	t.Run("Delete", func(t *testing.T) {
		m := NewMapping()
		m.Set("a", Scalar(1))
		m.Set("b", Scalar(2))
		m.Set("c", Scalar(3))
		m.Delete("b")
		m.Delete("missing")

		assert.Equal(t, []string{"a", "c"}, m.Keys())
		assert.Equal(t, 2, m.Len())
	})

	t.Run("PathAccess", func(t *testing.T) {
		m := NewMapping()
		m.SetPath("server.http.port", Scalar(8080))

		v, ok := m.Lookup("server.http.port")
		require.True(t, ok)
		assert.Equal(t, 8080, v.Scalar())

		v, ok = m.Lookup("server")
		require.True(t, ok)
		assert.Equal(t, KindMapping, v.Kind())

		_, ok = m.Lookup("server.http.port.extra")
		assert.False(t, ok, "cannot descend through a scalar")

		_, ok = m.Lookup("server.missing")
		assert.False(t, ok)

		root, ok := m.Lookup("")
		require.True(t, ok)
		assert.Equal(t, KindMapping, root.Kind())
	})

	t.Run("SetPathReplacesScalarInTheWay", func(t *testing.T) {
		m := NewMapping()
		m.Set("theme", Scalar("hugo"))
		m.SetPath("theme.name", Scalar("hugo"))

		v, ok := m.Lookup("theme.name")
		require.True(t, ok)
		assert.Equal(t, "hugo", v.Scalar())
	})

	t.Run("NilSafeReads", func(t *testing.T) {
		var m *Mapping
		assert.Equal(t, 0, m.Len())
		assert.Nil(t, m.Keys())
		_, ok := m.Lookup("a")
		assert.False(t, ok)
		assert.Empty(t, m.Interface())
		assert.NotPanics(t, func() { m.Walk(func([]string, Value) {}) })
	})

	t.Run("CloneIsDeep", func(t *testing.T) {
		m := NewMapping()
		m.SetPath("a.b", Scalar("x"))
		m.Set("list", Sequence(Scalar("one")))

		clone := m.Clone()
		clone.SetPath("a.b", Scalar("y"))
		clone.Set("list", Sequence())

		v, _ := m.Lookup("a.b")
		assert.Equal(t, "x", v.Scalar())
		v, _ = m.Lookup("list")
		assert.Len(t, v.Items(), 1)
	})

	t.Run("WalkVisitsLeavesInOrder", func(t *testing.T) {
		m := NewMapping()
		m.Set("z", Scalar(1))
		m.SetPath("a.y", Scalar(2))
		m.SetPath("a.x", Null())
		m.Set("list", Sequence(Scalar(1), Scalar(2)))

		var paths []string
		var kinds []Kind
		m.Walk(func(segments []string, v Value) {
			paths = append(paths, strings.Join(segments, "."))
			kinds = append(kinds, v.Kind())
		})

		assert.Equal(t, []string{"z", "a.y", "a.x", "list"}, paths)
		assert.Equal(t, []Kind{KindScalar, KindScalar, KindNull, KindSequence}, kinds)
	})
}

// TestMappingMerge tests both merge directions
func TestMappingMerge(t *testing.T) {
	base := func() *Mapping {
		m := NewMapping()
		m.Set("title", Scalar("base"))
		m.SetPath("content.dir", Scalar("content"))
		m.SetPath("content.ext", Sequence(Scalar("md"), Scalar("markdown")))
		return m
	}
	layer := func() *Mapping {
		m := NewMapping()
		m.SetPath("content.dir", Scalar("src"))
		m.SetPath("content.ext", Sequence(Scalar("txt")))
		m.Set("extra", Scalar(true))
		return m
	}

	t.Run("MergeOverIsDeepAndSourceWins", func(t *testing.T) {
		m := base()
		m.MergeOver(layer())

		assert.Equal(t, map[string]any{
			"title": "base",
			"content": map[string]any{
				"dir": "src",
				"ext": []any{"txt"},
			},
			"extra": true,
		}, m.Interface())
		assert.Equal(t, []string{"title", "content", "extra"}, m.Keys())
	})

	t.Run("MergeUnderKeepsExisting", func(t *testing.T) {
		m := base()
		m.MergeUnder(layer())

		assert.Equal(t, map[string]any{
			"title": "base",
			"content": map[string]any{
				"dir": "content",
				"ext": []any{"md", "markdown"},
			},
			"extra": true,
		}, m.Interface())
	})

	t.Run("MappingOverScalar", func(t *testing.T) {
		m := NewMapping()
		m.Set("theme", Scalar("a"))
		src := NewMapping()
		src.SetPath("theme.name", Scalar("b"))

		m.MergeOver(src)
		v, _ := m.Lookup("theme.name")
		assert.Equal(t, "b", v.Scalar())
	})

	t.Run("MergedValuesAreDetached", func(t *testing.T) {
		src := layer()
		m := base()
		m.MergeOver(src)
		src.SetPath("content.dir", Scalar("changed"))

		v, _ := m.Lookup("content.dir")
		assert.Equal(t, "src", v.Scalar())
	})

	t.Run("NilSource", func(t *testing.T) {
		m := base()
		m.MergeOver(nil)
		m.MergeUnder(nil)
		assert.Equal(t, base().Interface(), m.Interface())
	})
}

// TestFromAny tests conversion of decoded Go data
func TestFromAny(t *testing.T) {
	t.Run("NestedMapSortedKeys", func(t *testing.T) {
		v := FromAny(map[string]any{
			"b": 1,
			"a": map[string]any{"y": "1", "x": nil},
			"c": []any{"one", map[string]any{"k": "v"}},
		})
		require.Equal(t, KindMapping, v.Kind())
		assert.Equal(t, []string{"a", "b", "c"}, v.Mapping().Keys())

		x, ok := v.Mapping().Lookup("a.x")
		require.True(t, ok)
		assert.True(t, x.IsNull())

		c, _ := v.Mapping().Get("c")
		require.Equal(t, KindSequence, c.Kind())
		assert.Equal(t, KindMapping, c.Items()[1].Kind())
	})

	t.Run("TypedCollections", func(t *testing.T) {
		v := FromAny(map[string]int{"b": 2, "a": 1})
		assert.Equal(t, []string{"a", "b"}, v.Mapping().Keys())

		s := FromAny([]string{"x", "y"})
		assert.Equal(t, []any{"x", "y"}, s.Interface())

		assert.True(t, FromAny([]string(nil)).IsNull())
	})

	t.Run("Scalars", func(t *testing.T) {
		assert.True(t, FromAny(nil).IsNull())
		assert.Equal(t, 42, FromAny(42).Scalar())
		assert.Equal(t, "s", FromAny("s").Scalar())

		var p *int
		assert.True(t, FromAny(p).IsNull())
		n := 7
		assert.Equal(t, 7, FromAny(&n).Scalar())
	})

	t.Run("ValueIsCloned", func(t *testing.T) {
		m := NewMapping()
		m.Set("a", Scalar(1))
		v := FromAny(Table(m))
		m.Set("a", Scalar(2))

		a, _ := v.Mapping().Get("a")
		assert.Equal(t, 1, a.Scalar())
	})

	t.Run("ItemsReturnsCopy", func(t *testing.T) {
		v := Sequence(Scalar(1), Scalar(2))
		items := v.Items()
		items[0] = Scalar(99)
		assert.Equal(t, []any{1, 2}, v.Interface())
	})

	t.Run("BytesAreCopied", func(t *testing.T) {
		raw := []byte("abc")
		v := FromAny(raw)
		raw[0] = 'X'
		assert.Equal(t, []byte("abc"), v.Scalar())

		clone := v.Clone()
		clone.Scalar().([]byte)[0] = 'Z'
		assert.Equal(t, []byte("abc"), v.Scalar())

		assert.True(t, FromAny([]byte(nil)).IsNull())
	})
}

// TestConfigReadsAreDetached tests that values read from a Config cannot alter it
func TestConfigReadsAreDetached(t *testing.T) {
	cfg := newTestConfig(map[string]any{"key": []byte("abc")}, noEnv)

	v, ok := cfg.Get("key")
	require.True(t, ok)
	v.([]byte)[0] = 'Z'

	looked, _ := cfg.Lookup("key")
	looked.Scalar().([]byte)[1] = 'Y'

	again, _ := cfg.Get("key")
	assert.Equal(t, []byte("abc"), again)
}
