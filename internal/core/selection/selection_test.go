package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColors() *Source {
	return NewSource("colors", []Item{
		{Label: "Red"},
		{Label: "Green", Value: "green"},
		{Label: "Blue", Selected: true},
	})
}

func TestNewSource(t *testing.T) {
	t.Run("value defaults to label", func(t *testing.T) {
		src := newColors()
		it, ok := src.Item(0)
		require.True(t, ok)
		assert.Equal(t, "Red", it.Value)

		it, ok = src.Item(1)
		require.True(t, ok)
		assert.Equal(t, "green", it.Value)
	})

	t.Run("copies input", func(t *testing.T) {
		items := []Item{{Label: "a"}}
		src := NewSource("x", items)
		items[0].Selected = true
		assert.False(t, src.IsSelected(0))
	})

	t.Run("empty", func(t *testing.T) {
		src := NewSource("empty", nil)
		assert.Equal(t, 0, src.Len())
		ids, items := src.Selected()
		assert.Empty(t, ids)
		assert.Empty(t, items)
		assert.Equal(t, []string{}, src.SelectedValues())
	})
}

func TestSource_Toggle(t *testing.T) {
	src := newColors()

	assert.True(t, src.Toggle(0))
	assert.True(t, src.IsSelected(0))
	assert.False(t, src.Toggle(0))
	assert.False(t, src.IsSelected(0))

	// out of range is a no-op
	assert.False(t, src.Toggle(-1))
	assert.False(t, src.Toggle(3))
	assert.False(t, src.IsSelected(3))
}

func TestSource_SetSelected(t *testing.T) {
	src := newColors()

	assert.False(t, src.SetSelected(2, true), "already selected")
	assert.True(t, src.SetSelected(2, false))
	assert.False(t, src.IsSelected(2))
	assert.False(t, src.SetSelected(10, true))
}

func TestSource_SelectedOrder(t *testing.T) {
	src := newColors()
	src.Toggle(1)
	src.Toggle(0)

	ids, items := src.Selected()
	assert.Equal(t, []int{0, 1, 2}, ids)
	require.Len(t, items, 3)
	assert.Equal(t, "Red", items[0].Label)
	assert.Equal(t, "Blue", items[2].Label)
	assert.Equal(t, []string{"Red", "green", "Blue"}, src.SelectedValues())
}

func TestCatalog(t *testing.T) {
	src := newColors()
	cat := NewCatalog(src)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, "Green", cat.Label(1))
	assert.Equal(t, "", cat.Label(7))

	labels := cat.Labels()
	labels[0] = "mutated"
	assert.Equal(t, "Red", cat.Label(0))

	// selection changes never affect the catalog
	src.Toggle(0)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, cat.Labels())
}
