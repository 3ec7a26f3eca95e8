package multiselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chipselect/internal/core/selection"
)

func TestChoiceList_Render(t *testing.T) {
	src := selection.NewSource("s", []selection.Item{
		{Label: "Red"},
		{Label: "Green", Selected: true},
	})
	l := NewChoiceList(src, 0, nil)
	l.Filter("zzz")

	l.Render()

	rows := l.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, ChoiceRow{Label: "Red", Visible: true}, rows[0])
	assert.Equal(t, ChoiceRow{Label: "Green", Checked: true, Visible: true}, rows[1])
	assert.Equal(t, 0, l.Cursor())
}

func TestChoiceList_ClickOrder(t *testing.T) {
	src := selection.NewSource("s", []selection.Item{{Label: "a"}, {Label: "b"}})

	var seen []bool
	var l *ChoiceList
	l = NewChoiceList(src, 0, func(i int) {
		row, _ := l.Row(i)
		// Source and row already agree when the callback runs.
		seen = append(seen, src.IsSelected(i), row.Checked)
	})

	l.Click(1)
	l.Click(1)
	l.Click(5)

	assert.Equal(t, []bool{true, true, false, false}, seen)
}

func TestChoiceList_Sync(t *testing.T) {
	src := selection.NewSource("s", []selection.Item{{Label: "a", Selected: true}})
	l := NewChoiceList(src, 0, nil)

	src.SetSelected(0, false)
	row, _ := l.Row(0)
	assert.True(t, row.Checked, "rows are not live")

	l.Sync(0)
	row, _ = l.Row(0)
	assert.False(t, row.Checked)

	l.Sync(-1)
	l.Sync(3)
}

func TestChoiceList_FilterMovesCursor(t *testing.T) {
	src := selection.NewSource("s", []selection.Item{
		{Label: "Red"}, {Label: "Green"}, {Label: "Blue"},
	})
	l := NewChoiceList(src, 0, nil)
	require.Equal(t, 0, l.Cursor())

	l.Filter("bl")
	assert.Equal(t, 2, l.Cursor())

	l.Filter("nothing")
	assert.Equal(t, -1, l.Cursor())
	assert.False(t, l.CursorDown())
	assert.False(t, l.CursorUp())

	l.ClickCursor()
	assert.False(t, src.IsSelected(0))
}

func TestChoiceList_SetCursorIgnoresHidden(t *testing.T) {
	src := selection.NewSource("s", []selection.Item{{Label: "Red"}, {Label: "Blue"}})
	l := NewChoiceList(src, 0, nil)
	l.Filter("blue")

	l.SetCursor(0)
	assert.Equal(t, 1, l.Cursor())
}
