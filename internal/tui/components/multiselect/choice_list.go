package multiselect

import "github.com/colonyops/chipselect/internal/core/selection"

// ChoiceRow is the visual projection of one item. It is derived and is never
// read back as selection state.
type ChoiceRow struct {
	Label   string
	Checked bool
	Visible bool
}

// ChoiceList renders every catalog item as a checkable row.
type ChoiceList struct {
	src      *selection.Source
	rows     []ChoiceRow
	cursor   int // catalog index of the highlighted row, -1 when none is visible
	offset   int // first visible-row position shown when the list is capped
	maxRows  int // 0 means uncapped
	onChange func(i int)
}

// NewChoiceList creates a list over src. onChange runs after every click,
// once the item and its row agree.
func NewChoiceList(src *selection.Source, maxRows int, onChange func(i int)) *ChoiceList {
	l := &ChoiceList{src: src, maxRows: maxRows, onChange: onChange}
	l.Render()
	return l
}

// Render discards all rows and rebuilds them from the source. Every row is
// visible afterwards.
func (l *ChoiceList) Render() {
	l.rows = make([]ChoiceRow, l.src.Len())
	for i := range l.rows {
		it, _ := l.src.Item(i)
		l.rows[i] = ChoiceRow{Label: it.Label, Checked: it.Selected, Visible: true}
	}
	l.offset = 0
	l.cursor = -1
	if len(l.rows) > 0 {
		l.cursor = 0
	}
}

// Click toggles item i: the source flips first, then the row's checked flag,
// then onChange fires.
func (l *ChoiceList) Click(i int) {
	if i < 0 || i >= len(l.rows) {
		return
	}
	l.src.Toggle(i)
	l.rows[i].Checked = !l.rows[i].Checked
	if l.onChange != nil {
		l.onChange(i)
	}
}

// Sync re-reads the checked flag of row i from the source. It is used when
// the selection changed through a path other than Click.
func (l *ChoiceList) Sync(i int) {
	if i < 0 || i >= len(l.rows) {
		return
	}
	l.rows[i].Checked = l.src.IsSelected(i)
}

// Filter applies text to the rows and keeps the cursor on a visible row.
func (l *ChoiceList) Filter(text string) {
	ApplyFilter(text, l.rows)
	l.offset = 0

	if l.cursor >= 0 && l.rows[l.cursor].Visible {
		l.scroll()
		return
	}
	l.cursor = -1
	if visible := l.VisibleIndices(); len(visible) > 0 {
		l.cursor = visible[0]
	}
}

// Rows returns a copy of the current rows.
func (l *ChoiceList) Rows() []ChoiceRow {
	out := make([]ChoiceRow, len(l.rows))
	copy(out, l.rows)
	return out
}

// Row returns row i.
func (l *ChoiceList) Row(i int) (ChoiceRow, bool) {
	if i < 0 || i >= len(l.rows) {
		return ChoiceRow{}, false
	}
	return l.rows[i], true
}

// VisibleIndices returns the catalog indices of rows that pass the filter.
func (l *ChoiceList) VisibleIndices() []int {
	var out []int
	for i, r := range l.rows {
		if r.Visible {
			out = append(out, i)
		}
	}
	return out
}

// Cursor returns the catalog index of the highlighted row, or -1.
func (l *ChoiceList) Cursor() int { return l.cursor }

// ClickCursor clicks the highlighted row.
func (l *ChoiceList) ClickCursor() {
	if l.cursor >= 0 {
		l.Click(l.cursor)
	}
}

// SetCursor highlights row i if it is visible.
func (l *ChoiceList) SetCursor(i int) {
	if r, ok := l.Row(i); ok && r.Visible {
		l.cursor = i
		l.scroll()
	}
}

// CursorDown moves to the next visible row. It reports whether it moved.
func (l *ChoiceList) CursorDown() bool {
	visible := l.VisibleIndices()
	pos := indexOf(visible, l.cursor)
	if pos < 0 || pos+1 >= len(visible) {
		return false
	}
	l.cursor = visible[pos+1]
	l.scroll()
	return true
}

// CursorUp moves to the previous visible row. It reports whether it moved.
func (l *ChoiceList) CursorUp() bool {
	visible := l.VisibleIndices()
	pos := indexOf(visible, l.cursor)
	if pos <= 0 {
		return false
	}
	l.cursor = visible[pos-1]
	l.scroll()
	return true
}

// Window returns the catalog indices of the visible rows that fit in the
// list's height, in order.
func (l *ChoiceList) Window() []int {
	visible := l.VisibleIndices()
	if l.maxRows <= 0 || len(visible) <= l.maxRows {
		return visible
	}
	end := min(l.offset+l.maxRows, len(visible))
	return visible[l.offset:end]
}

func (l *ChoiceList) scroll() {
	if l.maxRows <= 0 {
		return
	}
	pos := indexOf(l.VisibleIndices(), l.cursor)
	if pos < 0 {
		return
	}
	if pos < l.offset {
		l.offset = pos
	}
	if pos >= l.offset+l.maxRows {
		l.offset = pos - l.maxRows + 1
	}
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}
