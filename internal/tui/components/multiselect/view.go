package multiselect

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/chipselect/internal/core/styles"
)

// rowPrefixWidth is the width of "> [x] " in front of every label.
const rowPrefixWidth = 6

// contentWidth sizes the dropdown to its longest line, clamped to the
// configured bounds when styling is enabled.
func (c *Controller) contentWidth() int {
	w := lipgloss.Width(c.title)
	if c.opts.Search {
		w = max(w, lipgloss.Width(c.opts.TxtSearch)+2)
	}
	for _, label := range c.catalog.Labels() {
		w = max(w, lipgloss.Width(label)+rowPrefixWidth)
	}

	if !c.opts.UseStyles {
		return w
	}
	if c.layout.MinWidth > 0 {
		w = max(w, c.layout.MinWidth)
	}
	if c.layout.MaxWidth > 0 {
		w = min(w, c.layout.MaxWidth)
	}
	return w
}

func (c *Controller) wrapper() lipgloss.Style {
	return styles.Wrapper(c.opts.UseStyles, c.width, c.layout.Rounded)
}

// View renders the dropdown.
func (c *Controller) View() string {
	return c.wrapper().Render(strings.Join(c.lines(), "\n"))
}

// Height returns the number of terminal rows View occupies.
func (c *Controller) Height() int {
	return lipgloss.Height(c.View())
}

// Width returns the number of terminal columns View occupies.
func (c *Controller) Width() int {
	return lipgloss.Width(c.View())
}

func (c *Controller) lines() []string {
	lines := make([]string, 0, 3)

	titleStyle := styles.TitleBlurredStyle
	if c.Focused() {
		titleStyle = styles.TitleStyle
	}
	header := c.title
	if n := len(c.summary.Chips()); n > 0 {
		header = fmt.Sprintf("%s (%d)", c.title, n)
	}
	lines = append(lines, titleStyle.Render(ansi.Truncate(header, c.width, "…")))

	if c.opts.Search {
		lines = append(lines, c.search.View())
	}

	if !c.vis.Shown() {
		return lines
	}

	window := c.list.Window()
	if len(window) == 0 {
		msg := "no options"
		if c.search.Value() != "" {
			msg = "no matches"
		}
		return append(lines, styles.TextMutedStyle.Render(msg))
	}

	for _, i := range window {
		lines = append(lines, c.renderRow(i))
	}
	return lines
}

func (c *Controller) renderRow(i int) string {
	row, _ := c.list.Row(i)

	cursor := " "
	if c.zone == ZoneList && c.list.Cursor() == i {
		cursor = styles.IconCursor
	}

	icon := styles.IconUnchecked
	style := styles.RowStyle
	if row.Checked {
		icon = styles.IconChecked
		style = styles.RowCheckedStyle
	}
	if c.zone == ZoneList && c.list.Cursor() == i {
		style = styles.RowCursorStyle
	}

	label := ansi.Truncate(row.Label, max(c.width-rowPrefixWidth, 1), "…")
	return styles.RowCursorStyle.Render(cursor) + " " + style.Render(icon+" "+label)
}

// HitTest maps a row offset from the top of View to the region it falls in.
// For RegionList the returned index is the catalog index of the row, or -1
// when the offset is inside the list but not on a row.
func (c *Controller) HitTest(y int) (Region, int) {
	if y < 0 || y >= c.Height() {
		return RegionNone, -1
	}

	w := c.wrapper()
	line := y - w.GetBorderTopSize() - w.GetPaddingTop()

	header := RegionList
	if c.opts.Search {
		header = RegionSearch
	}

	switch {
	case line <= 0:
		return header, -1
	case c.opts.Search && line == 1:
		return RegionSearch, -1
	}

	if !c.vis.Shown() {
		return header, -1
	}

	first := 1
	if c.opts.Search {
		first = 2
	}
	window := c.list.Window()
	if pos := line - first; pos >= 0 && pos < len(window) {
		return RegionList, window[pos]
	}
	return RegionList, -1
}
