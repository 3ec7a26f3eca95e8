package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/chipselect/internal/core/document"
	"github.com/colonyops/chipselect/internal/core/styles"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type hitKind int

const (
	hitNone hitKind = iota
	hitControl
	hitChip
)

// hit is the result of mapping a screen cell onto the page layout.
type hit struct {
	kind    hitKind
	control int // index into Model.controls
	localY  int // row offset inside the control's view
	chip    document.Chip
	remove  bool // the cell is on the chip's remove glyph
}

type controlBox struct {
	top    int
	height int
	width  int
}

type chipBox struct {
	chip    document.Chip
	y       int
	x0, x1  int // [x0, x1)
	removeX int // first cell of the remove glyph
}

// layout records where the last render placed every interactive element.
type layout struct {
	controls []controlBox
	chips    []chipBox
}

func (l layout) hitTest(x, y int) hit {
	for i, b := range l.controls {
		if y >= b.top && y < b.top+b.height && x >= 0 && x < b.width {
			return hit{kind: hitControl, control: i, localY: y - b.top}
		}
	}
	for _, b := range l.chips {
		if y == b.y && x >= b.x0 && x < b.x1 {
			return hit{kind: hitChip, chip: b.chip, remove: x >= b.removeX}
		}
	}
	return hit{}
}

// View renders the page.
func (m *Model) View() tea.View {
	if m.submitted || m.aborted {
		return tea.NewView("")
	}

	m.syncViewport()

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	v := tea.NewView(m.toastView.Overlay(m.vp.View(), w, h))
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// syncViewport renders the page into the viewport and returns the layout in
// page coordinates. Screen rows map onto it by adding the viewport offset.
func (m *Model) syncViewport() layout {
	body, lay := m.render()
	m.vp.SetContent(body)
	return lay
}

// render draws the page and returns the layout used for hit testing. It
// has no side effects so mouse handling can call it to recompute positions.
func (m *Model) render() (string, layout) {
	var (
		lay   layout
		lines []string
	)
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add(m.renderHeader())
	add("")

	for _, c := range m.controls {
		view := c.View()
		lay.controls = append(lay.controls, controlBox{
			top:    len(lines),
			height: lipgloss.Height(view),
			width:  lipgloss.Width(view),
		})
		add(view)
	}
	if len(m.controls) == 0 {
		add(styles.TextMutedStyle.Render("no multi-select controls on this page"))
	}

	for _, ct := range m.doc.Containers {
		add("")
		add(styles.ContainerTitleStyle.Render(ct.ID))

		chipLines, boxes := m.renderChips(ct, len(lines))
		lay.chips = append(lay.chips, boxes...)
		lines = append(lines, chipLines...)
	}

	add("")
	add(m.help.ShortHelpView(m.keys.ShortHelp()))

	return strings.Join(lines, "\n"), lay
}

func (m *Model) renderHeader() string {
	header := styles.CommandHeaderStyle.Render("chipselect")
	if m.build.Version != "" {
		header += " " + styles.TextMutedStyle.Render(m.build.Version)
	}
	if m.doc.Path != "" {
		header += styles.DividerStyle.Render(" · ") + styles.TextForegroundStyle.Render(m.doc.Path)
	}
	return header
}

// renderChips lays chips out left to right, wrapping at the page width.
// top is the page row of the first chip line.
func (m *Model) renderChips(ct *document.Container, top int) ([]string, []chipBox) {
	chips := ct.Chips()
	if len(chips) == 0 {
		return []string{""}, nil
	}

	maxWidth := m.width
	if maxWidth == 0 {
		maxWidth = defaultWidth
	}

	focusedControl, focusedItem := "", -1
	if c := m.focused(); c != nil {
		if id, ok := c.FocusedChip(); ok {
			focusedControl, focusedItem = c.ID(), id
		}
	}

	var (
		lines []string
		line  strings.Builder
		boxes []chipBox
		x     int
	)
	for _, ch := range chips {
		style := styles.ChipStyle
		if ch.ControlID == focusedControl && ch.ItemID == focusedItem {
			style = styles.ChipFocusedStyle
		}
		rendered := style.Render(ch.Label + " " + styles.IconRemove)
		w := lipgloss.Width(rendered)

		if x > 0 && x+w > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			x = 0
		}
		if x > 0 {
			line.WriteString(" ")
			x++
		}

		boxes = append(boxes, chipBox{
			chip:    ch,
			y:       top + len(lines),
			x0:      x,
			x1:      x + w,
			removeX: x + w - style.GetPaddingRight() - lipgloss.Width(styles.IconRemove),
		})
		line.WriteString(rendered)
		x += w
	}
	lines = append(lines, line.String())

	return lines, boxes
}
