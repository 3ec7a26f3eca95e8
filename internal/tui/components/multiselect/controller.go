// Package multiselect implements a searchable checkbox dropdown whose
// selected items are mirrored as removable chips in a page container.
package multiselect

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/core/document"
	"github.com/colonyops/chipselect/internal/core/eventbus"
	"github.com/colonyops/chipselect/internal/core/logging"
	"github.com/colonyops/chipselect/internal/core/selection"
	"github.com/colonyops/chipselect/internal/core/styles"
)

// Zone is the part of a controller that holds keyboard focus.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneSearch
	ZoneList
	ZoneChips
)

// Params configures a Controller.
type Params struct {
	ID         string
	Title      string
	Source     *selection.Source
	Container  *document.Container // nil when the page has no summary container
	Options    config.Options
	Bus        *eventbus.EventBus    // optional
	Dispatcher *Dispatcher           // defaults to SharedDispatcher
	Logger     *zerolog.Logger       // defaults to the "multiselect" component logger
}

// Controller wires a choice list, search input, visibility and summary to a
// single selection source.
type Controller struct {
	id      string
	title   string
	handle  string
	src     *selection.Source
	catalog selection.Catalog

	list    *ChoiceList
	summary *Summary
	vis     Visibility
	search  textinput.Model

	opts   config.Options
	layout config.Layout
	width  int

	zone       Zone
	chipCursor int

	keys       KeyMap
	bus        *eventbus.EventBus
	dispatcher *Dispatcher
	log        zerolog.Logger
}

// New builds a controller and renders the initial summary so pre-selected
// items appear as chips.
func New(p Params) *Controller {
	c := &Controller{
		id:         p.ID,
		title:      p.Title,
		src:        p.Source,
		catalog:    selection.NewCatalog(p.Source),
		opts:       p.Options,
		layout:     p.Options.Layout(),
		keys:       DefaultKeyMap(),
		bus:        p.Bus,
		dispatcher: p.Dispatcher,
	}
	if c.title == "" {
		c.title = c.id
	}
	if c.dispatcher == nil {
		c.dispatcher = SharedDispatcher()
	}
	if p.Logger != nil {
		c.log = p.Logger.With().Str("control", c.id).Logger()
	} else {
		c.log = logging.ForControl("multiselect", c.id)
	}

	maxRows := 0
	if c.opts.UseStyles {
		maxRows = c.layout.MaxRows
	}

	c.list = NewChoiceList(c.src, maxRows, func(int) { c.selectionChanged() })
	c.summary = NewSummary(c.id, p.Container, c.removeItem)
	c.width = c.contentWidth()

	ti := textinput.New()
	ti.Placeholder = c.opts.TxtSearch
	ti.Prompt = styles.IconSearch + " "
	ti.CharLimit = 100
	ti.SetWidth(max(c.width-lipgloss.Width(ti.Prompt)-1, 1))
	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Focused.Prompt = styles.SearchPromptStyle
	inputStyles.Cursor.Color = styles.ColorPrimary
	ti.SetStyles(inputStyles)
	c.search = ti

	c.handle = c.dispatcher.Register(c.onDispatch)
	c.summary.Render(c.src)

	c.log.Debug().Int("options", c.catalog.Len()).Msg("controller ready")
	return c
}

// Close unregisters the controller from its dispatcher.
func (c *Controller) Close() {
	c.dispatcher.Unregister(c.handle)
}

// selectionChanged is the only path that brings the summary back in line
// with the source. Row clicks and chip removals both end here.
func (c *Controller) selectionChanged() {
	_, items := c.src.Selected()
	c.bus.PublishSelectionChanged(eventbus.SelectionChangedPayload{
		ControlID: c.id,
		Selected:  items,
	})

	c.summary.Render(c.src)
	c.clampChipCursor()

	c.log.Debug().Int("selected", len(items)).Msg("selection changed")
}

// removeItem is the chip removal action. The row is re-read from the source
// rather than toggled so it always ends up unchecked.
func (c *Controller) removeItem(itemID int) {
	c.src.SetSelected(itemID, false)
	c.list.Sync(itemID)
	c.selectionChanged()
}

func (c *Controller) onDispatch(t Target) {
	if !t.Inside(c.handle) {
		c.vis.OnOutsideClick()
	}
}

// Focus moves keyboard focus to zone. The move is dispatched like a click on
// that region, so other controllers close their lists.
func (c *Controller) Focus(zone Zone) tea.Cmd {
	if zone == ZoneNone {
		c.Blur()
		return nil
	}
	if !c.zoneAvailable(zone) {
		return nil
	}

	c.zone = zone
	c.dispatcher.Dispatch(Target{Owner: c.handle, Region: zone.region()})

	var cmd tea.Cmd
	switch zone {
	case ZoneSearch:
		c.vis.OnFocus()
		cmd = c.search.Focus()
	case ZoneList:
		c.search.Blur()
		if !c.opts.Search {
			// Without a search input the list is opened by focusing it.
			c.vis.OnFocus()
		}
	case ZoneChips:
		c.search.Blur()
		c.clampChipCursor()
	}
	return cmd
}

// Blur drops keyboard focus. Visibility is left alone; only an outside
// click closes the list.
func (c *Controller) Blur() {
	c.zone = ZoneNone
	c.search.Blur()
}

// FocusFirst focuses the first available zone.
func (c *Controller) FocusFirst() tea.Cmd {
	zones := c.zones()
	if len(zones) == 0 {
		return nil
	}
	return c.Focus(zones[0])
}

// FocusLast focuses the last available zone.
func (c *Controller) FocusLast() tea.Cmd {
	zones := c.zones()
	if len(zones) == 0 {
		return nil
	}
	return c.Focus(zones[len(zones)-1])
}

// FocusNext moves to the next zone. ok is false when focus is already on
// the last zone and should leave the controller.
func (c *Controller) FocusNext() (tea.Cmd, bool) {
	zones := c.zones()
	pos := indexOfZone(zones, c.zone)
	if pos+1 >= len(zones) {
		return nil, false
	}
	return c.Focus(zones[pos+1]), true
}

// FocusPrev moves to the previous zone. ok is false when focus is already
// on the first zone.
func (c *Controller) FocusPrev() (tea.Cmd, bool) {
	zones := c.zones()
	pos := indexOfZone(zones, c.zone)
	if pos <= 0 {
		return nil, false
	}
	return c.Focus(zones[pos-1]), true
}

// zones lists the focusable zones in tab order.
func (c *Controller) zones() []Zone {
	var zones []Zone
	for _, z := range []Zone{ZoneSearch, ZoneList, ZoneChips} {
		if c.zoneAvailable(z) {
			zones = append(zones, z)
		}
	}
	return zones
}

func (c *Controller) zoneAvailable(z Zone) bool {
	switch z {
	case ZoneSearch:
		return c.opts.Search
	case ZoneList:
		return !c.opts.Search || c.vis.Shown()
	case ZoneChips:
		return len(c.summary.Chips()) > 0
	}
	return false
}

// Update handles input while the controller has focus.
func (c *Controller) Update(msg tea.Msg) (*Controller, tea.Cmd) {
	if c.zone == ZoneNone {
		return c, nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if c.zone == ZoneSearch {
			return c.updateSearch(msg)
		}
		return c, nil
	}

	switch c.zone {
	case ZoneSearch:
		if keyMsg.String() == "down" && len(c.list.VisibleIndices()) > 0 {
			return c, c.Focus(ZoneList)
		}
		return c.updateSearch(msg)

	case ZoneList:
		if !c.vis.Shown() {
			return c, nil
		}
		switch {
		case key.Matches(keyMsg, c.keys.Up):
			if !c.list.CursorUp() && c.opts.Search && keyMsg.String() == "up" {
				return c, c.Focus(ZoneSearch)
			}
		case key.Matches(keyMsg, c.keys.Down):
			c.list.CursorDown()
		case key.Matches(keyMsg, c.keys.Toggle):
			c.list.ClickCursor()
		}

	case ZoneChips:
		chips := c.summary.Chips()
		switch {
		case key.Matches(keyMsg, c.keys.ChipLeft):
			if c.chipCursor > 0 {
				c.chipCursor--
			}
		case key.Matches(keyMsg, c.keys.ChipRight):
			if c.chipCursor < len(chips)-1 {
				c.chipCursor++
			}
		case key.Matches(keyMsg, c.keys.RemoveChip):
			if c.chipCursor >= 0 && c.chipCursor < len(chips) {
				chips[c.chipCursor].Remove()
			}
			if len(c.summary.Chips()) == 0 {
				c.zone = ZoneNone
			}
		}
	}

	return c, nil
}

func (c *Controller) updateSearch(msg tea.Msg) (*Controller, tea.Cmd) {
	before := c.search.Value()

	var cmd tea.Cmd
	c.search, cmd = c.search.Update(msg)

	if after := c.search.Value(); after != before {
		c.list.Filter(after)
		c.vis.OnInput()
	}
	return c, cmd
}

// SetFilter replaces the search text as if it had been typed.
func (c *Controller) SetFilter(text string) {
	if c.search.Value() == text {
		return
	}
	c.search.SetValue(text)
	c.list.Filter(text)
	c.vis.OnInput()
}

// ClickRow clicks row i. Rows of a hidden list cannot be clicked.
func (c *Controller) ClickRow(i int) {
	if !c.vis.Shown() {
		return
	}
	if r, ok := c.list.Row(i); !ok || !r.Visible {
		return
	}
	c.list.SetCursor(i)
	c.list.Click(i)
}

func (c *Controller) clampChipCursor() {
	n := len(c.summary.Chips())
	if c.chipCursor >= n {
		c.chipCursor = n - 1
	}
	if c.chipCursor < 0 {
		c.chipCursor = 0
	}
}

// ID returns the control id.
func (c *Controller) ID() string { return c.id }

// Handle returns the dispatcher handle identifying this controller.
func (c *Controller) Handle() string { return c.handle }

// Source returns the selection source.
func (c *Controller) Source() *selection.Source { return c.src }

// Catalog returns the read-only catalog.
func (c *Controller) Catalog() selection.Catalog { return c.catalog }

// List returns the choice list.
func (c *Controller) List() *ChoiceList { return c.list }

// Summary returns the selection summary.
func (c *Controller) Summary() *Summary { return c.summary }

// Visibility returns the list visibility state.
func (c *Controller) Visibility() VisibilityState { return c.vis.State() }

// Zone returns the focused zone.
func (c *Controller) Zone() Zone { return c.zone }

// Focused reports whether any zone has focus.
func (c *Controller) Focused() bool { return c.zone != ZoneNone }

// Filter returns the current search text.
func (c *Controller) Filter() string { return c.search.Value() }

// FocusedChip returns the item id of the highlighted chip while the chips
// zone has focus.
func (c *Controller) FocusedChip() (int, bool) {
	if c.zone != ZoneChips {
		return 0, false
	}
	chips := c.summary.Chips()
	if c.chipCursor < 0 || c.chipCursor >= len(chips) {
		return 0, false
	}
	return chips[c.chipCursor].ItemID, true
}

func (z Zone) region() Region {
	switch z {
	case ZoneSearch:
		return RegionSearch
	case ZoneList:
		return RegionList
	case ZoneChips:
		return RegionSummary
	}
	return RegionNone
}

func indexOfZone(zones []Zone, z Zone) int {
	for i, x := range zones {
		if x == z {
			return i
		}
	}
	return -1
}
