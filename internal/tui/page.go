// Package tui implements the Bubble Tea page that hosts every multi-select
// dropdown of a document along with its summary containers.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/core/document"
	"github.com/colonyops/chipselect/internal/core/eventbus"
	"github.com/colonyops/chipselect/internal/core/logging"
	"github.com/colonyops/chipselect/internal/core/selection"
	"github.com/colonyops/chipselect/internal/core/styles"
	"github.com/colonyops/chipselect/internal/tui/components/multiselect"
)

// Options configures the page.
type Options struct {
	Bus        *eventbus.EventBus         // optional
	Dispatcher *multiselect.Dispatcher    // defaults to the shared dispatcher
	Build      BuildInfo                  // shown in the header
	Warnings   []config.ValidationWarning // shown as toasts on start
}

// ConfigReloadedMsg carries the result of a config file reload into the
// Update loop.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// Model is the page model. It owns one controller per claimed control.
type Model struct {
	doc      *document.Document
	cfg      *config.Config
	controls []*multiselect.Controller
	focus    int // index into controls, -1 when nothing is focused

	keys PageKeyMap
	help help.Model
	vp   viewport.Model // scrolls the page when it is taller than the terminal

	toasts    *ToastController
	toastView *ToastView
	warnings  []config.ValidationWarning

	build      BuildInfo
	dispatcher *multiselect.Dispatcher
	log        zerolog.Logger

	width     int
	height    int
	submitted bool
	aborted   bool
}

// New runs the ready scan over doc: every eligible control that has not
// been claimed yet gets a controller. Controls claimed by an earlier scan
// are skipped.
func New(doc *document.Document, cfg *config.Config, opts Options) *Model {
	m := &Model{
		doc:        doc,
		cfg:        cfg,
		focus:      -1,
		keys:       DefaultPageKeyMap(),
		help:       help.New(),
		vp:         viewport.New(viewport.WithWidth(defaultWidth), viewport.WithHeight(defaultHeight)),
		toasts:     NewToastController(),
		warnings:   opts.Warnings,
		build:      opts.Build,
		dispatcher: opts.Dispatcher,
		log:        logging.ForDocument("page", doc.Path),
	}
	m.toastView = NewToastView(m.toasts)

	helpStyle := styles.TextMutedStyle
	m.help.Styles.ShortKey = helpStyle
	m.help.Styles.ShortDesc = helpStyle
	m.help.Styles.ShortSeparator = helpStyle
	m.help.ShortSeparator = " • "

	if m.dispatcher == nil {
		m.dispatcher = multiselect.SharedDispatcher()
	}

	for _, ctl := range doc.Eligible() {
		if !ctl.Claim() {
			m.log.Debug().Str("control", ctl.ID).Msg("control already claimed, skipping")
			continue
		}

		items := ctl.Items()
		c := multiselect.New(multiselect.Params{
			ID:         ctl.ID,
			Title:      ctl.Name,
			Source:     selection.NewSource(ctl.ID, items),
			Container:  doc.Container(ctl.SummaryID()),
			Options:    cfg.Options,
			Bus:        opts.Bus,
			Dispatcher: m.dispatcher,
		})
		m.controls = append(m.controls, c)

		opts.Bus.PublishControlClaimed(eventbus.ControlClaimedPayload{
			ControlID: ctl.ID,
			Options:   len(items),
		})
	}

	m.log.Info().Int("controls", len(m.controls)).Msg("page ready")
	return m
}

// Init focuses the first dropdown and queues startup warnings.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range m.warnings {
		msg := w.Message
		if w.Item != "" {
			msg = fmt.Sprintf("%s: %s", w.Item, w.Message)
		}
		cmds = append(cmds, m.notify(Notice{Level: LevelWarning, Message: msg}))
	}
	if len(m.controls) > 0 {
		cmds = append(cmds, m.focusControl(0, true))
	}
	return tea.Batch(cmds...)
}

// Update handles page-level input and forwards the rest to the focused
// dropdown.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.SetWidth(msg.Width)
		m.vp.SetHeight(msg.Height)
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseClickMsg:
		return m.handleClick(tea.Mouse(msg))
	case tea.MouseWheelMsg:
		m.syncViewport()
		switch tea.Mouse(msg).Button {
		case tea.MouseWheelUp:
			m.vp.ScrollUp(1)
		case tea.MouseWheelDown:
			m.vp.ScrollDown(1)
		}
		return m, nil
	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
			return m, nil
		}
		return m, scheduleToastTick()
	}

	return m.forward(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		m.closeAll()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.submitted = true
		m.closeAll()
		m.log.Info().Msg("selections submitted")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.focusNext()
	case key.Matches(msg, m.keys.Prev):
		return m, m.focusPrev()
	case key.Matches(msg, m.keys.ScrollUp):
		m.syncViewport()
		m.vp.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.syncViewport()
		m.vp.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.Close):
		m.dispatcher.Dispatch(multiselect.Target{})
		m.blur()
		return m, nil
	}
	return m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	c := m.focused()
	if c == nil {
		return m, nil
	}
	_, cmd := c.Update(msg)
	return m, cmd
}

// handleClick dispatches the click target to every dropdown first, so lists
// the click landed outside of close, and then performs the click.
func (m *Model) handleClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	lay := m.syncViewport()
	hit := lay.hitTest(mouse.X, mouse.Y+m.vp.YOffset())

	switch hit.kind {
	case hitControl:
		c := m.controls[hit.control]
		region, row := c.HitTest(hit.localY)
		zone := multiselect.ZoneList
		if region == multiselect.RegionSearch {
			zone = multiselect.ZoneSearch
		}
		if i := m.focus; i >= 0 && i != hit.control {
			m.controls[i].Blur()
		}
		m.focus = hit.control
		cmd := c.Focus(zone)
		if region == multiselect.RegionList && row >= 0 {
			c.ClickRow(row)
		}
		return m, cmd

	case hitChip:
		m.dispatcher.Dispatch(multiselect.Target{Region: multiselect.RegionSummary})
		m.blur()
		if hit.remove {
			hit.chip.Remove()
		}
		return m, nil
	}

	m.dispatcher.Dispatch(multiselect.Target{})
	m.blur()
	return m, nil
}

func (m *Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Msg("config reload failed")
		return m, m.notify(Notice{Level: LevelError, Message: "config reload failed"})
	}

	if p, ok := styles.GetPalette(msg.Config.Theme); ok {
		styles.SetTheme(p)
	}
	m.cfg.Theme = msg.Config.Theme
	m.log.Info().Str("theme", msg.Config.Theme).Msg("config reloaded")
	return m, m.notify(Notice{Level: LevelInfo, Message: "config reloaded"})
}

// notify pushes a toast and starts the tick loop if it is not running.
func (m *Model) notify(n Notice) tea.Cmd {
	m.toasts.Push(n)
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) focused() *multiselect.Controller {
	if m.focus < 0 || m.focus >= len(m.controls) {
		return nil
	}
	return m.controls[m.focus]
}

// focusControl moves focus to controls[i], entering at its first zone when
// first is true and at its last zone otherwise.
func (m *Model) focusControl(i int, first bool) tea.Cmd {
	if c := m.focused(); c != nil && m.focus != i {
		c.Blur()
	}
	m.focus = i
	if first {
		return m.controls[i].FocusFirst()
	}
	return m.controls[i].FocusLast()
}

func (m *Model) focusNext() tea.Cmd {
	if len(m.controls) == 0 {
		return nil
	}
	c := m.focused()
	if c == nil {
		return m.focusControl(0, true)
	}
	if cmd, ok := c.FocusNext(); ok {
		return cmd
	}
	return m.focusControl((m.focus+1)%len(m.controls), true)
}

func (m *Model) focusPrev() tea.Cmd {
	if len(m.controls) == 0 {
		return nil
	}
	c := m.focused()
	if c == nil {
		return m.focusControl(len(m.controls)-1, false)
	}
	if cmd, ok := c.FocusPrev(); ok {
		return cmd
	}
	return m.focusControl((m.focus-1+len(m.controls))%len(m.controls), false)
}

func (m *Model) blur() {
	if c := m.focused(); c != nil {
		c.Blur()
	}
	m.focus = -1
}

func (m *Model) closeAll() {
	for _, c := range m.controls {
		c.Close()
	}
}

// Controls returns the page's controllers in document order.
func (m *Model) Controls() []*multiselect.Controller { return m.controls }

// Focused returns the focused controller, or nil.
func (m *Model) Focused() *multiselect.Controller { return m.focused() }

// Submitted reports whether the user submitted the page.
func (m *Model) Submitted() bool { return m.submitted }

// Aborted reports whether the user aborted.
func (m *Model) Aborted() bool { return m.aborted }

// Results returns the selected values of every control keyed by control id.
func (m *Model) Results() map[string][]string {
	out := make(map[string][]string, len(m.controls))
	for _, c := range m.controls {
		out[c.ID()] = c.Source().SelectedValues()
	}
	return out
}
