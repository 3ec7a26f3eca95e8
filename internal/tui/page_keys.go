package tui

import "charm.land/bubbles/v2/key"

// PageKeyMap holds the bindings handled by the page before input reaches
// the focused dropdown.
type PageKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Close  key.Binding
	Submit key.Binding
	Abort  key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultPageKeyMap returns the default page bindings.
func DefaultPageKeyMap() PageKeyMap {
	return PageKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close lists"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k PageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Close, k.Submit, k.Abort}
}

// FullHelp returns all bindings grouped for the help view.
func (k PageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Close}, {k.Submit, k.Abort}, {k.ScrollUp, k.ScrollDown}}
}
