package multiselect

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings a controller reacts to while focused.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	ChipLeft   key.Binding
	ChipRight  key.Binding
	RemoveChip key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		ChipLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev chip"),
		),
		ChipRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next chip"),
		),
		RemoveChip: key.NewBinding(
			key.WithKeys("x", "backspace", "delete"),
			key.WithHelp("x", "remove"),
		),
	}
}
