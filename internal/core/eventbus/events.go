// Package eventbus provides a typed, synchronous publish/subscribe bus for
// signals emitted by controls. Subscribers run inline on the publishing
// goroutine, which for the TUI is the Bubble Tea Update loop.
package eventbus

import "github.com/colonyops/chipselect/internal/core/selection"

// Event names a published signal.
type Event string

// Keep list sorted A-Z.
const (
	EventControlClaimed   Event = "control.claimed"
	EventSelectionChanged Event = "selection.changed"
)

// SelectionChangedPayload is emitted every time a control's selection is
// mutated through the UI. Selected is a snapshot in catalog order.
type SelectionChangedPayload struct {
	ControlID string           `json:"control_id"`
	Selected  []selection.Item `json:"selected"`
}

// ControlClaimedPayload is emitted when a controller takes ownership of a
// control during the page ready scan.
type ControlClaimedPayload struct {
	ControlID string `json:"control_id"`
	Options   int    `json:"options"`
}
