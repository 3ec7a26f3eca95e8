package multiselect

import (
	"github.com/colonyops/chipselect/internal/core/document"
	"github.com/colonyops/chipselect/internal/core/selection"
)

// Summary renders one chip per selected item into a page container.
type Summary struct {
	controlID string
	container *document.Container
	remove    func(itemID int)
}

// NewSummary creates a summary writing into container. A nil container
// turns every render into a no-op.
func NewSummary(controlID string, container *document.Container, remove func(itemID int)) *Summary {
	return &Summary{controlID: controlID, container: container, remove: remove}
}

// Render clears the container and writes a chip for every selected item in
// catalog order. Each chip's removal is bound to its item's catalog index.
func (s *Summary) Render(src *selection.Source) {
	s.container.Clear()

	ids, items := src.Selected()
	chips := make([]document.Chip, len(ids))
	for i, id := range ids {
		itemID := id
		chips[i] = document.NewChip(s.controlID, itemID, items[i].Label, func() {
			if s.remove != nil {
				s.remove(itemID)
			}
		})
	}
	s.container.Append(chips...)
}

// Chips returns the chips this summary wrote that are still in the
// container.
func (s *Summary) Chips() []document.Chip {
	var out []document.Chip
	for _, ch := range s.container.Chips() {
		if ch.ControlID == s.controlID {
			out = append(out, ch)
		}
	}
	return out
}

// Labels returns the labels of Chips in order.
func (s *Summary) Labels() []string {
	chips := s.Chips()
	labels := make([]string, len(chips))
	for i, ch := range chips {
		labels[i] = ch.Label
	}
	return labels
}
