package document

// Chip is one rendered selected item with its removal action.
type Chip struct {
	Label     string
	ItemID    int
	ControlID string

	remove func()
}

// NewChip creates a chip whose Remove calls fn.
func NewChip(controlID string, itemID int, label string, fn func()) Chip {
	return Chip{Label: label, ItemID: itemID, ControlID: controlID, remove: fn}
}

// Remove runs the chip's removal action.
func (c Chip) Remove() {
	if c.remove != nil {
		c.remove()
	}
}

// Container is a named region of the page that summaries write chips into.
// All methods are safe on a nil receiver; writes to a nil container are
// discarded.
type Container struct {
	ID string `yaml:"id"`

	chips []Chip
}

// Clear discards every chip.
func (c *Container) Clear() {
	if c == nil {
		return
	}
	c.chips = nil
}

// Append adds chips after the existing ones.
func (c *Container) Append(chips ...Chip) {
	if c == nil {
		return
	}
	c.chips = append(c.chips, chips...)
}

// Chips returns the current chips.
func (c *Container) Chips() []Chip {
	if c == nil {
		return nil
	}
	return c.chips
}

// Labels returns the labels of the current chips in order.
func (c *Container) Labels() []string {
	if c == nil {
		return nil
	}
	labels := make([]string, len(c.chips))
	for i, ch := range c.chips {
		labels[i] = ch.Label
	}
	return labels
}

// Len returns the number of chips.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.chips)
}
