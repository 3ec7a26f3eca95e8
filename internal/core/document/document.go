// Package document models the page that hosts multi-select controls and the
// containers their summaries render into.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/chipselect/internal/core/selection"
)

// DefaultSummaryID is the well-known container id summaries write to when a
// control does not name one.
const DefaultSummaryID = "dropdownSelected"

// Document is a parsed page file.
type Document struct {
	Path       string       `yaml:"-"`
	Controls   []*Control   `yaml:"controls"`
	Containers []*Container `yaml:"containers"`
}

// Option is one entry of a control as declared in the page file.
type Option struct {
	Label    string `yaml:"label"`
	Value    string `yaml:"value"`
	Selected bool   `yaml:"selected"`
}

// Control is a selection control declared in the page file.
type Control struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Multiple bool     `yaml:"multiple"`
	Summary  string   `yaml:"summary"` // container id, defaults to DefaultSummaryID
	Options  []Option `yaml:"options"`

	claimed bool
}

// Load reads and parses a page file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a page from YAML bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	for i, c := range doc.Controls {
		if c == nil {
			return nil, fmt.Errorf("parse document: controls[%d] is empty", i)
		}
		if c.ID == "" {
			c.ID = c.Name
		}
	}
	return &doc, nil
}

// Eligible returns the multi-select controls in document order.
func (d *Document) Eligible() []*Control {
	var out []*Control
	for _, c := range d.Controls {
		if c.Multiple {
			out = append(out, c)
		}
	}
	return out
}

// Container returns the container with the given id, or nil when the page
// does not declare it.
func (d *Document) Container(id string) *Container {
	for _, c := range d.Containers {
		if c != nil && c.ID == id {
			return c
		}
	}
	return nil
}

// Claim marks the control as owned by a controller. It returns false when the
// control was already claimed.
func (c *Control) Claim() bool {
	if c.claimed {
		return false
	}
	c.claimed = true
	return true
}

// Claimed reports whether a controller owns the control.
func (c *Control) Claimed() bool { return c.claimed }

// SummaryID returns the container id the control's summary renders into.
func (c *Control) SummaryID() string {
	if c.Summary == "" {
		return DefaultSummaryID
	}
	return c.Summary
}

// Items converts the declared options into selection items.
func (c *Control) Items() []selection.Item {
	items := make([]selection.Item, len(c.Options))
	for i, o := range c.Options {
		items[i] = selection.Item{Label: o.Label, Value: o.Value, Selected: o.Selected}
	}
	return items
}
