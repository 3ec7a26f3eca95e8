// Package selection holds the authoritative selection state for a single
// multi-select control.
package selection

// Item is one selectable entry. Its identity is its index in the catalog.
type Item struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// Source is the system of record for which items of a control are selected.
// The item list is fixed at construction; only the Selected flags change.
type Source struct {
	id    string
	items []Item
}

// NewSource copies items into a new Source. Items with an empty Value take
// their Label as the value.
func NewSource(id string, items []Item) *Source {
	cp := make([]Item, len(items))
	for i, it := range items {
		if it.Value == "" {
			it.Value = it.Label
		}
		cp[i] = it
	}
	return &Source{id: id, items: cp}
}

// ID returns the control identifier this source belongs to.
func (s *Source) ID() string { return s.id }

// Len returns the number of items.
func (s *Source) Len() int { return len(s.items) }

// Item returns the item at index i. ok is false when i is out of range.
func (s *Source) Item(i int) (Item, bool) {
	if i < 0 || i >= len(s.items) {
		return Item{}, false
	}
	return s.items[i], true
}

// IsSelected reports whether the item at i is selected. Out of range
// indices are never selected.
func (s *Source) IsSelected(i int) bool {
	it, ok := s.Item(i)
	return ok && it.Selected
}

// Toggle flips the selection of item i and returns the new state.
func (s *Source) Toggle(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items[i].Selected = !s.items[i].Selected
	return s.items[i].Selected
}

// SetSelected sets the selection of item i. It reports whether the state
// actually changed.
func (s *Source) SetSelected(i int, selected bool) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	if s.items[i].Selected == selected {
		return false
	}
	s.items[i].Selected = selected
	return true
}

// Selected returns the selected items in catalog order along with their
// indices.
func (s *Source) Selected() ([]int, []Item) {
	var (
		ids   []int
		items []Item
	)
	for i, it := range s.items {
		if it.Selected {
			ids = append(ids, i)
			items = append(items, it)
		}
	}
	return ids, items
}

// SelectedValues returns the values of the selected items in catalog order.
func (s *Source) SelectedValues() []string {
	values := []string{}
	for _, it := range s.items {
		if it.Selected {
			values = append(values, it.Value)
		}
	}
	return values
}

// Catalog is the ordered, read-only list of labels exposed by a Source.
type Catalog struct {
	labels []string
}

// NewCatalog snapshots the labels of src. The catalog never changes after
// this call.
func NewCatalog(src *Source) Catalog {
	labels := make([]string, src.Len())
	for i, it := range src.items {
		labels[i] = it.Label
	}
	return Catalog{labels: labels}
}

// Len returns the number of entries.
func (c Catalog) Len() int { return len(c.labels) }

// Label returns the label at index i, or "" when out of range.
func (c Catalog) Label(i int) string {
	if i < 0 || i >= len(c.labels) {
		return ""
	}
	return c.labels[i]
}

// Labels returns a copy of all labels in order.
func (c Catalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}
