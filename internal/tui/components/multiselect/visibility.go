package multiselect

// VisibilityState is whether the choice list is displayed.
type VisibilityState int

const (
	Hidden VisibilityState = iota
	Shown
)

func (s VisibilityState) String() string {
	if s == Shown {
		return "shown"
	}
	return "hidden"
}

// Visibility is the show/hide state machine of a choice list. It starts
// Hidden. Only an outside click hides it.
type Visibility struct {
	state VisibilityState
}

// State returns the current state.
func (v *Visibility) State() VisibilityState { return v.state }

// Shown reports whether the list is displayed.
func (v *Visibility) Shown() bool { return v.state == Shown }

// OnFocus handles the search input gaining focus.
func (v *Visibility) OnFocus() { v.state = Shown }

// OnInput handles a change of the search text.
func (v *Visibility) OnInput() { v.state = Shown }

// OnOutsideClick handles a click outside both the list and the search input.
func (v *Visibility) OnOutsideClick() { v.state = Hidden }
