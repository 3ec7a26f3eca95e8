package multiselect

import (
	"sync"

	"github.com/google/uuid"

	"github.com/colonyops/chipselect/pkg/kv"
)

// Region is a part of the page a click or focus change can land on.
type Region int

const (
	RegionNone    Region = iota // empty space
	RegionSearch                // a controller's search input
	RegionList                  // a controller's choice list
	RegionSummary               // a summary container
)

// Target is where a click or focus change landed. Owner is the dispatcher
// handle of the controller the region belongs to, empty for page regions.
type Target struct {
	Owner  string
	Region Region
}

// Inside reports whether t lands in owner's list or search input.
func (t Target) Inside(owner string) bool {
	return t.Owner == owner && (t.Region == RegionSearch || t.Region == RegionList)
}

// Dispatcher fans every pointer or focus target out to all registered
// controllers, so each can tell whether the interaction was outside it.
type Dispatcher struct {
	listeners *kv.Store[string, func(Target)]
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: kv.New[string, func(Target)]()}
}

var (
	sharedOnce       sync.Once
	sharedDispatcher *Dispatcher
)

// SharedDispatcher returns the process-wide dispatcher. It is created once,
// however many controllers exist.
func SharedDispatcher() *Dispatcher {
	sharedOnce.Do(func() {
		sharedDispatcher = NewDispatcher()
	})
	return sharedDispatcher
}

// Register adds fn and returns its handle.
func (d *Dispatcher) Register(fn func(Target)) string {
	handle := uuid.NewString()
	d.listeners.Set(handle, fn)
	return handle
}

// Unregister removes the listener for handle.
func (d *Dispatcher) Unregister(handle string) {
	d.listeners.Delete(handle)
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return d.listeners.Len()
}

// Dispatch delivers t to every listener in registration order. Listeners
// may register or unregister while being called.
func (d *Dispatcher) Dispatch(t Target) {
	for _, fn := range d.listeners.Values() {
		fn(t)
	}
}
