package eventbus

import "sync"

// EventBus dispatches events to subscribers synchronously. Publish returns
// only after every subscriber has run.
type EventBus struct {
	mu    sync.RWMutex
	subs  map[Event][]func(any)
	hooks hooks
}

// New creates an empty bus.
func New() *EventBus {
	return &EventBus{subs: make(map[Event][]func(any))}
}

// SubscribeSelectionChanged registers fn for selection.changed events.
func (bus *EventBus) SubscribeSelectionChanged(fn func(SelectionChangedPayload)) {
	bus.subscribe(EventSelectionChanged, func(p any) {
		fn(p.(SelectionChangedPayload))
	})
}

// PublishSelectionChanged emits a selection.changed event.
func (bus *EventBus) PublishSelectionChanged(p SelectionChangedPayload) {
	bus.send(EventSelectionChanged, p)
}

// SubscribeControlClaimed registers fn for control.claimed events.
func (bus *EventBus) SubscribeControlClaimed(fn func(ControlClaimedPayload)) {
	bus.subscribe(EventControlClaimed, func(p any) {
		fn(p.(ControlClaimedPayload))
	})
}

// PublishControlClaimed emits a control.claimed event.
func (bus *EventBus) PublishControlClaimed(p ControlClaimedPayload) {
	bus.send(EventControlClaimed, p)
}

// subscribe registers fn for event. A nil bus ignores the subscription.
func (bus *EventBus) subscribe(event Event, fn func(any)) {
	if bus == nil {
		return
	}

	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()
	bus.runOnSubscribe(event)
}

// send runs every subscriber for event inline and then fires publish hooks.
// A nil bus drops the event.
func (bus *EventBus) send(event Event, payload any) {
	if bus == nil {
		return
	}

	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[event]))
	copy(subs, bus.subs[event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		bus.dispatch(event, payload, fn)
	}
	bus.runOnPublish(event, payload)
}

func (bus *EventBus) dispatch(event Event, payload any, fn func(any)) {
	defer func() {
		if r := recover(); r != nil {
			bus.runOnPanic(event, payload, r)
		}
	}()
	fn(payload)
}
