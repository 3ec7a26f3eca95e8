package eventbus

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// journalEntry is one JSON line written by a Journal.
type journalEntry struct {
	Time    time.Time `json:"time"`
	Event   Event     `json:"event"`
	Payload any       `json:"payload"`
}

// Journal writes every published event to w as a JSON line, so processes
// outside the TUI can observe selection changes.
type Journal struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
	err error
}

// NewJournal attaches a journal to bus. Write errors are kept and reported by
// Err; later events are still attempted.
func NewJournal(bus *EventBus, w io.Writer) *Journal {
	j := &Journal{enc: json.NewEncoder(w), now: time.Now}
	bus.OnPublish(j.write)
	return j
}

func (j *Journal) write(event Event, payload any) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.enc.Encode(journalEntry{Time: j.now(), Event: event, Payload: payload}); err != nil && j.err == nil {
		j.err = err
	}
}

// Err returns the first write error, if any.
func (j *Journal) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}
