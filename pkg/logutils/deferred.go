package logutils

import (
	"bytes"
	"io"
	"sync"
)

// deferredWriter holds log output in memory while the TUI owns the terminal
// and releases it with flush once the screen is restored.
type deferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
	out io.Writer
}

func (d *deferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// flush writes everything buffered so far to out and empties the buffer.
func (d *deferredWriter) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.buf.Len() == 0 {
		return
	}
	_, _ = d.buf.WriteTo(d.out)
}
