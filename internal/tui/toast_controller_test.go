package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(Notice{Level: LevelInfo, Message: "hello"})

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "hello", c.Toasts()[0].notice.Message)
	assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(Notice{Level: LevelInfo, Message: fmt.Sprint(i)})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2", c.Toasts()[0].notice.Message)
}

func TestToastController_Tick(t *testing.T) {
	c := NewToastController()
	c.Push(Notice{Message: "expires"})
	c.Push(Notice{Message: "survives"})

	c.Tick(time.Second)
	assert.Equal(t, defaultToastTTL-time.Second, c.Toasts()[1].remaining)

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notice.Message)
}

func TestToastController_DismissAll(t *testing.T) {
	c := NewToastController()
	c.Push(Notice{Message: "a"})
	c.Push(Notice{Message: "b"})

	c.DismissAll()

	assert.False(t, c.HasToasts())
}
