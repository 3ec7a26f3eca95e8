package commands

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chipselect/internal/core/config"
)

func TestKeysGuide(t *testing.T) {
	guide := keysGuide()

	assert.Contains(t, guide, "| `ctrl+s` | submit |")
	assert.Contains(t, guide, "| `space`, `enter` | toggle |")
	assert.Contains(t, guide, "| `x`, `backspace`, `delete` | remove |")
}

func TestPageGuide(t *testing.T) {
	guide := pageGuide(config.DefaultOptions())

	assert.Contains(t, guide, "| minWidth | 160px |")
	assert.Contains(t, guide, "| search | true |")
	assert.Contains(t, guide, "8 px per column")
}

func TestDocCmd_PrintRaw(t *testing.T) {
	var buf bytes.Buffer
	cmd := &DocCmd{raw: true}

	require.NoError(t, cmd.print(&buf, "# Title\n"))
	assert.Equal(t, "# Title\n", buf.String())
}

func TestDocCmd_PrintRendered(t *testing.T) {
	var buf bytes.Buffer
	cmd := &DocCmd{}

	require.NoError(t, cmd.print(&buf, "# Key Bindings\n"))
	assert.Contains(t, ansi.Strip(buf.String()), "Bindings")
}
