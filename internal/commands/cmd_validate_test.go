package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/printer"
)

func writePage(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newValidateCmd(t *testing.T, cfg config.Config) *ValidateCmd {
	t.Helper()
	return NewValidateCmd(&Flags{
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
		Config:     &cfg,
	})
}

func TestValidate_ValidPage(t *testing.T) {
	cmd := newValidateCmd(t, config.DefaultConfig())
	cmd.input.SetPath(writePage(t, `
controls:
  - id: colors
    multiple: true
    options:
      - label: Red
containers:
  - id: dropdownSelected
`))

	result, err := cmd.validate()
	require.NoError(t, err)

	assert.True(t, result.IsValid())
	assert.Empty(t, result.Warnings)
	assert.NotEmpty(t, result.Document)
}

func TestValidate_Errors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Options.MaxHeight = "tall"

	cmd := newValidateCmd(t, cfg)
	cmd.input.SetPath(writePage(t, `
controls:
  - id: colors
    multiple: true
    options:
      - label: ""
  - id: colors
`))

	result, err := cmd.validate()
	require.NoError(t, err)

	assert.False(t, result.IsValid())

	var fields []string
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	assert.Len(t, fields, 3)
	joined := strings.Join(fields, " ")
	assert.Contains(t, joined, "options.maxHeight")
	assert.Contains(t, joined, "controls[0].options[0].label")
	assert.Contains(t, joined, "controls[1].id")

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0].Message, "dropdownSelected")
}

func TestValidate_UnparseablePage(t *testing.T) {
	cmd := newValidateCmd(t, config.DefaultConfig())
	cmd.input.SetPath(writePage(t, "controls: [\n"))

	result, err := cmd.validate()
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "document", result.Errors[0].Field)
}

func TestValidate_MissingPage(t *testing.T) {
	cmd := newValidateCmd(t, config.DefaultConfig())
	cmd.input.SetPath(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := cmd.validate()
	assert.Error(t, err)
}

func TestValidate_OutputText(t *testing.T) {
	var buf bytes.Buffer
	cmd := newValidateCmd(t, config.DefaultConfig())

	err := cmd.outputText(printer.New(&buf), ValidationResult{
		Config:   "config.yaml",
		Errors:   []ValidationError{{Field: "theme", Message: "unknown theme"}},
		Warnings: []config.ValidationWarning{{Category: "Options", Item: "hideX", Message: "no effect"}},
	})
	require.Error(t, err)

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "● Options: no effect")
	assert.Contains(t, out, "  Item: hideX")
	assert.Contains(t, out, "✘ theme: unknown theme")
	assert.Contains(t, out, "1 error found")
}

func TestFieldErrors_Plain(t *testing.T) {
	assert.Nil(t, fieldErrors(nil))

	got := fieldErrors(assert.AnError)
	require.Len(t, got, 1)
	assert.Equal(t, "config", got[0].Field)
}
