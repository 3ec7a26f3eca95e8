package config

import (
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chipselect/internal/core/document"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func TestValidateDeep_Valid(t *testing.T) {
	cfg := validConfig(t)
	doc, err := document.Parse([]byte(`
controls:
  - id: colors
    multiple: true
    options: [{label: Red}]
containers:
  - id: dropdownSelected
`))
	require.NoError(t, err)

	assert.NoError(t, cfg.ValidateDeep("", doc))
	assert.Empty(t, cfg.Warnings(doc))
}

func TestValidateDeep_ConfigIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	err := cfg.ValidateDeep(t.TempDir(), nil)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Field, "config_file")
}

func TestValidateDeep_MissingConfigIsFine(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "missing.yaml"), nil))
}

func TestValidateDeep_BadOptions(t *testing.T) {
	cfg := validConfig(t)
	cfg.Options.MinWidth = "wide"
	cfg.Options.BorderRadius = -2

	err := cfg.ValidateDeep("", nil)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Contains(t, fieldErrs[0].Field, "options.minWidth")
	assert.Contains(t, fieldErrs[1].Field, "options.borderRadius")
}

func TestValidateDeep_BadDocument(t *testing.T) {
	cfg := validConfig(t)
	doc, err := document.Parse([]byte(`
controls:
  - id: colors
    multiple: true
    options: [{label: ""}]
  - id: colors
    multiple: true
  - multiple: true
containers:
  - id: ""
`))
	require.NoError(t, err)

	err = cfg.ValidateDeep("", doc)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 4)
	assert.Contains(t, fieldErrs[0].Field, "controls[0].options[0].label")
	assert.Contains(t, fieldErrs[1].Err.Error(), "duplicate control id")
	assert.Contains(t, fieldErrs[2].Field, "controls[2].id")
	assert.Contains(t, fieldErrs[3].Field, "containers[0].id")
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	cfg.Options.HideX = true

	doc, err := document.Parse([]byte(`
controls:
  - id: tags
    multiple: true
    summary: nowhere
`))
	require.NoError(t, err)

	warnings := cfg.Warnings(doc)
	require.Len(t, warnings, 3)
	assert.Equal(t, "hideX", warnings[0].Item)
	assert.Contains(t, warnings[1].Message, `"nowhere" not found`)
	assert.Equal(t, "control has no options", warnings[2].Message)

	noEligible, err := document.Parse([]byte("controls:\n  - id: single\n"))
	require.NoError(t, err)
	warnings = cfg.Warnings(noEligible)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[1].Message, "nothing will be rendered")
}

func TestWarnings_InertTextOptions(t *testing.T) {
	cfg := validConfig(t)
	cfg.Options.Placeholder = "Pick some"
	cfg.Options.TxtRemove = "Drop"
	cfg.Options.TxtAll = DefaultOptions().TxtAll

	warnings := cfg.Warnings(nil)

	items := make([]string, 0, len(warnings))
	for _, w := range warnings {
		assert.Equal(t, "Options", w.Category)
		items = append(items, w.Item)
	}
	assert.Equal(t, []string{"placeholder", "txtRemove"}, items)
}
