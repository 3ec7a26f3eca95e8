package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.True(t, cfg.Options.Search)
	assert.True(t, cfg.Options.UseStyles)
	assert.False(t, cfg.Options.HideX)
	assert.Equal(t, "Search...", cfg.Options.TxtSearch)
	assert.Equal(t, "Select...", cfg.Options.Placeholder)
	assert.Equal(t, 6, cfg.Options.BorderRadius)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
options:
  search: false
  useStyles: false
  hideX: true
  txtSearch: "Filter..."
  minWidth: 10
  maxWidth: 240px
  borderRadius: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.False(t, cfg.Options.Search)
	assert.False(t, cfg.Options.UseStyles)
	assert.True(t, cfg.Options.HideX)
	assert.Equal(t, "Filter...", cfg.Options.TxtSearch)
	// unspecified options keep defaults
	assert.Equal(t, "Remove", cfg.Options.TxtRemove)
	assert.Equal(t, Size("180px"), cfg.Options.MaxHeight)

	layout := cfg.Options.Layout()
	assert.Equal(t, 10, layout.MinWidth)
	assert.Equal(t, 30, layout.MaxWidth)
	assert.Equal(t, 10, layout.MaxRows)
	assert.False(t, layout.Rounded)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "bad yaml",
			body:    "options: [",
			wantErr: "parse config file",
		},
		{
			name:    "unknown theme",
			body:    "theme: neon",
			wantErr: "unknown theme",
		},
		{
			name:    "bad size",
			body:    "options:\n  maxHeight: tall",
			wantErr: "options.maxHeight",
		},
		{
			name:    "min exceeds max",
			body:    "options:\n  minWidth: 50\n  maxWidth: 20",
			wantErr: "exceeds",
		},
		{
			name:    "negative radius",
			body:    "options:\n  borderRadius: -1",
			wantErr: "borderRadius",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		size    Size
		cols    int
		rows    int
		wantErr bool
	}{
		{size: "", cols: 0, rows: 0},
		{size: "12", cols: 12, rows: 12},
		{size: "160px", cols: 20, rows: 8},
		{size: " 36 px", cols: 4, rows: 2},
		{size: "abc", wantErr: true},
		{size: "-4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			cols, err := tt.size.Columns()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cols, cols)

			rows, err := tt.size.Rows()
			require.NoError(t, err)
			assert.Equal(t, tt.rows, rows)
		})
	}
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultOptions().Layout()
	assert.Equal(t, Layout{MinWidth: 20, MaxWidth: 45, MaxRows: 10, Rounded: true}, layout)
}
