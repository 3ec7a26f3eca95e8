package initcmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/printer"
)

func TestWriteConfig_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.DefaultConfig()
	cfg.Theme = "gruvbox"
	cfg.Options.Search = false
	cfg.Options.MaxHeight = "5"

	require.NoError(t, WriteConfig(cfg, path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", got.Theme)
	assert.False(t, got.Options.Search)
	assert.Equal(t, config.Size("5"), got.Options.MaxHeight)
}

func TestBackupConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	backup, err := BackupConfig(path)
	require.NoError(t, err)
	assert.Empty(t, backup, "nothing to back up")

	require.NoError(t, os.WriteFile(path, []byte("theme: onedark\n"), 0o644))
	backup, err = BackupConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path+".bak", backup)

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "theme: onedark\n", string(data))
}

func TestWizard_Yes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	var out bytes.Buffer
	ctx := printer.WithPrinter(context.Background(), printer.New(&out))

	require.NoError(t, NewWizard(WizardOptions{ConfigPath: path, Yes: true}).Run(ctx))
	assert.True(t, ConfigExists(path))
	assert.Contains(t, out.String(), "Created config")

	err := NewWizard(WizardOptions{ConfigPath: path, Yes: true}).Run(ctx)
	require.Error(t, err, "refuses to overwrite without --force")

	require.NoError(t, NewWizard(WizardOptions{ConfigPath: path, Yes: true, Force: true}).Run(ctx))
	assert.FileExists(t, path+".bak")
}

func TestValidateSizes(t *testing.T) {
	require.NoError(t, validateColumns("160px"))
	require.NoError(t, validateRows("12"))
	require.Error(t, validateColumns("wide"))
	require.Error(t, validateRows("-3"))
}
