package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: tokyo-night\n"), 0o644))

	var (
		mu      sync.Mutex
		themes  []string
		lastErr error
	)
	w, err := Watch(context.Background(), path, func(cfg *Config, err error) {
		mu.Lock()
		defer mu.Unlock()
		lastErr = err
		if cfg != nil {
			themes = append(themes, cfg.Theme)
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(path, []byte("theme: gruvbox\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(themes) > 0 && themes[len(themes)-1] == "gruvbox"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("theme: nope\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return lastErr != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	calls := make(chan struct{}, 1)
	w, err := Watch(context.Background(), path, func(*Config, error) {
		select {
		case calls <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case <-calls:
		assert.Fail(t, "reload fired for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "config.yaml"), func(*Config, error) {})
	require.Error(t, err)
}
