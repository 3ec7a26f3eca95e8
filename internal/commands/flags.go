package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/tui"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Build is shown in the page header
	Build tui.BuildInfo
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "chipselect", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/chipselect/chipselect.log
// On Linux: $XDG_STATE_HOME/chipselect/chipselect.log (defaults to ~/.local/state/chipselect/chipselect.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "chipselect", "chipselect.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "chipselect", "chipselect.log")
	}

	return filepath.Join(home, ".local", "state", "chipselect", "chipselect.log")
}
