// Package config handles configuration loading and validation for chipselect.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/chipselect/internal/core/styles"
)

// Pixel ratios used to map CSS-style sizes onto terminal cells.
const (
	PixelsPerColumn = 8
	PixelsPerRow    = 18
)

// Config holds the application configuration.
type Config struct {
	Theme   string  `yaml:"theme"`
	Options Options `yaml:"options"`
}

// Options are applied uniformly to every multi-select on a page. Field names
// match the options accepted by the dropdown in the browser.
type Options struct {
	Search    bool `yaml:"search"`    // render the search input
	HideX     bool `yaml:"hideX"`     // accepted, no effect
	UseStyles bool `yaml:"useStyles"` // apply sizing and border styling

	Placeholder string `yaml:"placeholder"` // accepted, no effect
	TxtSelected string `yaml:"txtSelected"` // accepted, no effect
	TxtAll      string `yaml:"txtAll"`      // accepted, no effect
	TxtRemove   string `yaml:"txtRemove"`   // accepted, no effect
	TxtSearch   string `yaml:"txtSearch"`   // search input placeholder

	MinWidth     Size `yaml:"minWidth"`
	MaxWidth     Size `yaml:"maxWidth"`
	MaxHeight    Size `yaml:"maxHeight"`
	BorderRadius int  `yaml:"borderRadius"`
}

// Size is a dimension given either as bare terminal cells ("20", 20) or as
// CSS pixels ("160px").
type Size string

// cells converts the size to terminal cells using pxPerCell for pixel values.
func (s Size) cells(pxPerCell int) (int, error) {
	raw := strings.TrimSpace(string(s))
	if raw == "" {
		return 0, nil
	}

	px := strings.HasSuffix(raw, "px")
	raw = strings.TrimSuffix(raw, "px")

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", string(s))
	}
	if n < 0 {
		return 0, fmt.Errorf("size %q must not be negative", string(s))
	}

	if px {
		return n / pxPerCell, nil
	}
	return n, nil
}

// Columns returns the size as a terminal column count.
func (s Size) Columns() (int, error) { return s.cells(PixelsPerColumn) }

// Rows returns the size as a terminal row count.
func (s Size) Rows() (int, error) { return s.cells(PixelsPerRow) }

// DefaultOptions returns the option defaults of the browser dropdown.
func DefaultOptions() Options {
	return Options{
		Search:       true,
		HideX:        false,
		UseStyles:    true,
		Placeholder:  "Select...",
		TxtSelected:  "Selected",
		TxtAll:       "All",
		TxtRemove:    "Remove",
		TxtSearch:    "Search...",
		MinWidth:     "160px",
		MaxWidth:     "360px",
		MaxHeight:    "180px",
		BorderRadius: 6,
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:   styles.DefaultTheme,
		Options: DefaultOptions(),
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// Booleans are taken as written; an explicit false is meaningful.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Options.TxtSearch == "" {
		c.Options.TxtSearch = defaults.Options.TxtSearch
	}
	if c.Options.MinWidth == "" {
		c.Options.MinWidth = defaults.Options.MinWidth
	}
	if c.Options.MaxWidth == "" {
		c.Options.MaxWidth = defaults.Options.MaxWidth
	}
	if c.Options.MaxHeight == "" {
		c.Options.MaxHeight = defaults.Options.MaxHeight
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	return c.Options.Validate()
}

// Validate checks sizing options.
func (o Options) Validate() error {
	minW, err := o.MinWidth.Columns()
	if err != nil {
		return fmt.Errorf("options.minWidth: %w", err)
	}

	maxW, err := o.MaxWidth.Columns()
	if err != nil {
		return fmt.Errorf("options.maxWidth: %w", err)
	}

	if maxW > 0 && minW > maxW {
		return fmt.Errorf("options.minWidth (%d cells) exceeds options.maxWidth (%d cells)", minW, maxW)
	}

	if _, err := o.MaxHeight.Rows(); err != nil {
		return fmt.Errorf("options.maxHeight: %w", err)
	}

	if o.BorderRadius < 0 {
		return fmt.Errorf("options.borderRadius must not be negative")
	}

	return nil
}

// Layout is the resolved cell geometry for a dropdown.
type Layout struct {
	MinWidth int
	MaxWidth int
	MaxRows  int
	Rounded  bool
}

// Layout resolves sizing options to cells. Validate must have passed.
func (o Options) Layout() Layout {
	minW, _ := o.MinWidth.Columns()
	maxW, _ := o.MaxWidth.Columns()
	rows, _ := o.MaxHeight.Rows()
	return Layout{
		MinWidth: minW,
		MaxWidth: maxW,
		MaxRows:  rows,
		Rounded:  o.BorderRadius > 0,
	}
}
