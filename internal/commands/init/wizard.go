// Package initcmd writes a starter configuration file, prompting for the
// theme and dropdown options unless defaults are requested.
package initcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/core/styles"
	"github.com/colonyops/chipselect/internal/printer"
)

const configHeader = "# chipselect configuration. Run 'chipselect doc page' for every option.\n"

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !w.opts.Yes {
		if err := promptUser(&cfg); err != nil {
			return err
		}
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := WriteConfig(cfg, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	// Load it back so a bad answer fails here and not on the next run.
	if _, err := config.Load(w.opts.ConfigPath); err != nil {
		return fmt.Errorf("written config does not load: %w", err)
	}

	p.Printf("")
	p.Printf("Run 'chipselect <page.yaml>' to open a page.")
	return nil
}

func promptUser(cfg *config.Config) error {
	themes := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themes = append(themes, huh.NewOption(name, name))
	}

	opts := &cfg.Options
	minWidth, maxWidth, maxHeight := string(opts.MinWidth), string(opts.MaxWidth), string(opts.MaxHeight)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&cfg.Theme),
			huh.NewConfirm().
				Title("Show a search input?").
				Description("Filters the choice list as you type").
				Value(&opts.Search),
			huh.NewInput().
				Title("Search placeholder").
				Value(&opts.TxtSearch),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Apply sizing and borders?").
				Value(&opts.UseStyles),
			huh.NewInput().
				Title("Minimum width").
				Description("Cells (20) or CSS pixels (160px)").
				Value(&minWidth).
				Validate(validateColumns),
			huh.NewInput().
				Title("Maximum width").
				Value(&maxWidth).
				Validate(validateColumns),
			huh.NewInput().
				Title("Maximum list height").
				Value(&maxHeight).
				Validate(validateRows),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	opts.MinWidth, opts.MaxWidth, opts.MaxHeight = config.Size(minWidth), config.Size(maxWidth), config.Size(maxHeight)
	return cfg.Validate()
}

func validateColumns(s string) error {
	_, err := config.Size(s).Columns()
	return err
}

func validateRows(s string) error {
	_, err := config.Size(s).Rows()
	return err
}

// WriteConfig writes cfg as YAML to path, creating parent directories.
func WriteConfig(cfg config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}
