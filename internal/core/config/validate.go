package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/chipselect/internal/core/document"
	"github.com/colonyops/chipselect/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration and the
// page document. Either path may be empty to skip its file checks.
func (c *Config) ValidateDeep(configPath string, doc *document.Document) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("theme", c.Theme, themeExists),
		c.validateOptions(),
		validateDocument(doc),
	)
}

// Warnings returns non-fatal issues with the configuration and document.
func (c *Config) Warnings(doc *document.Document) []ValidationWarning {
	var warnings []ValidationWarning

	if c.Options.HideX {
		warnings = append(warnings, ValidationWarning{
			Category: "Options",
			Item:     "hideX",
			Message:  "hideX is accepted but has no effect",
		})
	}

	defaults := DefaultOptions()
	inert := []struct {
		name       string
		value, def string
	}{
		{"placeholder", c.Options.Placeholder, defaults.Placeholder},
		{"txtSelected", c.Options.TxtSelected, defaults.TxtSelected},
		{"txtAll", c.Options.TxtAll, defaults.TxtAll},
		{"txtRemove", c.Options.TxtRemove, defaults.TxtRemove},
	}
	for _, opt := range inert {
		if opt.value != "" && opt.value != opt.def {
			warnings = append(warnings, ValidationWarning{
				Category: "Options",
				Item:     opt.name,
				Message:  opt.name + " is accepted but has no effect",
			})
		}
	}

	if doc == nil {
		return warnings
	}

	if len(doc.Eligible()) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Document",
			Message:  "no controls are marked multiple; nothing will be rendered",
		})
	}

	for _, ctrl := range doc.Eligible() {
		if doc.Container(ctrl.SummaryID()) == nil {
			warnings = append(warnings, ValidationWarning{
				Category: "Document",
				Item:     ctrl.ID,
				Message:  fmt.Sprintf("summary container %q not found; selected chips will not be shown", ctrl.SummaryID()),
			})
		}
		if len(ctrl.Options) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Document",
				Item:     ctrl.ID,
				Message:  "control has no options",
			})
		}
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

func (c *Config) validateOptions() error {
	var errs criterio.FieldErrorsBuilder

	if _, err := c.Options.MinWidth.Columns(); err != nil {
		errs = errs.Append("options.minWidth", err)
	}
	if _, err := c.Options.MaxWidth.Columns(); err != nil {
		errs = errs.Append("options.maxWidth", err)
	}
	if _, err := c.Options.MaxHeight.Rows(); err != nil {
		errs = errs.Append("options.maxHeight", err)
	}
	if c.Options.BorderRadius < 0 {
		errs = errs.Append("options.borderRadius", fmt.Errorf("must not be negative"))
	}

	return errs.ToError()
}

// validateDocument checks control ids are present and unique.
func validateDocument(doc *document.Document) error {
	if doc == nil {
		return nil
	}

	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool)

	for i, ctrl := range doc.Controls {
		field := fmt.Sprintf("controls[%d]", i)
		if ctrl.ID == "" {
			errs = errs.Append(field+".id", fmt.Errorf("id or name is required"))
			continue
		}
		if seen[ctrl.ID] {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate control id %q", ctrl.ID))
		}
		seen[ctrl.ID] = true

		for j, opt := range ctrl.Options {
			if opt.Label == "" {
				errs = errs.Append(fmt.Sprintf("%s.options[%d].label", field, j), fmt.Errorf("label is required"))
			}
		}
	}

	for i, c := range doc.Containers {
		if c == nil || c.ID == "" {
			errs = errs.Append(fmt.Sprintf("containers[%d].id", i), fmt.Errorf("id is required"))
		}
	}

	return errs.ToError()
}
