package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/core/document"
	"github.com/colonyops/chipselect/internal/printer"
	"github.com/colonyops/chipselect/pkg/iojson"
)

// ValidationError is one failed check.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of validating the config and a page.
type ValidationResult struct {
	Config   string                     `json:"config"`
	Document string                     `json:"document,omitempty"`
	Errors   []ValidationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

// IsValid reports whether no errors were found.
func (r ValidationResult) IsValid() bool { return len(r.Errors) == 0 }

type ValidateCmd struct {
	flags  *Flags
	format string
	input  iojson.FileReader
}

// NewValidateCmd creates a new validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate the configuration and a page file",
		UsageText: "chipselect validate [options] [page.yaml]",
		Description: `Validates the configuration file and, when given, a page file.

The page is read from the positional argument, the --file flag, or stdin
when it is piped. Without a page only the configuration is checked.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			cmd.input.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cmd.input.SetPath(c.Args().First())

	result, err := cmd.validate()
	if err != nil {
		return err
	}

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result); err != nil {
			return err
		}
		if !result.IsValid() {
			return cli.Exit("", 1)
		}
		return nil
	}

	return cmd.outputText(printer.Ctx(ctx), result)
}

func (cmd *ValidateCmd) validate() (ValidationResult, error) {
	result := ValidationResult{Config: cmd.flags.ConfigPath}

	var doc *document.Document
	if cmd.input.Provided() {
		data, err := cmd.input.Read()
		if err != nil {
			return result, err
		}

		doc, err = document.Parse(data)
		if err != nil {
			result.Document = cmd.input.Path()
			result.Errors = append(result.Errors, ValidationError{Field: "document", Message: err.Error()})
			return result, nil
		}
		doc.Path = cmd.input.Path()
		result.Document = doc.Path
	}

	result.Errors = append(result.Errors, fieldErrors(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath, doc))...)
	result.Warnings = cmd.flags.Config.Warnings(doc)
	return result, nil
}

// fieldErrors flattens criterio's field errors into result entries.
func fieldErrors(err error) []ValidationError {
	if err == nil {
		return nil
	}

	var fe criterio.FieldErrors
	if !errors.As(err, &fe) {
		return []ValidationError{{Field: "config", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fe))
	for _, e := range fe {
		out = append(out, ValidationError{Field: e.Field, Message: e.Err.Error()})
	}
	return out
}

func (cmd *ValidateCmd) outputText(p *printer.Printer, result ValidationResult) error {
	title := "config " + result.Config
	if result.Document != "" {
		title += ", page " + result.Document
	}
	p.Header(title)

	for _, warn := range result.Warnings {
		p.Infof("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, e := range result.Errors {
		p.Errorf("%s: %s", e.Field, e.Message)
	}

	p.Printf("")
	if result.IsValid() {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%s found", pluralErrors(len(result.Errors)))
	return cli.Exit("", 1)
}

func pluralErrors(n int) string {
	if n == 1 {
		return "1 error"
	}
	return fmt.Sprintf("%d errors", n)
}
