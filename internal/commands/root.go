package commands

import (
	"github.com/urfave/cli/v3"
)

// NewRootCmd builds the chipselect command tree with its global flags.
// Version and lifecycle hooks are left to the caller.
func NewRootCmd(flags *Flags) *cli.Command {
	app := &cli.Command{
		Name:      "chipselect",
		Usage:     "Pick options from searchable multi-select dropdowns",
		UsageText: "chipselect [global options] [command] [command options] <page.yaml>",
		Description: `chipselect turns every multi-select control of a page file into a searchable
dropdown and mirrors the selection as removable chips.

Run 'chipselect <page.yaml>' to open a page interactively.
Run 'chipselect validate <page.yaml>' to check a page and the configuration.
Run 'chipselect doc keys' to list key bindings.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CHIPSELECT_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file, '-' for stderr",
				Sources:     cli.EnvVars("CHIPSELECT_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CHIPSELECT_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	pickCmd := NewPickCmd(flags)

	app = pickCmd.Register(app)
	app = NewValidateCmd(flags).Register(app)
	app = NewDocCmd(flags).Register(app)
	app = NewInitCmd(flags).Register(app)

	// Pick flags are accepted on the root command since pick is the default.
	app.Flags = append(app.Flags, pickCmd.Flags()...)
	app.Action = pickCmd.Run

	return app
}
