package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/core/document"
	"github.com/colonyops/chipselect/internal/core/eventbus"
	"github.com/colonyops/chipselect/internal/core/logging"
	"github.com/colonyops/chipselect/internal/tui"
	"github.com/colonyops/chipselect/pkg/iojson"
)

// PickResult is written to stdout when the page is submitted.
type PickResult struct {
	Document   string              `json:"document"`
	Selections map[string][]string `json:"selections"`
}

type PickCmd struct {
	flags   *Flags
	events  string
	noWatch bool
}

// NewPickCmd creates a new pick command
func NewPickCmd(flags *Flags) *PickCmd {
	return &PickCmd{flags: flags}
}

// Flags returns the pick flags for registration on the root command too,
// since pick is the default action.
func (cmd *PickCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "events",
			Usage:       "append selection events as JSON lines to this file",
			Sources:     cli.EnvVars("CHIPSELECT_EVENTS"),
			Destination: &cmd.events,
		},
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not reload the config file when it changes",
			Destination: &cmd.noWatch,
		},
	}
}

// Register adds the pick command to the application.
func (cmd *PickCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "pick",
		Usage:     "Open a page and pick options interactively",
		UsageText: "chipselect pick [options] <page.yaml>",
		Description: `Renders every multi-select control of the page as a searchable dropdown and
mirrors the selection as removable chips in the page's summary containers.

Press ctrl+s to print the selections as JSON and exit, ctrl+c to abort.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})
	return app
}

// Run executes pick. Exported for use as the default command.
func (cmd *PickCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *PickCmd) run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("page file required. Run 'chipselect pick --help' for usage")
	}

	doc, err := cmd.loadPage(path)
	if err != nil {
		return err
	}
	ctx = logging.WithDocument(ctx, path)

	bus := eventbus.New()
	eventbus.RegisterDebugLogger(bus, logging.Component("eventbus"))

	if cmd.events != "" {
		f, err := os.OpenFile(cmd.events, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open events file: %w", err)
		}
		defer func() { _ = f.Close() }()

		journal := eventbus.NewJournal(bus, f)
		defer func() {
			if err := journal.Err(); err != nil {
				log.Warn().Ctx(ctx).Err(err).Msg("event journal incomplete")
			}
		}()
	}

	m := tui.New(doc, cmd.flags.Config, tui.Options{
		Bus:      bus,
		Build:    cmd.flags.Build,
		Warnings: cmd.flags.Config.Warnings(doc),
	})
	p := tea.NewProgram(m, tea.WithContext(ctx))

	if !cmd.noWatch {
		w, err := config.Watch(ctx, cmd.flags.ConfigPath, func(cfg *config.Config, err error) {
			p.Send(tui.ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			log.Debug().Ctx(ctx).Err(err).Str("path", cmd.flags.ConfigPath).Msg("config watch disabled")
		} else {
			defer func() { _ = w.Close() }()
		}
	}

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	model := finalModel.(*tui.Model)
	if !model.Submitted() {
		log.Info().Ctx(ctx).Msg("pick aborted")
		return cli.Exit("aborted", 130)
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, PickResult{
		Document:   path,
		Selections: model.Results(),
	})
}

// loadPage reads the page and rejects it when validate would, so that every
// control has a distinct id before controllers are built.
func (cmd *PickCmd) loadPage(path string) (*document.Document, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}

	if err := cmd.flags.Config.ValidateDeep("", doc); err != nil {
		return nil, fmt.Errorf("invalid page %s: %w", path, err)
	}
	return doc, nil
}
