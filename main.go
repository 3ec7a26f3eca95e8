package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/chipselect/internal/commands"
	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/core/logging"
	"github.com/colonyops/chipselect/internal/core/styles"
	"github.com/colonyops/chipselect/internal/printer"
	"github.com/colonyops/chipselect/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() (v, c, d string) {
	v, c, d = version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}
	return v, c, d
}

func build() string {
	v, c, d := buildInfo()
	return fmt.Sprintf("%s (%s) %s", v, c, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := commands.NewRootCmd(flags)
	app.Version = build()
	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger.Hook(logging.ContextHook{})
		logCloser = closer

		cfg, err := config.Load(flags.ConfigPath)
		if err != nil {
			// init exists to replace a config, so a broken one must not block it.
			if c.Args().First() != "init" {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			log.Warn().Err(err).Msg("ignoring invalid config for init")
			defaults := config.DefaultConfig()
			cfg = &defaults
		}
		flags.Config = cfg

		// Validation ensures the theme exists.
		palette, _ := styles.GetPalette(cfg.Theme)
		styles.SetTheme(palette)

		v, cm, d := buildInfo()
		flags.Build.Version, flags.Build.Commit, flags.Build.Date = v, cm, d

		log.Debug().Str("config", flags.ConfigPath).Str("theme", cfg.Theme).Msg("configuration loaded")

		return printer.WithPrinter(ctx, printer.New(c.Root().Writer)), nil
	}

	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
