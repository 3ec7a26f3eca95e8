package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/chipselect/internal/core/config"
	"github.com/colonyops/chipselect/internal/core/styles"
	"github.com/colonyops/chipselect/internal/tui"
	"github.com/colonyops/chipselect/internal/tui/components/multiselect"
)

type DocCmd struct {
	flags *Flags
	raw   bool
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	rawFlag := &cli.BoolFlag{
		Name:        "raw",
		Usage:       "print markdown without rendering",
		Destination: &cmd.raw,
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Reference documentation",
		Description: `Prints reference documentation for chipselect.

Use 'chipselect doc keys' to list key bindings.
Use 'chipselect doc page' to see the page file format and option defaults.`,
		Commands: []*cli.Command{
			{
				Name:  "keys",
				Usage: "Show key bindings",
				Flags: []cli.Flag{rawFlag},
				Action: func(_ context.Context, c *cli.Command) error {
					return cmd.print(c.Root().Writer, keysGuide())
				},
			},
			{
				Name:  "page",
				Usage: "Show the page file format",
				Flags: []cli.Flag{rawFlag},
				Action: func(_ context.Context, c *cli.Command) error {
					return cmd.print(c.Root().Writer, pageGuide(config.DefaultOptions()))
				},
			},
		},
	})
	return app
}

func (cmd *DocCmd) print(w io.Writer, markdown string) error {
	if cmd.raw {
		_, err := io.WriteString(w, markdown)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, printing raw")
		_, err = io.WriteString(w, markdown)
		return err
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("render doc: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func bindingRows(b *strings.Builder, bindings ...key.Binding) {
	for _, kb := range bindings {
		h := kb.Help()
		fmt.Fprintf(b, "| `%s` | %s |\n", strings.Join(kb.Keys(), "`, `"), h.Desc)
	}
}

func keysGuide() string {
	page := tui.DefaultPageKeyMap()
	ms := multiselect.DefaultKeyMap()

	var b strings.Builder
	b.WriteString("# Key Bindings\n\n")

	b.WriteString("## Page\n\n| Keys | Action |\n|------|--------|\n")
	bindingRows(&b, page.Next, page.Prev, page.Close, page.Submit, page.Abort, page.ScrollUp, page.ScrollDown)

	b.WriteString("\n## Choice list\n\n| Keys | Action |\n|------|--------|\n")
	bindingRows(&b, ms.Up, ms.Down, ms.Toggle)

	b.WriteString("\n## Chips\n\n| Keys | Action |\n|------|--------|\n")
	bindingRows(&b, ms.ChipLeft, ms.ChipRight, ms.RemoveChip)

	b.WriteString(`
## Mouse

- Click the search input or title to open a list.
- Click a row to toggle it.
- Click the ` + "`" + styles.IconRemove + "`" + ` on a chip to deselect it.
- Click anywhere else to close open lists.
- Scroll the wheel to move a page taller than the terminal.
`)
	return b.String()
}

func pageGuide(d config.Options) string {
	return fmt.Sprintf(`# Page Format

A page is a YAML file declaring selection controls and the containers their
selected chips render into. Only controls with `+"`multiple: true`"+` get a dropdown.

`+"```yaml"+`
controls:
  - id: colors            # falls back to name
    name: Colors          # shown as the dropdown title
    multiple: true
    summary: dropdownSelected
    options:
      - label: Red
      - label: Green
        value: green      # falls back to label
        selected: true
containers:
  - id: dropdownSelected
`+"```"+`

## Options

Set under `+"`options:`"+` in the config file. Sizes accept cells (`+"`20`"+`) or CSS
pixels (`+"`160px`"+`, %d px per column and %d px per row).

| Option | Default |
|--------|---------|
| search | %t |
| useStyles | %t |
| txtSearch | %s |
| minWidth | %s |
| maxWidth | %s |
| maxHeight | %s |
| borderRadius | %d |

`+"`hideX`, `placeholder`, `txtSelected`, `txtAll` and `txtRemove`"+` are accepted for
compatibility and have no effect.
`,
		config.PixelsPerColumn, config.PixelsPerRow,
		d.Search, d.UseStyles, d.TxtSearch, d.MinWidth, d.MaxWidth, d.MaxHeight, d.BorderRadius,
	)
}
