// Package printer writes styled, line-oriented status output for CLI
// commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/chipselect/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to w.
type Printer struct {
	w io.Writer
}

// New returns a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter returns a context carrying p.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(style *lipgloss.Style, icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if style != nil {
		msg = style.Render(icon) + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(nil, "", format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(&styles.SuccessStyle, "✔", format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(&styles.WarningStyle, "●", format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(&styles.ErrorStyle, "✘", format, args...)
}

// Header writes a bold section title followed by a divider.
func (p *Printer) Header(title string) {
	_, _ = fmt.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
	_, _ = fmt.Fprintln(p.w, styles.DividerStyle.Render(strings.Repeat("─", lipgloss.Width(title))))
}
