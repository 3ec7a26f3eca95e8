// Package styles provides shared lipgloss v2 styles for the dropdown, its
// chips and the CLI output.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	WarningStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style

	// Dropdown styles.
	TitleStyle          lipgloss.Style
	TitleBlurredStyle   lipgloss.Style
	SearchPromptStyle   lipgloss.Style
	RowStyle            lipgloss.Style
	RowCheckedStyle     lipgloss.Style
	RowCursorStyle      lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextForegroundStyle lipgloss.Style

	// Summary styles.
	ContainerTitleStyle lipgloss.Style
	ChipStyle           lipgloss.Style
	ChipFocusedStyle    lipgloss.Style

	// Toast styles.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SearchPromptStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	RowStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	RowCheckedStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	RowCursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	ContainerTitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	ChipStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorForeground)
	ChipFocusedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)
}

// Wrapper returns the frame style for one dropdown. With useStyles false the
// dropdown is drawn without any injected sizing or border. width is the
// content width in cells; zero leaves it unconstrained.
func Wrapper(useStyles bool, width int, rounded bool) lipgloss.Style {
	if !useStyles {
		return lipgloss.NewStyle()
	}

	border := lipgloss.NormalBorder()
	if rounded {
		border = lipgloss.RoundedBorder()
	}

	s := lipgloss.NewStyle().
		Border(border).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	if width > 0 {
		s = s.Width(width + s.GetHorizontalFrameSize())
	}
	return s
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
