package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorCard        = lipgloss.Color("#111827")
	colorBorder      = lipgloss.Color("#1F2937")
	colorInput       = lipgloss.Color("#374151")
	colorMuted       = lipgloss.Color("#9CA3AF")
	colorPlaceholder = lipgloss.Color("#6B7280")
	colorWhite       = lipgloss.Color("#FFFFFF")
	colorResultCard  = lipgloss.Color("#581C87")
	colorResultEdge  = lipgloss.Color("#7C3AED")
	colorLavender    = lipgloss.Color("#D8B4FE")
	colorAlert       = lipgloss.Color("#F87171")

	defaultAccent = "#9333EA"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Clear    lipgloss.Style

	InputCard    lipgloss.Style
	InputTitle   lipgloss.Style
	Label        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Placeholder  lipgloss.Style
	Button       lipgloss.Style

	ResultCard lipgloss.Style
	SignName   lipgloss.Style
	DateRange  lipgloss.Style
	Divider    lipgloss.Style
	StoneLabel lipgloss.Style
	StoneName  lipgloss.Style

	Footer lipgloss.Style
	Alert  lipgloss.Style
}

func DefaultTheme() Theme {
	return NewTheme(defaultAccent)
}

// NewTheme builds the dark "night sky" palette around an accent colour.
func NewTheme(accent string) Theme {
	if strings.TrimSpace(accent) == "" {
		accent = defaultAccent
	}
	a := lipgloss.Color(accent)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		Subtitle: lipgloss.NewStyle().Foreground(colorMuted),
		Help:     lipgloss.NewStyle().Faint(true),
		Clear: lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorBorder).
			Padding(0, 2).
			Bold(true),

		InputCard: lipgloss.NewStyle().
			Padding(1, 2).
			Background(colorCard).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder),
		InputTitle:   lipgloss.NewStyle().Bold(true).Foreground(colorWhite).MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(colorMuted),
		Input:        lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(colorInput),
		InputFocused: lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(a),
		Placeholder:  lipgloss.NewStyle().Foreground(colorPlaceholder),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(a).
			Padding(0, 3).
			MarginTop(1),

		ResultCard: lipgloss.NewStyle().
			Padding(1, 4).
			Background(colorResultCard).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorResultEdge).
			Align(lipgloss.Center),
		SignName:   lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		DateRange:  lipgloss.NewStyle().Foreground(colorLavender),
		Divider:    lipgloss.NewStyle().Foreground(colorResultEdge),
		StoneLabel: lipgloss.NewStyle().Foreground(colorLavender),
		StoneName:  lipgloss.NewStyle().Bold(true).Foreground(colorWhite),

		Footer: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Alert: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(colorAlert).
			Foreground(colorWhite),
	}
}

// Swatch renders a solid block filled with the birthstone colour.
func (t Theme) Swatch(hex string) string {
	row := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", 10))
	return strings.Join([]string{row, row, row}, "\n")
}
