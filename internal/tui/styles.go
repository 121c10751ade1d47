package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rotina/internal/plan"
	"github.com/javiermolinar/rotina/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	AppStyle lipgloss.Style

	// Header
	TitleStyle  lipgloss.Style
	DateStyle   lipgloss.Style
	TodayStyle  lipgloss.Style
	BorderStyle lipgloss.Style

	// Timeline rows
	TimeStyle     lipgloss.Style
	NameStyle     lipgloss.Style
	DoneStyle     lipgloss.Style
	CurrentStyle  lipgloss.Style
	OverrideStyle lipgloss.Style
	EmptyStyle    lipgloss.Style

	// Footer
	StatsStyle  lipgloss.Style
	FreeStyle   lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	PromptStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		AppStyle: lipgloss.NewStyle().
			Background(p.Bg).
			Foreground(p.Fg).
			Padding(0, 1),

		TitleStyle: lipgloss.NewStyle().
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		DateStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Bold(true),
		TodayStyle: lipgloss.NewStyle().
			Foreground(p.Current),
		BorderStyle: lipgloss.NewStyle().
			Foreground(p.BgSelection),

		TimeStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted),
		NameStyle: lipgloss.NewStyle().
			Foreground(p.Fg),
		DoneStyle: lipgloss.NewStyle().
			Foreground(p.Done),
		CurrentStyle: lipgloss.NewStyle().
			Foreground(p.Current).
			Bold(true),
		OverrideStyle: lipgloss.NewStyle().
			Foreground(p.Warning).
			Italic(true),
		EmptyStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Italic(true),

		StatsStyle: lipgloss.NewStyle().
			Foreground(p.Fg),
		FreeStyle: lipgloss.NewStyle().
			Foreground(p.Done),
		StatusStyle: lipgloss.NewStyle().
			Foreground(p.Accent),
		ErrorStyle: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true),
		HelpStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted),
		PromptStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.BgHighlight),
	}
}

// TypeStyle colors the label of an activity type.
func (s *Styles) TypeStyle(typ plan.ActivityType) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.Type(typ))
}

// MutedTypeStyle colors the label of a completed activity.
func (s *Styles) MutedTypeStyle(typ plan.ActivityType) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.Muted(typ))
}

// SelectedStyle highlights the row under the cursor.
func (s *Styles) SelectedStyle(typ plan.ActivityType) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(s.palette.TypeBg(typ)).
		Foreground(s.palette.Fg).
		Bold(true)
}
