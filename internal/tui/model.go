// Package tui provides the terminal day viewer for rotina.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rotina/internal/config"
	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/freetime"
	"github.com/javiermolinar/rotina/internal/logger"
	"github.com/javiermolinar/rotina/internal/plan"
	"github.com/javiermolinar/rotina/internal/planner"
	"github.com/javiermolinar/rotina/internal/tui/commands"
	"github.com/javiermolinar/rotina/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Typing a water amount
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	svc    commands.DayService
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	date     time.Time // Day being shown, local midnight
	record   *plan.DayRecord
	free     []freetime.FreeSlot
	loading  bool
	cursor   int // Index into record.Activities
	offset   int // First visible activity
	mode     Mode
	showFree bool

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
	isError    bool

	now func() time.Time
}

// New creates a new TUI model showing date.
func New(svc commands.DayService, cfg *config.Config, date time.Time) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "250"
	ti.Prompt = "Água (ml): "
	ti.CharLimit = 5
	ti.Width = 8

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		logger.Warn("loading theme", "theme", cfg.UI.Theme, "err", err)
		t, _ = theme.Load(theme.DefaultName)
	}

	return &Model{
		svc:     svc,
		config:  cfg,
		theme:   t,
		styles:  NewStyles(t),
		date:    dateutil.TruncateToDay(date),
		loading: true,
		cursor:  -1,
		mode:    ModeNormal,
		prompt:  ti,
		now:     time.Now,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadDay(m.svc, m.date)
}

// Run starts the TUI on date.
func Run(svc *planner.Planner, cfg *config.Config, date time.Time) error {
	model := New(svc, cfg, date)
	p := tea.NewProgram(*model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
