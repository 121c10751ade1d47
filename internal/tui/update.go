package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/logger"
	"github.com/javiermolinar/rotina/internal/tui/commands"
)

const statusDuration = 3 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case commands.DayLoadedMsg:
		// A late load for a day we already navigated away from.
		if !msg.Date.Equal(m.date) {
			return m, nil
		}
		m.loading = false
		m.record = msg.Record
		m.free = msg.Free
		if m.cursor >= m.activityCount() {
			m.cursor = -1
		}
		if m.cursor < 0 {
			m.focusCurrentActivity()
		}
		m.ensureCursorVisible()
		return m, nil

	case commands.ActivityUpdatedMsg:
		cmds := []tea.Cmd{setStatus(msg.Status)}
		if msg.Date.Equal(m.date) {
			cmds = append(cmds, commands.LoadDay(m.svc, m.date))
		}
		return m, tea.Batch(cmds...)

	case commands.ErrMsg:
		logger.Error("tui", "err", msg.Err)
		m.loading = false
		m.statusMsg = fmt.Sprintf("Erro: %v", msg.Err)
		m.statusTime = m.now().Add(5 * time.Second)
		m.isError = true
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = m.now().Add(statusDuration)
		m.isError = false
		return m, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.isError = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func setStatus(s string) tea.Cmd {
	return func() tea.Msg {
		return commands.StatusMsgCmd{Msg: s}
	}
}

// goToDate switches the view to another day and loads it.
func (m Model) goToDate(date time.Time) (Model, tea.Cmd) {
	m.date = dateutil.TruncateToDay(date)
	m.record = nil
	m.free = nil
	m.cursor = -1
	m.offset = 0
	m.loading = true
	logger.Debug("tui navigate", "date", dateutil.Key(m.date))
	return m, commands.LoadDay(m.svc, m.date)
}
