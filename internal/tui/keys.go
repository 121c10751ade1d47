package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rotina/internal/logger"
	"github.com/javiermolinar/rotina/internal/plan"
	"github.com/javiermolinar/rotina/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logger.Debug("key", "key", msg.String(), "mode", int(m.mode))

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < m.activityCount()-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
	case "g", "home":
		m.cursor = 0
		m.ensureCursorVisible()
	case "G", "end":
		if n := m.activityCount(); n > 0 {
			m.cursor = n - 1
			m.ensureCursorVisible()
		}

	case "h", "left":
		return m.goToDate(m.date.AddDate(0, 0, -1))
	case "l", "right":
		return m.goToDate(m.date.AddDate(0, 0, 1))
	case "t":
		return m.goToDate(m.now())
	case "r":
		return m, commands.LoadDay(m.svc, m.date)

	case " ", "x", "enter":
		a, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, commands.SetCompleted(m.svc, m.date, a.ID, !a.IsCompleted())

	case "w":
		if m.record == nil || plan.FindActivity(m.record.Activities, plan.IDHydration) < 0 {
			m.flash("Sem meta de hidratação neste dia", true)
			return m, nil
		}
		m.mode = ModePrompt
		m.prompt.Reset()
		m.prompt.Focus()
		return m, textinput.Blink

	case "f":
		m.showFree = !m.showFree
		m.ensureCursorVisible()

	case "y":
		if m.record == nil {
			m.flash("Nada para copiar", true)
			return m, nil
		}
		return m, commands.CopyText(m.record.PlainText())
	}
	return m, nil
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.prompt.Value())
		m.mode = ModeNormal
		m.prompt.Blur()

		ml, err := strconv.Atoi(value)
		if err != nil || ml <= 0 {
			m.flash("Quantidade inválida: "+value, true)
			return m, nil
		}
		return m, commands.AddWater(m.svc, m.date, ml)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}
