package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/freetime"
	"github.com/javiermolinar/rotina/internal/plan"
)

const (
	defaultWidth  = 80
	intervalWidth = 11
	labelWidth    = 10
	extraWidth    = 12
)

const helpText = "j/k mover · h/l dia · t hoje · espaço concluir · w água · f livre · y copiar · q sair"

// View renders the model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	inner := max(width-2, 20)

	var lines []string
	lines = append(lines, m.renderHeader())
	lines = append(lines, m.styles.BorderStyle.Render(strings.Repeat("─", inner)))
	lines = append(lines, m.renderBody(inner)...)
	lines = append(lines, m.renderFree()...)
	lines = append(lines, m.styles.BorderStyle.Render(strings.Repeat("─", inner)))
	lines = append(lines, m.renderStats())
	lines = append(lines, m.renderStatusLine())
	lines = append(lines, m.styles.HelpStyle.Render(ansi.Truncate(helpText, inner, "…")))

	style := m.styles.AppStyle.Width(width)
	if m.height > 0 {
		style = style.Height(m.height)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderHeader() string {
	header := m.styles.TitleStyle.Render("rotina") + " " +
		m.styles.DateStyle.Render(dateutil.DayName(m.date)+", "+dateutil.FormattedDate(m.date))
	if m.isToday() {
		header += " " + m.styles.TodayStyle.Render("(hoje)")
	}
	return header
}

// renderBody renders the visible window of the timeline, padded so the
// footer stays in place.
func (m Model) renderBody(width int) []string {
	visible := m.visibleRows()

	var lines []string
	switch {
	case m.loading:
		lines = append(lines, m.styles.EmptyStyle.Render("Carregando..."))
	case m.record == nil:
		lines = append(lines, m.styles.EmptyStyle.Render("Nenhum plano salvo para este dia."))
		lines = append(lines, m.styles.EmptyStyle.Render("Use 'rotina plan <arquivo> --date "+dateutil.Key(m.date)+"'."))
	default:
		end := min(m.offset+visible, len(m.record.Activities))
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.renderRow(m.record.Activities[i], i == m.cursor, width))
		}
	}

	if m.height > 0 {
		for len(lines) < visible {
			lines = append(lines, "")
		}
	}
	return lines
}

func (m Model) renderRow(a plan.Activity, selected bool, width int) string {
	current := m.isCurrent(a)

	mark := "○"
	switch {
	case a.IsCompleted():
		mark = "✓"
	case current:
		mark = "●"
	}

	extra := rowExtra(a)
	if a.Override != nil {
		extra += " *"
	}

	nameWidth := max(width-(2+intervalWidth+1+labelWidth+1+extraWidth+1), 8)
	name := padRight(ansi.Truncate(a.Name, nameWidth, "…"), nameWidth)
	interval := padRight(a.DisplayInterval(), intervalWidth)
	label := padRight(a.Type.Label(), labelWidth)

	if selected {
		line := fmt.Sprintf("%s %s %s %s %s", mark, interval, label, name, extra)
		return m.styles.SelectedStyle(a.Type).Render(padRight(line, width))
	}

	labelStyle := m.styles.TypeStyle(a.Type)
	nameStyle := m.styles.NameStyle
	markStyle := m.styles.TimeStyle
	switch {
	case a.IsCompleted():
		labelStyle = m.styles.MutedTypeStyle(a.Type)
		nameStyle = m.styles.TimeStyle.Strikethrough(true)
		markStyle = m.styles.DoneStyle
	case current:
		nameStyle = m.styles.CurrentStyle
		markStyle = m.styles.CurrentStyle
	}
	extraStyle := m.styles.TimeStyle
	if a.Override != nil {
		extraStyle = m.styles.OverrideStyle
	}

	return strings.Join([]string{
		markStyle.Render(mark),
		m.styles.TimeStyle.Render(interval),
		labelStyle.Render(label),
		nameStyle.Render(name),
		extraStyle.Render(extra),
	}, " ")
}

// rowExtra is the right-hand column: water progress or block duration.
func rowExtra(a plan.Activity) string {
	if a.Type == plan.TypeHydration {
		return a.WaterProgress()
	}
	if a.Type.IsPoint() {
		return ""
	}
	start, end := a.Effective()
	s, e, err := clock.Span(start, end)
	if err != nil {
		return ""
	}
	return clock.FormatDuration(e - s)
}

func (m Model) renderFree() []string {
	if m.freePanelLines() == 0 {
		return nil
	}
	lines := []string{m.styles.FreeStyle.Bold(true).Render(
		"Tempo livre: " + clock.FormatDuration(freetime.TotalMinutes(m.free)))}
	if len(m.free) == 0 {
		return append(lines, m.styles.EmptyStyle.Render("  nenhum intervalo livre"))
	}
	for _, s := range m.free {
		lines = append(lines, fmt.Sprintf("  %s-%s  %s  %s",
			s.StartTime, s.EndTime,
			m.styles.FreeStyle.Render(padRight(s.Duration, 9)),
			m.styles.TimeStyle.Render(s.Suggestion.Label())))
	}
	return lines
}

func (m Model) renderStats() string {
	if m.record == nil {
		return ""
	}
	total, done := 0, 0
	water := ""
	for _, a := range m.record.Activities {
		total++
		if a.IsCompleted() {
			done++
		}
		if a.Type == plan.TypeHydration {
			water = a.WaterProgress()
		}
	}

	parts := []string{fmt.Sprintf("Concluídas %d/%d", done, total)}
	if water != "" {
		parts = append(parts, "Água "+water)
	}
	parts = append(parts, "Livre "+clock.FormatDuration(freetime.TotalMinutes(m.free)))
	return m.styles.StatsStyle.Render(strings.Join(parts, " · "))
}

func (m Model) renderStatusLine() string {
	if m.mode == ModePrompt {
		return m.styles.PromptStyle.Render(m.prompt.View())
	}
	if m.statusMsg == "" || !m.now().Before(m.statusTime) {
		return ""
	}
	if m.isError {
		return m.styles.ErrorStyle.Render(m.statusMsg)
	}
	return m.styles.StatusStyle.Render(m.statusMsg)
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	if n := ansi.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
