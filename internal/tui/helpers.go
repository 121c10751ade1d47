package tui

import (
	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/dateutil"
	"github.com/javiermolinar/rotina/internal/plan"
)

// Fixed lines around the timeline: title and rule on top; rule, stats,
// status and help below.
const (
	headerLines = 2
	footerLines = 4
)

func (m *Model) activityCount() int {
	if m.record == nil {
		return 0
	}
	return len(m.record.Activities)
}

// selected returns the activity under the cursor.
func (m *Model) selected() (plan.Activity, bool) {
	if m.cursor < 0 || m.cursor >= m.activityCount() {
		return plan.Activity{}, false
	}
	return m.record.Activities[m.cursor], true
}

func (m *Model) isToday() bool {
	return m.date.Equal(dateutil.TruncateToDay(m.now()))
}

// nowMinutes returns the current minute of the day.
func (m *Model) nowMinutes() int {
	now := m.now()
	return now.Hour()*60 + now.Minute()
}

// isCurrent reports whether a is happening right now.
func (m *Model) isCurrent(a plan.Activity) bool {
	if !m.isToday() || a.Type.IsPoint() {
		return false
	}
	start, end := a.Effective()
	s, e, err := clock.Span(start, end)
	if err != nil {
		return false
	}
	now := m.nowMinutes()
	return now >= s && now < e
}

// focusCurrentActivity puts the cursor on what is happening now, or on the
// next activity to start. Other days start at the top.
func (m *Model) focusCurrentActivity() {
	m.cursor = 0
	m.offset = 0
	if !m.isToday() {
		return
	}

	now := m.nowMinutes()
	next := -1
	for i, a := range m.record.Activities {
		if a.IsSleep() {
			continue
		}
		if m.isCurrent(a) {
			m.cursor = i
			return
		}
		start, err := clock.ToMinutes(a.StartTime)
		if err == nil && start >= now && next < 0 {
			next = i
		}
	}
	if next >= 0 {
		m.cursor = next
	}
}

func (m *Model) freePanelLines() int {
	if !m.showFree || m.record == nil {
		return 0
	}
	return 1 + max(len(m.free), 1)
}

// visibleRows returns how many activity rows fit on screen.
func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return max(m.activityCount(), 1)
	}
	return max(m.height-headerLines-footerLines-m.freePanelLines(), 1)
}

// ensureCursorVisible scrolls so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = max(m.cursor, 0)
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if maxOffset := max(m.activityCount()-visible, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

func (m *Model) flash(s string, isError bool) {
	m.statusMsg = s
	m.statusTime = m.now().Add(statusDuration)
	m.isError = isError
}
