package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/rotina/internal/clock"
	"github.com/javiermolinar/rotina/internal/conflict"
	"github.com/javiermolinar/rotina/internal/freetime"
	"github.com/javiermolinar/rotina/internal/plan"
	"github.com/javiermolinar/rotina/internal/summary"
)

// PrintOpts configures timeline printing behavior.
type PrintOpts struct {
	Verbose      bool // Show notes and full names
	ShowIDs      bool // Show activity ids (needed by done/override)
	MaxNameWidth int  // Maximum name width (0 = auto)
}

// CalcMaxNameWidth calculates the maximum name width based on options.
func (o PrintOpts) CalcMaxNameWidth(defaultWidth int) int {
	if o.MaxNameWidth > 0 {
		return o.MaxNameWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	// "  ✓  HH:MM-HH:MM  Hidratação  " is ~30 columns, the duration ~10.
	available := termWidth() - 40
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintActivityRow prints a single timeline row.
func PrintActivityRow(w io.Writer, a plan.Activity, opts PrintOpts, maxNameWidth int) {
	symbol := "○"
	if a.IsCompleted() {
		symbol = formatDone("✓")
	}

	start, end := a.Effective()
	interval := a.DisplayInterval()

	label := formatType(a.Type, padRight(a.Type.Label(), 10))
	name := padRight(ansi.Truncate(a.Name, maxNameWidth, "…"), maxNameWidth)

	var suffix []string
	switch {
	case a.Type == plan.TypeHydration:
		suffix = append(suffix, formatMuted(a.WaterProgress()))
	case !a.Type.IsPoint():
		if s, e, err := clock.Span(start, end); err == nil {
			suffix = append(suffix, formatMuted(clock.FormatDuration(e-s)))
		}
	}
	if a.Override != nil {
		note := "ajustado de " + a.Interval()
		if a.Override.Reason != "" {
			note += ": " + a.Override.Reason
		}
		suffix = append(suffix, formatOverride("("+note+")"))
	}
	if opts.ShowIDs {
		suffix = append(suffix, formatMuted("["+a.ID+"]"))
	}

	fmt.Fprintf(w, "  %s  %-11s  %s  %s  %s\n",
		symbol, interval, label, name, strings.Join(suffix, "  "))

	if opts.Verbose && a.Notes != "" {
		fmt.Fprintf(w, "      %s\n", formatMuted(a.Notes))
	}
}

// PrintDay prints the header, timeline and summary of a record.
func PrintDay(w io.Writer, rec *plan.DayRecord, opts PrintOpts) {
	fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(rec.DayName+", "+rec.FormattedDate))
	PrintTimeline(w, rec.Activities, opts)
	fmt.Fprintln(w)
	PrintStats(w, summary.ComputeStats(rec.Activities))
}

// PrintTimeline prints every activity row.
func PrintTimeline(w io.Writer, activities []plan.Activity, opts PrintOpts) {
	maxNameWidth := opts.CalcMaxNameWidth(30)
	for _, a := range activities {
		PrintActivityRow(w, a, opts, maxNameWidth)
	}
}

// PrintStats prints the summary lines of a day.
func PrintStats(w io.Writer, stats summary.Stats) {
	fmt.Fprintf(w, "Concluídas: %d/%d | Ocupado: %s\n",
		stats.Completed, stats.Total, clock.FormatDuration(stats.BusyMinutes))
	if stats.ShiftedMinutes > 0 {
		fmt.Fprintf(w, "Fora do plano: %s\n", clock.FormatDuration(stats.ShiftedMinutes))
	}
	if stats.WaterGoalML > 0 {
		fmt.Fprintf(w, "Água: %s\n", ProgressBar(stats.WaterML, stats.WaterGoalML, 20))
	}
	if stats.Total > 0 {
		fmt.Fprintf(w, "Progresso: %s\n", ProgressBar(stats.Completed, stats.Total, 20))
	}
}

// ProgressBar renders value/total as an ASCII bar with a percentage.
func ProgressBar(value, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", width) + "] (0%)"
	}
	value = min(max(value, 0), total)
	pct := (value * 100) / total
	filled := (value * width) / total

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatDone(bar), formatMuted(fmt.Sprintf("(%d%%)", pct)))
}

// PrintConflicts prints a rejected day's conflict list.
func PrintConflicts(w io.Writer, conflicts []conflict.Conflict) {
	if len(conflicts) == 0 {
		return
	}
	fmt.Fprintln(w, formatConflict(fmt.Sprintf("%d conflito(s) encontrado(s)", len(conflicts))))
	fmt.Fprint(w, conflict.FormatConflicts(conflicts))
}

// PrintFreeSlots prints the free time of a day with its total.
func PrintFreeSlots(w io.Writer, slots []freetime.FreeSlot) {
	if len(slots) == 0 {
		fmt.Fprintln(w, "Nenhum tempo livre.")
		return
	}
	for _, s := range slots {
		fmt.Fprintf(w, "  %s-%s  %-9s  %s  %s\n",
			s.StartTime, s.EndTime, s.Duration,
			formatFree(s.Suggestion.Label()), formatMuted(s.Suggestion.Hint()))
	}
	fmt.Fprintf(w, "\nTempo livre total: %s\n", clock.FormatDuration(freetime.TotalMinutes(slots)))
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	if n := ansi.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
