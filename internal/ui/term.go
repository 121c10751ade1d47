package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/rotina/internal/plan"
)

// Color definitions for consistent styling across the UI.
var (
	colorHeader   = color.New(color.Bold)
	colorMuted    = color.New(color.FgWhite, color.Faint)
	colorDone     = color.New(color.FgGreen)
	colorConflict = color.New(color.FgRed, color.Bold)
	colorFree     = color.New(color.FgGreen)
	colorOverride = color.New(color.FgYellow)

	typeColors = map[plan.ActivityType]*color.Color{
		plan.TypeSleep:     color.New(color.FgBlue, color.Faint),
		plan.TypeWork:      color.New(color.FgCyan, color.Bold),
		plan.TypeStudy:     color.New(color.FgMagenta),
		plan.TypeCleaning:  color.New(color.FgHiCyan),
		plan.TypeHobby:     color.New(color.FgHiMagenta),
		plan.TypeProject:   color.New(color.FgHiYellow),
		plan.TypeMeal:      color.New(color.FgYellow),
		plan.TypeExercise:  color.New(color.FgGreen),
		plan.TypeHydration: color.New(color.FgHiBlue),
	}
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatType colors text by activity type.
func formatType(typ plan.ActivityType, s string) string {
	if c, ok := typeColors[typ]; ok {
		return c.Sprint(s)
	}
	return s
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatDone(s string) string {
	return colorDone.Sprint(s)
}

func formatConflict(s string) string {
	return colorConflict.Sprint(s)
}

func formatFree(s string) string {
	return colorFree.Sprint(s)
}

func formatOverride(s string) string {
	return colorOverride.Sprint(s)
}
