// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rotina/internal/plan"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none or an unknown one is configured.
const DefaultName = "mocha"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Panels, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor, selection
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Past and completed activities
	Accent      string `toml:"accent"`       // Title, borders
	Current     string `toml:"current"`      // Activity happening now
	Warning     string `toml:"warning"`      // Errors, conflicts
	Done        string `toml:"done"`         // Completion marks

	Activities ActivityColors `toml:"activities"`
}

// ActivityColors holds one color per activity type.
type ActivityColors struct {
	Sleep     string `toml:"sleep"`
	Work      string `toml:"work"`
	Study     string `toml:"study"`
	Cleaning  string `toml:"cleaning"`
	Hobby     string `toml:"hobby"`
	Project   string `toml:"project"`
	Meal      string `toml:"meal"`
	Exercise  string `toml:"exercise"`
	Hydration string `toml:"hydration"`
}

// TypeColor returns the hex color of an activity type, or Fg if unset.
func (t *Theme) TypeColor(typ plan.ActivityType) string {
	var c string
	switch typ {
	case plan.TypeSleep:
		c = t.Activities.Sleep
	case plan.TypeWork:
		c = t.Activities.Work
	case plan.TypeStudy:
		c = t.Activities.Study
	case plan.TypeCleaning:
		c = t.Activities.Cleaning
	case plan.TypeHobby:
		c = t.Activities.Hobby
	case plan.TypeProject:
		c = t.Activities.Project
	case plan.TypeMeal:
		c = t.Activities.Meal
	case plan.TypeExercise:
		c = t.Activities.Exercise
	case plan.TypeHydration:
		c = t.Activities.Hydration
	}
	return coalesce(c, t.Fg)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.BgHighlight == "" {
		t.BgHighlight = t.Bg
	}
	if t.BgSelection == "" {
		t.BgSelection = coalesce(t.BgHighlight, t.Accent)
	}
	if t.FgMuted == "" {
		t.FgMuted = t.Fg
	}
	if t.Current == "" {
		t.Current = t.Accent
	}
	if t.Done == "" {
		t.Done = t.Accent
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
