package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rotina/internal/plan"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Current     lipgloss.Color
	Warning     lipgloss.Color
	Done        lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnCurrent lipgloss.Color

	types   map[plan.ActivityType]lipgloss.Color
	typeBgs map[plan.ActivityType]lipgloss.Color
	muted   map[plan.ActivityType]lipgloss.Color
}

var activityTypes = []plan.ActivityType{
	plan.TypeSleep,
	plan.TypeWork,
	plan.TypeStudy,
	plan.TypeCleaning,
	plan.TypeHobby,
	plan.TypeProject,
	plan.TypeMeal,
	plan.TypeExercise,
	plan.TypeHydration,
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	isLight := isLightTheme(t.Bg)
	p := &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Current:     lipgloss.Color(t.Current),
		Warning:     lipgloss.Color(t.Warning),
		Done:        lipgloss.Color(t.Done),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnCurrent: lipgloss.Color(chooseTextColor(t.Current, t.Bg, t.Fg)),

		types:   make(map[plan.ActivityType]lipgloss.Color, len(activityTypes)),
		typeBgs: make(map[plan.ActivityType]lipgloss.Color, len(activityTypes)),
		muted:   make(map[plan.ActivityType]lipgloss.Color, len(activityTypes)),
	}

	for _, typ := range activityTypes {
		c := t.TypeColor(typ)
		p.types[typ] = lipgloss.Color(c)
		p.typeBgs[typ] = lipgloss.Color(activityBg(c, t.Bg, isLight))
		p.muted[typ] = lipgloss.Color(blendColors(c, t.Bg, 0.6))
	}
	return p
}

// Type returns the foreground color of an activity type.
func (p *Palette) Type(typ plan.ActivityType) lipgloss.Color {
	if c, ok := p.types[typ]; ok {
		return c
	}
	return p.Fg
}

// TypeBg returns the background shade used for the selected row of a type.
func (p *Palette) TypeBg(typ plan.ActivityType) lipgloss.Color {
	if c, ok := p.typeBgs[typ]; ok {
		return c
	}
	return p.BgSelection
}

// Muted returns the faded color of a type for completed activities.
func (p *Palette) Muted(typ plan.ActivityType) lipgloss.Color {
	if c, ok := p.muted[typ]; ok {
		return c
	}
	return p.FgMuted
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func activityBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.75)
	}
	return darkenColor(accent)
}

// darkenColor creates a darker version of a hex color for backgrounds,
// with a minimum floor to stay visible on dark themes.
func darkenColor(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}

	var r, g, b int
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)

	const factor = 0.50
	const minBrightness = 40
	r = max(int(float64(r)*factor), minBrightness)
	g = max(int(float64(g)*factor), minBrightness)
	b = max(int(float64(b)*factor), minBrightness)

	return formatHexColor(r, g, b)
}

// parseHex parses a 2-character hex string into an integer.
func parseHex(s string, v *int) {
	var val int
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	*v = val
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	result := make([]byte, 7)
	result[0] = '#'
	result[1] = hex[r>>4]
	result[2] = hex[r&0xf]
	result[3] = hex[g>>4]
	result[4] = hex[g&0xf]
	result[5] = hex[b>>4]
	result[6] = hex[b&0xf]
	return string(result)
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	if len(hex) != 7 || hex[0] != '#' {
		return 0
	}
	var r, g, b int
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// blendColors mixes a towards b by ratio in [0, 1].
func blendColors(a, b string, ratio float64) string {
	if len(a) != 7 || a[0] != '#' || len(b) != 7 || b[0] != '#' {
		return a
	}
	ratio = min(max(ratio, 0), 1)

	var ar, ag, ab int
	var br, bg, bb int
	parseHex(a[1:3], &ar)
	parseHex(a[3:5], &ag)
	parseHex(a[5:7], &ab)
	parseHex(b[1:3], &br)
	parseHex(b[3:5], &bg)
	parseHex(b[5:7], &bb)

	r := int(float64(ar)*(1-ratio) + float64(br)*ratio)
	g := int(float64(ag)*(1-ratio) + float64(bg)*ratio)
	bv := int(float64(ab)*(1-ratio) + float64(bb)*ratio)

	return formatHexColor(r, g, bv)
}
