package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault      ThemeName = "default"       // Blue/red teams on a dark surface
	ThemeDracula      ThemeName = "dracula"       // Dracula theme colors
	ThemeNord         ThemeName = "nord"          // Nord theme - cool blue-gray
	ThemeHighContrast ThemeName = "high-contrast" // Basic ANSI colors only
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeHighContrast),
	}
}

// IsValidTheme checks if a theme name is known.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (titles, active elements)
	Primary lipgloss.Color
	// Secondary accent color (key hints, success states)
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color

	// Team colors
	SideA lipgloss.Color
	SideB lipgloss.Color

	// Choice colors
	Confess lipgloss.Color
	Deny    lipgloss.Color

	// Round outcome colors
	OutcomeAConfesses  lipgloss.Color
	OutcomeBConfesses  lipgloss.Color
	OutcomeBothConfess lipgloss.Color
	OutcomeBothDeny    lipgloss.Color

	// Countdown bar
	TimerFill  lipgloss.Color
	TimerEmpty lipgloss.Color
	TimerLow   lipgloss.Color
}

// DefaultPalette returns the default dark palette with blue and red teams.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		SideA: lipgloss.Color("#60A5FA"), // Blue
		SideB: lipgloss.Color("#F87171"), // Red

		Confess: lipgloss.Color("#FBBF24"), // Yellow
		Deny:    lipgloss.Color("#A78BFA"), // Purple

		OutcomeAConfesses:  lipgloss.Color("#60A5FA"), // Blue
		OutcomeBConfesses:  lipgloss.Color("#F87171"), // Red
		OutcomeBothConfess: lipgloss.Color("#FB923C"), // Orange
		OutcomeBothDeny:    lipgloss.Color("#22C55E"), // Green

		TimerFill:  lipgloss.Color("#10B981"), // Green
		TimerEmpty: lipgloss.Color("#374151"), // Gray-700
		TimerLow:   lipgloss.Color("#F87171"), // Red
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection

		SideA: lipgloss.Color("#8BE9FD"), // Cyan
		SideB: lipgloss.Color("#FF5555"), // Red

		Confess: lipgloss.Color("#F1FA8C"), // Yellow
		Deny:    lipgloss.Color("#BD93F9"), // Purple

		OutcomeAConfesses:  lipgloss.Color("#8BE9FD"), // Cyan
		OutcomeBConfesses:  lipgloss.Color("#FF5555"), // Red
		OutcomeBothConfess: lipgloss.Color("#FFB86C"), // Orange
		OutcomeBothDeny:    lipgloss.Color("#50FA7B"), // Green

		TimerFill:  lipgloss.Color("#50FA7B"), // Green
		TimerEmpty: lipgloss.Color("#44475A"), // Selection
		TimerLow:   lipgloss.Color("#FF5555"), // Red
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Nord polar night 1

		SideA: lipgloss.Color("#81A1C1"), // Frost blue
		SideB: lipgloss.Color("#BF616A"), // Aurora red

		Confess: lipgloss.Color("#EBCB8B"), // Yellow
		Deny:    lipgloss.Color("#B48EAD"), // Aurora purple

		OutcomeAConfesses:  lipgloss.Color("#81A1C1"), // Frost blue
		OutcomeBConfesses:  lipgloss.Color("#BF616A"), // Red
		OutcomeBothConfess: lipgloss.Color("#D08770"), // Aurora orange
		OutcomeBothDeny:    lipgloss.Color("#A3BE8C"), // Green

		TimerFill:  lipgloss.Color("#A3BE8C"), // Green
		TimerEmpty: lipgloss.Color("#3B4252"), // Polar night 1
		TimerLow:   lipgloss.Color("#BF616A"), // Red
	}
}

// HighContrastPalette uses the 16 basic ANSI colors so it reads on any
// terminal background.
func HighContrastPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("15"),
		Secondary: lipgloss.Color("10"),
		Warning:   lipgloss.Color("11"),
		Error:     lipgloss.Color("9"),
		Muted:     lipgloss.Color("7"),
		Surface:   lipgloss.Color("0"),
		Text:      lipgloss.Color("15"),
		Border:    lipgloss.Color("15"),

		SideA: lipgloss.Color("12"),
		SideB: lipgloss.Color("9"),

		Confess: lipgloss.Color("11"),
		Deny:    lipgloss.Color("13"),

		OutcomeAConfesses:  lipgloss.Color("12"),
		OutcomeBConfesses:  lipgloss.Color("9"),
		OutcomeBothConfess: lipgloss.Color("11"),
		OutcomeBothDeny:    lipgloss.Color("10"),

		TimerFill:  lipgloss.Color("10"),
		TimerEmpty: lipgloss.Color("8"),
		TimerLow:   lipgloss.Color("9"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeHighContrast:
		return HighContrastPalette()
	default:
		return DefaultPalette()
	}
}
