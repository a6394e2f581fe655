package styles

import (
	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/charmbracelet/lipgloss"
)

// ThemedStyles contains the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	Palette ColorPalette

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	// Panels
	ContentBox lipgloss.Style
	Scoreboard lipgloss.Style
	RulesPanel lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Teams
	SideA      lipgloss.Style
	SideB      lipgloss.Style
	SideAScore lipgloss.Style
	SideBScore lipgloss.Style

	// Name entry fields
	FieldFocusedA lipgloss.Style
	FieldFocusedB lipgloss.Style
	FieldBlurred  lipgloss.Style
	Cursor        lipgloss.Style

	// Choice buttons
	ChoiceIdle     lipgloss.Style
	ChoiceConfess  lipgloss.Style
	ChoiceDeny     lipgloss.Style
	ChoiceWaiting  lipgloss.Style
	ChoiceLocked   lipgloss.Style
	TimeoutBadge   lipgloss.Style
	WinnerBanner   lipgloss.Style
	TieBanner      lipgloss.Style
	ResultHeadline lipgloss.Style

	// Countdown bar
	TimerFill  lipgloss.Style
	TimerEmpty lipgloss.Style
	TimerLow   lipgloss.Style

	// History table
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{Palette: *p}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(p.Border).
		MarginBottom(1)

	s.ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	s.Scoreboard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)

	s.RulesPanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.SideA).
		Foreground(p.Text).
		Padding(0, 1)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.SideA = lipgloss.NewStyle().Bold(true).Foreground(p.SideA)
	s.SideB = lipgloss.NewStyle().Bold(true).Foreground(p.SideB)
	s.SideAScore = lipgloss.NewStyle().Bold(true).Foreground(p.SideA).Padding(0, 1)
	s.SideBScore = lipgloss.NewStyle().Bold(true).Foreground(p.SideB).Padding(0, 1)

	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	s.FieldFocusedA = field.BorderForeground(p.SideA)
	s.FieldFocusedB = field.BorderForeground(p.SideB)
	s.FieldBlurred = field.BorderForeground(p.Muted)
	s.Cursor = lipgloss.NewStyle().Foreground(p.Text).Blink(true)

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	s.ChoiceIdle = button.BorderForeground(p.Border).Foreground(p.Muted)
	s.ChoiceConfess = button.BorderForeground(p.Confess).Foreground(p.Confess).Bold(true)
	s.ChoiceDeny = button.BorderForeground(p.Deny).Foreground(p.Deny).Bold(true)
	s.ChoiceWaiting = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)
	s.ChoiceLocked = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)

	s.TimeoutBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Warning).
		Padding(0, 1)

	s.WinnerBanner = lipgloss.NewStyle().
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Secondary).
		Padding(0, 2)

	s.TieBanner = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Warning).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Warning).
		Padding(0, 2)

	s.ResultHeadline = lipgloss.NewStyle().Bold(true)

	s.TimerFill = lipgloss.NewStyle().Foreground(p.TimerFill)
	s.TimerEmpty = lipgloss.NewStyle().Foreground(p.TimerEmpty)
	s.TimerLow = lipgloss.NewStyle().Foreground(p.TimerLow).Bold(true)

	s.TableHeader = lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Padding(0, 1)
	s.TableCell = lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)
	s.TableBorder = lipgloss.NewStyle().Foreground(p.Border)

	return s
}

// SideColor returns the team color for a side.
func (s *ThemedStyles) SideColor(side tournament.Side) lipgloss.Color {
	if side == tournament.SideB {
		return s.Palette.SideB
	}
	return s.Palette.SideA
}

// SideStyle returns the bold team style for a side.
func (s *ThemedStyles) SideStyle(side tournament.Side) lipgloss.Style {
	if side == tournament.SideB {
		return s.SideB
	}
	return s.SideA
}

// OutcomeColor returns the color used to headline a round result.
func (s *ThemedStyles) OutcomeColor(o tournament.Outcome) lipgloss.Color {
	switch o {
	case tournament.OutcomeAConfesses:
		return s.Palette.OutcomeAConfesses
	case tournament.OutcomeBConfesses:
		return s.Palette.OutcomeBConfesses
	case tournament.OutcomeBothConfess:
		return s.Palette.OutcomeBothConfess
	case tournament.OutcomeBothDeny:
		return s.Palette.OutcomeBothDeny
	default:
		return s.Palette.Muted
	}
}

// ChoiceStyle returns the button style for a selected choice.
func (s *ThemedStyles) ChoiceStyle(c tournament.Choice) lipgloss.Style {
	switch c {
	case tournament.ChoiceConfess:
		return s.ChoiceConfess
	case tournament.ChoiceDeny:
		return s.ChoiceDeny
	default:
		return s.ChoiceIdle
	}
}

// activeTheme holds the currently active themed styles.
var activeTheme *ThemedStyles

func init() {
	activeTheme = NewThemedStyles(DefaultPalette())
}

// SetActiveTheme replaces the active theme.
//
// Note: This function is not thread-safe. It is designed to be called only
// from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}
