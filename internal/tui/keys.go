package tui

import (
	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the tournament screens respond to.
type keyMap struct {
	// Name entry
	NextField key.Binding
	PrevField key.Binding
	Confirm   key.Binding
	Backspace key.Binding

	// Choosing
	AConfess key.Binding
	ADeny    key.Binding
	BConfess key.Binding
	BDeny    key.Binding

	// Result and final screens
	Next    key.Binding
	Restart key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// defaultKeyMap returns the default bindings. Side A plays from the left of
// the keyboard and side B from the right.
func defaultKeyMap() keyMap {
	return keyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "switch field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next field / start round"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),

		AConfess: key.NewBinding(
			key.WithKeys("1", "c"),
			key.WithHelp("1", "A confesses"),
		),
		ADeny: key.NewBinding(
			key.WithKeys("2", "d"),
			key.WithHelp("2", "A denies"),
		),
		BConfess: key.NewBinding(
			key.WithKeys("9", "j"),
			key.WithHelp("9", "B confesses"),
		),
		BDeny: key.NewBinding(
			key.WithKeys("0", "k"),
			key.WithHelp("0", "B denies"),
		),

		Next: key.NewBinding(
			key.WithKeys("enter", " ", "n"),
			key.WithHelp("enter", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// withLabels rewrites the choice help text with the configured team labels.
func (k keyMap) withLabels(labels [2]string) keyMap {
	a, b := labels[tournament.SideA], labels[tournament.SideB]
	k.AConfess.SetHelp(k.AConfess.Help().Key, a+" confesses")
	k.ADeny.SetHelp(k.ADeny.Help().Key, a+" denies")
	k.BConfess.SetHelp(k.BConfess.Help().Key, b+" confesses")
	k.BDeny.SetHelp(k.BDeny.Help().Key, b+" denies")
	return k
}

// stateHelp adapts keyMap to help.KeyMap for a single tournament state.
type stateHelp struct {
	keys  keyMap
	state tournament.State
}

// ShortHelp implements help.KeyMap.
func (h stateHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.state {
	case tournament.StateCollectingNames:
		return []key.Binding{k.NextField, k.Confirm, k.ForceQuit}
	case tournament.StateChoosing:
		return []key.Binding{k.AConfess, k.ADeny, k.BConfess, k.BDeny, k.Help}
	case tournament.StateShowingResult:
		return []key.Binding{k.Next, k.Quit, k.Help}
	case tournament.StateFinished:
		return []key.Binding{k.Restart, k.Quit, k.Help}
	default:
		return []key.Binding{k.ForceQuit}
	}
}

// FullHelp implements help.KeyMap.
func (h stateHelp) FullHelp() [][]key.Binding {
	k := h.keys
	switch h.state {
	case tournament.StateCollectingNames:
		return [][]key.Binding{
			{k.NextField, k.PrevField},
			{k.Confirm, k.Backspace},
			{k.ForceQuit},
		}
	case tournament.StateChoosing:
		return [][]key.Binding{
			{k.AConfess, k.ADeny},
			{k.BConfess, k.BDeny},
			{k.Help, k.Quit},
		}
	case tournament.StateShowingResult:
		return [][]key.Binding{{k.Next}, {k.Help, k.Quit}}
	case tournament.StateFinished:
		return [][]key.Binding{{k.Restart}, {k.Help, k.Quit}}
	default:
		return [][]key.Binding{{k.ForceQuit}}
	}
}
