package view

import (
	"strings"

	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// ChoiceKeys holds the key labels shown on the choice buttons.
type ChoiceKeys struct {
	AConfess string
	ADeny    string
	BConfess string
	BDeny    string
}

// ChoosingState carries render options for the choosing screen.
type ChoosingState struct {
	Keys ChoiceKeys

	// RevealChoices shows which button each side pressed before the round
	// resolves. When false a side that has chosen only shows as locked in.
	RevealChoices bool
}

// ChoosingView renders the screen where both sides pick Confess or Deny.
type ChoosingView struct {
	scoreboard *ScoreboardView
}

// NewChoosingView creates a new ChoosingView instance.
func NewChoosingView() *ChoosingView {
	return &ChoosingView{scoreboard: NewScoreboardView()}
}

// Render renders the choosing screen.
func (v *ChoosingView) Render(snap tournament.Snapshot, width int, state ChoosingState) string {
	st := styles.GetActiveTheme()
	inner := max(width-8, 30)

	var b strings.Builder
	b.WriteString(renderMatchHeader(st, snap))
	b.WriteString("\n")
	b.WriteString(v.scoreboard.Render(snap))
	b.WriteString("\n\n")
	b.WriteString(TimerBar(snap.Remaining, snap.RoundTimeLimit, min(inner, 60)))
	b.WriteString("\n\n")
	b.WriteString(RulesPanel(snap.Labels, min(inner, 72)))
	b.WriteString("\n\n")

	colWidth := max(inner/2-2, 24)
	a := v.renderSide(st, snap, tournament.SideA, state.Keys.AConfess, state.Keys.ADeny, state.RevealChoices, colWidth)
	bSide := v.renderSide(st, snap, tournament.SideB, state.Keys.BConfess, state.Keys.BDeny, state.RevealChoices, colWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, a, "    ", bSide))

	return st.ContentBox.Width(max(width-4, 34)).Render(b.String())
}

func (v *ChoosingView) renderSide(st *styles.ThemedStyles, snap tournament.Snapshot, side tournament.Side,
	confessKey, denyKey string, reveal bool, width int) string {
	title := st.SideStyle(side).Render(strings.ToUpper(snap.Labels[side]))
	rep := st.Muted.Render(snap.Names[side])

	choice := snap.Choices[side]
	shown := tournament.ChoiceUnset
	if reveal {
		shown = choice
	}

	confess := v.renderButton(st, tournament.ChoiceConfess, confessKey, shown)
	deny := v.renderButton(st, tournament.ChoiceDeny, denyKey, shown)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, confess, " ", deny)

	status := st.ChoiceWaiting.Render("deciding...")
	if choice.IsSet() {
		status = st.ChoiceLocked.Render("✓ locked in")
	}

	col := lipgloss.JoinVertical(lipgloss.Center, title, rep, buttons, status)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(col)
}

func (v *ChoosingView) renderButton(st *styles.ThemedStyles, c tournament.Choice, key string, shown tournament.Choice) string {
	label := strings.ToUpper(c.String())
	if key != "" {
		label += " " + st.HelpKey.Render("["+key+"]")
	}
	if shown == c {
		return st.ChoiceStyle(c).Render(label)
	}
	return st.ChoiceIdle.Render(label)
}

// renderMatchHeader renders the title line shared by the in-round screens.
func renderMatchHeader(st *styles.ThemedStyles, snap tournament.Snapshot) string {
	vs := st.SideA.Render(snap.Labels[tournament.SideA]) +
		st.Muted.Render(" vs ") +
		st.SideB.Render(snap.Labels[tournament.SideB])
	return st.Header.Render("Prisoner's Dilemma") + "\n" + vs
}
