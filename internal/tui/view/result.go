package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// ResultView renders the outcome of the round that just resolved.
type ResultView struct {
	scoreboard *ScoreboardView
}

// NewResultView creates a new ResultView instance.
func NewResultView() *ResultView {
	return &ResultView{scoreboard: NewScoreboardView()}
}

// Render renders the last round record. The continue hint changes on the
// final round since advancing leads to the final standings.
func (v *ResultView) Render(snap tournament.Snapshot, width int) string {
	st := styles.GetActiveTheme()

	rec, ok := snap.LastRecord()
	if !ok {
		return st.ContentBox.Render(st.Muted.Render("No round played yet."))
	}

	var b strings.Builder
	b.WriteString(renderMatchHeader(st, snap))
	b.WriteString("\n")
	b.WriteString(v.scoreboard.Render(snap))
	b.WriteString("\n\n")

	color := st.OutcomeColor(rec.Outcome)
	headline := st.ResultHeadline.Foreground(color).Render(OutcomeText(rec, snap.Labels))
	if rec.TimedOut {
		headline += "  " + st.TimeoutBadge.Render("TIME UP")
	}

	choiceA := st.SideA.Render(fmt.Sprintf("%s chose: %s", snap.Labels[tournament.SideA], rec.SideAChoice))
	choiceB := st.SideB.Render(fmt.Sprintf("%s chose: %s", snap.Labels[tournament.SideB], rec.SideBChoice))
	reps := st.Muted.Render(fmt.Sprintf("Representatives: %s (%s) | %s (%s)",
		rec.SideAName, snap.Labels[tournament.SideA], rec.SideBName, snap.Labels[tournament.SideB]))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			headline,
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, choiceA, "    ", choiceB),
			reps,
		))
	b.WriteString(panel)
	b.WriteString("\n\n")

	next := "Next round"
	if snap.LastRound {
		next = "Final result"
	}
	b.WriteString(st.Primary.Bold(true).Render("▸ " + next))

	return st.ContentBox.Width(max(width-4, 34)).Render(b.String())
}
