package view

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// ScoreboardView renders the round counter and both teams' totals.
type ScoreboardView struct{}

// NewScoreboardView creates a new ScoreboardView instance.
func NewScoreboardView() *ScoreboardView {
	return &ScoreboardView{}
}

// Render renders the scoreboard. The leading team (lower total) gets a marker.
func (v *ScoreboardView) Render(snap tournament.Snapshot) string {
	st := styles.GetActiveTheme()

	round := st.Primary.Bold(true).Render(fmt.Sprintf("Round %d/%d", snap.Round, snap.MaxRounds))

	sideA := v.renderSide(st, snap, tournament.SideA, snap.Standing == tournament.VerdictSideA)
	sideB := v.renderSide(st, snap, tournament.SideB, snap.Standing == tournament.VerdictSideB)
	divider := st.Muted.Render(" │ ")

	board := st.Scoreboard.Render(lipgloss.JoinHorizontal(lipgloss.Center, sideA, divider, sideB))
	return lipgloss.JoinVertical(lipgloss.Center, round, board)
}

func (v *ScoreboardView) renderSide(st *styles.ThemedStyles, snap tournament.Snapshot, side tournament.Side, leading bool) string {
	label := st.SideStyle(side).Render(snap.Labels[side])
	score := st.SideStyle(side).Padding(0, 1).Render(strconv.Itoa(snap.Scores[side]))
	if leading {
		score += st.Secondary.Render("▲")
	} else {
		score += " "
	}
	if side == tournament.SideA {
		return label + " " + score
	}
	return score + " " + label
}
