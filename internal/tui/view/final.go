package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui/styles"
	"github.com/Iron-Ham/dilemma/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// DefaultHistoryRows is how many rounds the final screen lists when the
// caller does not say.
const DefaultHistoryRows = 10

// FinalView renders the final standings and round history.
type FinalView struct{}

// NewFinalView creates a new FinalView instance.
func NewFinalView() *FinalView {
	return &FinalView{}
}

// Render renders the final screen. Only the most recent historyRows rounds
// are listed.
func (v *FinalView) Render(snap tournament.Snapshot, width, historyRows int) string {
	st := styles.GetActiveTheme()
	if historyRows <= 0 {
		historyRows = DefaultHistoryRows
	}

	var b strings.Builder
	b.WriteString(st.Title.Render("FINAL RESULT"))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render(fmt.Sprintf("Rounds completed: %d", len(snap.History))))
	b.WriteString("\n\n")

	totals := lipgloss.JoinVertical(lipgloss.Center,
		st.SideA.Render(fmt.Sprintf("%s: %s", snap.Labels[tournament.SideA], Years(snap.Scores[tournament.SideA]))),
		st.SideB.Render(fmt.Sprintf("%s: %s", snap.Labels[tournament.SideB], Years(snap.Scores[tournament.SideB]))),
	)
	b.WriteString(st.Scoreboard.Render(totals))
	b.WriteString("\n\n")

	b.WriteString(v.renderVerdict(st, snap))
	b.WriteString("\n\n")

	b.WriteString(st.Primary.Bold(true).Render("Round history"))
	b.WriteString("\n")
	b.WriteString(v.renderHistory(st, snap, historyRows, width))
	b.WriteString("\n\n")
	b.WriteString(st.Primary.Bold(true).Render("▸ Play again"))

	return st.ContentBox.Width(max(width-4, 34)).Render(b.String())
}

func (v *FinalView) renderVerdict(st *styles.ThemedStyles, snap tournament.Snapshot) string {
	verdict := snap.Standing
	text := VerdictText(verdict, snap.Labels) + "\n" + VerdictReason(verdict)

	switch verdict {
	case tournament.VerdictSideA:
		return st.WinnerBanner.Foreground(st.Palette.SideA).Render(text)
	case tournament.VerdictSideB:
		return st.WinnerBanner.Foreground(st.Palette.SideB).Render(text)
	default:
		return st.TieBanner.Render(text)
	}
}

// renderHistory lists the most recent rounds, newest last.
func (v *FinalView) renderHistory(st *styles.ThemedStyles, snap tournament.Snapshot, limit, width int) string {
	records := snap.History
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	if len(records) == 0 {
		return st.Muted.Render("No rounds played.")
	}

	// Name columns share what is left after the fixed-width columns.
	nameWidth := min(max((width-60)/2, 8), 20)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Round),
			util.FitWidth(r.SideAName, nameWidth) + " " + r.SideAChoice.String(),
			util.FitWidth(r.SideBName, nameWidth) + " " + r.SideBChoice.String(),
			fmt.Sprintf("%d/%d", r.PenaltyA, r.PenaltyB),
			fmt.Sprintf("%d/%d", r.TotalA, r.TotalB),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.TableBorder).
		Headers("Round", snap.Labels[tournament.SideA], snap.Labels[tournament.SideB], "Penalty", "Total").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.TableHeader
			}
			switch col {
			case 1:
				return st.TableCell.Foreground(st.Palette.SideA)
			case 2:
				return st.TableCell.Foreground(st.Palette.SideB)
			default:
				return st.TableCell
			}
		})

	return t.Render()
}
