package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RuleLines returns the payoff matrix as sentences, one per cell.
func RuleLines(labels [2]string) []string {
	a, b := labels[tournament.SideA], labels[tournament.SideB]
	return []string{
		fmt.Sprintf("If %s confesses and %s denies: %s %s, %s %s",
			a, b, a, Years(tournament.PenaltyInformant), b, Years(tournament.PenaltyBetrayed)),
		fmt.Sprintf("If %s denies and %s confesses: %s %s, %s %s",
			a, b, a, Years(tournament.PenaltyBetrayed), b, Years(tournament.PenaltyInformant)),
		fmt.Sprintf("If both confess: %s each", Years(tournament.PenaltyBothConfess)),
		fmt.Sprintf("If both deny: %s each", Years(tournament.PenaltyBothDeny)),
	}
}

// RulesPanel renders the payoff sentences inside a bordered panel.
func RulesPanel(labels [2]string, width int) string {
	st := styles.GetActiveTheme()
	panel := st.RulesPanel
	if width > 4 {
		panel = panel.Width(width - 2)
	}
	return panel.Render(strings.Join(RuleLines(labels), "\n"))
}

// PayoffTable renders the payoff matrix with side A's choice as rows and
// side B's choice as columns. Each cell reads "penaltyA / penaltyB".
func PayoffTable(labels [2]string) string {
	st := styles.GetActiveTheme()
	a, b := labels[tournament.SideA], labels[tournament.SideB]
	choices := []tournament.Choice{tournament.ChoiceConfess, tournament.ChoiceDeny}

	rows := make([][]string, 0, len(choices))
	for _, ca := range choices {
		row := []string{a + " " + ChoiceVerb(ca)}
		for _, cb := range choices {
			pa, pb := tournament.Payoff(ca, cb)
			row = append(row, strconv.Itoa(pa)+" / "+strconv.Itoa(pb))
		}
		rows = append(rows, row)
	}

	headers := []string{a + " \\ " + b}
	for _, cb := range choices {
		headers = append(headers, b+" "+ChoiceVerb(cb))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.TableHeader
			case col == 0:
				return st.TableCell.Foreground(st.Palette.SideA).Bold(true)
			default:
				return st.TableCell
			}
		})

	return t.Render()
}
