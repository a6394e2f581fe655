package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui/styles"
	"github.com/Iron-Ham/dilemma/internal/util"
	"github.com/charmbracelet/lipgloss"
)

const (
	cursorChar = "█"
	fieldWidth = 32
)

// NamesView renders the representative name entry screen.
type NamesView struct{}

// NewNamesView creates a new NamesView instance.
func NewNamesView() *NamesView {
	return &NamesView{}
}

// Render renders both name fields for the current round. Empty fields show
// the placeholder that ConfirmNames would substitute.
func (v *NamesView) Render(snap tournament.Snapshot, width int) string {
	st := styles.GetActiveTheme()
	var b strings.Builder

	b.WriteString(st.Title.Render("Register Representatives"))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render(fmt.Sprintf("Round %d of %d", snap.Round, snap.MaxRounds)))
	b.WriteString("\n\n")
	b.WriteString(st.Text.Render("Enter the representatives' names for this round:"))
	b.WriteString("\n\n")

	for _, side := range []tournament.Side{tournament.SideA, tournament.SideB} {
		b.WriteString(v.renderField(st, snap, side))
		b.WriteString("\n")
	}

	if snap.Round > 1 {
		b.WriteString("\n")
		b.WriteString(NewScoreboardView().Render(snap))
		b.WriteString("\n")
	}

	return st.ContentBox.Width(max(width-4, 20)).Render(b.String())
}

func (v *NamesView) renderField(st *styles.ThemedStyles, snap tournament.Snapshot, side tournament.Side) string {
	focused := snap.Focus == side
	name := snap.Names[side]

	label := st.SideStyle(side).Render(snap.Labels[side] + " representative:")

	var content string
	switch {
	case name == "" && focused:
		content = st.Cursor.Render(cursorChar) + st.Muted.Render(placeholder(snap, side))
	case name == "":
		content = st.Muted.Render(placeholder(snap, side))
	case focused:
		content = st.Text.Render(name) + st.Cursor.Render(cursorChar)
	default:
		content = st.Text.Render(name)
	}
	content = lipgloss.NewStyle().Width(fieldWidth).Render(content)

	box := st.FieldBlurred
	if focused {
		box = st.FieldFocusedA
		if side == tournament.SideB {
			box = st.FieldFocusedB
		}
	}

	count := st.Muted.Render(fmt.Sprintf("%2d/%d", utf8.RuneCountInString(name), tournament.NameLimit))
	return label + "\n" + lipgloss.JoinHorizontal(lipgloss.Center, box.Render(content), " ", count)
}

func placeholder(snap tournament.Snapshot, side tournament.Side) string {
	return util.TruncateANSI(snap.Placeholders[side], fieldWidth-1)
}
