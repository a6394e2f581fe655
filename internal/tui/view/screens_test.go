package view

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/dilemma/internal/tournament"
)

var t0 = time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

func newEngine(rounds int) *tournament.Engine {
	return tournament.New(tournament.Options{
		MaxRounds:  rounds,
		SideALabel: testLabels[tournament.SideA],
		SideBLabel: testLabels[tournament.SideB],
		NewID:      func() string { return "test-match" },
	})
}

func typeName(e *tournament.Engine, side tournament.Side, name string) {
	for _, r := range name {
		e.AppendRune(side, r)
	}
}

// playRound names both sides after the round number and resolves the round.
func playRound(e *tournament.Engine, a, b tournament.Choice) {
	typeName(e, tournament.SideA, fmt.Sprintf("ana%02d", e.Round()))
	typeName(e, tournament.SideB, fmt.Sprintf("bia%02d", e.Round()))
	e.ConfirmNames(t0)
	e.Select(tournament.SideA, a, t0)
	e.Select(tournament.SideB, b, t0)
}

func TestNamesView(t *testing.T) {
	e := newEngine(20)
	v := NewNamesView()

	t.Run("empty fields show placeholders", func(t *testing.T) {
		out := v.Render(e.Snapshot(t0), 100)
		for _, want := range []string{
			"Register Representatives",
			"Round 1 of 20",
			"Caprichoso representative:",
			"Garantido representative:",
			"Representative Garantido 1",
			" 0/15",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("names view missing %q", want)
			}
		}
	})

	t.Run("typed name and count", func(t *testing.T) {
		typeName(e, tournament.SideA, "Ana")
		out := v.Render(e.Snapshot(t0), 100)
		if !strings.Contains(out, "Ana"+cursorChar) {
			t.Error("focused field should show the name followed by the cursor")
		}
		if !strings.Contains(out, " 3/15") {
			t.Error("expected character count 3/15")
		}
	})

	t.Run("scoreboard from round two", func(t *testing.T) {
		if strings.Contains(v.Render(e.Snapshot(t0), 100), "Round 1/20") {
			t.Error("scoreboard should not show on the first naming screen")
		}
		e.ConfirmNames(t0)
		e.Select(tournament.SideA, tournament.ChoiceConfess, t0)
		e.Select(tournament.SideB, tournament.ChoiceDeny, t0)
		e.Advance()
		if !strings.Contains(v.Render(e.Snapshot(t0), 100), "Round 2/20") {
			t.Error("scoreboard should show once a round has been played")
		}
	})
}

func TestChoosingView(t *testing.T) {
	e := newEngine(20)
	typeName(e, tournament.SideA, "Ana")
	e.ConfirmNames(t0)
	e.Select(tournament.SideA, tournament.ChoiceConfess, t0)

	keys := ChoiceKeys{AConfess: "1", ADeny: "2", BConfess: "9", BDeny: "0"}
	out := NewChoosingView().Render(e.Snapshot(t0.Add(3*time.Second)), 120, ChoosingState{Keys: keys})

	for _, want := range []string{
		"Prisoner's Dilemma",
		"Round 1/20",
		"CAPRICHOSO",
		"GARANTIDO",
		"Ana",
		"Representative Garantido 1",
		"CONFESS [1]",
		"DENY [0]",
		"✓ locked in",
		"deciding...",
		"7s",
		"If both deny: 2 years each",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("choosing view missing %q", want)
		}
	}
}

func TestResultView(t *testing.T) {
	t.Run("dual choice", func(t *testing.T) {
		e := newEngine(2)
		playRound(e, tournament.ChoiceConfess, tournament.ChoiceDeny)

		out := NewResultView().Render(e.Snapshot(t0), 120)
		for _, want := range []string{
			"Caprichoso: 1 year | Garantido: 10 years",
			"Caprichoso chose: Confess",
			"Garantido chose: Deny",
			"ana01 (Caprichoso)",
			"Next round",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("result view missing %q", want)
			}
		}
		if strings.Contains(out, "TIME UP") {
			t.Error("TIME UP badge shown for a round that did not time out")
		}
	})

	t.Run("timeout on last round", func(t *testing.T) {
		e := newEngine(1)
		e.ConfirmNames(t0)
		e.Tick(t0.Add(10 * time.Second))

		out := NewResultView().Render(e.Snapshot(t0), 120)
		for _, want := range []string{"TIME UP", "Both: 2 years in prison", "Final result"} {
			if !strings.Contains(out, want) {
				t.Errorf("result view missing %q", want)
			}
		}
	})

	t.Run("no record", func(t *testing.T) {
		out := NewResultView().Render(newEngine(1).Snapshot(t0), 80)
		if !strings.Contains(out, "No round played yet.") {
			t.Error("expected empty-state message")
		}
	})
}

func TestFinalView(t *testing.T) {
	t.Run("winner and history", func(t *testing.T) {
		e := newEngine(1)
		playRound(e, tournament.ChoiceConfess, tournament.ChoiceDeny)
		e.Advance()

		out := NewFinalView().Render(e.Snapshot(t0), 120, 10)
		for _, want := range []string{
			"FINAL RESULT",
			"Rounds completed: 1",
			"Caprichoso: 1 year",
			"Garantido: 10 years",
			"CAPRICHOSO WINS!",
			"ana01",
			"1/10",
			"Play again",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("final view missing %q", want)
			}
		}
	})

	t.Run("tie", func(t *testing.T) {
		e := newEngine(2)
		playRound(e, tournament.ChoiceDeny, tournament.ChoiceDeny)
		e.Advance()
		playRound(e, tournament.ChoiceDeny, tournament.ChoiceDeny)
		e.Advance()

		out := NewFinalView().Render(e.Snapshot(t0), 120, 10)
		if !strings.Contains(out, "TIE!") || !strings.Contains(out, "4/4") {
			t.Errorf("expected tie with 4/4 totals:\n%s", out)
		}
	})

	t.Run("history limited to most recent rows", func(t *testing.T) {
		e := newEngine(12)
		for i := 0; i < 12; i++ {
			playRound(e, tournament.ChoiceConfess, tournament.ChoiceConfess)
			e.Advance()
		}
		if e.State() != tournament.StateFinished {
			t.Fatalf("engine in %v, want finished", e.State())
		}

		out := NewFinalView().Render(e.Snapshot(t0), 120, 10)
		if strings.Contains(out, "ana01") || strings.Contains(out, "ana02") {
			t.Error("oldest rounds should be cut from the history table")
		}
		if !strings.Contains(out, "ana03") || !strings.Contains(out, "ana12") {
			t.Error("most recent rounds should be listed")
		}
		if !strings.Contains(out, "36/36") {
			t.Error("expected running total 36/36 on the last row")
		}
	})
}
