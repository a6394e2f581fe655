package view

import (
	"strings"
	"testing"
)

func TestRuleLines(t *testing.T) {
	lines := RuleLines(testLabels)
	if len(lines) != 4 {
		t.Fatalf("got %d rule lines, want 4", len(lines))
	}

	want := []string{
		"If Caprichoso confesses and Garantido denies: Caprichoso 1 year, Garantido 10 years",
		"If Caprichoso denies and Garantido confesses: Caprichoso 10 years, Garantido 1 year",
		"If both confess: 3 years each",
		"If both deny: 2 years each",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRulesPanel(t *testing.T) {
	out := RulesPanel(testLabels, 100)
	for _, line := range RuleLines(testLabels) {
		if !strings.Contains(out, line) {
			t.Errorf("rules panel missing %q", line)
		}
	}
}

func TestPayoffTable(t *testing.T) {
	out := PayoffTable([2]string{"A", "B"})

	for _, want := range []string{
		"A confesses", "A denies", "B confesses", "B denies",
		"3 / 3", "1 / 10", "10 / 1", "2 / 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("payoff table missing %q:\n%s", want, out)
		}
	}

	// Row for A confessing lists the B-confesses cell before the B-denies cell.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "A confesses") {
			if strings.Index(line, "3 / 3") > strings.Index(line, "1 / 10") {
				t.Errorf("unexpected column order: %q", line)
			}
		}
	}
}
