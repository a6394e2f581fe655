package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestTimerBar(t *testing.T) {
	const width = 40
	limit := 10 * time.Second

	tests := []struct {
		name       string
		remaining  time.Duration
		wantLabel  string
		wantFilled int
	}{
		{"full", limit, "10s", width - len(" 10s")},
		{"half", 5 * time.Second, "5s", (width - len(" 5s")) / 2},
		{"nearly out keeps one cell", 10 * time.Millisecond, "1s", 1},
		{"expired", 0, "0s", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := TimerBar(tt.remaining, limit, width)

			if got := lipgloss.Width(bar); got != width {
				t.Errorf("bar width = %d, want %d", got, width)
			}
			if !strings.HasSuffix(bar, tt.wantLabel) && !strings.Contains(bar, " "+tt.wantLabel) {
				t.Errorf("bar %q missing label %q", bar, tt.wantLabel)
			}
			if got := strings.Count(bar, timerFillChar); got != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d", got, tt.wantFilled)
			}
		})
	}
}

func TestTimerBarNarrowWidth(t *testing.T) {
	bar := TimerBar(5*time.Second, 10*time.Second, 2)
	if !strings.Contains(bar, "5s") {
		t.Errorf("narrow bar lost its label: %q", bar)
	}
}
