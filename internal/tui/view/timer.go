package view

import (
	"strings"
	"time"

	"github.com/Iron-Ham/dilemma/internal/tui/styles"
)

// lowTimeThreshold is when the countdown bar switches to the warning color.
const lowTimeThreshold = 3 * time.Second

const (
	timerFillChar  = "█"
	timerEmptyChar = "░"
)

// TimerBar renders the countdown as a bar of width cells followed by the
// seconds left. The filled portion shrinks as the round runs out.
func TimerBar(remaining, limit time.Duration, width int) string {
	st := styles.GetActiveTheme()

	label := " " + FormatCountdown(remaining)
	barWidth := width - len(label)
	if barWidth < 1 {
		barWidth = 1
	}

	filled := 0
	if limit > 0 && remaining > 0 {
		filled = int(float64(barWidth) * float64(remaining) / float64(limit))
		if filled == 0 {
			filled = 1
		}
		filled = min(filled, barWidth)
	}

	fill := st.TimerFill
	if remaining <= lowTimeThreshold {
		fill = st.TimerLow
	}

	return fill.Render(strings.Repeat(timerFillChar, filled)) +
		st.TimerEmpty.Render(strings.Repeat(timerEmptyChar, barWidth-filled)) +
		fill.Render(label)
}
