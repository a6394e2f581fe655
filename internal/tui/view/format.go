package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Iron-Ham/dilemma/internal/tournament"
)

// Years formats a penalty as "1 year" or "N years".
func Years(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

// FormatCountdown formats remaining round time as whole seconds, rounding up
// so a fresh round shows its full limit and "0s" only appears at expiry.
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return fmt.Sprintf("%ds", int(math.Ceil(d.Seconds())))
}

// OutcomeText describes the sentence handed out for a round.
func OutcomeText(rec tournament.Record, labels [2]string) string {
	switch rec.Outcome {
	case tournament.OutcomeBothConfess:
		return fmt.Sprintf("Both: %s in prison", Years(rec.PenaltyA))
	case tournament.OutcomeBothDeny:
		return fmt.Sprintf("Both: %s in prison (original sentence)", Years(rec.PenaltyA))
	default:
		return fmt.Sprintf("%s: %s | %s: %s",
			labels[tournament.SideA], Years(rec.PenaltyA),
			labels[tournament.SideB], Years(rec.PenaltyB))
	}
}

// ChoiceVerb returns the third-person verb for a choice.
func ChoiceVerb(c tournament.Choice) string {
	switch c {
	case tournament.ChoiceConfess:
		return "confesses"
	case tournament.ChoiceDeny:
		return "denies"
	default:
		return "hesitates"
	}
}

// VerdictText is the headline of the final screen.
func VerdictText(v tournament.Verdict, labels [2]string) string {
	switch v {
	case tournament.VerdictSideA:
		return strings.ToUpper(labels[tournament.SideA]) + " WINS!"
	case tournament.VerdictSideB:
		return strings.ToUpper(labels[tournament.SideB]) + " WINS!"
	default:
		return "TIE!"
	}
}

// VerdictReason explains the verdict in one line.
func VerdictReason(v tournament.Verdict) string {
	if v == tournament.VerdictTie {
		return "(equal total prison time)"
	}
	return "(lowest total prison time)"
}
