package tournament

import "time"

// Snapshot is a read-only copy of everything a renderer may display.
type Snapshot struct {
	State          State
	MatchID        string
	Round          int
	MaxRounds      int
	LastRound      bool
	RoundTimeLimit time.Duration
	Remaining      time.Duration // zero outside StateChoosing
	Labels         [2]string
	Names          [2]string
	Placeholders   [2]string // substituted for blank names at ConfirmNames
	Choices        [2]Choice
	Scores         [2]int
	Focus          Side
	History        []Record
	Standing       Verdict
}

// Snapshot captures the engine state at now.
func (e *Engine) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:          e.state,
		MatchID:        e.matchID,
		Round:          e.round,
		MaxRounds:      e.maxRounds,
		LastRound:      e.IsLastRound(),
		RoundTimeLimit: e.timeLimit,
		Remaining:      e.Remaining(now),
		Labels:         e.labels,
		Names:          e.names,
		Placeholders:   [2]string{e.PlaceholderName(SideA), e.PlaceholderName(SideB)},
		Choices:        e.choices,
		Scores:         e.scores,
		Focus:          e.focus,
		History:        e.History(),
		Standing:       e.Standing(),
	}
}

// LastRecord returns the most recent round record, if any.
func (s Snapshot) LastRecord() (Record, bool) {
	if len(s.History) == 0 {
		return Record{}, false
	}
	return s.History[len(s.History)-1], true
}

// Elapsed returns how much of the round timer has been used.
func (s Snapshot) Elapsed() time.Duration {
	if s.State != StateChoosing {
		return 0
	}
	return s.RoundTimeLimit - s.Remaining
}
