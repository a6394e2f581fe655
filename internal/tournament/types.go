package tournament

import "fmt"

// State is the phase of the tournament the engine is in.
type State int

const (
	// StateCollectingNames accepts representative names for the current round.
	StateCollectingNames State = iota
	// StateChoosing runs the round timer and accepts choices.
	StateChoosing
	// StateShowingResult displays the outcome of the round just played.
	StateShowingResult
	// StateFinished displays the final standings.
	StateFinished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCollectingNames:
		return "collecting_names"
	case StateChoosing:
		return "choosing"
	case StateShowingResult:
		return "showing_result"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Side identifies one of the two competing parties.
type Side int

const (
	SideA Side = iota
	SideB
)

// String returns "A" or "B".
func (s Side) String() string {
	if s == SideB {
		return "B"
	}
	return "A"
}

// Valid reports whether s is SideA or SideB.
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Choice is a representative's decision for a round.
type Choice int

const (
	ChoiceUnset Choice = iota
	ChoiceConfess
	ChoiceDeny
)

// String returns the display name of the choice.
func (c Choice) String() string {
	switch c {
	case ChoiceConfess:
		return "Confess"
	case ChoiceDeny:
		return "Deny"
	default:
		return "Unset"
	}
}

// IsSet reports whether the choice has been made.
func (c Choice) IsSet() bool {
	return c == ChoiceConfess || c == ChoiceDeny
}

// Outcome names the four cells of the payoff matrix.
type Outcome int

const (
	OutcomeBothDeny Outcome = iota
	OutcomeAConfesses
	OutcomeBConfesses
	OutcomeBothConfess
)

// String returns a short identifier for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAConfesses:
		return "a_confesses"
	case OutcomeBConfesses:
		return "b_confesses"
	case OutcomeBothConfess:
		return "both_confess"
	default:
		return "both_deny"
	}
}

// Verdict is the comparison of the two cumulative penalties.
type Verdict int

const (
	VerdictTie Verdict = iota
	VerdictSideA
	VerdictSideB
)

// String returns "tie", "side_a" or "side_b".
func (v Verdict) String() string {
	switch v {
	case VerdictSideA:
		return "side_a"
	case VerdictSideB:
		return "side_b"
	default:
		return "tie"
	}
}

// Record is the immutable log entry for one completed round.
type Record struct {
	Round       int
	SideAName   string
	SideBName   string
	SideAChoice Choice
	SideBChoice Choice
	PenaltyA    int
	PenaltyB    int
	TotalA      int // cumulative penalty for side A after this round
	TotalB      int // cumulative penalty for side B after this round
	Outcome     Outcome
	TimedOut    bool // resolved by the round timer rather than two explicit choices
}
