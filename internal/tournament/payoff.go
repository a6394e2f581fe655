package tournament

// Penalties of the fixed payoff matrix, in years.
const (
	PenaltyBetrayed    = 10 // denied while the other side confessed
	PenaltyInformant   = 1  // confessed while the other side denied
	PenaltyBothConfess = 3
	PenaltyBothDeny    = 2 // the original sentence stands
)

// Payoff returns the penalties for side A and side B given their choices.
// An unset choice counts as Deny, the same default the round timer applies.
func Payoff(a, b Choice) (penaltyA, penaltyB int) {
	switch Classify(a, b) {
	case OutcomeAConfesses:
		return PenaltyInformant, PenaltyBetrayed
	case OutcomeBConfesses:
		return PenaltyBetrayed, PenaltyInformant
	case OutcomeBothConfess:
		return PenaltyBothConfess, PenaltyBothConfess
	default:
		return PenaltyBothDeny, PenaltyBothDeny
	}
}

// Classify maps a pair of choices onto its payoff matrix cell.
func Classify(a, b Choice) Outcome {
	aConfess := a == ChoiceConfess
	bConfess := b == ChoiceConfess
	switch {
	case aConfess && bConfess:
		return OutcomeBothConfess
	case aConfess:
		return OutcomeAConfesses
	case bConfess:
		return OutcomeBConfesses
	default:
		return OutcomeBothDeny
	}
}

// Compare returns the verdict for two cumulative penalties: the lower total wins.
func Compare(scoreA, scoreB int) Verdict {
	switch {
	case scoreA < scoreB:
		return VerdictSideA
	case scoreB < scoreA:
		return VerdictSideB
	default:
		return VerdictTie
	}
}
