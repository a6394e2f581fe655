package cmd

import (
	"time"

	"github.com/Iron-Ham/dilemma/internal/event"
	"github.com/Iron-Ham/dilemma/internal/logging"
)

// eventLogger returns a bus handler that writes every tournament event to
// the debug log.
func eventLogger(logger *logging.Logger) event.Handler {
	return func(e event.Event) {
		switch ev := e.(type) {
		case event.RoundStartedEvent:
			logger.WithMatch(ev.MatchID).WithRound(ev.Round).Info("round started",
				"side_a", ev.SideAName,
				"side_b", ev.SideBName,
				"deadline", ev.Deadline.Format(time.RFC3339Nano))
		case event.RoundCompletedEvent:
			logger.WithMatch(ev.MatchID).WithRound(ev.Round).Info("round completed",
				"choice_a", ev.ChoiceA,
				"choice_b", ev.ChoiceB,
				"penalty_a", ev.PenaltyA,
				"penalty_b", ev.PenaltyB,
				"total_a", ev.TotalA,
				"total_b", ev.TotalB,
				"timed_out", ev.TimedOut)
		case event.TournamentFinishedEvent:
			logger.WithMatch(ev.MatchID).Info("tournament finished",
				"rounds", ev.Rounds,
				"total_a", ev.TotalA,
				"total_b", ev.TotalB,
				"verdict", ev.Verdict)
		case event.TournamentRestartedEvent:
			logger.WithMatch(ev.MatchID).Info("tournament restarted",
				"previous_match_id", ev.PreviousMatchID)
		default:
			logger.Debug("unhandled event", "event_type", e.EventType())
		}
	}
}
