package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns the "category.action" identifier of the event.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeRoundStarted        = "round.started"
	TypeRoundCompleted      = "round.completed"
	TypeTournamentFinished  = "tournament.finished"
	TypeTournamentRestarted = "tournament.restarted"
)

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string, at time.Time) baseEvent {
	if at.IsZero() {
		at = time.Now()
	}
	return baseEvent{eventType: eventType, timestamp: at}
}

// RoundStartedEvent is emitted when both representatives are confirmed and
// the choice timer starts.
type RoundStartedEvent struct {
	baseEvent
	MatchID   string
	Round     int
	SideAName string
	SideBName string
	Deadline  time.Time
}

// NewRoundStartedEvent creates a RoundStartedEvent stamped at the given time.
func NewRoundStartedEvent(at time.Time, matchID string, round int, sideA, sideB string, deadline time.Time) RoundStartedEvent {
	return RoundStartedEvent{
		baseEvent: newBaseEvent(TypeRoundStarted, at),
		MatchID:   matchID,
		Round:     round,
		SideAName: sideA,
		SideBName: sideB,
		Deadline:  deadline,
	}
}

// RoundCompletedEvent is emitted once per round after the payoff is applied.
// Choices are carried as their display strings so observers do not need to
// import the engine.
type RoundCompletedEvent struct {
	baseEvent
	MatchID  string
	Round    int
	ChoiceA  string
	ChoiceB  string
	PenaltyA int
	PenaltyB int
	TotalA   int
	TotalB   int
	TimedOut bool
}

// NewRoundCompletedEvent creates a RoundCompletedEvent stamped at the given time.
func NewRoundCompletedEvent(at time.Time, matchID string, round int, choiceA, choiceB string, penaltyA, penaltyB, totalA, totalB int, timedOut bool) RoundCompletedEvent {
	return RoundCompletedEvent{
		baseEvent: newBaseEvent(TypeRoundCompleted, at),
		MatchID:   matchID,
		Round:     round,
		ChoiceA:   choiceA,
		ChoiceB:   choiceB,
		PenaltyA:  penaltyA,
		PenaltyB:  penaltyB,
		TotalA:    totalA,
		TotalB:    totalB,
		TimedOut:  timedOut,
	}
}

// TournamentFinishedEvent is emitted when the last round is acknowledged.
type TournamentFinishedEvent struct {
	baseEvent
	MatchID string
	Rounds  int
	TotalA  int
	TotalB  int
	Verdict string
}

// NewTournamentFinishedEvent creates a TournamentFinishedEvent.
func NewTournamentFinishedEvent(matchID string, rounds, totalA, totalB int, verdict string) TournamentFinishedEvent {
	return TournamentFinishedEvent{
		baseEvent: newBaseEvent(TypeTournamentFinished, time.Time{}),
		MatchID:   matchID,
		Rounds:    rounds,
		TotalA:    totalA,
		TotalB:    totalB,
		Verdict:   verdict,
	}
}

// TournamentRestartedEvent is emitted when a finished tournament is reset.
type TournamentRestartedEvent struct {
	baseEvent
	PreviousMatchID string
	MatchID         string
}

// NewTournamentRestartedEvent creates a TournamentRestartedEvent.
func NewTournamentRestartedEvent(previousID, matchID string) TournamentRestartedEvent {
	return TournamentRestartedEvent{
		baseEvent:       newBaseEvent(TypeTournamentRestarted, time.Time{}),
		PreviousMatchID: previousID,
		MatchID:         matchID,
	}
}
