// Package event provides a small synchronous pub-sub bus used to report
// tournament progress to observers that have no business touching the
// round engine directly, such as the debug logger.
//
// # Main Types
//
//   - [Event]: interface implemented by every event (EventType, Timestamp)
//   - [Bus]: synchronous dispatcher; handlers run inline in Publish
//   - [Handler]: func(Event)
//
// # Event Types
//
//   - [RoundStartedEvent] ("round.started"): names confirmed, timer running
//   - [RoundCompletedEvent] ("round.completed"): payoff applied, record appended
//   - [TournamentFinishedEvent] ("tournament.finished"): final round acknowledged
//   - [TournamentRestartedEvent] ("tournament.restarted"): scores and history cleared
//
// Handlers are called in registration order, specific subscribers first and
// wildcard subscribers after. A panicking handler is recovered and reported
// through the bus's panic hook so it cannot stall the UI loop.
package event
