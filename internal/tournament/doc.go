// Package tournament implements the round engine of a two-party Prisoner's
// Dilemma tournament.
//
// An [Engine] owns everything that has rules attached to it: the screen
// state, the round counter, the per-round representatives and choices, the
// cumulative penalties, and the append-only round history. Renderers read it
// through [Engine.Snapshot]; input sources drive it through the transition
// methods. Every transition is total: calling one from a state where it does
// not apply is a no-op, so the engine never returns errors.
//
// # States
//
//	CollectingNames --ConfirmNames--> Choosing
//	Choosing --both Select / Tick expiry--> ShowingResult
//	ShowingResult --Advance (round < max)--> CollectingNames
//	ShowingResult --Advance (round == max)--> Finished
//	Finished --Restart--> CollectingNames
//
// # Time
//
// The engine never reads the clock. Operations that start or end the round
// timer take the current time as an argument, which keeps the timeout rule
// (elapsed >= limit) testable without a running UI.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. It is meant to be driven from a
// single event loop that processes one input at a time.
package tournament
