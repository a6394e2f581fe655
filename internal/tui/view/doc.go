// Package view renders the tournament screens for the dilemma TUI.
//
// Every renderer is stateless: it takes a [tournament.Snapshot] plus layout
// information and returns a string. Nothing here mutates the engine.
//
// # Screens
//
//   - [NamesView]: representative name entry for the current round
//   - [ChoosingView]: scoreboard, countdown bar, payoff rules and choice buttons
//   - [ResultView]: the round outcome and the choices that produced it
//   - [FinalView]: totals, the winner and the most recent round history
//
// # Shared Components
//
//   - [ScoreboardView]: round counter and cumulative penalties for both teams
//   - [TimerBar]: the countdown bar shown while choosing
//   - [PayoffTable]: the payoff matrix as a lipgloss table, used by the rules panel
//     and the `dilemma rules` command
package view
