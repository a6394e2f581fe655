package tournament

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Iron-Ham/dilemma/internal/event"
	"github.com/google/uuid"
)

// Defaults used when Options leave a field at its zero value.
const (
	DefaultMaxRounds      = 20
	DefaultRoundTimeLimit = 10 * time.Second
	DefaultSideALabel     = "A"
	DefaultSideBLabel     = "B"

	// NameLimit is the maximum number of characters in a representative name.
	NameLimit = 15
)

// Publisher receives tournament events. *event.Bus satisfies it.
type Publisher interface {
	Publish(event.Event)
}

// Options configures a new Engine.
type Options struct {
	MaxRounds      int
	RoundTimeLimit time.Duration
	SideALabel     string
	SideBLabel     string

	// Publisher is optional; when nil no events are emitted.
	Publisher Publisher

	// NewID generates match identifiers. Defaults to uuid.NewString.
	NewID func() string
}

// Engine is the tournament state machine.
type Engine struct {
	maxRounds int
	timeLimit time.Duration
	labels    [2]string
	publisher Publisher
	newID     func() string
	matchID   string
	state     State
	round     int
	deadline  time.Time
	names     [2]string
	choices   [2]Choice
	scores    [2]int
	history   []Record
	focus     Side
}

// New creates an Engine in StateCollectingNames at round 1.
func New(opts Options) *Engine {
	e := &Engine{
		maxRounds: opts.MaxRounds,
		timeLimit: opts.RoundTimeLimit,
		labels:    [2]string{opts.SideALabel, opts.SideBLabel},
		publisher: opts.Publisher,
		newID:     opts.NewID,
	}
	if e.maxRounds <= 0 {
		e.maxRounds = DefaultMaxRounds
	}
	if e.timeLimit <= 0 {
		e.timeLimit = DefaultRoundTimeLimit
	}
	if strings.TrimSpace(e.labels[SideA]) == "" {
		e.labels[SideA] = DefaultSideALabel
	}
	if strings.TrimSpace(e.labels[SideB]) == "" {
		e.labels[SideB] = DefaultSideBLabel
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.matchID = e.newID()
	e.state = StateCollectingNames
	e.round = 1
	e.scores = [2]int{}
	e.history = nil
	e.clearRound()
}

// clearRound empties the per-round fields ahead of a naming phase.
func (e *Engine) clearRound() {
	e.names = [2]string{}
	e.choices = [2]Choice{}
	e.deadline = time.Time{}
	e.focus = SideA
}

// -----------------------------------------------------------------------------
// Name entry
// -----------------------------------------------------------------------------

// AppendRune adds a character to a side's name. Characters past NameLimit,
// non-printable runes and unknown sides are dropped.
func (e *Engine) AppendRune(side Side, r rune) {
	if e.state != StateCollectingNames || !side.Valid() || !unicode.IsPrint(r) {
		return
	}
	if utf8.RuneCountInString(e.names[side]) >= NameLimit {
		return
	}
	e.names[side] += string(r)
}

// Backspace removes the last character of a side's name.
func (e *Engine) Backspace(side Side) {
	if e.state != StateCollectingNames || !side.Valid() {
		return
	}
	name := e.names[side]
	if name == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(name)
	e.names[side] = name[:len(name)-size]
}

// Focus moves text entry to the given side's field.
func (e *Engine) Focus(side Side) {
	if e.state != StateCollectingNames || !side.Valid() {
		return
	}
	e.focus = side
}

// ToggleFocus moves text entry to the other side's field.
func (e *Engine) ToggleFocus() {
	e.Focus(e.focus.Other())
}

// ConfirmNames commits both names and starts the round timer. Blank names are
// replaced by "Representative <label> <round>".
func (e *Engine) ConfirmNames(now time.Time) {
	if e.state != StateCollectingNames {
		return
	}
	for _, side := range []Side{SideA, SideB} {
		if strings.TrimSpace(e.names[side]) == "" {
			e.names[side] = e.PlaceholderName(side)
		}
	}
	e.choices = [2]Choice{}
	e.deadline = now.Add(e.timeLimit)
	e.state = StateChoosing

	e.publish(event.NewRoundStartedEvent(now, e.matchID, e.round, e.names[SideA], e.names[SideB], e.deadline))
}

// PlaceholderName returns the name substituted for a blank entry this round.
func (e *Engine) PlaceholderName(side Side) string {
	return fmt.Sprintf("Representative %s %d", e.labels[side], e.round)
}

// -----------------------------------------------------------------------------
// Choosing
// -----------------------------------------------------------------------------

// Select records a side's choice. A side may change its mind until both
// sides have chosen, at which point the round resolves immediately.
func (e *Engine) Select(side Side, choice Choice, now time.Time) {
	if e.state != StateChoosing || !side.Valid() || !choice.IsSet() {
		return
	}
	e.choices[side] = choice
	if e.choices[SideA].IsSet() && e.choices[SideB].IsSet() {
		e.resolve(now, false)
	}
}

// Expired reports whether the round timer has run out at now.
func (e *Engine) Expired(now time.Time) bool {
	return e.state == StateChoosing && !now.Before(e.deadline)
}

// Tick applies the round timeout. Any side still undecided is forced to Deny
// and the round resolves. Returns true if a transition happened.
func (e *Engine) Tick(now time.Time) bool {
	if !e.Expired(now) {
		return false
	}
	for _, side := range []Side{SideA, SideB} {
		if !e.choices[side].IsSet() {
			e.choices[side] = ChoiceDeny
		}
	}
	e.resolve(now, true)
	return true
}

func (e *Engine) resolve(now time.Time, timedOut bool) {
	a, b := e.choices[SideA], e.choices[SideB]
	penaltyA, penaltyB := Payoff(a, b)
	e.scores[SideA] += penaltyA
	e.scores[SideB] += penaltyB

	rec := Record{
		Round:       e.round,
		SideAName:   e.names[SideA],
		SideBName:   e.names[SideB],
		SideAChoice: a,
		SideBChoice: b,
		PenaltyA:    penaltyA,
		PenaltyB:    penaltyB,
		TotalA:      e.scores[SideA],
		TotalB:      e.scores[SideB],
		Outcome:     Classify(a, b),
		TimedOut:    timedOut,
	}
	e.history = append(e.history, rec)
	e.deadline = time.Time{}
	e.state = StateShowingResult

	e.publish(event.NewRoundCompletedEvent(now, e.matchID, rec.Round, a.String(), b.String(),
		penaltyA, penaltyB, rec.TotalA, rec.TotalB, timedOut))
}

// -----------------------------------------------------------------------------
// Round progression
// -----------------------------------------------------------------------------

// Advance leaves the result screen: on to the next round's naming phase, or
// to StateFinished after the last round.
func (e *Engine) Advance() {
	if e.state != StateShowingResult {
		return
	}
	if e.round < e.maxRounds {
		e.round++
		e.clearRound()
		e.state = StateCollectingNames
		return
	}
	e.state = StateFinished
	e.publish(event.NewTournamentFinishedEvent(e.matchID, e.round,
		e.scores[SideA], e.scores[SideB], e.Standing().String()))
}

// Restart begins a fresh tournament. Only valid from StateFinished; this is
// the only transition that clears scores and history.
func (e *Engine) Restart() {
	if e.state != StateFinished {
		return
	}
	previous := e.matchID
	e.reset()
	e.publish(event.NewTournamentRestartedEvent(previous, e.matchID))
}

func (e *Engine) publish(ev event.Event) {
	if e.publisher != nil {
		e.publisher.Publish(ev)
	}
}

// -----------------------------------------------------------------------------
// Read access
// -----------------------------------------------------------------------------

// State returns the current state.
func (e *Engine) State() State { return e.state }

// Round returns the 1-indexed current round.
func (e *Engine) Round() int { return e.round }

// MaxRounds returns the number of rounds in the tournament.
func (e *Engine) MaxRounds() int { return e.maxRounds }

// RoundTimeLimit returns how long a side has to choose.
func (e *Engine) RoundTimeLimit() time.Duration { return e.timeLimit }

// IsLastRound reports whether the current round is the final one.
func (e *Engine) IsLastRound() bool { return e.round >= e.maxRounds }

// MatchID identifies the current tournament.
func (e *Engine) MatchID() string { return e.matchID }

// Label returns the team label of a side.
func (e *Engine) Label(side Side) string { return e.labels[side] }

// Name returns a side's representative name for the current round.
func (e *Engine) Name(side Side) string { return e.names[side] }

// Choice returns a side's choice for the current round.
func (e *Engine) Choice(side Side) Choice { return e.choices[side] }

// Score returns a side's cumulative penalty.
func (e *Engine) Score(side Side) int { return e.scores[side] }

// Focused returns the side whose name field receives text.
func (e *Engine) Focused() Side { return e.focus }

// History returns a copy of the completed round records.
func (e *Engine) History() []Record {
	out := make([]Record, len(e.history))
	copy(out, e.history)
	return out
}

// Remaining returns the time left on the round timer, or zero outside
// StateChoosing.
func (e *Engine) Remaining(now time.Time) time.Duration {
	if e.state != StateChoosing {
		return 0
	}
	return max(0, e.deadline.Sub(now))
}

// Standing compares the cumulative penalties as they stand now.
func (e *Engine) Standing() Verdict {
	return Compare(e.scores[SideA], e.scores[SideB])
}

// Winner returns the final verdict. ok is false until the tournament is
// finished.
func (e *Engine) Winner() (v Verdict, ok bool) {
	if e.state != StateFinished {
		return VerdictTie, false
	}
	return e.Standing(), true
}
