// Package searcher provides the decision algorithms for turn-based game
// agents: greedy single-ply lookahead, fixed-depth minimax, alpha-beta with
// iterative deepening, and UCT1-driven Monte Carlo tree search. All of them
// operate on the game.State contract and score positions through a
// game.Evaluator, so any game the rules engine exposes through those
// interfaces can be searched.
package searcher

import (
	"time"

	"github.com/thurn/spellclash-ai/game"
)

// Context carries the per-decision search budget. The deadline is advisory:
// algorithms poll it at their own cadence and finish the unit of work in
// flight before honoring it.
type Context struct {
	// Deadline is the absolute point by which PickAction should return. The
	// zero value means no deadline.
	Deadline time.Time

	// PanicOnTimeout escalates a missed deadline that produced no action at
	// all from a silent fallback to a panic.
	PanicOnTimeout bool
}

// Expired reports whether the deadline has passed.
func (c Context) Expired() bool {
	return !c.Deadline.IsZero() && time.Now().After(c.Deadline)
}

// Selector is a pluggable decision procedure. PickAction returns an action
// legal for player in the given state, and is expected to return before
// ctx.Deadline.
//
// Callers must only invoke PickAction when it is player's turn; every
// implementation panics if the state reports no legal actions for player,
// since that indicates a broken game.State implementation rather than a
// recoverable game outcome.
type Selector[S game.State[S, A, P], A, P comparable] interface {
	PickAction(ctx Context, state S, evaluator game.Evaluator[S, P], player P) A
}

// firstAction returns the first legal action for player.
func firstAction[S game.State[S, A, P], A, P comparable](state S, player P) A {
	for action := range state.LegalActions(player) {
		return action
	}
	panic("state reported no legal actions for the player to move")
}
