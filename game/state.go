// Package game defines the contracts between a turn-based game implementation
// and the search framework: the searchable state interface, game status, and
// the state evaluator family. Any game whose rules engine implements State can
// be played by the agents in this module.
package game

import "iter"

// State is the interface a game must satisfy to be searchable. S is the
// implementing type itself (pointer types in practice, since ExecuteAction
// mutates in place), A its action type, and P its player type.
//
// Copies obtained from Copy must be fully independent: the framework executes
// speculative actions on copies and assumes the original is never aliased.
type State[S any, A, P comparable] interface {
	// Copy returns an independent deep copy usable for simulation.
	Copy() S

	// Status reports whether the game is over and whose turn it is.
	Status() Status[P]

	// LegalActions returns the actions available to player. The sequence is
	// lazy, finite, and single-use. It must yield at least one action
	// whenever the game is in progress and it is player's turn; the search
	// framework treats a violation as a fatal engine bug.
	LegalActions(player P) iter.Seq[A]

	// ExecuteAction applies action for player, mutating the state in place.
	// Execution must be deterministic.
	ExecuteAction(player P, action A)
}
