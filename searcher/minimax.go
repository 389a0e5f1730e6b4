package searcher

import (
	"math"

	"github.com/thurn/spellclash-ai/game"
)

// Minimax is a full-width recursive search to a fixed depth. Positions are
// always scored for the searching player: plies where that player acts
// maximize, plies where anyone else acts minimize (with more than two
// players every opponent is assumed to play against the searcher). Leaves at
// depth 0 and terminal states are scored directly by the evaluator.
//
// Minimax never polls the deadline; a deep search can overrun it. Use
// AlphaBeta or IterativeDeepening when the budget matters.
type Minimax[S game.State[S, A, P], A, P comparable] struct {
	depth int
}

func NewMinimax[S game.State[S, A, P], A, P comparable](depth int) Minimax[S, A, P] {
	if depth < 1 {
		panic("minimax requires a search depth of at least 1")
	}
	return Minimax[S, A, P]{depth: depth}
}

func (m Minimax[S, A, P]) PickAction(_ Context, state S, evaluator game.Evaluator[S, P], player P) A {
	result := minimaxSearch[S, A, P](state, m.depth, evaluator, player)
	if !result.HasAction() {
		panic("state reported no legal actions for the player to move")
	}
	return result.Action()
}

func minimaxSearch[S game.State[S, A, P], A, P comparable](
	state S, depth int, evaluator game.Evaluator[S, P], player P,
) ScoredAction[A] {
	status := state.Status()
	if depth <= 0 || status.Completed() {
		return NewScoredAction[A](evaluator.Evaluate(state, player))
	}

	turn := status.MustTurn()
	if turn == player {
		best := NewScoredAction[A](math.MinInt64)
		for action := range state.LegalActions(turn) {
			child := state.Copy()
			child.ExecuteAction(turn, action)
			result := minimaxSearch[S, A, P](child, depth-1, evaluator, player)
			best.InsertMax(action, result.Score())
			best.WithFallback(action)
		}
		return best
	}

	worst := NewScoredAction[A](math.MaxInt64)
	for action := range state.LegalActions(turn) {
		child := state.Copy()
		child.ExecuteAction(turn, action)
		result := minimaxSearch[S, A, P](child, depth-1, evaluator, player)
		worst.InsertMin(action, result.Score())
		worst.WithFallback(action)
	}
	return worst
}
