package searcher

import (
	"errors"
	"math"

	"github.com/thurn/spellclash-ai/game"
)

// ErrDeadlineExceeded reports a search aborted by its deadline, as distinct
// from a normally completed one. Results returned alongside it cover only the
// part of the tree visited so far and must not be treated as a finished
// search.
var ErrDeadlineExceeded = errors.New("searcher: deadline exceeded")

// AlphaBeta searches the same tree as Minimax while pruning branches that
// cannot influence the result, so for any state and depth it returns the same
// score as Minimax and only expands fewer nodes. Unlike Minimax it polls the
// deadline once per node expansion and aborts the descent early.
type AlphaBeta[S game.State[S, A, P], A, P comparable] struct {
	depth int
}

func NewAlphaBeta[S game.State[S, A, P], A, P comparable](depth int) AlphaBeta[S, A, P] {
	if depth < 1 {
		panic("alpha-beta requires a search depth of at least 1")
	}
	return AlphaBeta[S, A, P]{depth: depth}
}

func (ab AlphaBeta[S, A, P]) PickAction(ctx Context, state S, evaluator game.Evaluator[S, P], player P) A {
	result, err := alphaBetaSearch[S, A, P](
		ctx, state, ab.depth, evaluator, player, math.MinInt64, math.MaxInt64, true)
	if err != nil && !result.HasAction() {
		if ctx.PanicOnTimeout {
			panic("alpha-beta deadline exceeded before any action was evaluated")
		}
		return firstAction[S, A, P](state, player)
	}
	if !result.HasAction() {
		panic("state reported no legal actions for the player to move")
	}
	return result.Action()
}

// alphaBetaSearch runs the pruned minimax descent. topLevel marks the
// outermost call: only there is an aborted search allowed to surface the best
// action found so far, since an interior node's partial result could still
// have been refuted.
func alphaBetaSearch[S game.State[S, A, P], A, P comparable](
	ctx Context, state S, depth int, evaluator game.Evaluator[S, P], player P,
	alpha, beta int64, topLevel bool,
) (ScoredAction[A], error) {
	status := state.Status()
	if depth <= 0 || status.Completed() {
		return NewScoredAction[A](evaluator.Evaluate(state, player)), nil
	}
	if ctx.Expired() {
		return NewScoredAction[A](0), ErrDeadlineExceeded
	}

	turn := status.MustTurn()
	if turn == player {
		best := NewScoredAction[A](math.MinInt64)
		for action := range state.LegalActions(turn) {
			child := state.Copy()
			child.ExecuteAction(turn, action)
			result, err := alphaBetaSearch[S, A, P](ctx, child, depth-1, evaluator, player, alpha, beta, false)
			if err != nil {
				return best, err
			}
			best.InsertMax(action, result.Score())
			if topLevel {
				best.WithFallback(action)
			}
			alpha = max(alpha, best.Score())
			if alpha >= beta {
				break
			}
		}
		return best, nil
	}

	worst := NewScoredAction[A](math.MaxInt64)
	for action := range state.LegalActions(turn) {
		child := state.Copy()
		child.ExecuteAction(turn, action)
		result, err := alphaBetaSearch[S, A, P](ctx, child, depth-1, evaluator, player, alpha, beta, false)
		if err != nil {
			return worst, err
		}
		worst.InsertMin(action, result.Score())
		if topLevel {
			worst.WithFallback(action)
		}
		beta = min(beta, worst.Score())
		if beta <= alpha {
			break
		}
	}
	return worst, nil
}
