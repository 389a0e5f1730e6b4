package searcher

import (
	"math"

	"github.com/thurn/spellclash-ai/game"
)

// IterativeDeepening runs AlphaBeta at depth 1, 2, 3, ... until the deadline
// passes, keeping the best action from the last depth whose search fully
// completed. A depth aborted mid-search is discarded entirely, so the
// returned action always comes from a finished search.
type IterativeDeepening[S game.State[S, A, P], A, P comparable] struct{}

func NewIterativeDeepening[S game.State[S, A, P], A, P comparable]() IterativeDeepening[S, A, P] {
	return IterativeDeepening[S, A, P]{}
}

func (IterativeDeepening[S, A, P]) PickAction(ctx Context, state S, evaluator game.Evaluator[S, P], player P) A {
	if ctx.Deadline.IsZero() {
		panic("iterative deepening requires a deadline")
	}

	var best ScoredAction[A]
	for depth := 1; !ctx.Expired(); depth++ {
		result, err := alphaBetaSearch[S, A, P](
			ctx, state, depth, evaluator, player, math.MinInt64, math.MaxInt64, true)
		if err != nil {
			break
		}
		if result.HasAction() {
			best = result
		}
	}

	if !best.HasAction() {
		if ctx.PanicOnTimeout {
			panic("search deadline exceeded before the depth 1 search completed")
		}
		return firstAction[S, A, P](state, player)
	}
	return best.Action()
}
