package searcher

import (
	"math"

	"github.com/thurn/spellclash-ai/game"
)

// SingleLevel is a depth-1 lookahead: it applies every legal action to a copy
// of the state, evaluates the result for the acting player, and keeps the
// strict maximum. Ties keep the first action seen. It never polls the
// deadline; one ply is assumed cheap.
type SingleLevel[S game.State[S, A, P], A, P comparable] struct{}

func NewSingleLevel[S game.State[S, A, P], A, P comparable]() SingleLevel[S, A, P] {
	return SingleLevel[S, A, P]{}
}

func (SingleLevel[S, A, P]) PickAction(_ Context, state S, evaluator game.Evaluator[S, P], player P) A {
	best := NewScoredAction[A](math.MinInt64)
	for action := range state.LegalActions(player) {
		child := state.Copy()
		child.ExecuteAction(player, action)
		best.InsertMax(action, evaluator.Evaluate(child, player))
		best.WithFallback(action)
	}
	if !best.HasAction() {
		panic("state reported no legal actions for the player to move")
	}
	return best.Action()
}
