package searcher

import "github.com/thurn/spellclash-ai/game"

// First returns the first legal action without any lookahead. It is the O(1)
// baseline opponent for benchmarks and tests.
type First[S game.State[S, A, P], A, P comparable] struct{}

func NewFirst[S game.State[S, A, P], A, P comparable]() First[S, A, P] {
	return First[S, A, P]{}
}

func (First[S, A, P]) PickAction(_ Context, state S, _ game.Evaluator[S, P], player P) A {
	return firstAction[S, A, P](state, player)
}
