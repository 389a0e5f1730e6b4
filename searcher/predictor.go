package searcher

import (
	"iter"
	"math"

	"github.com/thurn/spellclash-ai/game"
)

// Predictor bridges hidden information into classical search: given the
// canonical state, which may contain information player cannot see, it
// enumerates fully-determined candidate states consistent with what is
// public. The sequence is lazy, finite, and single-use, and must yield at
// least one candidate.
type Predictor[S any, P comparable] func(state S, player P) iter.Seq[S]

// Omniscient yields the true state as the only candidate: a "cheating"
// stand-in for real imperfect-information reasoning.
func Omniscient[S any, P comparable]() Predictor[S, P] {
	return func(state S, _ P) iter.Seq[S] {
		return func(yield func(S) bool) {
			yield(state)
		}
	}
}

// Combiner reduces the predicted candidate states to the single state a
// search runs on.
type Combiner[S any, P comparable] func(candidates iter.Seq[S], evaluator game.Evaluator[S, P], player P) S

// FirstCandidate picks the first predicted state.
func FirstCandidate[S any, P comparable]() Combiner[S, P] {
	return func(candidates iter.Seq[S], _ game.Evaluator[S, P], _ P) S {
		for candidate := range candidates {
			return candidate
		}
		panic("predictor yielded no candidate states")
	}
}

// WorstCase evaluates every candidate for player and picks the one with the
// lowest score, searching the world most stacked against the acting player.
func WorstCase[S any, P comparable]() Combiner[S, P] {
	return func(candidates iter.Seq[S], evaluator game.Evaluator[S, P], player P) S {
		var worst S
		found := false
		worstScore := int64(math.MaxInt64)
		for candidate := range candidates {
			score := evaluator.Evaluate(candidate, player)
			if !found || score < worstScore {
				worst = candidate
				worstScore = score
				found = true
			}
		}
		if !found {
			panic("predictor yielded no candidate states")
		}
		return worst
	}
}
