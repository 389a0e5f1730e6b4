package searcher

import "math"

// ScoreMode selects which phase of Monte Carlo search a child score is
// computed for.
type ScoreMode int

const (
	// Exploration balances average reward against an exploration bonus and
	// drives the in-tree selection phase.
	Exploration ScoreMode = iota

	// Best is pure exploitation, used to pick the final move at the root.
	Best
)

// ChildScoreAlgorithm ranks the children of a tree node from the statistics
// accumulated by Monte Carlo search.
type ChildScoreAlgorithm interface {
	// Score ranks a child. childVisits must be at least 1; the tree growth
	// procedure guarantees this by visiting every untried child once before
	// re-entering the formula.
	Score(parentVisits, childVisits uint32, childReward float64, mode ScoreMode) float64
}

// explorationBias is the multiplier applied to the exploration term in
// Exploration mode, 1/sqrt(2).
var explorationBias = 1 / math.Sqrt(2)

// UCT1 is the standard upper confidence bound formula for trees:
// reward/visits + bias*sqrt(2*ln(parentVisits)/visits).
type UCT1 struct{}

func (UCT1) Score(parentVisits, childVisits uint32, childReward float64, mode ScoreMode) float64 {
	if childVisits == 0 {
		panic("cannot compute UCT1 for an unvisited child")
	}

	exploitation := childReward / float64(childVisits)
	bias := 0.0
	if mode == Exploration {
		bias = explorationBias
	}
	exploration := math.Sqrt(2 * math.Log(float64(parentVisits)) / float64(childVisits))
	return exploitation + bias*exploration
}
