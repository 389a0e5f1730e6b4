package game

import "math"

// Evaluator scores a state from the point of view of one player, higher being
// better. Implementations must return a finite score for every status,
// including completed games.
type Evaluator[S any, P comparable] interface {
	Evaluate(state S, player P) int64
}

// statuser is the slice of the State contract the terminal evaluators need.
type statuser[P comparable] interface {
	Status() Status[P]
}

// Zero scores every state as 0. Useful as a baseline and in tests.
type Zero[S any, P comparable] struct{}

func (Zero[S, P]) Evaluate(S, P) int64 { return 0 }

// WinLoss scores completed games 1 for a winner and -1 for everyone else, and
// all in-progress games 0.
type WinLoss[S statuser[P], P comparable] struct{}

func (WinLoss[S, P]) Evaluate(state S, player P) int64 {
	status := state.Status()
	switch {
	case !status.Completed():
		return 0
	case status.Won(player):
		return 1
	default:
		return -1
	}
}

// Weighted pairs an evaluator with the weight its score is multiplied by
// inside a Compound evaluator.
type Weighted[S any, P comparable] struct {
	Weight    int64
	Evaluator Evaluator[S, P]
}

// Compound sums weight * score over its component evaluators, saturating at
// the int64 bounds instead of wrapping. Completed games short-circuit to
// math.MaxInt64 or math.MinInt64 depending on whether player won, without
// consulting the components: no heuristic blend outranks an actual win.
type Compound[S statuser[P], P comparable] struct {
	components []Weighted[S, P]
}

func NewCompound[S statuser[P], P comparable](components ...Weighted[S, P]) *Compound[S, P] {
	return &Compound[S, P]{components: components}
}

func (c *Compound[S, P]) Evaluate(state S, player P) int64 {
	status := state.Status()
	if status.Completed() {
		if status.Won(player) {
			return math.MaxInt64
		}
		return math.MinInt64
	}

	var sum int64
	for _, component := range c.components {
		term := saturatingMul(component.Weight, component.Evaluator.Evaluate(state, player))
		sum = saturatingAdd(sum, term)
	}
	return sum
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

func saturatingMul(a, b int64) int64 {
	switch {
	case a == 0 || b == 0:
		return 0
	case a == 1:
		return b
	case b == 1:
		return a
	case a == math.MinInt64 || b == math.MinInt64:
		if (a < 0) != (b < 0) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	product := a * b
	if product/b != a {
		if (a < 0) == (b < 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return product
}
