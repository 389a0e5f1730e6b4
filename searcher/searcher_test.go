package searcher

import (
	"hash/fnv"
	"iter"
	"slices"

	"github.com/thurn/spellclash-ai/game"
)

// syntheticState is a complete b-ary game tree of fixed height with two
// players alternating turns. Leaf scores come from hashing the action path,
// giving a deterministic but irregular tree for search tests.
type syntheticState struct {
	path   []int
	branch int
	height int
	turn   string
}

func newSynthetic(branch, height int) *syntheticState {
	return &syntheticState{branch: branch, height: height, turn: "max"}
}

func (s *syntheticState) Copy() *syntheticState {
	copied := *s
	copied.path = slices.Clone(s.path)
	return &copied
}

func (s *syntheticState) Status() game.Status[string] {
	if len(s.path) >= s.height {
		return game.Completed[string]()
	}
	return game.InProgress(s.turn)
}

func (s *syntheticState) LegalActions(player string) iter.Seq[int] {
	return func(yield func(int) bool) {
		if player != s.turn || len(s.path) >= s.height {
			return
		}
		for action := 0; action < s.branch; action++ {
			if !yield(action) {
				return
			}
		}
	}
}

func (s *syntheticState) ExecuteAction(_ string, action int) {
	s.path = append(s.path, action)
	if s.turn == "max" {
		s.turn = "min"
	} else {
		s.turn = "max"
	}
}

// pathEvaluator hashes the path to a score in [-100, 100] from max's
// perspective and counts how many states it scored.
type pathEvaluator struct {
	evaluations *int
}

func (e pathEvaluator) Evaluate(state *syntheticState, player string) int64 {
	if e.evaluations != nil {
		*e.evaluations++
	}
	h := fnv.New64a()
	for _, action := range state.path {
		h.Write([]byte{byte(action)})
	}
	score := int64(h.Sum64()%201) - 100
	if player == "min" {
		score = -score
	}
	return score
}
