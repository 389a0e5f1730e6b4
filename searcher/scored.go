package searcher

// ScoredAction tracks the best action seen so far during a search, paired
// with its score. It starts with a score but no action; InsertMax and
// InsertMin replace both together, so once an action is present the score
// always belongs to it.
type ScoredAction[A comparable] struct {
	action    A
	score     int64
	hasAction bool
}

// NewScoredAction returns a ScoredAction holding score and no action yet.
func NewScoredAction[A comparable](score int64) ScoredAction[A] {
	return ScoredAction[A]{score: score}
}

// InsertMax records action iff score is strictly greater than the current
// score. Ties keep the action seen first.
func (s *ScoredAction[A]) InsertMax(action A, score int64) {
	if score > s.score {
		s.action = action
		s.score = score
		s.hasAction = true
	}
}

// InsertMin records action iff score is strictly less than the current score.
func (s *ScoredAction[A]) InsertMin(action A, score int64) {
	if score < s.score {
		s.action = action
		s.score = score
		s.hasAction = true
	}
}

// WithFallback sets action without touching the score, only if no action has
// been chosen yet. It guards against every child scoring at the sentinel
// bound, where the strict comparisons never fire.
func (s *ScoredAction[A]) WithFallback(action A) {
	if !s.hasAction {
		s.action = action
		s.hasAction = true
	}
}

func (s *ScoredAction[A]) HasAction() bool {
	return s.hasAction
}

// Action returns the chosen action. It panics if none was recorded.
func (s *ScoredAction[A]) Action() A {
	if !s.hasAction {
		panic("scored action holds no action")
	}
	return s.action
}

func (s *ScoredAction[A]) Score() int64 {
	return s.score
}
