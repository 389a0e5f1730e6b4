package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thurn/spellclash-ai/game/nim"
)

func TestRandomPlayoutDelegatesOnCompletedState(t *testing.T) {
	state := nim.New(1, nim.PlayerOne)
	state.ExecuteAction(nim.PlayerOne, 1)
	playout := nimPlayout(1)

	require.Equal(t, int64(1), playout.Evaluate(state, nim.PlayerOne))
	require.Equal(t, int64(-1), playout.Evaluate(state, nim.PlayerTwo))
}

func TestRandomPlayoutRunsToCompletion(t *testing.T) {
	state := nim.New(9, nim.PlayerOne)
	playout := nimPlayout(2)

	score := playout.Evaluate(state, nim.PlayerOne)
	require.Contains(t, []int64{-1, 1}, score, "a finished nim game has a winner")
	require.Equal(t, 9, state.Remaining(), "the rollout must not mutate the input state")
}

func TestRandomPlayoutCutoff(t *testing.T) {
	// One random move from three objects cannot finish the game, so the
	// wrapped win/loss evaluator scores an in-progress state.
	state := nim.New(3, nim.PlayerOne)
	playout := NewRandomPlayout[nimState, nim.Action, nim.Player](
		nimWinLoss(), WithRolloutSeed(5), WithRolloutCutoff(1))

	require.Equal(t, int64(0), playout.Evaluate(state, nim.PlayerOne))
}

func TestRandomPlayoutSeedIsReproducible(t *testing.T) {
	state := nim.New(20, nim.PlayerOne)

	first := nimPlayout(42).Evaluate(state, nim.PlayerOne)
	second := nimPlayout(42).Evaluate(state, nim.PlayerOne)
	require.Equal(t, first, second)
}

func TestRandomPlayoutRequiresWrappedEvaluator(t *testing.T) {
	require.Panics(t, func() {
		NewRandomPlayout[nimState, nim.Action, nim.Player](nil)
	})
}
