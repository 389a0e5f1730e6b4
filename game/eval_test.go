package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// mockState carries a fixed status plus a heuristic value read by mockEvaluator.
type mockState struct {
	status Status[string]
	value  int64
}

func (m *mockState) Status() Status[string] { return m.status }

type mockEvaluator struct{}

func (mockEvaluator) Evaluate(state *mockState, _ string) int64 { return state.value }

func TestWinLoss(t *testing.T) {
	eval := WinLoss[*mockState, string]{}

	t.Run("in progress scores 0", func(t *testing.T) {
		state := &mockState{status: InProgress("player1")}
		require.Equal(t, int64(0), eval.Evaluate(state, "player1"))
	})

	t.Run("winner scores 1", func(t *testing.T) {
		state := &mockState{status: Completed("player1")}
		require.Equal(t, int64(1), eval.Evaluate(state, "player1"))
	})

	t.Run("loser scores -1", func(t *testing.T) {
		state := &mockState{status: Completed("player1")}
		require.Equal(t, int64(-1), eval.Evaluate(state, "player2"))
	})
}

func TestZero(t *testing.T) {
	eval := Zero[*mockState, string]{}
	require.Equal(t, int64(0), eval.Evaluate(&mockState{status: Completed("player1")}, "player2"))
}

func TestCompoundWeightedSum(t *testing.T) {
	eval := NewCompound(
		Weighted[*mockState, string]{Weight: 3, Evaluator: mockEvaluator{}},
		Weighted[*mockState, string]{Weight: -1, Evaluator: mockEvaluator{}},
	)
	state := &mockState{status: InProgress("player1"), value: 5}

	require.Equal(t, int64(3*5-5), eval.Evaluate(state, "player1"))
}

func TestCompoundShortCircuitsCompletedGames(t *testing.T) {
	// Weights must not be applied once the game is over.
	eval := NewCompound(
		Weighted[*mockState, string]{Weight: 1000, Evaluator: mockEvaluator{}},
	)

	won := &mockState{status: Completed("player1"), value: 123}
	require.Equal(t, int64(math.MaxInt64), eval.Evaluate(won, "player1"))
	require.Equal(t, int64(math.MinInt64), eval.Evaluate(won, "player2"))
}

func TestCompoundSumSaturates(t *testing.T) {
	huge := &mockState{status: InProgress("player1"), value: math.MaxInt64}
	top := NewCompound(
		Weighted[*mockState, string]{Weight: 2, Evaluator: mockEvaluator{}},
		Weighted[*mockState, string]{Weight: 1, Evaluator: mockEvaluator{}},
	)
	require.Equal(t, int64(math.MaxInt64), top.Evaluate(huge, "player1"))

	bottom := NewCompound(
		Weighted[*mockState, string]{Weight: -2, Evaluator: mockEvaluator{}},
		Weighted[*mockState, string]{Weight: -1, Evaluator: mockEvaluator{}},
	)
	require.Equal(t, int64(math.MinInt64), bottom.Evaluate(huge, "player1"))
}

func TestSaturatingArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"add overflow", saturatingAdd(math.MaxInt64, 1), math.MaxInt64},
		{"add underflow", saturatingAdd(math.MinInt64, -1), math.MinInt64},
		{"add plain", saturatingAdd(40, 2), 42},
		{"mul overflow", saturatingMul(math.MaxInt64, 2), math.MaxInt64},
		{"mul underflow", saturatingMul(math.MaxInt64, -2), math.MinInt64},
		{"mul min by minus one", saturatingMul(math.MinInt64, -1), math.MaxInt64},
		{"mul identity", saturatingMul(math.MinInt64, 1), math.MinInt64},
		{"mul zero", saturatingMul(math.MinInt64, 0), 0},
		{"mul plain", saturatingMul(-6, 7), -42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}
