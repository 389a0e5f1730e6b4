package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thurn/spellclash-ai/game"
	"github.com/thurn/spellclash-ai/game/nim"
)

type nimState = *nim.State

func nimWinLoss() game.Evaluator[nimState, nim.Player] {
	return game.WinLoss[nimState, nim.Player]{}
}

// Every algorithm must return the only legal action when just one exists.
func TestSelectorsReturnTheOnlyLegalAction(t *testing.T) {
	ctx := Context{Deadline: time.Now().Add(50 * time.Millisecond)}

	selectors := map[string]Selector[nimState, nim.Action, nim.Player]{
		"first":        NewFirst[nimState, nim.Action, nim.Player](),
		"single level": NewSingleLevel[nimState, nim.Action, nim.Player](),
		"minimax":      NewMinimax[nimState, nim.Action, nim.Player](3),
		"alpha-beta":   NewAlphaBeta[nimState, nim.Action, nim.Player](3),
		"deepening":    NewIterativeDeepening[nimState, nim.Action, nim.Player](),
		"monte carlo":  NewMonteCarlo[nimState, nim.Action, nim.Player](WithMaxIterations(20)),
	}

	for name, selector := range selectors {
		t.Run(name, func(t *testing.T) {
			// One object left: taking it is the only move.
			state := nim.New(1, nim.PlayerOne)
			action := selector.PickAction(ctx, state, nimWinLoss(), nim.PlayerOne)
			require.Equal(t, nim.Action(1), action)
		})
	}
}

func TestFirstReturnsFirstLegalAction(t *testing.T) {
	state := nim.New(5, nim.PlayerTwo)
	selector := NewFirst[nimState, nim.Action, nim.Player]()

	action := selector.PickAction(Context{}, state, nimWinLoss(), nim.PlayerTwo)
	require.Equal(t, nim.Action(1), action)
}

func TestSingleLevelKeepsStrictMaximum(t *testing.T) {
	// Two objects left: taking both wins immediately, taking one hands the
	// win to the opponent. Depth-1 lookahead sees the difference.
	state := nim.New(2, nim.PlayerOne)
	selector := NewSingleLevel[nimState, nim.Action, nim.Player]()

	action := selector.PickAction(Context{}, state, nimWinLoss(), nim.PlayerOne)
	require.Equal(t, nim.Action(2), action)
}

func TestSingleLevelFirstSeenWinsTies(t *testing.T) {
	// From three objects neither move completes the game, so both score 0.
	state := nim.New(3, nim.PlayerOne)
	selector := NewSingleLevel[nimState, nim.Action, nim.Player]()

	action := selector.PickAction(Context{}, state, nimWinLoss(), nim.PlayerOne)
	require.Equal(t, nim.Action(1), action)
}
