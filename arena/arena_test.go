package arena

import (
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thurn/spellclash-ai/agent"
	"github.com/thurn/spellclash-ai/game"
	"github.com/thurn/spellclash-ai/game/nim"
	"github.com/thurn/spellclash-ai/searcher"
)

type nimState = *nim.State

func winLoss() game.Evaluator[nimState, nim.Player] {
	return game.WinLoss[nimState, nim.Player]{}
}

func TestMatchPerfectAgentBeatsFirstAction(t *testing.T) {
	perfect := agent.New[nimState, nim.Action, nim.Player]("deepening",
		searcher.NewIterativeDeepening[nimState, nim.Action, nim.Player](), winLoss(),
		agent.WithSearchDuration(20*time.Millisecond))
	naive := agent.New[nimState, nim.Action, nim.Player]("first",
		searcher.NewFirst[nimState, nim.Action, nim.Player](), winLoss())

	match := NewMatch(map[nim.Player]Competitor[nimState, nim.Action, nim.Player]{
		nim.PlayerOne: perfect,
		nim.PlayerTwo: naive,
	})

	record, err := match.Run(nim.New(10, nim.PlayerOne))
	require.NoError(t, err)
	require.True(t, record.Completed)
	require.Equal(t, []nim.Player{nim.PlayerOne}, record.Winners)

	// Replay the recorded moves: the perfect player must leave a multiple
	// of three after every move, and every ply must have been recorded.
	replay := nim.New(10, nim.PlayerOne)
	for _, move := range record.Moves {
		require.Equal(t, replay.Status().MustTurn(), move.Player)
		replay.ExecuteAction(move.Player, move.Action)
		if move.Player == nim.PlayerOne {
			require.Zero(t, replay.Remaining()%3)
		}
	}
	require.True(t, replay.Status().Completed())
}

// loopState never finishes, to exercise the move cap.
type loopState struct{}

func (s *loopState) Copy() *loopState { return &loopState{} }
func (s *loopState) Status() game.Status[int] { return game.InProgress(0) }
func (s *loopState) ExecuteAction(player int, act int) {}
func (s *loopState) LegalActions(player int) iter.Seq[int] {
	return func(yield func(int) bool) { yield(1) }
}

type loopCompetitor struct{}

func (loopCompetitor) Name() string { return "loop" }
func (loopCompetitor) SelectAction(state *loopState, p int) int { return 1 }

func TestMatchStopsAtMoveLimit(t *testing.T) {
	match := NewMatch(map[int]Competitor[*loopState, int, int]{
		0: loopCompetitor{},
		1: loopCompetitor{},
	}, WithMaxMoves(10))

	record, err := match.Run(&loopState{})
	require.ErrorIs(t, err, ErrMoveLimit)
	require.False(t, record.Completed)
	require.Len(t, record.Moves, 10)
}

func TestNewMatchRequiresTwoCompetitors(t *testing.T) {
	require.Panics(t, func() {
		NewMatch(map[int]Competitor[*loopState, int, int]{0: loopCompetitor{}})
	})
}
