package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/thurn/spellclash-ai/game"
)

// RandomPlayoutOption configures a RandomPlayout evaluator.
type RandomPlayoutOption func(*playoutConfig)

type playoutConfig struct {
	cutoff int
	seed   uint64
}

// WithRolloutCutoff caps the number of random moves per rollout. When the cap
// is reached, the wrapped evaluator scores the state reached instead of a
// completed game. Without a cutoff the rollout relies on the game
// terminating on its own.
func WithRolloutCutoff(moves int) RandomPlayoutOption {
	return func(c *playoutConfig) {
		if moves > 0 {
			c.cutoff = moves
		}
	}
}

// WithRolloutSeed fixes the rollout policy seed for reproducible searches.
func WithRolloutSeed(seed uint64) RandomPlayoutOption {
	return func(c *playoutConfig) {
		c.seed = seed
	}
}

// RandomPlayout adapts a terminal evaluator such as game.WinLoss into a
// full-rollout evaluator for Monte Carlo leaves: it clones the state, plays
// uniformly random legal actions until the game completes, then delegates the
// final scoring to the wrapped evaluator.
type RandomPlayout[S game.State[S, A, P], A, P comparable] struct {
	wrapped game.Evaluator[S, P]
	cutoff  int
	rng     *rand.Rand
}

func NewRandomPlayout[S game.State[S, A, P], A, P comparable](
	wrapped game.Evaluator[S, P], options ...RandomPlayoutOption,
) *RandomPlayout[S, A, P] {
	if wrapped == nil {
		panic("random playout requires a terminal evaluator to delegate to")
	}
	config := playoutConfig{seed: uint64(time.Now().UnixNano())}
	for _, option := range options {
		option(&config)
	}
	return &RandomPlayout[S, A, P]{
		wrapped: wrapped,
		cutoff:  config.cutoff,
		rng:     rand.New(rand.NewSource(config.seed)),
	}
}

func (r *RandomPlayout[S, A, P]) Evaluate(state S, player P) int64 {
	simulation := state.Copy()
	for moves := 0; r.cutoff <= 0 || moves < r.cutoff; moves++ {
		status := simulation.Status()
		if status.Completed() {
			break
		}
		turn := status.MustTurn()
		actions := collectActions[S, A, P](simulation, turn)
		simulation.ExecuteAction(turn, actions[r.rng.Intn(len(actions))])
	}
	return r.wrapped.Evaluate(simulation, player)
}

func collectActions[S game.State[S, A, P], A, P comparable](state S, player P) []A {
	var actions []A
	for action := range state.LegalActions(player) {
		actions = append(actions, action)
	}
	if len(actions) == 0 {
		panic("state reported no legal actions for the player to move")
	}
	return actions
}
