// Package agent composes a selection algorithm, an evaluator, and a
// hidden-information bridge into a decision-maker the rules engine can call
// with a live game state.
package agent

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thurn/spellclash-ai/game"
	"github.com/thurn/spellclash-ai/searcher"
)

const defaultSearchDuration = time.Second

// Option configures the scalar knobs of an Agent.
type Option func(*config)

type config struct {
	duration       time.Duration
	panicOnTimeout bool
	logger         *zerolog.Logger
}

// WithSearchDuration sets the wall-clock budget for one decision.
func WithSearchDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

// WithPanicOnTimeout makes a decision that produced no action before the
// deadline fatal instead of falling back to the best effort result.
func WithPanicOnTimeout() Option {
	return func(c *config) {
		c.panicOnTimeout = true
	}
}

// WithLogger replaces the global logger for this agent's decision logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = &logger
	}
}

// Agent is the composition root of the framework: a named binding of a
// Selector and an Evaluator, plus the predictor/combiner pair that resolves
// hidden information before each search. Nothing persists between decisions;
// every call rebuilds its search state from scratch.
type Agent[S game.State[S, A, P], A, P comparable] struct {
	name           string
	selector       searcher.Selector[S, A, P]
	evaluator      game.Evaluator[S, P]
	predictor      searcher.Predictor[S, P]
	combiner       searcher.Combiner[S, P]
	duration       time.Duration
	panicOnTimeout bool
	logger         zerolog.Logger
}

// New returns an agent using the omniscient predictor with the first-candidate
// combiner and a one second search budget, unless overridden.
func New[S game.State[S, A, P], A, P comparable](
	name string,
	selector searcher.Selector[S, A, P],
	evaluator game.Evaluator[S, P],
	options ...Option,
) *Agent[S, A, P] {
	if selector == nil {
		panic("agent requires a selection algorithm")
	}
	if evaluator == nil {
		panic("agent requires an evaluator")
	}
	cfg := config{duration: defaultSearchDuration}
	for _, option := range options {
		option(&cfg)
	}
	logger := log.Logger
	if cfg.logger != nil {
		logger = *cfg.logger
	}
	return &Agent[S, A, P]{
		name:           name,
		selector:       selector,
		evaluator:      evaluator,
		predictor:      searcher.Omniscient[S, P](),
		combiner:       searcher.FirstCandidate[S, P](),
		duration:       cfg.duration,
		panicOnTimeout: cfg.panicOnTimeout,
		logger:         logger,
	}
}

// WithDeterminization replaces the hidden-information bridge and returns the
// agent for chaining.
func (a *Agent[S, A, P]) WithDeterminization(
	predictor searcher.Predictor[S, P], combiner searcher.Combiner[S, P],
) *Agent[S, A, P] {
	if predictor == nil || combiner == nil {
		panic("agent requires both a predictor and a combiner")
	}
	a.predictor = predictor
	a.combiner = combiner
	return a
}

func (a *Agent[S, A, P]) Name() string {
	return a.name
}

// SelectAction chooses an action for player, who must currently have the
// turn. When exactly one action is legal it is returned immediately without
// searching; otherwise the predictor/combiner produce the concrete state to
// search and the selector runs against an absolute deadline.
func (a *Agent[S, A, P]) SelectAction(state S, player P) A {
	status := state.Status()
	if turn := status.MustTurn(); turn != player {
		panic(fmt.Sprintf("agent %q asked to act for %v but it is %v's turn", a.name, player, turn))
	}

	first, count := countActions[S, A, P](state, player)
	if count == 0 {
		panic("state reported no legal actions for the player to move")
	}
	if count == 1 {
		a.logger.Debug().Str("agent", a.name).
			Interface("action", first).
			Msg("forced move, skipping search")
		return first
	}

	root := a.combiner(a.predictor(state, player), a.evaluator, player)
	ctx := searcher.Context{
		Deadline:       time.Now().Add(a.duration),
		PanicOnTimeout: a.panicOnTimeout,
	}

	start := time.Now()
	action := a.selector.PickAction(ctx, root.Copy(), a.evaluator, player)
	a.logger.Debug().Str("agent", a.name).
		Interface("action", action).
		Dur("elapsed", time.Since(start)).
		Msg("selected action")
	return action
}

// countActions reports the first legal action and how many there are, probing
// at most two so lazy games do not enumerate everything.
func countActions[S game.State[S, A, P], A, P comparable](state S, player P) (A, int) {
	var first A
	count := 0
	for action := range state.LegalActions(player) {
		if count == 0 {
			first = action
		}
		count++
		if count > 1 {
			break
		}
	}
	return first, count
}
