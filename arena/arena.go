// Package arena runs local matches between agents and records per-move and
// per-game metrics for benchmarking. It is a consumer of the search
// framework, not part of it: agents only ever see the game through the
// game.State contract.
package arena

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thurn/spellclash-ai/game"
)

// ErrMoveLimit reports a match stopped because it reached the move cap before
// the game completed.
var ErrMoveLimit = errors.New("arena: match exceeded the move limit")

const defaultMaxMoves = 500

// Competitor is anything that can choose an action when it holds the turn.
// *agent.Agent satisfies it.
type Competitor[S game.State[S, A, P], A, P comparable] interface {
	Name() string
	SelectAction(state S, player P) A
}

// MatchOption configures a Match.
type MatchOption func(*matchConfig)

type matchConfig struct {
	maxMoves int
}

// WithMaxMoves replaces the default cap on moves per game.
func WithMaxMoves(moves int) MatchOption {
	return func(c *matchConfig) {
		if moves > 0 {
			c.maxMoves = moves
		}
	}
}

// Match binds one competitor per player.
type Match[S game.State[S, A, P], A, P comparable] struct {
	competitors map[P]Competitor[S, A, P]
	maxMoves    int
}

func NewMatch[S game.State[S, A, P], A, P comparable](
	competitors map[P]Competitor[S, A, P], options ...MatchOption,
) *Match[S, A, P] {
	if len(competitors) < 2 {
		panic("a match needs at least two competitors")
	}
	config := matchConfig{maxMoves: defaultMaxMoves}
	for _, option := range options {
		option(&config)
	}
	return &Match[S, A, P]{competitors: competitors, maxMoves: config.maxMoves}
}

// Run plays one game from start to completion and returns its record. The
// starting state is copied, so the caller can reuse it across games.
func (m *Match[S, A, P]) Run(start S) (Record[A, P], error) {
	state := start.Copy()
	record := Record[A, P]{Start: time.Now()}

	for step := 1; ; step++ {
		status := state.Status()
		if status.Completed() {
			record.Completed = true
			record.Winners = status.Winners()
			break
		}
		if step > m.maxMoves {
			record.Duration = time.Since(record.Start)
			return record, ErrMoveLimit
		}

		turn := status.MustTurn()
		competitor, ok := m.competitors[turn]
		if !ok {
			panic(fmt.Sprintf("no competitor registered for player %v", turn))
		}

		moveStart := time.Now()
		action := competitor.SelectAction(state, turn)
		elapsed := time.Since(moveStart)
		state.ExecuteAction(turn, action)

		record.Moves = append(record.Moves, Move[A, P]{
			Step:    step,
			Player:  turn,
			Action:  action,
			Elapsed: elapsed,
		})
		log.Debug().
			Int("step", step).
			Str("competitor", competitor.Name()).
			Interface("action", action).
			Dur("elapsed", elapsed).
			Msg("move played")
	}

	record.Duration = time.Since(record.Start)
	log.Info().
		Interface("winners", record.Winners).
		Int("moves", len(record.Moves)).
		Dur("duration", record.Duration).
		Msg("match finished")
	return record, nil
}
