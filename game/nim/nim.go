// Package nim implements the take-1-or-2 counting game as a minimal concrete
// game.State, used by the end-to-end tests and the benchmark driver. The
// player who removes the last object wins; perfect play always leaves the
// opponent a multiple of three objects.
package nim

import (
	"fmt"
	"iter"

	"github.com/thurn/spellclash-ai/game"
)

type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	if p == PlayerOne {
		return "one"
	}
	return "two"
}

// Action is the number of objects to remove, 1 or 2.
type Action int

const MaxTake = 2

// State is a single heap of objects. It implements game.State.
type State struct {
	remaining int
	turn      Player
	winner    Player
	done      bool
}

func New(objects int, first Player) *State {
	if objects < 1 {
		panic("nim needs at least one object")
	}
	return &State{remaining: objects, turn: first}
}

func (s *State) Remaining() int { return s.remaining }

func (s *State) Copy() *State {
	copied := *s
	return &copied
}

func (s *State) Status() game.Status[Player] {
	if s.done {
		return game.Completed(s.winner)
	}
	return game.InProgress(s.turn)
}

func (s *State) LegalActions(player Player) iter.Seq[Action] {
	return func(yield func(Action) bool) {
		if s.done || player != s.turn {
			return
		}
		for take := 1; take <= MaxTake && take <= s.remaining; take++ {
			if !yield(Action(take)) {
				return
			}
		}
	}
}

func (s *State) ExecuteAction(player Player, action Action) {
	take := int(action)
	switch {
	case s.done:
		panic("cannot act on a completed game")
	case player != s.turn:
		panic(fmt.Sprintf("player %v acted out of turn", player))
	case take < 1 || take > MaxTake || take > s.remaining:
		panic(fmt.Sprintf("illegal action: take %d of %d", take, s.remaining))
	}

	s.remaining -= take
	if s.remaining == 0 {
		s.done = true
		s.winner = player
		return
	}
	s.turn = player.Opponent()
}

func (s *State) String() string {
	if s.done {
		return fmt.Sprintf("nim: player %v won", s.winner)
	}
	return fmt.Sprintf("nim: %d objects, player %v to move", s.remaining, s.turn)
}

// Heuristic scores a position by how the objects stand modulo three: a
// position where the opponent faces a multiple of three is winning for the
// player who just moved. Meant as a Compound component; it never claims more
// than |2|.
type Heuristic struct{}

func (Heuristic) Evaluate(state *State, player Player) int64 {
	status := state.Status()
	if status.Completed() {
		if status.Won(player) {
			return 2
		}
		return -2
	}
	if rem := state.remaining % 3; rem == 0 {
		// Whoever faces a multiple of three is losing under perfect play.
		if status.MustTurn() == player {
			return -2
		}
		return 2
	}
	if status.MustTurn() == player {
		return 2
	}
	return -2
}
