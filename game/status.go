package game

import "fmt"

// Status describes whether a game is still being played and, if not, who won.
// A status is either in progress with a player whose turn it is, or completed
// with a (possibly empty) set of winners.
type Status[P comparable] struct {
	completed bool
	turn      P
	winners   map[P]struct{}
}

// InProgress returns a status for a game where it is turn's move.
func InProgress[P comparable](turn P) Status[P] {
	return Status[P]{turn: turn}
}

// Completed returns a status for a finished game won by the given players.
func Completed[P comparable](winners ...P) Status[P] {
	w := make(map[P]struct{}, len(winners))
	for _, p := range winners {
		w[p] = struct{}{}
	}
	return Status[P]{completed: true, winners: w}
}

func (s Status[P]) Completed() bool {
	return s.completed
}

// Turn returns the player whose turn it is, or false for a completed game.
func (s Status[P]) Turn() (P, bool) {
	var zero P
	if s.completed {
		return zero, false
	}
	return s.turn, true
}

// MustTurn returns the player whose turn it is. Asking for the turn of a
// completed game indicates an inconsistency between the search framework and
// its caller, so it panics.
func (s Status[P]) MustTurn() P {
	turn, ok := s.Turn()
	if !ok {
		panic("game is completed, no player has the turn")
	}
	return turn
}

// Won reports whether p is among the winners of a completed game. It is
// always false while the game is in progress.
func (s Status[P]) Won(p P) bool {
	_, ok := s.winners[p]
	return ok
}

// Winners returns the winners of a completed game in unspecified order.
func (s Status[P]) Winners() []P {
	winners := make([]P, 0, len(s.winners))
	for p := range s.winners {
		winners = append(winners, p)
	}
	return winners
}

func (s Status[P]) String() string {
	if s.completed {
		return fmt.Sprintf("completed, winners %v", s.Winners())
	}
	return fmt.Sprintf("in progress, %v to move", s.turn)
}
