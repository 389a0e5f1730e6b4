package arena

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Move records a single played move and how long its decision took.
type Move[A, P comparable] struct {
	Step    int
	Player  P
	Action  A
	Elapsed time.Duration
}

// Record is the outcome of one game.
type Record[A, P comparable] struct {
	Start     time.Time
	Duration  time.Duration
	Completed bool
	Winners   []P
	Moves     []Move[A, P]
}

// Summary aggregates a series of game records.
type Summary[P comparable] struct {
	Games int
	Wins  map[P]int

	MeanGameMoves     float64
	MeanMoveSeconds   float64
	StdDevMoveSeconds float64
}

// Summarize computes win counts and timing statistics over records.
func Summarize[A, P comparable](records []Record[A, P]) Summary[P] {
	summary := Summary[P]{Games: len(records), Wins: make(map[P]int)}

	var gameMoves []float64
	var moveSeconds []float64
	for _, record := range records {
		for _, winner := range record.Winners {
			summary.Wins[winner]++
		}
		gameMoves = append(gameMoves, float64(len(record.Moves)))
		for _, move := range record.Moves {
			moveSeconds = append(moveSeconds, move.Elapsed.Seconds())
		}
	}

	if len(gameMoves) > 0 {
		summary.MeanGameMoves = stat.Mean(gameMoves, nil)
	}
	if len(moveSeconds) > 1 {
		summary.MeanMoveSeconds, summary.StdDevMoveSeconds = stat.MeanStdDev(moveSeconds, nil)
	} else if len(moveSeconds) == 1 {
		summary.MeanMoveSeconds = moveSeconds[0]
	}
	return summary
}
