// Benchmark driver: pits the selection algorithms against each other on the
// nim example game and prints win rates and timing statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thurn/spellclash-ai/agent"
	"github.com/thurn/spellclash-ai/arena"
	"github.com/thurn/spellclash-ai/game"
	"github.com/thurn/spellclash-ai/game/nim"
	"github.com/thurn/spellclash-ai/searcher"
)

type nimState = *nim.State

type contender struct {
	name  string
	build func() arena.Competitor[nimState, nim.Action, nim.Player]
}

func main() {
	games := flag.Int("games", 20, "games per pairing")
	objects := flag.Int("objects", 21, "objects in the nim heap")
	budget := flag.Duration("budget", 50*time.Millisecond, "search budget per move")
	csvDir := flag.String("csv", "", "directory to write CSV records into (disabled when empty)")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	winLoss := game.WinLoss[nimState, nim.Player]{}
	heuristic := game.NewCompound(
		game.Weighted[nimState, nim.Player]{Weight: 3, Evaluator: nim.Heuristic{}},
	)

	contenders := []contender{
		{name: "first", build: func() arena.Competitor[nimState, nim.Action, nim.Player] {
			return agent.New[nimState, nim.Action, nim.Player]("first",
				searcher.NewFirst[nimState, nim.Action, nim.Player](), winLoss)
		}},
		{name: "greedy", build: func() arena.Competitor[nimState, nim.Action, nim.Player] {
			return agent.New[nimState, nim.Action, nim.Player]("greedy",
				searcher.NewSingleLevel[nimState, nim.Action, nim.Player](), heuristic)
		}},
		{name: "deepening", build: func() arena.Competitor[nimState, nim.Action, nim.Player] {
			return agent.New[nimState, nim.Action, nim.Player]("deepening",
				searcher.NewIterativeDeepening[nimState, nim.Action, nim.Player](), winLoss,
				agent.WithSearchDuration(*budget))
		}},
		{name: "mcts", build: func() arena.Competitor[nimState, nim.Action, nim.Player] {
			playout := searcher.NewRandomPlayout[nimState, nim.Action, nim.Player](winLoss)
			return agent.New[nimState, nim.Action, nim.Player]("mcts",
				searcher.NewMonteCarlo[nimState, nim.Action, nim.Player](), playout,
				agent.WithSearchDuration(*budget))
		}},
	}

	profile := termenv.ColorProfile()
	for i := 0; i < len(contenders); i++ {
		for j := i + 1; j < len(contenders); j++ {
			runPairing(profile, contenders[i], contenders[j], *games, *objects, *csvDir)
		}
	}
}

func runPairing(profile termenv.Profile, one, two contender, games, objects int, csvDir string) {
	competitors := map[nim.Player]arena.Competitor[nimState, nim.Action, nim.Player]{
		nim.PlayerOne: one.build(),
		nim.PlayerTwo: two.build(),
	}
	match := arena.NewMatch(competitors)

	records := make([]arena.Record[nim.Action, nim.Player], 0, games)
	for i := 0; i < games; i++ {
		// Alternate the starting player so neither side keeps the tempo edge.
		start := nim.New(objects, nim.Player(i%2))
		record, err := match.Run(start)
		if err != nil {
			log.Error().Err(err).Msg("match aborted")
			continue
		}
		records = append(records, record)
	}

	summary := arena.Summarize(records)
	title := termenv.String(fmt.Sprintf("%s vs %s", one.name, two.name)).
		Foreground(profile.Color("#5FD7FF")).Bold()
	fmt.Println(title)
	fmt.Printf("  %s %d  %s %d  (of %d games)\n",
		termenv.String(one.name+":").Foreground(profile.Color("#5FFF87")),
		summary.Wins[nim.PlayerOne],
		termenv.String(two.name+":").Foreground(profile.Color("#FF5F5F")),
		summary.Wins[nim.PlayerTwo],
		summary.Games)
	fmt.Printf("  avg game %.1f moves, avg move %.2fms (stddev %.2fms)\n",
		summary.MeanGameMoves,
		summary.MeanMoveSeconds*1000,
		summary.StdDevMoveSeconds*1000)

	if csvDir != "" {
		if err := writeRecords(csvDir, records); err != nil {
			log.Error().Err(err).Msg("failed to write CSV records")
		}
	}
}

func writeRecords(dir string, records []arena.Record[nim.Action, nim.Player]) error {
	writer, err := arena.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := arena.WriteGameRecords(writer, records); err != nil {
		return err
	}
	if err := arena.WriteMoveRecords(writer, records); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("wrote CSV records")
	return nil
}
