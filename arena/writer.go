package arena

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer exports game and move records as CSV files under a base directory,
// one subdirectory per run named by its UTC timestamp.
type Writer struct {
	runDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	runDir := filepath.Join(baseDir, time.Now().UTC().Format(time.RFC3339))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	return &Writer{runDir: runDir}, nil
}

// Dir returns the directory this run's files are written to.
func (w *Writer) Dir() string {
	return w.runDir
}

// WriteGameRecords writes one row per game to games.csv.
func WriteGameRecords[A, P comparable](w *Writer, records []Record[A, P]) error {
	f, err := os.Create(filepath.Join(w.runDir, "games.csv"))
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"game", "completed", "winners", "moves", "start_time", "duration"}); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for i, record := range records {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatBool(record.Completed),
			fmt.Sprintf("%v", record.Winners),
			strconv.Itoa(len(record.Moves)),
			record.Start.Format(time.RFC3339),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}

// WriteMoveRecords writes one row per move across all games to moves.csv.
func WriteMoveRecords[A, P comparable](w *Writer, records []Record[A, P]) error {
	f, err := os.Create(filepath.Join(w.runDir, "moves.csv"))
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"game", "step", "player", "action", "duration"}); err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}
	for i, record := range records {
		for _, move := range record.Moves {
			row := []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(move.Step),
				fmt.Sprintf("%v", move.Player),
				fmt.Sprintf("%v", move.Action),
				move.Elapsed.String(),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write move record row: %w", err)
			}
		}
	}
	return nil
}
