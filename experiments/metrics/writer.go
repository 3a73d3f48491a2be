package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment results under a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <dir>/<name>/<timestamp>/ and returns a writer
// rooted there. An empty dir defaults to "results".
func NewWriter(dir, name string) (*Writer, error) {
	if dir == "" {
		dir = "results"
	}
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory this writer stores files in.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteGameRecords writes one CSV row per game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "tm_value", "board_size", "winner", "margin", "komi", "moves", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.TMValue),
			strconv.Itoa(record.BoardSize),
			record.Winner,
			strconv.FormatFloat(record.Margin, 'f', 1, 64),
			strconv.FormatFloat(record.Komi, 'f', 1, 64),
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return writer.Error()
}
