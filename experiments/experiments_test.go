package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFairnessExperiment(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Name:       "smoke",
		BoardSizes: []int{5},
		TMValues:   []int{2},
		NumGames:   1,
		Workers:    2,
		OutputDir:  dir,
	}

	err := RunFairnessExperiment(cfg)
	require.NoError(t, err)

	// One timestamped run directory with one record per game: the TM=2
	// batch plus the TM=0 baseline.
	runs, err := os.ReadDir(filepath.Join(dir, "smoke"))
	require.NoError(t, err)
	require.Len(t, runs, 1)

	f, err := os.Open(filepath.Join(dir, "smoke", runs[0].Name(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two games")
	require.Equal(t,
		[]string{"id", "tm_value", "board_size", "winner", "margin", "komi", "moves", "duration"},
		rows[0])
	for _, row := range rows[1:] {
		require.Contains(t, []string{"Black", "White"}, row[3])
		require.Equal(t, "5", row[2])
	}
}
