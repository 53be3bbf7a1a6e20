package tetris3d

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/jcy9503/Tetris3D/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seed uint64) *config.Config {
	return &config.Config{
		Grid:              config.Grid{X: 6, Y: 12, Z: 6},
		Seed:              seed,
		RandomOrientation: true,
		LogLevel:          "info",
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	l := slog.New(slog.DiscardHandler)
	a, err := simulate(testConfig(42), l, 50, 4)
	require.NoError(t, err)
	b, err := simulate(testConfig(42), l, 50, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a.Pieces, 50)
	assert.Positive(t, a.Pieces)
}

func TestSimulateFillsUp(t *testing.T) {
	// O blocks without any moves pile up until the game ends.
	cfg := testConfig(1)
	cfg.Shape = "O"
	cfg.RandomOrientation = false
	res, err := simulate(cfg, slog.New(slog.DiscardHandler), 100, 0)
	require.NoError(t, err)
	assert.True(t, res.Over)
	// every O adds 8 cubes, every cleared layer of a 6x6 grid removes 36.
	assert.Equal(t, res.Pieces*8-res.Lines*36, res.Cells)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, &result{Pieces: 12, Lines: 2, Score: 300, Level: 1, Cells: 80, Over: true})
	out := buf.String()
	for _, want := range []string{"PIECES", "SCORE", "300", "true"} {
		assert.Contains(t, out, want)
	}
}

func TestRunSimulateFlags(t *testing.T) {
	err := runSimulate(&cobra.Command{}, nil)
	assert.ErrorContains(t, err, "pieces")

	cmd := &cobra.Command{}
	cmd.Flags().Int("pieces", 0, "")
	cmd.Flags().Int("moves", 1, "")
	assert.Error(t, runSimulate(cmd, nil))

	var out bytes.Buffer
	require.NoError(t, cmd.Flags().Set("pieces", "3"))
	cmd.SetOut(&out)
	require.NoError(t, runSimulate(cmd, nil))
	assert.Contains(t, out.String(), "PIECES")
}
