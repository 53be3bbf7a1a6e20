package tetris3d

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/jcy9503/Tetris3D/config"
	"github.com/jcy9503/Tetris3D/tetris"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drop blocks without a screen and print the outcome",
	Long: "Simulate plays a game without a screen: every block gets a few random moves\n" +
		"and rotations and is then hard dropped. With a fixed --seed the outcome is\n" +
		"always the same.",
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Int("pieces", 100, "maximum number of blocks to drop")
	simulateCmd.Flags().Int("moves", 6, "maximum number of random actions per block")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, logger, closeLog, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	pieces, err := cmd.Flags().GetInt("pieces")
	if err != nil {
		return fmt.Errorf("unable to read pieces flag: %w", err)
	}
	moves, err := cmd.Flags().GetInt("moves")
	if err != nil {
		return fmt.Errorf("unable to read moves flag: %w", err)
	}
	if pieces <= 0 || moves < 0 {
		return fmt.Errorf("pieces must be positive and moves not negative, got %d and %d", pieces, moves)
	}

	res, err := simulate(cfg, logger, pieces, moves)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}

type result struct {
	Pieces  int
	Lines   int
	Score   int
	Level   int
	Cells   int
	Dropped int
	Over    bool
}

var simulatedActions = []tetris.Action{
	tetris.MoveLeft, tetris.MoveRight, tetris.MoveForward, tetris.MoveBackward,
	tetris.RotateXCW, tetris.RotateXCCW, tetris.RotateYCW,
	tetris.RotateYCCW, tetris.RotateZCW, tetris.RotateZCCW,
	tetris.HoldBlock,
}

func simulate(cfg *config.Config, l *slog.Logger, pieces, moves int) (*result, error) {
	t, err := tetris.New(cfg.Options(l))
	if err != nil {
		return nil, err
	}
	// actions get their own source so the block sequence only depends on the seed.
	r := rand.New(rand.NewPCG(cfg.Seed, 1))

	var res result
	for range pieces {
		if t.IsGameOver() {
			break
		}
		for range r.IntN(moves + 1) {
			t.Do(simulatedActions[r.IntN(len(simulatedActions))])
		}
		res.Dropped += t.HardDrop()
	}

	s := t.Read()
	res.Pieces = s.Placed
	res.Lines = s.LinesClear
	res.Score = s.Score
	res.Level = s.Level
	res.Cells = s.Grid.Count()
	res.Over = s.State == tetris.GameOver
	l.Info("simulation finished", slog.Int("pieces", res.Pieces), slog.Int("score", res.Score), slog.Bool("game_over", res.Over))
	return &res, nil
}

func printResult(w io.Writer, res *result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"pieces", "lines", "score", "level", "cells", "dropped", "game over"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.Append([]string{
		strconv.Itoa(res.Pieces),
		strconv.Itoa(res.Lines),
		strconv.Itoa(res.Score),
		strconv.Itoa(res.Level),
		strconv.Itoa(res.Cells),
		strconv.Itoa(res.Dropped),
		strconv.FormatBool(res.Over),
	})
	table.Render()
}
