package tetris3d

import (
	"fmt"
	"io"
	"os"

	"github.com/jcy9503/Tetris3D/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[2J\033[H\033[?25h"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().Bool("no-ghost", false, "hide the landing shadow")
	bind(playCmd, map[string]string{"no_ghost": "no-ghost"})
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// the screen belongs to the game, logs go to the log file only.
	cfg, logger, closeLog, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "grid", cfg.Grid, "seed", viper.GetUint64("seed"))

	restore, err := startRawConsole()
	if err != nil {
		return err
	}
	defer restore()

	c, err := client.New(logger, &client.Options{
		NoGhost: cfg.NoGhost,
		Writer:  cmd.OutOrStdout(),
		Game:    cfg.Options(logger),
	})
	if err != nil {
		return err
	}
	defer c.Close()

	c.Start()
	return nil
}

func startRawConsole() (func(), error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("unable to set the terminal to raw mode: %w", err)
	}
	fmt.Print(hideCursor)

	return func() {
		if err := term.Restore(fd, oldState); err != nil {
			fmt.Fprintf(os.Stderr, "unable to restore the terminal original state: %v\n", err)
		}
		fmt.Print(showCursor)
	}, nil
}
