// Package tetris3d holds the command line interface of the game.
package tetris3d

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jcy9503/Tetris3D/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "tetris3d",
	Short:         "Tetris in a three dimensional well",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", "", "path to a config file")
	f.Int("grid-x", 0, "grid width")
	f.Int("grid-y", 0, "grid height")
	f.Int("grid-z", 0, "grid depth")
	f.Uint64("seed", 0, "seed of the block sequence, 0 for random")
	f.String("shape", "", "spawn only this shape (I, L, T, O, J, Z, S)")
	f.Bool("random-orientation", true, "spawn blocks with a random orientation")
	f.String("log-level", "", "debug, info, warn or error")
	f.String("log-file", "", "write logs to this file")

	bind(rootCmd, map[string]string{
		"config":             "config",
		"grid.x":             "grid-x",
		"grid.y":             "grid-y",
		"grid.z":             "grid-z",
		"seed":               "seed",
		"shape":              "shape",
		"random_orientation": "random-orientation",
		"log_level":          "log-level",
		"log_file":           "log-file",
	})

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// bind maps viper keys to the flags of cmd. Flags only win over the config
// file and environment when they are set explicitly.
func bind(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		flag := cmd.PersistentFlags().Lookup(name)
		if flag == nil {
			flag = cmd.Flags().Lookup(name)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			panic(fmt.Sprintf("unable to bind flag %s: %v", name, err))
		}
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads the config and builds the logger. The returned func closes
// the log file, if any.
func setup(defaultLog io.Writer) (*config.Config, *slog.Logger, func(), error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, nil, err
	}

	w, closer := defaultLog, func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("unable to open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return cfg, logger, closer, nil
}
