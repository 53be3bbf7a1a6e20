// Package config loads the settings of a game session from defaults, an
// optional config file, TETRIS3D_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/jcy9503/Tetris3D/tetris"
	"github.com/spf13/viper"
)

const envPrefix = "TETRIS3D"

var ErrInvalidConfig = errors.New("invalid config")

type Grid struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
	Z int `mapstructure:"z"`
}

type Config struct {
	Grid Grid `mapstructure:"grid"`
	// Seed makes the game reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`
	// Shape, when set, is the only block that spawns.
	Shape             string `mapstructure:"shape"`
	RandomOrientation bool   `mapstructure:"random_orientation"`
	NoGhost           bool   `mapstructure:"no_ghost"`
	LogLevel          string `mapstructure:"log_level"`
	LogFile           string `mapstructure:"log_file"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("grid.x", tetris.DefaultSizeX)
	v.SetDefault("grid.y", tetris.DefaultSizeY)
	v.SetDefault("grid.z", tetris.DefaultSizeZ)
	v.SetDefault("seed", 0)
	v.SetDefault("shape", "")
	v.SetDefault("random_orientation", true)
	v.SetDefault("no_ghost", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// Load reads the config file named by the "config" key, if any, and returns
// the merged and validated settings.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %q: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.Grid.X <= 0 || c.Grid.Y <= 0 || c.Grid.Z <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%dx%d", ErrInvalidConfig, c.Grid.X, c.Grid.Y, c.Grid.Z)
	}
	if c.Shape != "" {
		if _, err := tetris.ParseShape(c.Shape); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// Options builds the game options. The same seed always gives the same game.
func (c *Config) Options(l *slog.Logger) *tetris.Options {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed))

	o := &tetris.Options{
		SizeX:             c.Grid.X,
		SizeY:             c.Grid.Y,
		SizeZ:             c.Grid.Z,
		Rand:              r,
		Selector:          tetris.NewRandomSelector(r),
		RandomOrientation: c.RandomOrientation,
		Logger:            l,
	}
	if id, err := tetris.ParseShape(c.Shape); err == nil {
		o.Selector = tetris.FixedSelector(id)
	}
	return o
}
