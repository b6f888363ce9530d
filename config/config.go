// Package config reads game settings shared by the binaries from command
// line flags, falling back to environment variables.
package config

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/tomasstrnad1997/minefield/game"
)

var Flags = []cli.Flag{
	cli.IntFlag{
		Name:   "width",
		Usage:  "number of columns",
		EnvVar: "MINES_WIDTH",
		Value:  game.DefaultParams.Width,
	},
	cli.IntFlag{
		Name:   "height",
		Usage:  "number of rows",
		EnvVar: "MINES_HEIGHT",
		Value:  game.DefaultParams.Height,
	},
	cli.IntFlag{
		Name:   "mines",
		Usage:  "number of mines",
		EnvVar: "MINES_COUNT",
		Value:  game.DefaultParams.Mines,
	},
	cli.Uint64Flag{
		Name:   "seed",
		Usage:  "seed for reproducible mine layouts",
		EnvVar: "MINES_SEED",
	},
	cli.BoolFlag{
		Name:   "debug",
		Usage:  "log every move",
		EnvVar: "MINES_DEBUG",
	},
}

type Config struct {
	Params game.Params
	Seed   uint64
	// Seeded is false when no seed was given; layouts are random then.
	Seeded bool
	Debug  bool
}

// Load reads the flags and validates the game params.
func Load(c *cli.Context) (*Config, error) {
	cfg := &Config{
		Params: game.Params{
			Width:  c.Int("width"),
			Height: c.Int("height"),
			Mines:  c.Int("mines"),
		},
		Seed:   c.Uint64("seed"),
		Seeded: c.IsSet("seed"),
		Debug:  c.Bool("debug"),
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Logger() *logrus.Logger {
	log := logrus.New()
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// GameOptions returns the options every round of a run is created with.
func (cfg *Config) GameOptions(log logrus.FieldLogger) []game.Option {
	opts := []game.Option{game.WithLogger(log)}
	if cfg.Seeded {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	return opts
}
