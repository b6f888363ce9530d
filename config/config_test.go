package config_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/tomasstrnad1997/minefield/config"
	"github.com/tomasstrnad1997/minefield/game"
)

func load(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	var cfg *config.Config
	app := cli.NewApp()
	app.Flags = config.Flags
	app.Action = func(c *cli.Context) error {
		var err error
		cfg, err = config.Load(c)
		return err
	}
	err := app.Run(append([]string{"minefield"}, args...))
	return cfg, err
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	require.Equal(t, game.DefaultParams, cfg.Params)
	require.False(t, cfg.Seeded)
	require.False(t, cfg.Debug)
	require.Equal(t, logrus.InfoLevel, cfg.Logger().GetLevel())
	require.Len(t, cfg.GameOptions(cfg.Logger()), 1)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t, "--width", "20", "--height", "15", "--mines", "40", "--seed", "7", "--debug")
	require.NoError(t, err)
	require.Equal(t, game.Params{Width: 20, Height: 15, Mines: 40}, cfg.Params)
	require.True(t, cfg.Seeded)
	require.Equal(t, uint64(7), cfg.Seed)
	require.Equal(t, logrus.DebugLevel, cfg.Logger().GetLevel())
	require.Len(t, cfg.GameOptions(cfg.Logger()), 2)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("MINES_WIDTH", "30")
	t.Setenv("MINES_COUNT", "5")
	cfg, err := load(t)
	require.NoError(t, err)
	require.Equal(t, game.Params{Width: 30, Height: 10, Mines: 5}, cfg.Params)
}

func TestLoadRejectsInvalidParams(t *testing.T) {
	_, err := load(t, "--width", "50")
	var paramsErr *game.InvalidParamsError
	require.ErrorAs(t, err, &paramsErr)

	_, err = load(t, "--mines", "100")
	require.ErrorAs(t, err, &paramsErr)
}

func TestSeededOptionsAreReproducible(t *testing.T) {
	cfg, err := load(t, "--seed", "99")
	require.NoError(t, err)

	a, err := game.New(cfg.Params, cfg.GameOptions(cfg.Logger())...)
	require.NoError(t, err)
	b, err := game.New(cfg.Params, cfg.GameOptions(cfg.Logger())...)
	require.NoError(t, err)
	for y := range cfg.Params.Height {
		for x := range cfg.Params.Width {
			require.Equal(t, a.Field().IsMine(x, y), b.Field().IsMine(x, y))
		}
	}
}
