package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/tomasstrnad1997/minefield/client"
	"github.com/tomasstrnad1997/minefield/config"
)

func main() {
	app := cli.NewApp()
	app.Name = "minefield-client"
	app.Usage = "play minesweeper in a window"
	app.Flags = config.Flags
	app.Action = func(c *cli.Context) error {
		cfg, err := config.Load(c)
		if err != nil {
			return err
		}
		logger := cfg.Logger()
		client.RunClient(cfg.Params, logger, cfg.GameOptions(logger)...)
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("minefield-client: %v", err)
	}
}
