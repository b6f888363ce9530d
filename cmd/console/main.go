package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/tomasstrnad1997/minefield/config"
	"github.com/tomasstrnad1997/minefield/console"
)

func main() {
	app := cli.NewApp()
	app.Name = "minefield"
	app.Usage = "play minesweeper in the terminal"
	app.Flags = config.Flags
	app.Action = func(c *cli.Context) error {
		cfg, err := config.Load(c)
		if err != nil {
			return err
		}
		logger := cfg.Logger()
		logger.SetOutput(os.Stderr)
		session := &console.Session{Params: cfg.Params, Options: cfg.GameOptions(logger)}
		return session.Run(os.Stdin, os.Stdout)
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("minefield: %v", err)
	}
}
