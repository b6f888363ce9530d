package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/tomasstrnad1997/minefield/game"
)

// Session plays rounds on a text terminal until the input ends or the
// player quits.
type Session struct {
	Params  game.Params
	Options []game.Option
}

func (s *Session) newRound(out io.Writer) (*game.Game, error) {
	g, err := game.New(s.Params, s.Options...)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "New game: %s\n", s.Params)
	return g, nil
}

func (s *Session) Run(in io.Reader, out io.Writer) error {
	g, err := s.newRound(out)
	if err != nil {
		return err
	}
	if err := Render(out, g); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, err := ParseCommand(scanner.Text())
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch cmd.Type {
		case QuitCommand:
			return nil
		case NewGameCommand:
			if g, err = s.newRound(out); err != nil {
				return err
			}
		case MoveCommand:
			if g.State() != game.Playing {
				fmt.Fprintln(out, "Game over. Type \"new\" to play again or \"quit\" to leave.")
				continue
			}
			result, err := g.MakeMove(cmd.Move)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if result.Result == game.NoChange {
				continue
			}
		}

		if err := Render(out, g); err != nil {
			return err
		}
		switch g.State() {
		case game.Lost:
			fmt.Fprintln(out, "BOOM")
		case game.Won:
			fmt.Fprintln(out, "CLEARED")
		default:
			fmt.Fprintf(out, "Mines left: %d\n", g.RemainingMines())
		}
	}
	return scanner.Err()
}
