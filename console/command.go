package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomasstrnad1997/minefield/game"
)

type CommandType int

const (
	MoveCommand CommandType = iota
	NewGameCommand
	QuitCommand
)

type Command struct {
	Type CommandType
	// Set for MoveCommand only.
	Move game.Move
}

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrInvalidCommand = errors.New("invalid command")
)

// ParseCommand reads one line of input:
//
//	x y        reveal (x, y)
//	x y f      cycle the mark of (x, y); "m" and "?" work too
//	new        start a new round
//	quit       leave
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	switch strings.ToLower(fields[0]) {
	case "new", "n":
		return Command{Type: NewGameCommand}, nil
	case "quit", "exit", "q":
		return Command{Type: QuitCommand}, nil
	}

	var x, y int
	var flag rune
	flag = 'X'
	n, _ := fmt.Sscanf(strings.Join(fields, " "), "%d %d %c", &x, &y, &flag)
	if n < 2 || len(fields) > 3 {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, line)
	}
	move := game.Move{X: x, Y: y, Type: game.RevealMove}
	if n == 3 {
		switch flag {
		case 'f', 'F', 'm', 'M', '?':
			move.Type = game.MarkMove
		default:
			return Command{}, fmt.Errorf("%w: unknown move %q", ErrInvalidCommand, string(flag))
		}
	}
	return Command{Type: MoveCommand, Move: move}, nil
}
