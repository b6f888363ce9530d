package console

import (
	"bufio"
	"io"
	"strconv"

	"github.com/tomasstrnad1997/minefield/game"
)

const (
	hiddenRune   = '#'
	flagRune     = 'F'
	questionRune = '?'
	mineRune     = '*'
	// Mines the player did not hit, shown once the round is lost.
	missedMineRune = 'O'
	zeroRune       = '.'
)

// Render writes the field as a grid of runes with a row of column digits
// on top and a row digit in front of every line.
func Render(w io.Writer, g *game.Game) error {
	bw := bufio.NewWriter(w)
	params := g.Params()
	field := g.Field()
	lost := g.State() == game.Lost

	bw.WriteByte('X')
	for x := range params.Width {
		bw.WriteString(strconv.Itoa(x % 10))
	}
	bw.WriteByte('\n')
	for y := range params.Height {
		bw.WriteString(strconv.Itoa(y % 10))
		for x := range params.Width {
			if lost && !field.IsVisible(x, y) && field.IsMine(x, y) {
				bw.WriteRune(missedMineRune)
				continue
			}
			bw.WriteRune(cellRune(g.View(x, y)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func cellRune(value byte) rune {
	switch value {
	case game.Hidden:
		return hiddenRune
	case game.ShowFlag:
		return flagRune
	case game.ShowQuestion:
		return questionRune
	case game.ShowMine:
		return mineRune
	case game.ShowCount:
		return zeroRune
	default:
		return rune('0' + value)
	}
}
