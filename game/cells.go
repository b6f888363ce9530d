package game

import "github.com/tomasstrnad1997/minefield/mines"

type Mark byte

const (
	Unmarked Mark = iota
	Flagged
	Questioned
)

func (m Mark) Next() Mark {
	switch m {
	case Unmarked:
		return Flagged
	case Flagged:
		return Questioned
	default:
		return Unmarked
	}
}

func (m Mark) String() string {
	switch m {
	case Flagged:
		return "flag"
	case Questioned:
		return "question"
	default:
		return "none"
	}
}

// Cell view values. A value with the high nibble clear is the adjacent
// mine count of a visible cell.
const (
	ShowCount    byte = 0x00
	ShowMine     byte = 0x10
	ShowFlag     byte = 0x20
	Hidden       byte = 0x30
	ShowQuestion byte = 0x40
)

type CellUpdate struct {
	X     int
	Y     int
	Value byte
}

// IsCount reports whether the update shows a visible cell's adjacent count.
func (u CellUpdate) IsCount() bool {
	return u.Value&0xF0 == 0
}

// View returns what a player may see at (x, y).
func (g *Game) View(x, y int) byte {
	if g.field.IsVisible(x, y) {
		if g.field.IsMine(x, y) {
			return ShowMine
		}
		return ShowCount | byte(g.field.AdjacentCount(x, y))
	}
	switch g.Mark(x, y) {
	case Flagged:
		return ShowFlag
	case Questioned:
		return ShowQuestion
	default:
		return Hidden
	}
}

func (g *Game) updatesFor(cells []mines.Coord) []CellUpdate {
	updates := make([]CellUpdate, len(cells))
	for i, c := range cells {
		updates[i] = CellUpdate{X: c.X, Y: c.Y, Value: g.View(c.X, c.Y)}
	}
	return updates
}

// CellUpdates returns the view of every cell that is visible or marked,
// in row order. Front-ends use it to redraw a whole field.
func (g *Game) CellUpdates() []CellUpdate {
	var cells []mines.Coord
	for y := range g.params.Height {
		for x := range g.params.Width {
			if g.field.IsVisible(x, y) || g.Mark(x, y) != Unmarked {
				cells = append(cells, mines.Coord{X: x, Y: y})
			}
		}
	}
	return g.updatesFor(cells)
}
