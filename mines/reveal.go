package mines

type RevealKind int

const (
	AlreadyVisible RevealKind = iota
	Mine
	Cleared
)

func (k RevealKind) String() string {
	switch k {
	case AlreadyVisible:
		return "AlreadyVisible"
	case Mine:
		return "Mine"
	case Cleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

type RevealOutcome struct {
	Kind RevealKind
	// Cells that became visible during the reveal, starting with the
	// revealed cell itself.
	Cells []Coord
}

// Cleared returns the number of newly visible cells of a Cleared outcome
// and 0 for any other kind.
func (o RevealOutcome) Cleared() int {
	if o.Kind != Cleared {
		return 0
	}
	return len(o.Cells)
}

// Reveal makes (x, y) visible. Revealing a cell with no adjacent mines
// also reveals its connected zero region and the numbered cells bordering it.
func (f *MineField) Reveal(x, y int) RevealOutcome {
	start := f.cell(x, y)
	if start.Visible {
		return RevealOutcome{Kind: AlreadyVisible}
	}
	start.Visible = true
	if start.Mine {
		return RevealOutcome{Kind: Mine, Cells: []Coord{{X: x, Y: y}}}
	}

	revealed := []Coord{{X: x, Y: y}}
	pending := []Coord{{X: x, Y: y}}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if f.cells[f.index(current.X, current.Y)].Adjacent != 0 {
			continue
		}
		for _, d := range neighbourOffsets {
			nx, ny := current.X+d[0], current.Y+d[1]
			if f.IsOutOfBounds(nx, ny) {
				continue
			}
			neighbour := &f.cells[f.index(nx, ny)]
			if neighbour.Visible || neighbour.Mine {
				continue
			}
			// Marked on push so no cell is queued twice.
			neighbour.Visible = true
			next := Coord{X: nx, Y: ny}
			revealed = append(revealed, next)
			pending = append(pending, next)
		}
	}
	return RevealOutcome{Kind: Cleared, Cells: revealed}
}
