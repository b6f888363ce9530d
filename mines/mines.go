package mines

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

type Cell struct {
	Mine bool
	// Number of mines among the 8 neighbours. Unused for mines.
	Adjacent uint8
	Visible  bool
}

// MineField is a width x height grid of cells. Only cell visibility
// changes after construction.
type MineField struct {
	width     int
	height    int
	mineCount int
	cells     []Cell
}

var (
	ErrInvalidDimension    = errors.New("invalid field dimension")
	ErrInvalidMineCount    = errors.New("invalid mine count")
	ErrInvalidMinePosition = errors.New("invalid mine position")
)

type InvalidFieldParamsError struct {
	Width  int
	Height int
	Mines  int
}

func (e *InvalidFieldParamsError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a field with width: %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a field with height: %d", e.Height)
	case e.Mines < 0:
		return fmt.Sprintf("cannot create a field with negative amount of mines: %d", e.Mines)
	default:
		return "cannot construct field: unknown error"
	}
}

func (e *InvalidFieldParamsError) Unwrap() error {
	if e.Width <= 0 || e.Height <= 0 {
		return ErrInvalidDimension
	}
	return ErrInvalidMineCount
}

type options struct {
	rng *rand.Rand
}

type Option func(*options)

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New creates a field with min(width*height, requestedMines) mines placed
// uniformly at random.
func New(width, height, requestedMines int, opts ...Option) (*MineField, error) {
	if width <= 0 || height <= 0 || requestedMines < 0 {
		return nil, &InvalidFieldParamsError{Width: width, Height: height, Mines: requestedMines}
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		now := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(now, now>>17))
	}
	field := newEmpty(width, height)
	field.mineCount = min(width*height, requestedMines)
	field.placeMines(o.rng)
	field.tally()
	return field, nil
}

// FromLayout creates a field with mines exactly at the given positions.
func FromLayout(width, height int, layout []Coord) (*MineField, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidFieldParamsError{Width: width, Height: height, Mines: len(layout)}
	}
	field := newEmpty(width, height)
	for _, c := range layout {
		if field.IsOutOfBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: %s outside %dx%d field", ErrInvalidMinePosition, c, width, height)
		}
		cell := &field.cells[field.index(c.X, c.Y)]
		if cell.Mine {
			return nil, fmt.Errorf("%w: duplicate mine at %s", ErrInvalidMinePosition, c)
		}
		cell.Mine = true
	}
	field.mineCount = len(layout)
	field.tally()
	return field, nil
}

func newEmpty(width, height int) *MineField {
	return &MineField{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// placeMines marks the first mineCount slots of a linear layout and
// shuffles it, so every placement of mineCount mines is equally likely.
func (f *MineField) placeMines(rng *rand.Rand) {
	layout := make([]bool, len(f.cells))
	for i := range f.mineCount {
		layout[i] = true
	}
	rng.Shuffle(len(layout), func(i, j int) {
		layout[i], layout[j] = layout[j], layout[i]
	})
	for i, mine := range layout {
		if mine {
			f.cells[f.index(i%f.width, i/f.width)].Mine = true
		}
	}
}

func (f *MineField) tally() {
	for y := range f.height {
		for x := range f.width {
			cell := &f.cells[f.index(x, y)]
			if cell.Mine {
				continue
			}
			cell.Adjacent = f.countMines(x, y)
		}
	}
}

func (f *MineField) countMines(x, y int) uint8 {
	var count uint8
	for _, n := range f.Neighbours(x, y) {
		if f.cells[f.index(n.X, n.Y)].Mine {
			count++
		}
	}
	return count
}

var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbours returns the in-bounds cells of the 8-neighbourhood of (x, y).
func (f *MineField) Neighbours(x, y int) []Coord {
	neighbours := make([]Coord, 0, len(neighbourOffsets))
	for _, d := range neighbourOffsets {
		nx, ny := x+d[0], y+d[1]
		if f.IsOutOfBounds(nx, ny) {
			continue
		}
		neighbours = append(neighbours, Coord{X: nx, Y: ny})
	}
	return neighbours
}

func (f *MineField) index(x, y int) int {
	return y*f.width + x
}

func (f *MineField) Width() int {
	return f.width
}

func (f *MineField) Height() int {
	return f.height
}

func (f *MineField) MineCount() int {
	return f.mineCount
}

func (f *MineField) Area() int {
	return f.width * f.height
}

func (f *MineField) IsOutOfBounds(x, y int) bool {
	return x < 0 || x >= f.width || y < 0 || y >= f.height
}

func (f *MineField) IsMine(x, y int) bool {
	return f.cell(x, y).Mine
}

func (f *MineField) IsVisible(x, y int) bool {
	return f.cell(x, y).Visible
}

func (f *MineField) AdjacentCount(x, y int) int {
	return int(f.cell(x, y).Adjacent)
}

// cell panics on out of bounds coordinates instead of silently wrapping
// into another row.
func (f *MineField) cell(x, y int) *Cell {
	if f.IsOutOfBounds(x, y) {
		panic(fmt.Sprintf("mines: cell (%d, %d) out of range for %dx%d field", x, y, f.width, f.height))
	}
	return &f.cells[f.index(x, y)]
}
