package mines_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomasstrnad1997/minefield/mines"
)

func visibleCount(f *mines.MineField) int {
	count := 0
	for y := range f.Height() {
		for x := range f.Width() {
			if f.IsVisible(x, y) {
				count++
			}
		}
	}
	return count
}

func TestRevealSingleCellNoMines(t *testing.T) {
	field, err := mines.New(1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, field.MineCount())

	outcome := field.Reveal(0, 0)
	require.Equal(t, mines.Cleared, outcome.Kind)
	require.Equal(t, 1, outcome.Cleared())
	require.Equal(t, field.MineCount(), field.Area()-outcome.Cleared())
}

func TestRevealAllMines(t *testing.T) {
	field, err := mines.New(2, 2, 4)
	require.NoError(t, err)
	require.Equal(t, 4, field.MineCount())
	for y := range 2 {
		for x := range 2 {
			require.True(t, field.IsMine(x, y))
			outcome := field.Reveal(x, y)
			require.Equal(t, mines.Mine, outcome.Kind)
			require.Equal(t, 0, outcome.Cleared())
		}
	}
}

// Grid (M = mine):
//
//	M . .
//	. . .
//	. . .
func TestRevealCascadeCorner(t *testing.T) {
	field, err := mines.FromLayout(3, 3, []mines.Coord{{0, 0}})
	require.NoError(t, err)
	require.Equal(t, 0, field.AdjacentCount(2, 2))

	outcome := field.Reveal(2, 2)
	require.Equal(t, mines.Cleared, outcome.Kind)
	require.Equal(t, 8, outcome.Cleared())
	require.Equal(t, mines.Coord{X: 2, Y: 2}, outcome.Cells[0])
	require.False(t, field.IsVisible(0, 0))
	require.Equal(t, 8, visibleCount(field))
}

func TestRevealIsIdempotent(t *testing.T) {
	field, err := mines.FromLayout(4, 4, []mines.Coord{{3, 3}})
	require.NoError(t, err)

	first := field.Reveal(2, 2)
	require.Equal(t, mines.Cleared, first.Kind)
	require.Equal(t, 1, first.Cleared())
	before := visibleCount(field)

	second := field.Reveal(2, 2)
	require.Equal(t, mines.AlreadyVisible, second.Kind)
	require.Empty(t, second.Cells)
	require.Equal(t, 0, second.Cleared())
	require.Equal(t, before, visibleCount(field))
}

func TestRevealMineDoesNotCascade(t *testing.T) {
	// Mine in a corner surrounded by zero cells.
	field, err := mines.FromLayout(5, 5, []mines.Coord{{0, 0}})
	require.NoError(t, err)

	outcome := field.Reveal(0, 0)
	require.Equal(t, mines.Mine, outcome.Kind)
	require.Equal(t, []mines.Coord{{X: 0, Y: 0}}, outcome.Cells)
	require.True(t, field.IsVisible(0, 0))
	require.Equal(t, 1, visibleCount(field))
}

func TestRevealNumberedCellStops(t *testing.T) {
	field, err := mines.FromLayout(5, 5, []mines.Coord{{0, 0}})
	require.NoError(t, err)

	outcome := field.Reveal(1, 1)
	require.Equal(t, mines.Cleared, outcome.Kind)
	require.Equal(t, 1, outcome.Cleared())
	require.True(t, field.IsVisible(1, 1))
	require.False(t, field.IsVisible(2, 2))
}

// Grid (M = mine):
//
//	. . M . .
//	. . M . .
//	. . M . .
//	. . M . .
//
// The wall splits the zero region: revealing the left side must not
// cross to the right.
func TestRevealStopsAtWall(t *testing.T) {
	wall := []mines.Coord{{2, 0}, {2, 1}, {2, 2}, {2, 3}}
	field, err := mines.FromLayout(5, 4, wall)
	require.NoError(t, err)

	outcome := field.Reveal(0, 0)
	require.Equal(t, mines.Cleared, outcome.Kind)
	require.Equal(t, 8, outcome.Cleared())
	for y := range 4 {
		require.True(t, field.IsVisible(0, y))
		require.True(t, field.IsVisible(1, y))
		require.False(t, field.IsVisible(2, y))
		require.False(t, field.IsVisible(3, y))
		require.False(t, field.IsVisible(4, y))
	}
}

// A zero cell reveals exactly its connected zero component plus the
// bordering numbered cells, and never a mine.
func TestRevealMatchesComponent(t *testing.T) {
	for seed := range uint64(30) {
		field, err := mines.New(12, 9, 14, mines.WithSeed(seed))
		require.NoError(t, err)

		start, ok := firstZero(field)
		if !ok {
			continue
		}
		want := expectedRegion(field, start)

		outcome := field.Reveal(start.X, start.Y)
		require.Equal(t, mines.Cleared, outcome.Kind)
		require.Equal(t, len(want), outcome.Cleared(), "seed %d", seed)
		for _, c := range outcome.Cells {
			require.True(t, want[c], "seed %d: unexpected %s", seed, c)
			require.False(t, field.IsMine(c.X, c.Y))
		}
		require.Equal(t, len(want), visibleCount(field))
	}
}

func TestRevealWholeEmptyField(t *testing.T) {
	field, err := mines.New(50, 50, 0)
	require.NoError(t, err)
	outcome := field.Reveal(25, 25)
	require.Equal(t, 2500, outcome.Cleared())

	seen := make(map[mines.Coord]bool, 2500)
	for _, c := range outcome.Cells {
		require.False(t, seen[c], "%s revealed twice", c)
		seen[c] = true
	}
}

func TestWinConditionAfterRevealingAllSafeCells(t *testing.T) {
	for seed := range uint64(10) {
		field, err := mines.New(9, 9, 10, mines.WithSeed(seed))
		require.NoError(t, err)
		visible := 0
		for y := range field.Height() {
			for x := range field.Width() {
				if field.IsMine(x, y) {
					continue
				}
				outcome := field.Reveal(x, y)
				require.NotEqual(t, mines.Mine, outcome.Kind)
				visible += outcome.Cleared()
			}
		}
		require.Equal(t, field.Area()-field.MineCount(), visible)
		require.Equal(t, field.MineCount(), field.Area()-visible)
	}
}

func firstZero(f *mines.MineField) (mines.Coord, bool) {
	for y := range f.Height() {
		for x := range f.Width() {
			if !f.IsMine(x, y) && f.AdjacentCount(x, y) == 0 {
				return mines.Coord{X: x, Y: y}, true
			}
		}
	}
	return mines.Coord{}, false
}

// expectedRegion computes the reveal set independently with a BFS over a
// visited map.
func expectedRegion(f *mines.MineField, start mines.Coord) map[mines.Coord]bool {
	region := map[mines.Coord]bool{start: true}
	queue := []mines.Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if f.AdjacentCount(c.X, c.Y) != 0 {
			continue
		}
		for _, n := range f.Neighbours(c.X, c.Y) {
			if region[n] || f.IsMine(n.X, n.Y) {
				continue
			}
			region[n] = true
			queue = append(queue, n)
		}
	}
	return region
}
