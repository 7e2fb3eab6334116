package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellgrid/golife/model"
)

// mustGrid builds a grid and toggles the given cells alive.
func mustGrid(t *testing.T, width, height int, alive ...[2]int) *model.Grid {
	t.Helper()

	grid, err := model.NewGrid(width, height)
	require.NoError(t, err)
	for _, c := range alive {
		require.NoError(t, grid.Toggle(c[0], c[1]))
	}
	return grid
}

func stateAt(t *testing.T, g *model.Grid, x, y int) model.CellState {
	t.Helper()

	state, err := g.Get(x, y)
	require.NoError(t, err)
	return state
}

func TestNewGrid_AllCellsDead(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{1, 1}, {3, 3}, {7, 2}, {60, 30}} {
		grid, err := model.NewGrid(dims[0], dims[1])
		require.NoError(t, err)
		require.Equal(t, dims[0], grid.Width())
		require.Equal(t, dims[1], grid.Height())
		require.Zero(t, grid.CountLivingCells())

		for y := range dims[1] {
			for x := range dims[0] {
				require.Equal(t, model.Dead, stateAt(t, grid, x, y))
			}
		}
	}
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}, {3, -7}} {
		grid, err := model.NewGrid(dims[0], dims[1])
		require.ErrorIs(t, err, model.ErrInvalidDimensions)
		require.Nil(t, grid)
	}
}

func TestGetToggle_OutOfBounds(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 4, 3)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}, {100, 100}} {
		_, err := grid.Get(c[0], c[1])
		require.ErrorIs(t, err, model.ErrOutOfBounds)

		require.ErrorIs(t, grid.Toggle(c[0], c[1]), model.ErrOutOfBounds)
	}

	// Failed calls must not have touched the grid.
	require.Zero(t, grid.CountLivingCells())
}

func TestToggle_IsItsOwnInverse(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 3, 3)

	for y := range 3 {
		for x := range 3 {
			require.NoError(t, grid.Toggle(x, y))
			require.Equal(t, model.Alive, stateAt(t, grid, x, y))

			require.NoError(t, grid.Toggle(x, y))
			require.Equal(t, model.Dead, stateAt(t, grid, x, y))
		}
	}
	require.Zero(t, grid.CountLivingCells())
}

func TestToggle_MutatesExactlyOneCell(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 5, 5)
	require.NoError(t, grid.Toggle(2, 2))

	require.Equal(t, 1, grid.CountLivingCells())
	require.Equal(t, model.Alive, stateAt(t, grid, 2, 2))
}

func TestAdvance_EmptyBoardStaysEmpty(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{1, 1}, {3, 3}, {16, 9}} {
		grid := mustGrid(t, dims[0], dims[1])
		for range 5 {
			grid.Advance()
			require.Zero(t, grid.CountLivingCells())
		}
	}
}

func TestCountNeighbors_ClampsAtEdgesAndCorners(t *testing.T) {
	t.Parallel()

	// All nine cells alive: the count equals the number of candidate
	// neighbors each position actually has.
	grid := mustGrid(t, 3, 3,
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
		[2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1},
		[2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2},
	)

	require.Equal(t, 3, grid.CountNeighbors(0, 0), "corner")
	require.Equal(t, 3, grid.CountNeighbors(2, 2), "corner")
	require.Equal(t, 5, grid.CountNeighbors(1, 0), "edge")
	require.Equal(t, 5, grid.CountNeighbors(0, 1), "edge")
	require.Equal(t, 8, grid.CountNeighbors(1, 1), "interior")

	single := mustGrid(t, 1, 1)
	require.Zero(t, single.CountNeighbors(0, 0))
}

func TestAdvance_VerticalPairDoesNotReproduce(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 3, 3, [2]int{0, 0}, [2]int{0, 1})
	grid.Advance()

	// (1,1) saw only 2 live neighbors: a dead cell stays dead.
	require.Equal(t, model.Dead, stateAt(t, grid, 1, 1))
}

func TestAdvance_TrominoReproduces(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 3, 3, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0})
	grid.Advance()

	// (1,1) saw exactly 3 live neighbors: reproduction.
	require.Equal(t, model.Alive, stateAt(t, grid, 1, 1))
	// (1,0) saw 2 live neighbors: survives.
	require.Equal(t, model.Alive, stateAt(t, grid, 1, 0))
}

func TestAdvance_BlockCellSurvives(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 3, 3, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})
	grid.Advance()

	// Each block cell counts the other three: survival.
	require.Equal(t, model.Alive, stateAt(t, grid, 1, 0))
}

func TestAdvance_Overpopulation(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 4, 4,
		[2]int{1, 1}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 0}, [2]int{2, 0},
	)
	grid.Advance()

	// (1,1) saw 4 live neighbors: overpopulation.
	require.Equal(t, model.Dead, stateAt(t, grid, 1, 1))
}

func TestAdvance_BlockIsAStillLife(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 4, 4, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	want := grid.Fingerprint()

	for range 10 {
		grid.Advance()
		require.Equal(t, want, grid.Fingerprint())
	}
	require.Equal(t, 4, grid.CountLivingCells())
}

func TestAdvance_BlinkerOscillatesWithPeriodTwo(t *testing.T) {
	t.Parallel()

	grid := mustGrid(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	horizontal := grid.Fingerprint()

	grid.Advance()
	require.Equal(t, model.Alive, stateAt(t, grid, 2, 1))
	require.Equal(t, model.Alive, stateAt(t, grid, 2, 2))
	require.Equal(t, model.Alive, stateAt(t, grid, 2, 3))
	require.Equal(t, 3, grid.CountLivingCells())

	grid.Advance()
	require.Equal(t, horizontal, grid.Fingerprint())
}

func TestAdvance_IsDeterministic(t *testing.T) {
	t.Parallel()

	seed := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} // glider

	a := mustGrid(t, 12, 12, seed...)
	b := mustGrid(t, 12, 12, seed...)

	for range 25 {
		a.Advance()
		b.Advance()
		require.Equal(t, a.Fingerprint(), b.Fingerprint())
	}
}

func TestAdvance_NoWraparound(t *testing.T) {
	t.Parallel()

	// A blinker against the left edge: if columns wrapped, the pattern
	// would leak to the right edge.
	grid := mustGrid(t, 5, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	grid.Advance()

	for y := range 5 {
		require.Equal(t, model.Dead, stateAt(t, grid, 4, y))
	}
	// Vertical edge blinker becomes a horizontal pair stub: (0,2) and (1,2).
	require.Equal(t, model.Alive, stateAt(t, grid, 0, 2))
	require.Equal(t, model.Alive, stateAt(t, grid, 1, 2))
	require.Equal(t, 2, grid.CountLivingCells())
}
