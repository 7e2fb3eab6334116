package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/cellgrid/golife/rules"
)

// CellState is the state of a single cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// String returns the string representation of a cell state.
func (c CellState) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

var (
	// ErrInvalidDimensions is returned by NewGrid for non-positive width or height.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds is returned by Get and Toggle for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate outside grid bounds")
)

// Grid represents the game board. Dimensions are fixed at construction;
// cells are stored row-major.
type Grid struct {
	width   int
	height  int
	cells   []CellState
	history []string // Recent state fingerprints for cycle detection

	snapshots *GridPool
}

// NewGrid creates a new grid with the specified dimensions, every cell Dead.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	return &Grid{
		width:     width,
		height:    height,
		cells:     make([]CellState, width*height),
		snapshots: NewGridPool(),
	}, nil
}

// Width returns the width of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid.
func (g *Grid) Height() int {
	return g.height
}

// reset resizes a recycled grid and clears its state. Snapshot grids taken
// from the pool go through here, so they never carry a pool of their own.
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height
	g.history = nil
	if len(g.cells) != width*height {
		g.cells = make([]CellState, width*height)
	} else {
		clear(g.cells)
	}
}

// Clear kills all cells and forgets the fingerprint history.
func (g *Grid) Clear() {
	clear(g.cells)
	g.history = nil
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// at reads a cell without a bounds check. Callers stay inside the grid.
func (g *Grid) at(x, y int) CellState {
	return g.cells[y*g.width+x]
}

// Get returns the current state of the cell at (x, y). Out-of-range
// coordinates are a caller bug and fail with ErrOutOfBounds rather than
// being clamped or wrapped.
func (g *Grid) Get(x, y int) (CellState, error) {
	if !g.inBounds(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	return g.at(x, y), nil
}

// Toggle flips the cell at (x, y) between Alive and Dead. Same bounds
// contract as Get; exactly one cell is mutated.
func (g *Grid) Toggle(x, y int) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Toggle] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	i := y*g.width + x
	if g.cells[i] == Alive {
		g.cells[i] = Dead
	} else {
		g.cells[i] = Alive
	}
	return nil
}

// CountNeighbors counts living Moore neighbors of (x, y), clamping the
// offset window to the grid. Edge and corner cells simply have fewer
// candidate neighbors; nothing wraps around.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.at(nx, ny) == Alive {
				count++
			}
		}
	}

	return count
}

// Advance computes and commits the next generation in place. The live cells
// are copied into a pooled snapshot first and every neighbor count reads the
// snapshot only, so the whole transition derives from one consistent prior
// state no matter how the row workers interleave. Advance cannot fail on a
// validly constructed grid; it must not run concurrently with itself or with
// Get/Toggle on the same grid.
func (g *Grid) Advance() {
	snap := g.snapshots.Get(g.width, g.height)
	copy(snap.cells, g.cells)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					if rules.Next(snap.CountNeighbors(x, y), snap.at(x, y) == Alive) {
						g.cells[y*g.width+x] = Alive
					} else {
						g.cells[y*g.width+x] = Dead
					}
				}
			}
			return nil
		})
	}

	_ = eg.Wait() // row workers never return errors

	g.snapshots.Put(snap)
}

// CountLivingCells returns the total number of living cells.
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}
