package model

import (
	"math/rand"

	"github.com/cellgrid/golife/utils"
)

// seed writes a cell directly, ignoring out-of-range coordinates so a
// pattern can be stamped near an edge without per-cell bounds arithmetic.
// The strict public mutation surface stays Toggle.
func (g *Grid) seed(x, y int, state CellState) {
	if g.inBounds(x, y) {
		g.cells[y*g.width+x] = state
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]CellState{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.seed(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker adds the period-2 blinker oscillator
func (g *Grid) AddBlinker(startX, startY int) {
	g.seed(startX, startY, Alive)
	g.seed(startX+1, startY, Alive)
	g.seed(startX+2, startY, Alive)
}

// AddBlock adds the 2x2 block still life
func (g *Grid) AddBlock(startX, startY int) {
	g.seed(startX, startY, Alive)
	g.seed(startX+1, startY, Alive)
	g.seed(startX, startY+1, Alive)
	g.seed(startX+1, startY+1, Alive)
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(density float64) {
	for y := range g.height {
		for x := range g.width {
			if rand.Float64() < density {
				g.seed(x, y, Alive)
			} else {
				g.seed(x, y, Dead)
			}
		}
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Grid) InjectRandomLife(count int) {
	for range count {
		g.seed(rand.Intn(g.width), rand.Intn(g.height), Alive)
	}
}

// SeedDemoPatterns clears the grid and adds various interesting patterns
func (g *Grid) SeedDemoPatterns(config utils.Config) {
	g.Clear()

	// Random life first, then stamp patterns on top so they survive seeding
	g.Randomize(config.RandomDensity)

	// Add some simple patterns
	if g.width >= 10 && g.height >= 10 {
		// Add some gliders
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5)
		}

		// Add oscillators
		g.AddBlinker(g.width/4, g.height/4)
		if g.width >= 30 {
			g.AddBlinker(3*g.width/4, 3*g.height/4)
		}
	}
}
