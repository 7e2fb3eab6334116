package model

import "sync"

// GridPool recycles snapshot grids so steady-state stepping does not
// allocate a fresh buffer every generation.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resized and cleared.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put returns a grid to the pool for reuse.
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
