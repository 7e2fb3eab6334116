package model

import (
	"crypto/md5"
	"fmt"
)

// Keep only the last few states to detect short cycles
const historyDepth = 5

// Fingerprint returns an MD5 digest of the current grid state.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		if c == Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory records the current fingerprint and trims old entries.
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Fingerprint())
	if len(g.history) > historyDepth {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a static state or a cycle of
// period three or less.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.Fingerprint()

	for period := 1; period <= 3; period++ {
		if g.history[len(g.history)-period] == currentHash {
			return true
		}
	}

	return false
}
