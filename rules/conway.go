package rules

/*
Next applies Conway's Game of Life rules to determine the next state of a
cell, given its completed live-neighbor count and its current state.

The rule runs exactly once per cell, after the full count is known:
  - neighbors <= 1: dies (underpopulation)
  - neighbors == 2: unchanged (stable)
  - neighbors == 3: alive (reproduction / survival)
  - neighbors >= 4: dies (overpopulation)
*/
func Next(neighbors int, alive bool) bool {
	switch {
	case neighbors <= 1:
		return false
	case neighbors == 2:
		return alive
	case neighbors == 3:
		return true
	default:
		return false
	}
}
