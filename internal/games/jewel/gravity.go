package jewel

import "math/rand"

// Settle lets gems fall into empty cells and refills the top row until the
// board is full. It returns the number of refill rounds; a settled board
// yields 0 and is left unchanged.
func Settle(g *Grid, rng *rand.Rand) int {
	rounds := 0
	for SettleStep(g, rng) {
		rounds++
	}
	return rounds
}

// SettleStep runs one round: sweeps every column bottom-up until nothing
// falls, then drops a fresh gem into each empty top cell. It reports
// whether any cell was refilled.
func SettleStep(g *Grid, rng *rand.Rand) bool {
	for fall(g) {
	}

	refilled := false
	for x := range Size {
		if g[Size-1][x].Filled {
			continue
		}
		g[Size-1][x] = NewGemCell(Gem(rng.Intn(NumGems)))
		refilled = true
	}
	return refilled
}

// fall moves every filled cell that sits on an empty one down by a single
// row and reports whether anything moved.
func fall(g *Grid) bool {
	moved := false
	for x := range Size {
		for y := 0; y < Size-1; y++ {
			if !g[y][x].Filled && g[y+1][x].Filled {
				g[y][x] = g[y+1][x]
				g[y+1][x] = Empty()
				moved = true
			}
		}
	}
	return moved
}
