package jewel

import "math/rand"

// ClearArea empties the area a special tile at p covers: its row for a
// horizontal clearer, its column for a vertical one, the 3x3 block around
// it (clipped to the board) for a bomb. It returns the number of filled
// cells removed; a Normal cell clears nothing.
func ClearArea(g *Grid, p Pos) int {
	if !p.In() {
		return 0
	}

	cleared := 0
	wipe := func(q Pos) {
		if !q.In() {
			return
		}
		if g.At(q).Filled {
			cleared++
		}
		g.Set(q, Empty())
	}

	switch g.At(p).Kind {
	case KindHorizontalClearer:
		for x := range Size {
			wipe(Pos{X: x, Y: p.Y})
		}
	case KindVerticalClearer:
		for y := range Size {
			wipe(Pos{X: p.X, Y: y})
		}
	case KindBomb:
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				wipe(p.Add(dx, dy))
			}
		}
	}
	return cleared
}

// Shuffle swaps every cell with a randomly chosen one.
func Shuffle(g *Grid, rng *rand.Rand) {
	for y := range Size {
		for x := range Size {
			g.Swap(Pos{X: x, Y: y}, Pos{X: rng.Intn(Size), Y: rng.Intn(Size)})
		}
	}
}
