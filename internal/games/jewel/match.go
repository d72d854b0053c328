package jewel

// Result describes one resolver pass.
type Result struct {
	Cleared int  // cells cleared by three-in-a-row matches
	Matched bool // at least one three-in-a-row was found
	Spawned int  // special tiles created from runs of four or five
}

// Resolve runs one match pass over the board: every row, then every column,
// spawns special tiles for runs of exactly four or five and marks every
// window of three equal Normal gems. Marked cells are cleared at the end.
// The pass is deterministic.
func Resolve(g *Grid) Result {
	var (
		marked [Size][Size]bool
		res    Result
	)

	for y := range Size {
		res.Spawned += spawnSpecials(g, 0, y, 1, 0, KindHorizontalClearer)
		if markWindows(g, &marked, 0, y, 1, 0) {
			res.Matched = true
		}
	}
	for x := range Size {
		res.Spawned += spawnSpecials(g, x, 0, 0, 1, KindVerticalClearer)
		if markWindows(g, &marked, x, 0, 0, 1) {
			res.Matched = true
		}
	}

	for y := range Size {
		for x := range Size {
			if marked[y][x] {
				g[y][x] = Empty()
				res.Cleared++
			}
		}
	}
	return res
}

// spawnSpecials walks one line starting at (x0, y0) in steps of (dx, dy).
// A run of exactly four turns its last cell into clearer; a run of exactly
// five turns its middle cell into a bomb.
func spawnSpecials(g *Grid, x0, y0, dx, dy int, clearer Kind) int {
	spawned := 0
	start := 0
	for i := 1; i <= Size; i++ {
		if i < Size && sameRun(g[y0+dy*(i-1)][x0+dx*(i-1)], g[y0+dy*i][x0+dx*i]) {
			continue
		}
		switch i - start {
		case 4:
			last := start + 3
			g[y0+dy*last][x0+dx*last].Kind = clearer
			spawned++
		case 5:
			mid := start + 2
			g[y0+dy*mid][x0+dx*mid].Kind = KindBomb
			spawned++
		}
		start = i
	}
	return spawned
}

// markWindows marks every window of three equal Normal gems on one line.
func markWindows(g *Grid, marked *[Size][Size]bool, x0, y0, dx, dy int) bool {
	found := false
	for i := 0; i+2 < Size; i++ {
		a := g[y0+dy*i][x0+dx*i]
		b := g[y0+dy*(i+1)][x0+dx*(i+1)]
		c := g[y0+dy*(i+2)][x0+dx*(i+2)]
		if !sameRun(a, b) || !sameRun(a, c) {
			continue
		}
		for j := i; j < i+3; j++ {
			marked[y0+dy*j][x0+dx*j] = true
		}
		found = true
	}
	return found
}
