package jewel

// Load replaces the board of a running game.
func (e *Engine) Load(g Grid) {
	e.grid = g
}

// Full reports whether no cell is empty.
func (g *Grid) Full() bool {
	for y := range Size {
		for x := range Size {
			if !g[y][x].Filled {
				return false
			}
		}
	}
	return true
}

// HasRun reports whether three consecutive matchable cells of one colour
// exist in any row or column.
func (g *Grid) HasRun() bool {
	for y := range Size {
		for x := range Size {
			c := g[y][x]
			if !c.Matchable() {
				continue
			}
			if x+2 < Size && sameRun(c, g[y][x+1]) && sameRun(c, g[y][x+2]) {
				return true
			}
			if y+2 < Size && sameRun(c, g[y+1][x]) && sameRun(c, g[y+2][x]) {
				return true
			}
		}
	}
	return false
}
