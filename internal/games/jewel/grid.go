package jewel

import (
	"fmt"
	"math/rand"
	"strings"
)

// Size is the board dimension.
const Size = 9

// Pos is a board coordinate. Row 0 is the bottom row.
type Pos struct {
	X, Y int
}

// In reports whether p lies on the board.
func (p Pos) In() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Add returns p shifted by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the board, indexed [y][x]. It is a value type: assigning a Grid
// copies it.
type Grid [Size][Size]Cell

// At returns the cell at p.
func (g *Grid) At(p Pos) Cell {
	return g[p.Y][p.X]
}

// Set stores c at p.
func (g *Grid) Set(p Pos, c Cell) {
	g[p.Y][p.X] = c
}

// Swap exchanges the cells at a and b, kind and colour together.
func (g *Grid) Swap(a, b Pos) {
	g[a.Y][a.X], g[b.Y][b.X] = g[b.Y][b.X], g[a.Y][a.X]
}

// Bytes encodes the board row by row, one byte per cell: 0xFF for an empty
// cell, otherwise kind<<4 | gem.
func (g *Grid) Bytes() []byte {
	out := make([]byte, 0, Size*Size)
	for y := range Size {
		for x := range Size {
			c := g[y][x]
			if !c.Filled {
				out = append(out, 0xFF)
				continue
			}
			out = append(out, byte(c.Kind)<<4|byte(c.Gem))
		}
	}
	return out
}

// String draws the board top row first, gems as digits, empties as '.',
// clearers as '-' and '|', bombs as '*'.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := range Size {
			c := g[y][x]
			switch {
			case !c.Filled:
				sb.WriteByte('.')
			case c.Kind == KindHorizontalClearer:
				sb.WriteByte('-')
			case c.Kind == KindVerticalClearer:
				sb.WriteByte('|')
			case c.Kind == KindBomb:
				sb.WriteByte('*')
			default:
				sb.WriteByte('0' + byte(c.Gem))
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// NewGrid fills a board with random gems such that no row or column holds
// a run of three.
func NewGrid(rng *rand.Rand) Grid {
	var g Grid
	for y := range Size {
		for x := range Size {
			gem := Gem(rng.Intn(NumGems))
			// At most two colours are excluded, so this terminates.
			for completesRun(&g, x, y, gem) {
				gem = (gem + 1) % NumGems
			}
			g[y][x] = NewGemCell(gem)
		}
	}
	return g
}

// completesRun reports whether placing gem at (x, y) would complete a run
// with the two cells to its left or the two below it.
func completesRun(g *Grid, x, y int, gem Gem) bool {
	if x >= 2 && g[y][x-1].Gem == gem && g[y][x-2].Gem == gem {
		return true
	}
	if y >= 2 && g[y-1][x].Gem == gem && g[y-2][x].Gem == gem {
		return true
	}
	return false
}

// ParseGrid builds a board from rows written top row first in the String
// format.
func ParseGrid(rows ...string) (Grid, bool) {
	var g Grid
	if len(rows) != Size {
		return g, false
	}
	for i, row := range rows {
		if len(row) != Size {
			return g, false
		}
		y := Size - 1 - i
		for x := range Size {
			switch ch := row[x]; {
			case ch == '.':
				g[y][x] = Empty()
			case ch == '-':
				g[y][x] = Cell{Kind: KindHorizontalClearer, Filled: true}
			case ch == '|':
				g[y][x] = Cell{Kind: KindVerticalClearer, Filled: true}
			case ch == '*':
				g[y][x] = Cell{Kind: KindBomb, Filled: true}
			case ch >= '0' && ch < '0'+NumGems:
				g[y][x] = NewGemCell(Gem(ch - '0'))
			default:
				return g, false
			}
		}
	}
	return g, true
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
