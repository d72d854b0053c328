package jewel

import (
	"math/rand"
	"testing"
)

func TestSettleFallsAndRefills(t *testing.T) {
	g := mustGrid(t, baseRows...)
	before := g
	g[0][0] = Empty()

	rng := rand.New(rand.NewSource(1))
	if rounds := Settle(&g, rng); rounds != 1 {
		t.Errorf("rounds = %d, want 1", rounds)
	}
	if !g.Full() {
		t.Fatal("board not full after Settle")
	}
	for y := 0; y < Size-1; y++ {
		if g[y][0] != before[y+1][0] {
			t.Errorf("row %d holds %+v, want the cell from above %+v", y, g[y][0], before[y+1][0])
		}
	}
	for x := 1; x < Size; x++ {
		for y := range Size {
			if g[y][x] != before[y][x] {
				t.Fatalf("column %d changed", x)
			}
		}
	}
}

func TestSettleKeepsSpecialKinds(t *testing.T) {
	g := mustGrid(t, baseRows...)
	g[3][4] = Cell{Kind: KindBomb, Filled: true, Gem: GemBlue}
	g[0][4] = Empty()
	g[1][4] = Empty()

	Settle(&g, rand.New(rand.NewSource(2)))
	if g[1][4].Kind != KindBomb || g[1][4].Gem != GemBlue {
		t.Errorf("bomb did not fall two rows: %+v", g[1][4])
	}
}

func TestSettleWholeColumn(t *testing.T) {
	g := mustGrid(t, baseRows...)
	for y := range Size {
		g[y][6] = Empty()
	}

	rounds := Settle(&g, rand.New(rand.NewSource(3)))
	if rounds != Size {
		t.Errorf("rounds = %d, want %d", rounds, Size)
	}
	if !g.Full() {
		t.Error("board not full")
	}
}

func TestSettleIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g := NewGrid(rng)
	for _, p := range []Pos{{0, 0}, {3, 3}, {3, 4}, {8, 8}, {5, 0}} {
		g.Set(p, Empty())
	}

	Settle(&g, rng)
	settled := g
	if rounds := Settle(&g, rng); rounds != 0 {
		t.Errorf("second Settle ran %d rounds", rounds)
	}
	if g != settled {
		t.Error("second Settle changed the board")
	}
}

func TestClearArea(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		at   Pos
		want int
	}{
		{"horizontal clearer", KindHorizontalClearer, Pos{4, 2}, Size},
		{"vertical clearer", KindVerticalClearer, Pos{4, 2}, Size},
		{"bomb in the middle", KindBomb, Pos{4, 4}, 9},
		{"bomb in a corner", KindBomb, Pos{0, 0}, 4},
		{"bomb on an edge", KindBomb, Pos{8, 4}, 6},
		{"normal", KindNormal, Pos{4, 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, baseRows...)
			g[tt.at.Y][tt.at.X].Kind = tt.kind

			if got := ClearArea(&g, tt.at); got != tt.want {
				t.Errorf("ClearArea() = %d, want %d", got, tt.want)
			}
			empty := 0
			for y := range Size {
				for x := range Size {
					if !g[y][x].Filled {
						empty++
						if g[y][x] != Empty() {
							t.Errorf("cleared cell (%d,%d) = %+v", x, y, g[y][x])
						}
					}
				}
			}
			if empty != tt.want {
				t.Errorf("empty cells = %d, want %d", empty, tt.want)
			}
		})
	}
}

func TestShufflePreservesCells(t *testing.T) {
	g := mustGrid(t, withRow(0, "-|*345012")...)
	count := func(g Grid) map[Cell]int {
		m := make(map[Cell]int)
		for y := range Size {
			for x := range Size {
				m[g[y][x]]++
			}
		}
		return m
	}
	before := count(g)

	Shuffle(&g, rand.New(rand.NewSource(5)))

	after := count(g)
	if len(after) != len(before) {
		t.Fatalf("cell set changed: %v vs %v", before, after)
	}
	for c, n := range before {
		if after[c] != n {
			t.Errorf("cell %+v: %d before, %d after", c, n, after[c])
		}
	}
}
