package jewel

import (
	"math/rand"
	"testing"
)

// baseRows is a board without any pair of equal neighbours.
var baseRows = []string{
	"450123450",
	"234501234",
	"012345012",
	"450123450",
	"234501234",
	"012345012",
	"450123450",
	"234501234",
	"012345012",
}

func mustGrid(t *testing.T, rows ...string) Grid {
	t.Helper()
	g, ok := ParseGrid(rows...)
	if !ok {
		t.Fatalf("bad grid literal %q", rows)
	}
	return g
}

// withRow returns baseRows with the row y (0 = bottom) replaced.
func withRow(y int, row string) []string {
	rows := append([]string(nil), baseRows...)
	rows[Size-1-y] = row
	return rows
}

func TestNewGridHasNoRuns(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		g := NewGrid(rand.New(rand.NewSource(seed)))
		if !g.Full() {
			t.Fatalf("seed %d: grid not full", seed)
		}
		if g.HasRun() {
			t.Fatalf("seed %d: initial grid has a run:\n%s", seed, g.String())
		}
		for y := range Size {
			for x := range Size {
				if g[y][x].Kind != KindNormal || g[y][x].Gem >= NumGems {
					t.Fatalf("seed %d: bad cell at (%d,%d): %+v", seed, x, y, g[y][x])
				}
			}
		}
	}
}

func TestNewGridDeterministic(t *testing.T) {
	a := NewGrid(rand.New(rand.NewSource(7)))
	b := NewGrid(rand.New(rand.NewSource(7)))
	if a != b {
		t.Error("same seed produced different grids")
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	g := mustGrid(t, withRow(0, "-|*.12345")...)
	if got := g.String(); got != "450123450\n234501234\n012345012\n450123450\n234501234\n012345012\n450123450\n234501234\n-|*.12345" {
		t.Errorf("String() =\n%s", got)
	}
	if g[0][0].Kind != KindHorizontalClearer || g[0][1].Kind != KindVerticalClearer || g[0][2].Kind != KindBomb {
		t.Error("special kinds not parsed")
	}
	if g[0][3].Filled {
		t.Error("'.' should be an empty cell")
	}
	if _, ok := ParseGrid("123"); ok {
		t.Error("short literal should be rejected")
	}
}

func TestGridSwap(t *testing.T) {
	g := mustGrid(t, baseRows...)
	a, b := Pos{X: 0, Y: 0}, Pos{X: 0, Y: 1}
	ca, cb := g.At(a), g.At(b)

	g.Swap(a, b)
	if g.At(a) != cb || g.At(b) != ca {
		t.Error("Swap did not exchange cells")
	}
}

func TestGridBytes(t *testing.T) {
	g := mustGrid(t, withRow(0, ".1*345012")...)
	b := g.Bytes()
	if len(b) != Size*Size {
		t.Fatalf("len = %d", len(b))
	}
	if b[0] != 0xFF {
		t.Errorf("empty cell byte = %#02x, want 0xFF", b[0])
	}
	if b[1] != 0x01 {
		t.Errorf("gem byte = %#02x, want 0x01", b[1])
	}
	if b[2] != byte(KindBomb)<<4 {
		t.Errorf("bomb byte = %#02x", b[2])
	}
}

func TestPosIn(t *testing.T) {
	tests := []struct {
		p    Pos
		want bool
	}{
		{Pos{0, 0}, true},
		{Pos{8, 8}, true},
		{Pos{-1, 0}, false},
		{Pos{0, 9}, false},
		{Pos{9, 4}, false},
	}
	for _, tt := range tests {
		if got := tt.p.In(); got != tt.want {
			t.Errorf("%v.In() = %v, want %v", tt.p, got, tt.want)
		}
	}
}
