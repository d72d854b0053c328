package jewel

import "github.com/vovakirdan/jewel-legend/internal/core"

// Kind is the role of a cell on the board.
type Kind uint8

const (
	KindNormal            Kind = iota // plain gem
	KindHorizontalClearer             // clears its row when activated
	KindVerticalClearer               // clears its column when activated
	KindBomb                          // clears the surrounding 3x3 block
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "Normal"
	case KindHorizontalClearer:
		return "HorizontalClearer"
	case KindVerticalClearer:
		return "VerticalClearer"
	case KindBomb:
		return "Bomb"
	default:
		return "Unknown"
	}
}

// Special reports whether the kind does something when activated.
func (k Kind) Special() bool {
	return k != KindNormal
}

// Gem is one of the six gem colours.
type Gem uint8

const (
	GemRed Gem = iota
	GemGreen
	GemBlue
	GemYellow
	GemOrange
	GemMagenta
)

// NumGems is the number of distinct gem colours.
const NumGems = 6

var gemColors = [NumGems]core.Color{
	GemRed:     core.ColorRed,
	GemGreen:   core.ColorGreen,
	GemBlue:    core.ColorBlue,
	GemYellow:  core.ColorYellow,
	GemOrange:  core.ColorOrange,
	GemMagenta: core.ColorMagenta,
}

// Color returns the panel colour of the gem.
func (g Gem) Color() core.Color {
	if int(g) >= NumGems {
		return core.ColorWhite
	}
	return gemColors[g]
}

// Cell is one board position. Gem is meaningful only when Filled.
type Cell struct {
	Kind   Kind
	Filled bool
	Gem    Gem
}

// Empty is the cleared state of a cell, awaiting refill.
func Empty() Cell {
	return Cell{}
}

// NewGemCell returns a filled Normal cell of the given colour.
func NewGemCell(g Gem) Cell {
	return Cell{Kind: KindNormal, Filled: true, Gem: g}
}

// Matchable reports whether the cell can take part in a run.
func (c Cell) Matchable() bool {
	return c.Filled && c.Kind == KindNormal
}

// sameRun reports whether a and b extend the same run.
func sameRun(a, b Cell) bool {
	return a.Matchable() && b.Matchable() && a.Gem == b.Gem
}
