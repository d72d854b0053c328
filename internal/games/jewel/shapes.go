package jewel

import "github.com/vovakirdan/jewel-legend/internal/core"

// tilePainter draws inside a 20x20 tile with a bottom-left origin, y up,
// the way the panel glyphs were designed.
type tilePainter struct {
	dst core.Surface
	t   core.Rect
}

func (p tilePainter) fill(c core.Color, x, w, y, h int) {
	p.dst.FillRect(c, p.t.X+x, p.t.Y+p.t.H-y-h, w, h)
}

func (p tilePainter) dot(c core.Color, x, y int) {
	p.dst.DrawPixel(p.t.X+x, p.t.Y+p.t.H-y-1, c)
}

// drawShape draws the glyph of a gem colour: square, circle, diamond,
// pentagon, triangle and plus.
func drawShape(dst core.Surface, t core.Rect, g Gem) {
	p := tilePainter{dst: dst, t: t}
	c := g.Color()
	const cx, cy = 10, 10

	switch g {
	case GemRed:
		p.fill(c, 5, 10, 5, 10)

	case GemGreen:
		p.fill(c, 7, 6, 4, 1)
		p.fill(c, 5, 10, 5, 1)
		p.fill(c, 4, 12, 6, 8)
		p.fill(c, 5, 10, 14, 1)
		p.fill(c, 7, 6, 15, 1)

	case GemBlue:
		for i := range 6 {
			w := 2*i + 1
			p.fill(c, cx-i, w, cy+(5-i), 1)
			p.fill(c, cx-i, w, cy-(5-i), 1)
		}
		p.fill(c, 4, 13, cy, 1)

	case GemYellow:
		for i := range 5 {
			w := 2*i + 2
			p.fill(c, cx-w/2, w, cy-5+i, 1)
		}
		for i := range 6 {
			w := 10 - i
			p.fill(c, cx-w/2, w, cy+i, 1)
		}

	case GemOrange:
		for i := range 11 {
			w := 11 - i
			p.fill(c, cx-w/2, w, 5+i, 1)
		}

	case GemMagenta:
		p.fill(c, 8, 4, 3, 14)
		p.fill(c, 3, 14, 8, 4)
	}
}

func drawMarker(dst core.Surface, t core.Rect, k Kind) {
	p := tilePainter{dst: dst, t: t}
	const cx, cy = 10, 10

	switch k {
	case KindHorizontalClearer:
		p.fill(core.ColorWhite, 3, 14, cy-1, 2)
	case KindVerticalClearer:
		p.fill(core.ColorWhite, cx-1, 2, 3, 14)
	case KindBomb:
		p.fill(core.ColorWhite, cx-3, 6, cy-3, 6)
		p.dot(core.ColorRed, cx, cy)
	}
}
