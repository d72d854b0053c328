package jewel

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jewel-legend/internal/core"
)

// Layout places the board, the HUD and text on a surface. Units are those
// of the surface: pixels on the panel, character cells on a terminal.
type Layout struct {
	Width, Height int

	Bezel int // frame around the active area, 0 for none

	GridX, GridY int // top-left corner of the top row's first tile
	TileW, TileH int
	GridMargin   int // background margin around the tiles
	Border       int // cell border thickness

	CursorW, CursorH     int // cursor frame thickness on the sides, top and bottom
	GemInsetX, GemInsetY int // gem block inset when Shapes is off

	// Shapes draws each colour with its own glyph and pixel markers for
	// special tiles. It needs 20x20 tiles.
	Shapes bool

	CharW, GlyphH, LineH int

	HUD    core.Rect
	HUDPad int
	TimeX  int // offset of the timer text inside the HUD
}

// PixelLayout is the 240x320 panel layout.
func PixelLayout() Layout {
	return Layout{
		Width:      240,
		Height:     320,
		Bezel:      10,
		GridX:      30,
		GridY:      90,
		TileW:      20,
		TileH:      20,
		GridMargin: 5,
		Border:     1,
		CursorW:    2,
		CursorH:    2,
		Shapes:     true,
		CharW:      7,
		GlyphH:     13,
		LineH:      20,
		HUD:        core.NewRect(10, 35, 220, 25),
		HUDPad:     5,
		TimeX:      110,
	}
}

// TerminalLayout is the character-cell layout: 5x2 tiles with the cursor
// drawn as side bars.
func TerminalLayout() Layout {
	return Layout{
		Width:      80,
		Height:     22,
		GridX:      17,
		GridY:      3,
		TileW:      5,
		TileH:      2,
		GridMargin: 1,
		CursorW:    1,
		GemInsetX:  1,
		CharW:      1,
		GlyphH:     1,
		LineH:      1,
		HUD:        core.NewRect(16, 0, 47, 1),
		HUDPad:     1,
		TimeX:      36,
	}
}

// TileRect returns the area of the tile at p. Row 0 is at the bottom.
func (l Layout) TileRect(p Pos) core.Rect {
	return core.NewRect(
		l.GridX+p.X*l.TileW,
		l.GridY+(Size-1-p.Y)*l.TileH,
		l.TileW,
		l.TileH,
	)
}

// Renderer paints snapshots onto a Surface.
type Renderer struct {
	layout Layout
}

// NewRenderer creates a renderer for l.
func NewRenderer(l Layout) *Renderer {
	return &Renderer{layout: l}
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// textLine is one centred line of a text screen.
type textLine struct {
	text string
	fg   core.Color
}

// Render draws the whole screen for s.
func (r *Renderer) Render(dst core.Surface, s Snapshot) {
	r.frame(dst)

	switch s.Phase {
	case PhaseMenu:
		r.text(dst, []textLine{
			{"JEWEL LEGEND", core.ColorCyan},
			{"", 0},
			{"SWAP GEMS TO LINE UP", core.ColorWhite},
			{"THREE OF A COLOUR", core.ColorWhite},
			{"", 0},
			{"PRESS KEY 1", core.ColorYellow},
			{"TO START", core.ColorYellow},
		})
	case PhaseInstructions:
		r.text(dst, []textLine{
			{"-- HOW TO PLAY --", core.ColorWhite},
			{"", 0},
			{"Key 8: UP", core.ColorWhite},
			{"Key 2: DOWN", core.ColorWhite},
			{"Key 4: LEFT", core.ColorWhite},
			{"Key 6: RIGHT", core.ColorWhite},
			{"Key -: SHUFFLE", core.ColorWhite},
			{"", 0},
			{"Key 5: SELECT/SWAP", core.ColorRed},
			{"", 0},
			{"PRESS KEY 1", core.ColorYellow},
		})
	case PhasePlaying:
		r.board(dst, s)
		r.hud(dst, s)
	case PhaseGameOver:
		r.text(dst, []textLine{
			{"GAME OVER", core.ColorRed},
			{"", 0},
			{fmt.Sprintf("FINAL: %d", s.Score), core.ColorWhite},
			{fmt.Sprintf("BEST: %d", s.Best), core.ColorGold},
			{"", 0},
			{"PRESS KEY UP", core.ColorYellow},
			{"TO RESET", core.ColorYellow},
		})
	}
}

func (r *Renderer) frame(dst core.Surface) {
	l := r.layout
	w, h := dst.Size()
	if l.Bezel <= 0 {
		dst.FillRect(core.ColorBlack, 0, 0, w, h)
		return
	}
	dst.FillRect(core.ColorGrey, 0, 0, w, h)
	dst.FillRect(core.ColorBlack, l.Bezel, l.Bezel, l.Width-2*l.Bezel, l.Height-2*l.Bezel)
}

func (r *Renderer) text(dst core.Surface, lines []textLine) {
	l := r.layout
	top := (l.Height - len(lines)*l.LineH) / 2
	for i, ln := range lines {
		if ln.text == "" {
			continue
		}
		x := (l.Width - len(ln.text)*l.CharW) / 2
		dst.DrawString(x, top+i*l.LineH, ln.text, ln.fg, core.ColorBlack)
	}
}

func (r *Renderer) hud(dst core.Surface, s Snapshot) {
	l := r.layout
	dst.FillRect(core.ColorLightGrey, l.HUD.X, l.HUD.Y, l.HUD.W, l.HUD.H)

	ty := l.HUD.Y + (l.HUD.H-l.GlyphH)/2
	dst.DrawString(l.HUD.X+l.HUDPad, ty, fmt.Sprintf("PTS: %d", s.Score), core.ColorBlack, core.ColorLightGrey)
	dst.DrawString(l.HUD.X+l.TimeX, ty, FormatTimer(s.Timer), core.ColorRed, core.ColorLightGrey)
}

// FormatTimer renders seconds as "TIME mm:ss".
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("TIME %02d:%02d", seconds/60, seconds%60)
}

func (r *Renderer) board(dst core.Surface, s Snapshot) {
	l := r.layout
	m := l.GridMargin
	dst.FillRect(core.ColorGridBG, l.GridX-m, l.GridY-m, Size*l.TileW+2*m, Size*l.TileH+2*m)

	for y := range Size {
		for x := range Size {
			p := Pos{X: x, Y: y}
			r.tile(dst, l.TileRect(p), s.Grid.At(p))
			if p == s.Cursor {
				r.cursor(dst, l.TileRect(p), s.Selected)
			}
		}
	}
}

func (r *Renderer) tile(dst core.Surface, t core.Rect, c Cell) {
	l := r.layout
	dst.FillRect(core.ColorGridBG, t.X, t.Y, t.W, t.H)
	if b := l.Border; b > 0 {
		dst.FillRect(core.ColorCellBorder, t.X, t.Y, t.W, b)
		dst.FillRect(core.ColorCellBorder, t.X, t.Bottom()-b, t.W, b)
		dst.FillRect(core.ColorCellBorder, t.X, t.Y, b, t.H)
		dst.FillRect(core.ColorCellBorder, t.Right()-b, t.Y, b, t.H)
	}
	if !c.Filled {
		return
	}

	if l.Shapes {
		drawShape(dst, t, c.Gem)
		drawMarker(dst, t, c.Kind)
		return
	}

	gem := t.Inset(l.GemInsetX, l.GemInsetY)
	dst.FillRect(c.Gem.Color(), gem.X, gem.Y, gem.W, gem.H)
	if glyph := markerGlyph(c.Kind); glyph != "" {
		dst.DrawString(t.X+t.W/2, t.Y+(t.H-1)/2, glyph, core.ColorWhite, c.Gem.Color())
	}
}

func (r *Renderer) cursor(dst core.Surface, t core.Rect, selected bool) {
	l := r.layout
	c := core.ColorWhite
	if selected {
		c = core.ColorRed
	}
	if l.CursorH > 0 {
		dst.FillRect(c, t.X, t.Y, t.W, l.CursorH)
		dst.FillRect(c, t.X, t.Bottom()-l.CursorH, t.W, l.CursorH)
	}
	if l.CursorW > 0 {
		dst.FillRect(c, t.X, t.Y, l.CursorW, t.H)
		dst.FillRect(c, t.Right()-l.CursorW, t.Y, l.CursorW, t.H)
	}
}

func markerGlyph(k Kind) string {
	switch k {
	case KindHorizontalClearer:
		return "-"
	case KindVerticalClearer:
		return "|"
	case KindBomb:
		return "*"
	}
	return ""
}

// Text returns the plain text of a rendered character surface, trimmed of
// trailing blanks. Useful for logs and tests.
func Text(s *core.Screen) string {
	lines := strings.Split(s.String(), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " ")
	}
	return strings.Join(lines, "\n")
}
