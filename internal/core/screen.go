package core

import (
	"strings"
)

// Surface is the drawing contract of the display panel. The renderer paints
// engine snapshots through it and never touches a concrete device.
type Surface interface {
	// Size returns the drawable area in surface units.
	Size() (w, h int)
	// FillRect paints a solid rectangle. Parts outside the surface are clipped.
	FillRect(c Color, x, y, w, h int)
	// DrawPixel sets a single unit.
	DrawPixel(x, y int, c Color)
	// DrawString writes text with its top-left corner at (x, y).
	DrawString(x, y int, text string, fg, bg Color)
}

// Cell is one character position of a Screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// pixelRune is what DrawPixel leaves in a cell.
const pixelRune = '█'

// Screen is a 2D character buffer implementing Surface for terminals. One
// surface unit is one character cell.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size implements Surface.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Clear fills the entire screen with black blanks.
func (s *Screen) Clear() {
	blank := Cell{Rune: ' ', Fg: ColorWhite, Bg: ColorBlack}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Fg: ColorWhite, Bg: ColorBlack}
	}
	return s.cells[y][x]
}

// FillRect implements Surface. Filled cells are blanks with the given
// background.
func (s *Screen) FillRect(c Color, x, y, w, h int) {
	r := NewRect(x, y, w, h).Intersect(NewRect(0, 0, s.width, s.height))
	for yy := r.Y; yy < r.Bottom(); yy++ {
		for xx := r.X; xx < r.Right(); xx++ {
			s.cells[yy][xx] = Cell{Rune: ' ', Fg: c, Bg: c}
		}
	}
}

// DrawPixel implements Surface with a full block in the foreground colour.
func (s *Screen) DrawPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = pixelRune
	s.cells[y][x].Fg = c
}

// DrawString implements Surface. Characters beyond the right edge are
// clipped.
func (s *Screen) DrawString(x, y int, text string, fg, bg Color) {
	if y < 0 || y >= s.height {
		return
	}
	i := 0
	for _, r := range text {
		if xx := x + i; xx >= 0 && xx < s.width {
			s.cells[y][xx] = Cell{Rune: r, Fg: fg, Bg: bg}
		}
		i++
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
