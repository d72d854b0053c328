package core

import "fmt"

// Color is a 16-bit RGB565 colour, the native pixel format of the LCD panel.
// It satisfies image/color.Color so pixel surfaces can use it directly.
type Color uint16

// Panel palette.
const (
	ColorBlack     Color = 0x0000
	ColorWhite     Color = 0xFFFF
	ColorBlue      Color = 0x001F
	ColorGreen     Color = 0x944A
	ColorRed       Color = 0xF800
	ColorYellow    Color = 0xFFE0
	ColorOrange    Color = 0xFD20
	ColorCyan      Color = 0x07FF
	ColorMagenta   Color = 0xF81F
	ColorGrey      Color = 0x528A
	ColorDarkGrey  Color = 0x2124
	ColorLightGrey Color = 0xA534
	ColorGold      Color = 0xFEA0

	ColorGridBG     Color = 0x10A2 // very dark blue behind the grid
	ColorCellBorder Color = 0x4208 // line between cells
)

// RGB8 expands the colour to 8-bit channels, replicating the high bits into
// the low ones so that white maps to 0xFF.
func (c Color) RGB8() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements image/color.Color. The panel has no alpha channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB8()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Hex returns the colour as a "#rrggbb" string for truecolor terminals.
func (c Color) Hex() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
