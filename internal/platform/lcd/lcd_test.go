package lcd

import (
	"context"
	"encoding/binary"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/jewel-legend/internal/config"
	"github.com/vovakirdan/jewel-legend/internal/console"
	"github.com/vovakirdan/jewel-legend/internal/core"
	"github.com/vovakirdan/jewel-legend/internal/games/jewel"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
)

func rgb(c color.Color) [3]uint32 {
	r, g, b, _ := c.RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func TestPanelFillRectClips(t *testing.T) {
	p := NewPanel(20, 10)
	p.FillRect(core.ColorRed, 15, 5, 10, 10)

	if got, want := rgb(p.Image().At(19, 9)), rgb(core.ColorRed); got != want {
		t.Errorf("corner = %v, want %v", got, want)
	}
	if got, want := rgb(p.Image().At(14, 5)), rgb(core.ColorBlack); got != want {
		t.Errorf("outside = %v, want black", got)
	}

	// Entirely outside: no panic, nothing drawn.
	p.FillRect(core.ColorBlue, 30, 30, 5, 5)
}

func TestPanelDrawPixel(t *testing.T) {
	p := NewPanel(4, 4)
	p.DrawPixel(2, 1, core.ColorYellow)
	p.DrawPixel(-1, 9, core.ColorYellow)

	if got, want := rgb(p.Image().At(2, 1)), rgb(core.ColorYellow); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestPanelDrawString(t *testing.T) {
	p := NewPanel(60, 20)
	p.DrawString(2, 2, "PTS", core.ColorWhite, core.ColorLightGrey)

	bg := rgb(core.ColorLightGrey)
	fg := rgb(core.ColorWhite)

	// The text box is 3 glyphs of 7x13 starting at (2,2).
	if got := rgb(p.Image().At(2, 2)); got != bg {
		t.Errorf("box corner = %v, want background %v", got, bg)
	}
	if got := rgb(p.Image().At(2+3*7, 2)); got == bg {
		t.Error("background painted past the text")
	}

	ink := 0
	for y := 2; y < 15; y++ {
		for x := 2; x < 23; x++ {
			if rgb(p.Image().At(x, y)) == fg {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Error("no glyph pixels drawn")
	}
}

func samples(t *testing.T, w *SquareWave, frames int) []int16 {
	t.Helper()
	buf := make([]byte, frames*4)
	n, err := w.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read() = %d, %v", n, err)
	}
	out := make([]int16, frames)
	for i := range out {
		l := int16(binary.LittleEndian.Uint16(buf[i*4:]))
		r := int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d right %d", i, l, r)
		}
		out[i] = l
	}
	return out
}

func TestSquareWaveSilentWhenOff(t *testing.T) {
	w := NewSquareWave(880, 0.5)
	for i, v := range samples(t, w, 128) {
		if v != 0 {
			t.Fatalf("sample %d = %d, want silence", i, v)
		}
	}
}

func TestSquareWaveToggles(t *testing.T) {
	// 441 Hz at 44.1 kHz: 50 samples high, 50 low.
	w := NewSquareWave(441, 1)
	w.On()
	if !w.Sounding() {
		t.Fatal("Sounding() = false after On")
	}

	s := samples(t, w, 100)
	if s[0] <= 0 || s[49] <= 0 {
		t.Errorf("first half = %d..%d, want positive", s[0], s[49])
	}
	if s[50] >= 0 || s[99] >= 0 {
		t.Errorf("second half = %d..%d, want negative", s[50], s[99])
	}

	w.Off()
	if s := samples(t, w, 4); s[0] != 0 {
		t.Errorf("sample after Off = %d", s[0])
	}
}

func TestSquareWavePartialFrame(t *testing.T) {
	w := NewSquareWave(880, 1)
	w.On()
	buf := make([]byte, 6)
	n, _ := w.Read(buf)
	if n != 4 {
		t.Errorf("Read(6 bytes) = %d, want one whole frame", n)
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		key    ebiten.Key
		pad    ps2.Keypad
		button Button
	}{
		{ebiten.KeyNumpad8, ps2.Key8, ButtonNone},
		{ebiten.KeyNumpadSubtract, ps2.KeyMinus, ButtonNone},
		{ebiten.KeyArrowLeft, ps2.Key4, ButtonNone},
		{ebiten.KeyEnter, ps2.Key5, ButtonNone},
		{ebiten.KeyDigit6, ps2.Key6, ButtonNone},
		{ebiten.KeyDigit1, ps2.KeyNone, ButtonStart},
		{ebiten.KeyF2, ps2.KeyNone, ButtonReset},
		{ebiten.KeyEscape, ps2.KeyNone, ButtonQuit},
		{ebiten.KeyF12, ps2.KeyNone, ButtonScreenshot},
		{ebiten.KeyZ, ps2.KeyNone, ButtonNone},
	}
	for _, tt := range tests {
		pad, button := km.Lookup(tt.key)
		if pad != tt.pad || button != tt.button {
			t.Errorf("Lookup(%v) = %v, %v; want %v, %v", tt.key, pad, button, tt.pad, tt.button)
		}
	}

	if len(km.Keys()) != len(km.Keypad)+len(km.Buttons) {
		t.Error("Keys() should list every binding once")
	}
}

func TestEbitenKeyNames(t *testing.T) {
	tests := []struct {
		name string
		key  ebiten.Key
		ok   bool
	}{
		{"k", ebiten.KeyK, true},
		{"S", ebiten.KeyS, true},
		{"7", ebiten.KeyDigit7, true},
		{"f1", ebiten.KeyF1, true},
		{"space", ebiten.KeySpace, true},
		{"ctrl+c", 0, false},
		{"bogus", 0, false},
	}
	for _, tt := range tests {
		k, ok := ebitenKey(tt.name)
		if ok != tt.ok || (ok && k != tt.key) {
			t.Errorf("ebitenKey(%q) = %v, %v", tt.name, k, ok)
		}
	}
}

func TestGamePaintsPublishedFrame(t *testing.T) {
	g := NewGame(context.Background(), NewKeyMap(config.Default().Keys), nil)
	g.Publish(console.Frame{Snapshot: jewel.Snapshot{Phase: jewel.PhasePlaying, Timer: 60}})
	g.paint()

	l := jewel.PixelLayout()
	if got, want := rgb(g.panel.Image().At(l.HUD.X+1, l.HUD.Y+1)), rgb(core.ColorLightGrey); got != want {
		t.Errorf("HUD pixel = %v, want %v", got, want)
	}
	if g.dirty {
		t.Error("paint should clear the dirty flag")
	}

	w, h := g.Layout(1000, 1000)
	if w != l.Width || h != l.Height {
		t.Errorf("Layout() = %dx%d", w, h)
	}
}
