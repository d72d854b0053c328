// Package lcd is the window front-end: the 240x320 colour panel drawn in
// an Ebitengine window, a square-wave buzzer and keyboard keypad input.
package lcd

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/jewel-legend/internal/core"
)

// Panel is the display's frame memory. It implements core.Surface with
// pixel units and is uploaded to the window once per frame.
type Panel struct {
	img  *image.RGBA
	face font.Face
}

// NewPanel allocates a black panel.
func NewPanel(w, h int) *Panel {
	p := &Panel{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
	}
	p.FillRect(core.ColorBlack, 0, 0, w, h)
	return p
}

// Size implements core.Surface.
func (p *Panel) Size() (w, h int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect implements core.Surface.
func (p *Panel) FillRect(c core.Color, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(p.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(p.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawPixel implements core.Surface.
func (p *Panel) DrawPixel(x, y int, c core.Color) {
	p.img.Set(x, y, c)
}

// DrawString implements core.Surface. The text box is GlyphH pixels tall
// and CharW pixels per character, matching basicfont.Face7x13.
func (p *Panel) DrawString(x, y int, text string, fg, bg core.Color) {
	m := p.face.Metrics()
	adv := font.MeasureString(p.face, text).Ceil()
	p.FillRect(bg, x, y, adv, (m.Ascent + m.Descent).Ceil())

	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(fg),
		Face: p.face,
		Dot:  fixed.P(x, y+m.Ascent.Ceil()),
	}
	d.DrawString(text)
}

// Image returns the frame memory.
func (p *Panel) Image() *image.RGBA {
	return p.img
}

// Pix returns the RGBA bytes for uploading.
func (p *Panel) Pix() []byte {
	return p.img.Pix
}
