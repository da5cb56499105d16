package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// vectorSurface draws the low-res frame straight into an ebiten image.
// Antialiasing stays off so squares and lines land on whole buffer pixels.
type vectorSurface struct {
	img *ebiten.Image
}

func (s vectorSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s vectorSurface) FillRect(x, y, w, h int, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Line strokes through pixel centers so both endpoints are covered.
func (s vectorSurface) Line(x0, y0, x1, y1 int, c color.NRGBA) {
	if x0 == x1 && y0 == y1 {
		s.FillRect(x0, y0, 1, 1, c)
		return
	}
	vector.StrokeLine(s.img, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, c, false)
}
