package render

import (
	"image"
	"math/rand"

	"github.com/gogpu/gg"
)

const (
	Title        = "COSMIC VOID"
	LabelPrefix  = "PALETTE: "
	GrainAlpha   = 5
	ScanAlpha    = 20
	TitleBaseY   = 50
	LabelX       = 20
	LabelMarginY = 20
)

// Vignette rasterizes the full-window darkening overlay: a linear gradient
// along the top-left to bottom-right diagonal, transparent at the start and
// black with the given alpha at the end. Each pixel samples the gradient at
// its center.
func Vignette(w, h int, alpha uint8) *image.RGBA {
	grad := gg.NewLinearGradientBrush(0, 0, float64(w), float64(h)).
		AddColorStop(0, gg.RGBA2(0, 0, 0, 0)).
		AddColorStop(1, gg.RGBA2(0, 0, 0, float64(alpha)/255))

	pm := gg.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pm.SetPixel(x, y, grad.ColorAt(float64(x)+0.5, float64(y)+0.5))
		}
	}
	return pm.ToImage()
}

// ScanlineRows returns the y of every scanline for a surface of height h.
func ScanlineRows(h, spacing int) []int {
	rows := make([]int, 0, h/spacing+1)
	for y := 0; y < h; y += spacing {
		rows = append(rows, y)
	}
	return rows
}

// Grain scatters n film-grain points over a w×h surface. Callers pass a
// fresh draw every frame.
func Grain(rng *rand.Rand, n, w, h int) []image.Point {
	pts := make([]image.Point, n)
	for i := range pts {
		pts[i] = image.Point{X: rng.Intn(w), Y: rng.Intn(h)}
	}
	return pts
}

func PaletteLabel(name string) string {
	return LabelPrefix + name
}
