// Package render composes the low-resolution scene and prepares the
// post-filter overlays applied after upscaling.
package render

import "image/color"

// Surface is the immediate-mode target of a frame. Rectangles and lines are
// in integer buffer pixels and drawn without antialiasing; translucent
// colors blend source-over.
type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, w, h int, c color.NRGBA)
	Line(x0, y0, x1, y1 int, c color.NRGBA)
}

func opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func withAlpha(c color.RGBA, a int) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}
