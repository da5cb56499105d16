// Package palette holds the gradient palettes that color the disk, the hole
// and the occasional colorized star.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrTooFewColors = errors.New("palette needs at least two colors")

// Palette is an ordered list of colors read as a piecewise-linear gradient
// over [0, 1]. N colors give N-1 equal-width segments.
type Palette struct {
	Name   string
	Colors []color.RGBA
}

// New builds a palette from opaque colors; alpha is forced to 255.
func New(name string, colors ...color.RGBA) (*Palette, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("%s: %w", name, ErrTooFewColors)
	}
	p := &Palette{Name: name, Colors: make([]color.RGBA, len(colors))}
	for i, c := range colors {
		c.A = 255
		p.Colors[i] = c
	}
	return p, nil
}

func mustNew(name string, colors ...color.RGBA) *Palette {
	p, err := New(name, colors...)
	if err != nil {
		panic(err)
	}
	return p
}

// Sample returns the gradient color at position pos. pos is clamped to
// [0, 1] and the segment index never exceeds the last segment, so Sample(1)
// is the last color. Channels are truncated, never rounded.
func (p *Palette) Sample(pos float64) color.RGBA {
	n := len(p.Colors)
	if math.IsNaN(pos) || pos < 0 {
		pos = 0
	}
	if pos >= 1 {
		return p.Colors[n-1]
	}

	segment := 1.0 / float64(n-1)
	index := int(pos / segment)
	if index > n-2 {
		index = n - 2
	}
	local := (pos - float64(index)*segment) / segment

	mixed := toColorful(p.Colors[index]).BlendRgb(toColorful(p.Colors[index+1]), local)
	return color.RGBA{R: truncate(mixed.R), G: truncate(mixed.G), B: truncate(mixed.B), A: 255}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// truncate maps a [0, 1] channel back to 0-255, dropping the fraction. The
// epsilon keeps whole values from landing just below themselves.
func truncate(v float64) uint8 {
	v = v*255 + 1e-9
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// Builtin returns the three stock palettes in rotation order.
func Builtin() []*Palette {
	return []*Palette{
		mustNew("NEBULA", rgb(10, 10, 40), rgb(30, 20, 80), rgb(120, 30, 150), rgb(220, 50, 130), rgb(255, 100, 80)),
		mustNew("QUASAR", rgb(0, 0, 30), rgb(0, 30, 100), rgb(0, 150, 200), rgb(100, 200, 255), rgb(220, 220, 255)),
		mustNew("SUPERNOVA", rgb(30, 0, 20), rgb(100, 0, 80), rgb(180, 40, 120), rgb(230, 100, 100), rgb(255, 200, 150)),
	}
}
