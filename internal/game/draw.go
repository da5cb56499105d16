package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/blackhole/internal/render"
)

var (
	scanColor  = color.NRGBA{A: render.ScanAlpha}
	grainColor = color.NRGBA{R: 255, G: 255, B: 255, A: render.GrainAlpha}
	textColor  = color.NRGBA{R: 200, G: 200, B: 255, A: 150}
)

func (g *Game) Draw(screen *ebiten.Image) {
	// Recomposite only after a tick; grain below still changes every frame
	g.scene.Compose(vectorSurface{img: g.lowRes})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.PixelSize), float64(g.cfg.PixelSize))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.lowRes, op)

	g.drawVignette(screen)
	g.drawScanlines(screen)
	g.drawGrain(screen)
	g.drawText(screen)
}

func (g *Game) drawVignette(screen *ebiten.Image) {
	screen.DrawImage(g.vignette, nil)
}

func (g *Game) drawScanlines(screen *ebiten.Image) {
	w := float32(g.cfg.WindowWidth)
	for _, y := range g.scan {
		vector.DrawFilledRect(screen, 0, float32(y), w, 1, scanColor, false)
	}
}

func (g *Game) drawGrain(screen *ebiten.Image) {
	for _, p := range g.scene.Grain() {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), 1, 1, grainColor, false)
	}
}

// drawText places both strings by their baselines.
func (g *Game) drawText(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.cfg.WindowWidth)/2, render.TitleBaseY-g.title.Metrics().HAscent)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, render.Title, g.title, op)

	op = &text.DrawOptions{}
	baseline := float64(g.cfg.WindowHeight - render.LabelMarginY)
	op.GeoM.Translate(render.LabelX, baseline-g.label.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, render.PaletteLabel(g.scene.Palette().Name), g.label, op)
}
