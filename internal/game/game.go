package game

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/iburimskiy/blackhole/internal/config"
	"github.com/iburimskiy/blackhole/internal/render"
	"github.com/iburimskiy/blackhole/internal/scene"
)

const (
	titleSize = 24
	labelSize = 12
)

// Game runs the black hole animation: one scene tick per ebiten Update and
// a low-res frame upscaled in Draw.
type Game struct {
	cfg   *config.Config
	scene *scene.Scene

	lowRes   *ebiten.Image
	vignette *ebiten.Image
	scan     []int
	title    *text.GoTextFace
	label    *text.GoTextFace
}

func NewGame(cfg *config.Config, log *slog.Logger, listeners ...scene.PaletteListener) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	titleSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}
	labelSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}

	sc, err := scene.New(cfg, log, rand.New(rand.NewSource(time.Now().UnixNano())), listeners...)
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		scene:    sc,
		lowRes:   ebiten.NewImage(cfg.BufferWidth(), cfg.BufferHeight()),
		vignette: ebiten.NewImageFromImage(render.Vignette(cfg.WindowWidth, cfg.WindowHeight, cfg.VignetteAlpha)),
		scan:     render.ScanlineRows(cfg.WindowHeight, cfg.ScanlineSpacing),
		title:    &text.GoTextFace{Source: titleSrc, Size: titleSize},
		label:    &text.GoTextFace{Source: labelSrc, Size: labelSize},
	}

	log.Info("scene ready",
		"buffer", fmt.Sprintf("%dx%d", cfg.BufferWidth(), cfg.BufferHeight()),
		"stars", len(sc.State().Stars),
		"particles", len(sc.State().Particles),
		"palette", sc.Palette().Name)
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Tick()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
