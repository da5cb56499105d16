// Package scene ties the simulation, the palette rotation and the compositor
// into a tick/draw cycle that does not depend on a window.
package scene

import (
	"image"
	"log/slog"
	"math/rand"
	"time"

	"github.com/iburimskiy/blackhole/internal/config"
	"github.com/iburimskiy/blackhole/internal/palette"
	"github.com/iburimskiy/blackhole/internal/render"
	"github.com/iburimskiy/blackhole/internal/sim"
)

// PaletteListener is told the new palette index after every rotation.
type PaletteListener interface {
	SetPalette(i int)
}

type Scene struct {
	cfg *config.Config
	log *slog.Logger

	state     *sim.State
	rotator   *palette.Rotator
	comp      *render.Compositor
	rng       *rand.Rand
	listeners []PaletteListener

	now   func() time.Time
	last  time.Time
	dirty bool
}

func New(cfg *config.Config, log *slog.Logger, rng *rand.Rand, listeners ...PaletteListener) (*Scene, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	rot, err := palette.NewRotator(palette.Builtin(), cfg.PaletteInterval)
	if err != nil {
		return nil, err
	}
	return &Scene{
		cfg:       cfg,
		log:       log,
		state:     sim.New(cfg, rng),
		rotator:   rot,
		comp:      render.NewCompositor(cfg),
		rng:       rng,
		listeners: listeners,
		now:       time.Now,
		dirty:     true,
	}, nil
}

// Tick rotates the palette by the wall-clock time since the previous tick,
// then advances the simulation one step. Listeners hear only the final index
// even when a stall covered several intervals.
func (s *Scene) Tick() {
	now := s.now()
	if !s.last.IsZero() {
		if s.rotator.Advance(now.Sub(s.last)) > 0 {
			s.log.Info("palette rotated", "palette", s.rotator.Active().Name)
			for _, l := range s.listeners {
				l.SetPalette(s.rotator.Index())
			}
		}
	}
	s.last = now

	s.state.Update(s.rng)
	s.dirty = true
}

// Compose redraws the low-res frame onto dst if a tick happened since the
// last call, and reports whether it did.
func (s *Scene) Compose(dst render.Surface) bool {
	if !s.dirty {
		return false
	}
	s.comp.Render(dst, s.state, s.rotator.Active(), s.rng)
	s.dirty = false
	return true
}

func (s *Scene) Palette() *palette.Palette { return s.rotator.Active() }

func (s *Scene) State() *sim.State { return s.state }

// Grain draws this frame's film-grain points in window space.
func (s *Scene) Grain() []image.Point {
	return render.Grain(s.rng, s.cfg.GrainCount, s.cfg.WindowWidth, s.cfg.WindowHeight)
}
