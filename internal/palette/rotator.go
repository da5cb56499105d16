package palette

import (
	"errors"
	"time"
)

var ErrNoPalettes = errors.New("rotator needs at least one palette")

// Rotator advances the active palette once per interval of elapsed wall-clock
// time. It is driven from the game loop, so it needs no locking.
type Rotator struct {
	palettes []*Palette
	interval time.Duration
	elapsed  time.Duration
	index    int
}

func NewRotator(palettes []*Palette, interval time.Duration) (*Rotator, error) {
	if len(palettes) == 0 {
		return nil, ErrNoPalettes
	}
	return &Rotator{palettes: palettes, interval: interval}, nil
}

// Advance accounts for dt of elapsed time and reports how many rotations
// happened. Long stalls rotate once per whole interval covered.
func (r *Rotator) Advance(dt time.Duration) int {
	if dt <= 0 || r.interval <= 0 {
		return 0
	}
	r.elapsed += dt
	steps := 0
	for r.elapsed >= r.interval {
		r.elapsed -= r.interval
		r.index = (r.index + 1) % len(r.palettes)
		steps++
	}
	return steps
}

func (r *Rotator) Index() int { return r.index }

func (r *Rotator) Active() *Palette { return r.palettes[r.index] }
