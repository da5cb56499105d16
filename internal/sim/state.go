// Package sim holds the animation clock, the starfield and the accretion
// disk particles, and advances them one tick at a time.
package sim

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/blackhole/internal/config"
)

// Star is a fixed point of the background field. Brightness oscillates with
// the clock; position and twinkle speed never change.
type Star struct {
	X, Y         int
	Brightness   int
	TwinkleSpeed int
}

// Particle is one orbiting element of the accretion disk.
type Particle struct {
	Angle       float64
	Distance    float64
	Size        float64
	Speed       float64
	Temperature float64
	Life        float64
}

// State is everything that changes between frames.
type State struct {
	Time      float64
	TimeStep  float64
	Stars     []Star
	Particles []Particle
}

// New seeds the starfield and the disk. Star positions are in buffer space;
// particle distances start just outside the hole's buffer radius.
func New(cfg *config.Config, rng *rand.Rand) *State {
	w, h := cfg.BufferWidth(), cfg.BufferHeight()
	inner := float64(cfg.BufferRadius()) + 8

	s := &State{
		TimeStep:  cfg.TimeStep,
		Stars:     make([]Star, cfg.StarCount),
		Particles: make([]Particle, cfg.ParticleCount),
	}
	for i := range s.Stars {
		s.Stars[i] = Star{
			X:            rng.Intn(w),
			Y:            rng.Intn(h),
			Brightness:   100 + rng.Intn(155),
			TwinkleSpeed: rng.Intn(5) + 1,
		}
	}
	for i := range s.Particles {
		s.Particles[i] = Particle{
			Angle:       rng.Float64() * 2 * math.Pi,
			Distance:    inner + rng.Float64()*60,
			Size:        1 + rng.Float64()*4,
			Speed:       0.01 + rng.Float64()*0.05,
			Temperature: 0.2 + rng.Float64()*0.8,
			Life:        0.5 + rng.Float64()*0.5,
		}
	}
	return s
}

// Update advances the disk and the starfield by one tick, then the clock.
func (s *State) Update(rng *rand.Rand) {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Angle += p.Speed
		p.Life = ParticleLife(s.Time, i)

		if rng.Intn(200) < 2 {
			p.Temperature = 0.2 + rng.Float64()*0.8
		}
	}

	for i := range s.Stars {
		st := &s.Stars[i]
		st.Brightness = StarBrightness(s.Time, st.TwinkleSpeed, i)
	}

	s.Time += s.TimeStep
}

// ParticleLife is the pulsating life of particle i at time t, in [0, 1].
func ParticleLife(t float64, i int) float64 {
	l := 0.5 + 0.5*math.Sin(t*0.5+float64(i)*0.1)
	if l < 0 || math.IsNaN(l) {
		return 0
	}
	if l > 1 {
		return 1
	}
	return l
}

// StarBrightness is the twinkle of star i at time t, in [0, 255].
func StarBrightness(t float64, twinkle, i int) int {
	b := 100 + 55*math.Sin(t*0.1*float64(twinkle)+float64(i))
	if math.IsNaN(b) {
		return 0
	}
	v := int(b)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
