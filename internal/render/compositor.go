package render

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/blackhole/internal/config"
	"github.com/iburimskiy/blackhole/internal/palette"
	"github.com/iburimskiy/blackhole/internal/sim"
)

const (
	lensRadius      = 100.0
	lensInnerRadius = 70.0
	lensMaxShift    = 20.0

	spiralArms  = 3
	spiralSteps = 50

	photonStepDeg = 3
	haloStepDeg   = 8
	trailOffset   = 3
)

// Compositor redraws the low-res frame back to front:
// stars, accretion disk, black hole.
type Compositor struct {
	cx, cy int
	radius int
}

func NewCompositor(cfg *config.Config) *Compositor {
	cx, cy := cfg.BufferCenter()
	return &Compositor{cx: cx, cy: cy, radius: cfg.BufferRadius()}
}

// Render draws one frame onto dst. rng only feeds the colorized-star sprinkle.
func (c *Compositor) Render(dst Surface, s *sim.State, pal *palette.Palette, rng *rand.Rand) {
	dst.Clear(color.Black)
	c.drawStars(dst, s, pal, rng)
	c.drawDisk(dst, s, pal)
	c.drawHole(dst, s, pal)
}

func (c *Compositor) drawStars(dst Surface, s *sim.State, pal *palette.Palette, rng *rand.Rand) {
	for _, st := range s.Stars {
		b := uint8(st.Brightness)

		if ends := LensEnds(st.X, st.Y, c.cx, c.cy); len(ends) > 0 {
			smear := color.NRGBA{R: b, G: b, B: b, A: 150}
			for _, e := range ends {
				dst.Line(st.X, st.Y, e.X, e.Y, smear)
			}
			continue
		}

		dst.FillRect(st.X, st.Y, 1, 1, color.NRGBA{R: b, G: b, B: b, A: 255})

		if st.Brightness > 200 && rng.Intn(100) < 5 {
			tint := pal.Sample(float64(st.Brightness%100) / 100)
			dst.FillRect(st.X, st.Y, 2, 2, withAlpha(tint, 150))
		}
	}
}

func (c *Compositor) drawDisk(dst Surface, s *sim.State, pal *palette.Palette) {
	for _, p := range s.Particles {
		x, y := ParticlePosition(c.cx, c.cy, p)
		col := pal.Sample(p.Temperature * p.Life)
		side := ParticleSide(p)
		dst.FillRect(x, y, side, side, opaque(col))

		// approaching side
		if math.Cos(p.Angle) > 0 {
			dst.FillRect(x, y, side, side, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(100 * p.Life)})
		}

		if half := side / 2; p.Life > 0.7 && half > 0 {
			tx, ty := TrailPosition(x, y, p.Angle)
			dst.FillRect(tx, ty, half, half, withAlpha(col, int(100*p.Life)))
		}
	}

	arm := opaque(pal.Sample(0.8))
	for i := 0; i < spiralArms; i++ {
		for j := 0; j < spiralSteps; j++ {
			x, y := SpiralPoint(c.cx, c.cy, c.radius, s.Time, i, j)
			dst.FillRect(x, y, 2, 2, arm)
		}
	}
}

func (c *Compositor) drawHole(dst Surface, s *sim.State, pal *palette.Palette) {
	r := c.radius

	// photon sphere
	for deg := 0; deg < 360; deg += photonStepDeg {
		angle := float64(deg) * math.Pi / 180
		x, y := c.onCircle(angle, r)
		dst.FillRect(x, y, 2, 2, opaque(pal.Sample(PhotonSpherePosition(s.Time, angle))))
	}

	// event horizon
	for x := c.cx - r; x <= c.cx+r; x++ {
		for y := c.cy - r; y <= c.cy+r; y++ {
			dx, dy := float64(x-c.cx), float64(y-c.cy)
			if math.Sqrt(dx*dx+dy*dy) > float64(r) {
				continue
			}
			n := HorizonNoise(x, y, s.Time)
			dst.FillRect(x, y, 1, 1, color.NRGBA{R: uint8(10 * n), G: uint8(5 * n), B: uint8(20 * n), A: 255})
		}
	}

	// lensing halo
	for ring := r; ring < r*3; ring += 2 {
		col := withAlpha(pal.Sample(HaloPosition(s.Time, ring)), HaloAlpha(ring, r))
		for deg := 0; deg < 360; deg += haloStepDeg {
			x, y := c.onCircle(float64(deg)*math.Pi/180, ring)
			dst.FillRect(x, y, 2, 2, col)
		}
	}
}

func (c *Compositor) onCircle(angle float64, r int) (int, int) {
	return int(float64(c.cx) + math.Cos(angle)*float64(r)),
		int(float64(c.cy) + math.Sin(angle)*float64(r))
}

// LensEnds returns the far endpoints of the smears drawn for a star at
// (x, y): none outside the lensing radius, one inside it, and a second,
// rotated and shorter, inside the inner radius.
func LensEnds(x, y, cx, cy int) []image.Point {
	dx, dy := float64(x-cx), float64(y-cy)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= lensRadius {
		return nil
	}

	angle := math.Atan2(dy, dx)
	shift := (lensRadius - dist) / lensRadius * lensMaxShift
	ends := []image.Point{{
		X: int(float64(x) + math.Cos(angle)*shift),
		Y: int(float64(y) + math.Sin(angle)*shift),
	}}
	if dist < lensInnerRadius {
		ends = append(ends, image.Point{
			X: int(float64(x) + math.Cos(angle+0.5)*shift*0.7),
			Y: int(float64(y) + math.Sin(angle+0.5)*shift*0.7),
		})
	}
	return ends
}

// ParticlePosition is the buffer pixel of p around the hole center.
func ParticlePosition(cx, cy int, p sim.Particle) (int, int) {
	return int(float64(cx) + math.Cos(p.Angle)*p.Distance),
		int(float64(cy) + math.Sin(p.Angle)*p.Distance)
}

// ParticleSide is the square side of p in pixels, never below 1.
func ParticleSide(p sim.Particle) int {
	return int(math.Max(1, p.Size*p.Life))
}

// TrailPosition is the trail square origin, behind (x, y) along the orbit.
func TrailPosition(x, y int, angle float64) (int, int) {
	return int(float64(x) - math.Cos(angle)*trailOffset),
		int(float64(y) - math.Sin(angle)*trailOffset)
}

// SpiralPoint is step j of spiral arm i at time t.
func SpiralPoint(cx, cy, radius int, t float64, i, j int) (int, int) {
	start := t*0.1 + float64(i)*2*math.Pi/spiralArms
	dist := float64(radius) + 10 + float64(j)*1.2
	angle := start + float64(j)*0.1
	return int(float64(cx) + math.Cos(angle)*dist),
		int(float64(cy) + math.Sin(angle)*dist)
}

// HaloAlpha is the 0-100 alpha of the lensing ring at radius ring, fading
// linearly from r to 3r.
func HaloAlpha(ring, r int) int {
	return int((1 - float64(ring-r)/(float64(r)*2)) * 100)
}

// PhotonSpherePosition is the palette position of the photon sphere point
// at angle (radians).
func PhotonSpherePosition(t, angle float64) float64 {
	return 0.3 + 0.4*math.Sin(t*0.2+angle*2)
}

// HaloPosition is the palette position of the lensing ring at radius ring.
func HaloPosition(t float64, ring int) float64 {
	return 0.2 + 0.3*math.Sin(t*0.1+float64(ring)*0.05)
}

// HorizonNoise is the brightness modulation of the event horizon at (x, y),
// in [0.8, 1.0].
func HorizonNoise(x, y int, t float64) float64 {
	return 0.9 + 0.1*math.Sin(float64(x)*0.2+float64(y)*0.2+t*0.5)
}
