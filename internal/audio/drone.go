// Package audio plays a quiet ambient drone whose pitch follows the active
// palette.
package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Root frequencies per palette, in rotation order.
var roots = []float64{55, 61.74, 49}

const (
	fifthRatio   = 1.5
	tremoloHz    = 0.2
	glideSeconds = 0.5
)

// Drone is a beep.Streamer synthesizing a root and a fifth with slow
// tremolo. The speaker goroutine streams it while the game loop retargets
// it, so the target pitch sits behind a mutex.
type Drone struct {
	sampleRate beep.SampleRate
	volume     float64

	mu     sync.RWMutex
	target float64

	freq   float64
	phases [2]float64
	t      float64
}

func NewDrone(sr beep.SampleRate, volume float64) *Drone {
	return &Drone{
		sampleRate: sr,
		volume:     volume,
		target:     roots[0],
		freq:       roots[0],
	}
}

// SetPalette retargets the drone to the root of palette index i.
func (d *Drone) SetPalette(i int) {
	i %= len(roots)
	if i < 0 {
		i += len(roots)
	}
	d.mu.Lock()
	d.target = roots[i]
	d.mu.Unlock()
}

func (d *Drone) Target() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.target
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	target := d.Target()

	rate := float64(d.sampleRate)
	glide := 1 / (glideSeconds * rate)
	for i := range samples {
		d.freq += (target - d.freq) * glide

		d.phases[0] += 2 * math.Pi * d.freq / rate
		d.phases[1] += 2 * math.Pi * d.freq * fifthRatio / rate
		if d.phases[0] > 2*math.Pi {
			d.phases[0] -= 2 * math.Pi
		}
		if d.phases[1] > 2*math.Pi {
			d.phases[1] -= 2 * math.Pi
		}

		tremolo := 0.75 + 0.25*math.Sin(2*math.Pi*tremoloHz*d.t)
		v := d.volume * tremolo * (math.Sin(d.phases[0]) + 0.5*math.Sin(d.phases[1])) / 1.5
		samples[i][0] = v
		samples[i][1] = v

		d.t += 1 / rate
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
