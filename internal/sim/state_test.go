package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/blackhole/internal/config"
)

func newTestState(t *testing.T, seed int64) (*State, *rand.Rand) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	return New(config.DefaultConfig(), rng), rng
}

func TestNew(t *testing.T) {
	s, _ := newTestState(t, 1)

	if len(s.Stars) != 1000 {
		t.Errorf("expected 1000 stars, got %d", len(s.Stars))
	}
	if len(s.Particles) != 500 {
		t.Errorf("expected 500 particles, got %d", len(s.Particles))
	}
	if s.Time != 0 {
		t.Errorf("expected time 0, got %f", s.Time)
	}

	for i, st := range s.Stars {
		if st.X < 0 || st.X >= 400 || st.Y < 0 || st.Y >= 300 {
			t.Fatalf("star %d outside buffer: (%d,%d)", i, st.X, st.Y)
		}
		if st.TwinkleSpeed < 1 || st.TwinkleSpeed > 5 {
			t.Fatalf("star %d twinkle speed %d", i, st.TwinkleSpeed)
		}
		if st.Brightness < 100 || st.Brightness >= 255 {
			t.Fatalf("star %d brightness %d", i, st.Brightness)
		}
	}
	for i, p := range s.Particles {
		if p.Distance < 43 || p.Distance >= 103 {
			t.Fatalf("particle %d distance %f", i, p.Distance)
		}
		if p.Temperature < 0.2 || p.Temperature > 1 {
			t.Fatalf("particle %d temperature %f", i, p.Temperature)
		}
	}
}

func TestUpdate_FirstTick(t *testing.T) {
	s, rng := newTestState(t, 2)

	s.Update(rng)

	if s.Particles[0].Life != 0.5 {
		t.Errorf("expected particle[0].life 0.5, got %v", s.Particles[0].Life)
	}
	if math.Abs(s.Time-0.05) > 1e-12 {
		t.Errorf("expected time 0.05, got %v", s.Time)
	}
}

func TestUpdate_AdvancesAngles(t *testing.T) {
	s, rng := newTestState(t, 3)
	before := make([]Particle, len(s.Particles))
	copy(before, s.Particles)

	s.Update(rng)

	for i := range s.Particles {
		want := before[i].Angle + before[i].Speed
		if s.Particles[i].Angle != want {
			t.Fatalf("particle %d angle %v, want %v", i, s.Particles[i].Angle, want)
		}
		if s.Particles[i].Distance != before[i].Distance || s.Particles[i].Size != before[i].Size {
			t.Fatalf("particle %d fixed fields changed", i)
		}
	}
}

func TestUpdate_TemperatureStaysInRange(t *testing.T) {
	s, rng := newTestState(t, 4)
	changed := false
	start := s.Particles[0].Temperature

	for tick := 0; tick < 2000; tick++ {
		s.Update(rng)
		for i, p := range s.Particles {
			if p.Temperature < 0.2 || p.Temperature > 1 {
				t.Fatalf("tick %d particle %d temperature %f", tick, i, p.Temperature)
			}
		}
		if s.Particles[0].Temperature != start {
			changed = true
		}
	}
	if !changed {
		t.Error("temperature never resampled over 2000 ticks")
	}
}

func TestStarBrightness_Bounds(t *testing.T) {
	times := []float64{0, 0.05, 1, 1e6, 1e15, -1e9, math.MaxFloat64}
	for _, tm := range times {
		for twinkle := 1; twinkle <= 5; twinkle++ {
			for i := 0; i < 1000; i += 37 {
				b := StarBrightness(tm, twinkle, i)
				if b < 0 || b > 255 {
					t.Fatalf("StarBrightness(%v, %d, %d) = %d", tm, twinkle, i, b)
				}
			}
		}
	}
}

func TestParticleLife_Bounds(t *testing.T) {
	times := []float64{0, 0.05, 3.14159, 1e6, 1e15, -1e9, math.MaxFloat64, math.Inf(1)}
	for _, tm := range times {
		for i := 0; i < 500; i += 13 {
			l := ParticleLife(tm, i)
			if l < 0 || l > 1 {
				t.Fatalf("ParticleLife(%v, %d) = %v", tm, i, l)
			}
		}
	}
}

func TestUpdate_Deterministic(t *testing.T) {
	a, rngA := newTestState(t, 9)
	b, rngB := newTestState(t, 9)

	for i := 0; i < 50; i++ {
		a.Update(rngA)
		b.Update(rngB)
	}

	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle %d diverged", i)
		}
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d diverged", i)
		}
	}
}
