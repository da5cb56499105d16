package audio

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

func TestDrone_StreamBounded(t *testing.T) {
	d := NewDrone(beep.SampleRate(44100), 0.1)
	buf := make([][2]float64, 4096)

	for i := 0; i < 20; i++ {
		n, ok := d.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Stream returned (%d, %v)", n, ok)
		}
		for _, s := range buf {
			if math.Abs(s[0]) > 0.1+1e-9 || s[0] != s[1] {
				t.Fatalf("sample %v out of range", s)
			}
		}
	}
	if d.Err() != nil {
		t.Errorf("unexpected error %v", d.Err())
	}
}

func TestDrone_GlidesToPalette(t *testing.T) {
	const rate = 8000
	d := NewDrone(beep.SampleRate(rate), 0.1)
	d.SetPalette(2)

	if d.Target() != 49 {
		t.Fatalf("expected target 49, got %v", d.Target())
	}

	buf := make([][2]float64, rate/10)
	d.Stream(buf)
	if d.freq >= 55 || d.freq <= 49 {
		t.Errorf("expected freq between roots after 100ms, got %v", d.freq)
	}

	for i := 0; i < 50; i++ {
		d.Stream(buf)
	}
	if math.Abs(d.freq-49) > 0.01 {
		t.Errorf("expected freq ~49 after 5s, got %v", d.freq)
	}
}

func TestDrone_SetPaletteWraps(t *testing.T) {
	d := NewDrone(beep.SampleRate(44100), 0.1)
	tests := []struct {
		index int
		want  float64
	}{
		{0, 55},
		{1, 61.74},
		{4, 61.74},
		{-1, 49},
	}
	for _, tt := range tests {
		d.SetPalette(tt.index)
		if got := d.Target(); got != tt.want {
			t.Errorf("SetPalette(%d): target %v, want %v", tt.index, got, tt.want)
		}
	}
}
