package config

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.BufferWidth() != 400 || cfg.BufferHeight() != 300 {
		t.Errorf("expected 400x300 buffer, got %dx%d", cfg.BufferWidth(), cfg.BufferHeight())
	}
	cx, cy := cfg.BufferCenter()
	if cx != 200 || cy != 150 {
		t.Errorf("expected center (200,150), got (%d,%d)", cx, cy)
	}
	if cfg.BufferRadius() != 35 {
		t.Errorf("expected radius 35, got %d", cfg.BufferRadius())
	}
	if cfg.Title != "Artistic Black Hole" {
		t.Errorf("unexpected title %q", cfg.Title)
	}
	if cfg.AudioEnabled {
		t.Error("expected the drone off by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.WindowWidth = 0 }},
		{"zero pixel size", func(c *Config) { c.PixelSize = 0 }},
		{"pixel size does not divide", func(c *Config) { c.PixelSize = 7 }},
		{"zero radius", func(c *Config) { c.HoleRadius = 0 }},
		{"center outside", func(c *Config) { c.HoleX = 800 }},
		{"negative stars", func(c *Config) { c.StarCount = -1 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"zero time step", func(c *Config) { c.TimeStep = 0 }},
		{"zero palette interval", func(c *Config) { c.PaletteInterval = 0 }},
		{"zero scanline spacing", func(c *Config) { c.ScanlineSpacing = 0 }},
		{"zero sample rate", func(c *Config) { c.AudioEnabled = true; c.AudioSampleRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidate_AudioDisabledIgnoresSampleRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AudioEnabled = false
	cfg.AudioSampleRate = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
