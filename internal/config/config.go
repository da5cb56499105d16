package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Artistic Black Hole"

	// Low-res buffer is the window divided by PixelSize
	PixelSize = 2

	// Black hole, in window coordinates
	HoleX      = 400
	HoleY      = 300
	HoleRadius = 70

	// Scene population
	StarCount     = 1000
	ParticleCount = 500

	// Animation cadence
	TickRate        = 30
	TimeStep        = 0.05
	PaletteInterval = 10 * time.Second

	// Post filters
	GrainCount      = 500
	ScanlineSpacing = 2
	VignetteAlpha   = 150

	// Ambient drone
	AudioSampleRate = 44100
	AudioVolume     = 0.08
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	WindowWidth  int
	WindowHeight int
	Title        string
	PixelSize    int

	HoleX      int
	HoleY      int
	HoleRadius int

	StarCount     int
	ParticleCount int

	TickRate        int
	TimeStep        float64
	PaletteInterval time.Duration

	GrainCount      int
	ScanlineSpacing int
	VignetteAlpha   uint8

	AudioEnabled    bool
	AudioSampleRate int
	AudioVolume     float64
}

func DefaultConfig() *Config {
	return &Config{
		WindowWidth:     WindowWidth,
		WindowHeight:    WindowHeight,
		Title:           WindowTitle,
		PixelSize:       PixelSize,
		HoleX:           HoleX,
		HoleY:           HoleY,
		HoleRadius:      HoleRadius,
		StarCount:       StarCount,
		ParticleCount:   ParticleCount,
		TickRate:        TickRate,
		TimeStep:        TimeStep,
		PaletteInterval: PaletteInterval,
		GrainCount:      GrainCount,
		ScanlineSpacing: ScanlineSpacing,
		VignetteAlpha:   VignetteAlpha,
		AudioEnabled:    false,
		AudioSampleRate: AudioSampleRate,
		AudioVolume:     AudioVolume,
	}
}

// Validate reports the first setting that would make the scene ill-formed.
func (c *Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	case c.PixelSize <= 0:
		return fmt.Errorf("%w: pixel size %d", ErrInvalid, c.PixelSize)
	case c.WindowWidth%c.PixelSize != 0 || c.WindowHeight%c.PixelSize != 0:
		return fmt.Errorf("%w: pixel size %d does not divide %dx%d", ErrInvalid, c.PixelSize, c.WindowWidth, c.WindowHeight)
	case c.HoleRadius <= 0:
		return fmt.Errorf("%w: hole radius %d", ErrInvalid, c.HoleRadius)
	case c.HoleX < 0 || c.HoleX >= c.WindowWidth || c.HoleY < 0 || c.HoleY >= c.WindowHeight:
		return fmt.Errorf("%w: hole center (%d,%d) outside window", ErrInvalid, c.HoleX, c.HoleY)
	case c.StarCount < 0 || c.ParticleCount < 0 || c.GrainCount < 0:
		return fmt.Errorf("%w: negative population", ErrInvalid)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.TickRate)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: time step %v", ErrInvalid, c.TimeStep)
	case c.PaletteInterval <= 0:
		return fmt.Errorf("%w: palette interval %v", ErrInvalid, c.PaletteInterval)
	case c.ScanlineSpacing <= 0:
		return fmt.Errorf("%w: scanline spacing %d", ErrInvalid, c.ScanlineSpacing)
	case c.AudioEnabled && c.AudioSampleRate <= 0:
		return fmt.Errorf("%w: audio sample rate %d", ErrInvalid, c.AudioSampleRate)
	}
	return nil
}

func (c *Config) BufferWidth() int  { return c.WindowWidth / c.PixelSize }
func (c *Config) BufferHeight() int { return c.WindowHeight / c.PixelSize }

// BufferCenter returns the hole center in buffer space.
func (c *Config) BufferCenter() (int, int) {
	return c.HoleX / c.PixelSize, c.HoleY / c.PixelSize
}

// BufferRadius returns the hole radius in buffer space.
func (c *Config) BufferRadius() int { return c.HoleRadius / c.PixelSize }
