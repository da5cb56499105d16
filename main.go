package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/blackhole/internal/audio"
	"github.com/iburimskiy/blackhole/internal/config"
	"github.com/iburimskiy/blackhole/internal/game"
	"github.com/iburimskiy/blackhole/internal/scene"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(logger); err != nil {
		logger.Error("fatal", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var listeners []scene.PaletteListener
	if cfg.AudioEnabled {
		drone := audio.NewDrone(beep.SampleRate(cfg.AudioSampleRate), cfg.AudioVolume)
		if err := audio.Start(drone); err != nil {
			logger.Warn("audio unavailable, running silent", "err", err)
		} else {
			defer audio.Stop()
			listeners = append(listeners, drone)
		}
	}

	g, err := game.NewGame(cfg, logger, listeners...)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
