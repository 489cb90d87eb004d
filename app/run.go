package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlit/audio"
	"github.com/lixenwraith/starlit/config"
	"github.com/lixenwraith/starlit/core"
	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/render"
)

// Run opens the terminal and audio device described by cfg and runs the page
// until ctx is done or the user quits. Audio failures are logged, not fatal.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	mode, err := render.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}
	content, err := config.LoadContent(cfg.Content)
	if err != nil {
		return err
	}

	var rnd engine.Random
	if cfg.Seed != 0 {
		rnd = engine.NewRandom(cfg.Seed)
	} else {
		rnd = engine.NewTimeSeededRandom()
	}

	speaker := audio.NewSpeaker()
	if err := speaker.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	defer speaker.Close()

	source := audio.PadSource()
	if cfg.Music != "" {
		source = audio.FileSource(cfg.Music)
	}
	track := audio.NewMusicTrack(speaker, source)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	a, err := New(Deps{
		Screen:  screen,
		Content: content,
		Track:   track,
		Clock:   engine.NewMonotonicTimeProvider(),
		Random:  rnd,
		Mode:    mode,
		Logger:  logger,
		Muted:   cfg.Mute,
	})
	if err != nil {
		return err
	}

	logger.Info("start", "color", mode, "music", cfg.Music, "seed", cfg.Seed)
	return a.Run(ctx)
}
