package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/brain-trainer/audio"
	"github.com/lixenwraith/brain-trainer/board"
	"github.com/lixenwraith/brain-trainer/config"
	"github.com/lixenwraith/brain-trainer/constants"
	"github.com/lixenwraith/brain-trainer/controller"
	"github.com/lixenwraith/brain-trainer/engine"
	"github.com/lixenwraith/brain-trainer/locale"
	"github.com/lixenwraith/brain-trainer/storage"
	"github.com/lixenwraith/brain-trainer/ui"
)

// runPlay opens the store, the speaker and the screen, then runs the event loop until quit
func runPlay(ctx context.Context, cfg config.Config) error {

	logFile, logger := setupLogging(cfg.Debug, cfg.LogDir, cfg.Level())
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info().Str("store", string(cfg.Store)).Str("locale", cfg.Locale).Uint64("seed", cfg.Seed).Msg("starting")

	st, err := storage.Open(ctx, cfg.StorageOptions(), logger)
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer st.Close()

	audioCfg := audio.DefaultConfig().WithMasterVolume(cfg.Volume)
	audioCfg.Enabled = cfg.Audio
	sound := audio.NewSoundManager(audioCfg, logger)
	if err := sound.Initialize(); err != nil {
		// game runs without sound
		logger.Warn().Err(err).Msg("audio unavailable")
	}
	defer sound.Cleanup()

	opts := controller.DefaultOptions()
	opts.Source = board.NewSource(cfg.Seed)
	opts.GridSize = cfg.GridSize
	opts.Timing.ColorWordDuration = cfg.ColorWordDuration

	ctrl, err := controller.New(ctx, st, sound, opts, logger)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	// Restore the terminal before the crash report so it stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBRAIN-TRAINER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	tag, _ := locale.ParseTag(cfg.Locale)
	app := ui.NewApp(screen, ctrl, locale.NewPrinter(tag), logger)

	runLoop(screen, app, engine.NewMonotonicTimeProvider(), logger)
	logger.Info().Msg("exiting")
	return nil
}

// runLoop feeds terminal events and frame ticks to the app on one goroutine
func runLoop(screen tcell.Screen, app *ui.App, clock engine.TimeProvider, logger zerolog.Logger) {
	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	app.Frame(clock.Now())
	for {
		select {
		case ev := <-eventChan:
			if !app.HandleEvent(ev, clock.Now()) {
				logger.Debug().Msg("quit requested")
				return
			}
		case <-frameTicker.C:
			app.Frame(clock.Now())
		}
	}
}
