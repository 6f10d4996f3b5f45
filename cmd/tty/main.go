// cmd/tty/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"
	"go-space-invaders/internal/logging"
	"go-space-invaders/internal/tty"
)

const frameInterval = 33 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(".")
	if err != nil {
		return err
	}

	// The terminal belongs to the renderer, so logs only go to a file.
	logFile, err := logging.OpenFile(settings.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	log := logging.New(settings.LogLevel, logFile)

	rt, err := host.New(settings, log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keyboard := tty.NewKeyboard(rt.Input, tty.DefaultHoldTimeout)
	go drawLoop(ctx, tty.NewScreen(screen), rt.Session, keyboard)
	go pollEvents(screen, keyboard, rt, cancel, log)

	log.Info().Msg("terminal host started")
	if err := rt.Scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// drawLoop expires held keys and redraws the latest snapshot.
func drawLoop(ctx context.Context, out *tty.Screen, session *app.Session, keyboard *tty.Keyboard) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			keyboard.Expire(now)
			out.Draw(session.Snapshot(), session.Suspended())
		}
	}
}

// pollEvents feeds terminal events to the keyboard until quit.
func pollEvents(screen tcell.Screen, keyboard *tty.Keyboard, rt *host.Runtime, quit context.CancelFunc, log zerolog.Logger) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if tty.IsQuit(ev) {
				log.Info().Msg("quit requested")
				quit()
				return
			}
			keyboard.HandleKey(ev, ev.When())
		case *tcell.EventFocus:
			if !ev.Focused {
				keyboard.ReleaseAll()
			}
			rt.FocusChanged(ev.Focused)
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
