// cmd/game/main.go
package main

import (
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"
	"go-space-invaders/internal/logging"
	"go-space-invaders/internal/render"
)

type AppGame struct {
	rt        *host.Runtime
	renderer  *render.Renderer
	log       zerolog.Logger
	unfocused bool
}

func (a *AppGame) Update() error {
	focused := ebiten.IsFocused()
	if focused == a.unfocused {
		a.unfocused = !focused
		a.rt.FocusChanged(focused)
		a.log.Info().Bool("focused", focused).Msg("focus changed")
	}
	if !focused {
		return nil
	}

	pollKeys(a.rt.Input)
	a.rt.Scheduler.Step()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.rt.Session.Snapshot(), a.rt.Session.Suspended())
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.rt.Settings.Width), int(a.rt.Settings.Height)
}

func main() {
	settings, err := config.Load(".")
	if err != nil {
		logging.New("info", os.Stderr).Fatal().Err(err).Msg("loading settings")
	}

	var out io.Writer = os.Stderr
	if settings.LogFile != "" {
		f, err := logging.OpenFile(settings.LogFile)
		if err != nil {
			logging.New("info", os.Stderr).Fatal().Err(err).Msg("opening log file")
		}
		defer f.Close()
		out = f
	}
	log := logging.New(settings.LogLevel, out)

	rt, err := host.New(settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("creating runtime")
	}

	game := &AppGame{
		rt:       rt,
		renderer: render.New(settings.Width, settings.Height, rt.Seed),
		log:      log,
	}

	scale := settings.WindowScale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetTPS(int(time.Second / settings.TickInterval))
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowSize(int(settings.Width*scale), int(settings.Height*scale))
	ebiten.SetWindowTitle("Space Invaders")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
}
