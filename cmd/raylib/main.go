// cmd/raylib/main.go
package main

import (
	"io"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/host"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/logging"
	"go-space-invaders/internal/rlrender"
)

// keyBindings maps raylib key codes to controls.
var keyBindings = map[int32]input.Control{
	rl.KeySpace:        input.Start,
	rl.KeyP:            input.Pause,
	rl.KeyEscape:       input.Pause,
	rl.KeyLeft:         input.Left,
	rl.KeyA:            input.Left,
	rl.KeyRight:        input.Right,
	rl.KeyD:            input.Right,
	rl.KeyZ:            input.Fire,
	rl.KeyLeftControl:  input.Fire,
	rl.KeyRightControl: input.Fire,
	rl.KeyX:            input.Bomb,
}

func pollKeys(st *input.State) {
	for key, c := range keyBindings {
		if rl.IsKeyPressed(key) {
			st.Press(c)
		}
		if rl.IsKeyReleased(key) {
			st.Release(c)
		}
	}
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

	rl.InitWindow(int32(settings.Width), int32(settings.Height), "Space Invaders")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Escape pauses
	rl.SetTargetFPS(int32(time.Second / settings.TickInterval))

	renderer := rlrender.New(settings.Width, settings.Height, rt.Seed)
	focused := true
	for !rl.WindowShouldClose() {
		if now := rl.IsWindowFocused(); now != focused {
			focused = now
			rt.FocusChanged(focused)
			log.Info().Bool("focused", focused).Msg("focus changed")
		}
		if focused {
			pollKeys(rt.Input)
			rt.Scheduler.Step()
		}

		rl.BeginDrawing()
		renderer.Draw(rt.Session.Snapshot(), rt.Session.Suspended())
		rl.EndDrawing()
	}
}
