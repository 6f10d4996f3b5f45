package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-invaders/internal/input"
)

// keyBindings maps keyboard keys to controls. Several keys may share one.
var keyBindings = map[ebiten.Key]input.Control{
	ebiten.KeySpace:        input.Start,
	ebiten.KeyP:            input.Pause,
	ebiten.KeyEscape:       input.Pause,
	ebiten.KeyArrowLeft:    input.Left,
	ebiten.KeyA:            input.Left,
	ebiten.KeyArrowRight:   input.Right,
	ebiten.KeyD:            input.Right,
	ebiten.KeyZ:            input.Fire,
	ebiten.KeyControlLeft:  input.Fire,
	ebiten.KeyControlRight: input.Fire,
	ebiten.KeyX:            input.Bomb,
}

// pollKeys forwards this frame's key edges to st.
func pollKeys(st *input.State) {
	for key, c := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			st.Press(c)
		}
		if inpututil.IsKeyJustReleased(key) {
			st.Release(c)
		}
	}
}
