package rlrender

import (
	"image/color"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestToRL(t *testing.T) {
	got := toRL(color.RGBA{R: 1, G: 2, B: 3, A: 4})
	assert.Equal(t, rl.Color{R: 1, G: 2, B: 3, A: 4}, got)
}

func TestBorderColorCycles(t *testing.T) {
	start := borderColor(0)
	assert.Equal(t, rl.Color{R: 255, G: 128, B: 255, A: 255}, start)
	assert.NotEqual(t, start, borderColor(7000))
}

func TestRect(t *testing.T) {
	assert.Equal(t, rl.Rectangle{X: 1, Y: 2, Width: 3, Height: 4}, rect(1, 2, 3, 4))
}
