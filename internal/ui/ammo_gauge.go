package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils"
)

const (
	gaugeWidth  = 10
	gaugeHeight = 100
)

// AmmoGauge is a vertical bar filled from the bottom with the remaining
// ammo. It turns red while the vehicle is overheated.
type AmmoGauge struct {
	X, Y float32
}

func NewAmmoGauge(x, y float32) *AmmoGauge {
	return &AmmoGauge{X: x, Y: y}
}

// gaugeFill is the filled height for an ammo fraction.
func gaugeFill(ammo float64) float32 {
	t := float32(max(0, min(1, ammo)))
	return utils.Lerp(0, gaugeHeight, t)
}

// gaugeColor picks the fill colour.
func gaugeColor(overheated bool) color.RGBA {
	if overheated {
		return config.OverheatedColor
	}
	return config.AmmoColor
}

func (g *AmmoGauge) Draw(screen *ebiten.Image, ammo float64, overheated bool) {
	fill := gaugeFill(ammo)
	if fill > 0 {
		vector.DrawFilledRect(screen, g.X, g.Y+gaugeHeight-fill, gaugeWidth, fill, gaugeColor(overheated), false)
	}
	vector.StrokeRect(screen, g.X, g.Y, gaugeWidth, gaugeHeight, borderWidth, config.TextLightColor, false)
}
