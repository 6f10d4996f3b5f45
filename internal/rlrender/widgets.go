// internal/rlrender/widgets.go
package rlrender

import (
	"image/color"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils"
	pkgutils "go-space-invaders/pkg/utils"
)

const (
	fontSize    = 20
	smallFont   = 14
	borderWidth = 1
)

// toRL converts a config colour.
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// LevelIndicator draws the level in roman numerals with an outline.
type LevelIndicator struct {
	X, Y             float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

func NewLevelIndicator(x, y float32) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		Color:            toRL(config.TextLightColor),
		OutlineColor:     rl.Black,
		OutlineThickness: 1,
	}
}

func (i *LevelIndicator) Draw(level int, font rl.Font) {
	if level <= 0 {
		return
	}
	text := pkgutils.LevelLabel(level)
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(i.X+float32(x), i.Y+float32(y)), fontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(i.X, i.Y), fontSize, 1, i.Color)
}

// LivesIndicator is the boxed life counter with a vehicle icon.
type LivesIndicator struct {
	X, Y float32
	Size float32
}

func NewLivesIndicator(x, y, size float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Size: size}
}

func (i *LivesIndicator) Draw(lives int, font rl.Font) {
	box := rl.NewRectangle(i.X, i.Y, i.Size, i.Size)
	rl.DrawRectangleRec(box, toRL(config.BackgroundColor))
	rl.DrawRectangleLinesEx(box, borderWidth, toRL(config.TextLightColor))

	label := strconv.Itoa(lives)
	size := rl.MeasureTextEx(font, label, fontSize, 1)
	rl.DrawTextEx(font, label, rl.NewVector2(i.X+i.Size/2-size.X/2, i.Y+4), fontSize, 1, toRL(config.TextLightColor))

	icon := rl.NewRectangle(i.X+i.Size/2-config.VehicleWidth/2, i.Y+i.Size-config.VehicleHeight-5, config.VehicleWidth, config.VehicleHeight)
	rl.DrawRectangleRec(icon, toRL(config.VehicleBodyColor))
	rl.DrawRectangleLinesEx(icon, borderWidth, toRL(config.VehicleTrimColor))
}

// AmmoGauge is a vertical bar filled from the bottom, red while overheated.
type AmmoGauge struct {
	X, Y, W, H float32
}

func NewAmmoGauge(x, y, w, h float32) *AmmoGauge {
	return &AmmoGauge{X: x, Y: y, W: w, H: h}
}

func (g *AmmoGauge) Draw(ammo float64, overheated bool) {
	fill := utils.Lerp(0, g.H, float32(pkgutils.ClampF(ammo, 0, 1)))
	c := config.AmmoColor
	if overheated {
		c = config.OverheatedColor
	}
	if fill > 0 {
		rl.DrawRectangleRec(rl.NewRectangle(g.X, g.Y+g.H-fill, g.W, fill), toRL(c))
	}
	rl.DrawRectangleLinesEx(rl.NewRectangle(g.X, g.Y, g.W, g.H), borderWidth, toRL(config.TextLightColor))
}

// Overlay is the centred box for the menu and pause screens.
type Overlay struct {
	Title, Subtitle string
}

// borderColor cycles with uptime like the window host's overlay.
func borderColor(uptimeMs int64) rl.Color {
	return rl.NewColor(
		utils.CycleChannel(uptimeMs, 5000, false),
		utils.CycleChannel(uptimeMs, 5000, true),
		utils.CycleChannel(uptimeMs, 20000, false),
		255,
	)
}

func (o *Overlay) Draw(width, height float32, uptimeMs int64, font rl.Font) {
	box := rl.NewRectangle(width/3, height/3, width/3, height/3)
	rl.DrawRectangleRec(box, toRL(config.BackgroundColor))
	rl.DrawRectangleLinesEx(box, 2, borderColor(uptimeMs))

	centre := func(s string, size, y float32) {
		m := rl.MeasureTextEx(font, s, size, 1)
		rl.DrawTextEx(font, s, rl.NewVector2(width/2-m.X/2, y), size, 1, toRL(config.TextLightColor))
	}
	centre(o.Title, fontSize, height/2-fontSize)
	if o.Subtitle != "" {
		centre(o.Subtitle, smallFont, 5*height/9-smallFont)
	}
}
