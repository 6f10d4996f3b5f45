package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils"
)

// Overlay is the box drawn over the middle third of the playfield for the
// menu and the pause screen. Its border slowly cycles through colours.
type Overlay struct {
	Title    string
	Subtitle string

	titleFace font.Face
	subFace   font.Face
}

func NewOverlay(title, subtitle string, titleFace, subFace font.Face) *Overlay {
	return &Overlay{Title: title, Subtitle: subtitle, titleFace: titleFace, subFace: subFace}
}

// BorderColor is the overlay border at the given uptime.
func BorderColor(uptimeMs int64) color.RGBA {
	return color.RGBA{
		R: utils.CycleChannel(uptimeMs, 5000, false),
		G: utils.CycleChannel(uptimeMs, 5000, true),
		B: utils.CycleChannel(uptimeMs, 20000, false),
		A: 255,
	}
}

func (o *Overlay) Draw(screen *ebiten.Image, width, height float32, uptimeMs int64) {
	x, y, w, h := width/3, height/3, width/3, height/3
	vector.DrawFilledRect(screen, x, y, w, h, config.BackgroundColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, BorderColor(uptimeMs), false)

	centre := func(s string, face font.Face, baseline int) {
		b := text.BoundString(face, s)
		text.Draw(screen, s, face, int(width/2)-b.Dx()/2, baseline, config.TextLightColor)
	}
	centre(o.Title, o.titleFace, int(height/2))
	if o.Subtitle != "" {
		centre(o.Subtitle, o.subFace, int(5*height/9))
	}
}
