package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/utils"
)

// LevelIndicator shows the current level in roman numerals.
type LevelIndicator struct {
	X, Y     int
	Color    color.Color
	fontFace font.Face
}

func NewLevelIndicator(x, y int, fontFace font.Face) *LevelIndicator {
	return &LevelIndicator{
		X:        x,
		Y:        y,
		Color:    config.TextLightColor,
		fontFace: fontFace,
	}
}

func (i *LevelIndicator) Draw(screen *ebiten.Image, level int) {
	if level <= 0 {
		return
	}
	text.Draw(screen, utils.LevelLabel(level), i.fontFace, i.X, i.Y, i.Color)
}
