package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
)

const (
	livesBoxSize = 50
	borderWidth  = 1
)

// LivesIndicator is the boxed life counter with a small vehicle under the
// number.
type LivesIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewLivesIndicator(x, y float32, fontFace font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, fontFace: fontFace}
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	vector.DrawFilledRect(screen, i.X, i.Y, livesBoxSize, livesBoxSize, config.BackgroundColor, false)
	vector.StrokeRect(screen, i.X, i.Y, livesBoxSize, livesBoxSize, borderWidth, config.TextLightColor, false)

	text.Draw(screen, strconv.Itoa(lives), i.fontFace, int(i.X)+20, int(i.Y)+18, config.TextLightColor)

	// icon
	ix := i.X + livesBoxSize/2 - config.VehicleWidth/2
	iy := i.Y + livesBoxSize - config.VehicleHeight - 5
	vector.DrawFilledRect(screen, ix, iy, config.VehicleWidth, config.VehicleHeight, config.VehicleBodyColor, false)
	vector.StrokeRect(screen, ix, iy, config.VehicleWidth, config.VehicleHeight, borderWidth, config.VehicleTrimColor, false)
}
