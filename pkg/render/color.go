// pkg/render/color.go
package render

import "image/color"

// Palette holds the colours used to draw the playfield sprites.
type Palette struct {
	Background color.RGBA
	Star       color.RGBA
	Text       color.RGBA

	VehicleBody  color.RGBA
	VehicleTrim  color.RGBA
	Shield       color.RGBA
	DeadVehicle  color.RGBA
	Shell        color.RGBA
	Phaser       color.RGBA
	Pickup       color.RGBA
	PickupLabel  color.RGBA
	Explosion    color.RGBA
	AttackerTier []color.RGBA
	StrokeWidth  float32
}

// Tier returns the colour for an attacker health tier, clamped to the
// palette.
func (p Palette) Tier(tier int) color.RGBA {
	if len(p.AttackerTier) == 0 {
		return p.Text
	}
	tier = max(0, min(tier, len(p.AttackerTier)-1))
	return p.AttackerTier[tier]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
