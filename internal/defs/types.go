// internal/defs/types.go
package defs

// Shape names a choreography. The values double as the JSON spelling in a
// levels file.
type Shape string

const (
	ShapeBox         Shape = "box"
	ShapeFlippingBox Shape = "flipping_box"
	ShapeOval        Shape = "oval"
	ShapeFigureEight Shape = "figure_eight"
	ShapeRace        Shape = "race"
	ShapeWave        Shape = "wave"
	ShapeRandom      Shape = "random"
	ShapeRoamingBox  Shape = "roaming_box"
	ShapeMarch       Shape = "march"
	ShapeTableau     Shape = "tableau"
)

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	switch s {
	case ShapeBox, ShapeFlippingBox, ShapeOval, ShapeFigureEight, ShapeRace,
		ShapeWave, ShapeRandom, ShapeRoamingBox, ShapeMarch, ShapeTableau:
		return true
	}
	return false
}
