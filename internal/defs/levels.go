// internal/defs/levels.go
package defs

// LevelDefinition describes the formation of one level. Param is the
// difficulty the shape is built with (it drives speed, population and fire
// rate). Health is only read by shapes with a uniform hit count (box, march,
// roaming box); zero means the shape's own default.
type LevelDefinition struct {
	Level  int   `json:"level"`
	Shape  Shape `json:"shape"`
	Param  int   `json:"param"`
	Health int   `json:"health,omitempty"`
}

// LevelPatterns maps a level number to its formation.
var LevelPatterns = map[int]LevelDefinition{
	1:  {Level: 1, Shape: ShapeBox, Param: 1, Health: 1},
	2:  {Level: 2, Shape: ShapeBox, Param: 2, Health: 1},
	3:  {Level: 3, Shape: ShapeFlippingBox, Param: 3},
	4:  {Level: 4, Shape: ShapeFlippingBox, Param: 4},
	5:  {Level: 5, Shape: ShapeOval, Param: 5},
	6:  {Level: 6, Shape: ShapeMarch, Param: 2, Health: 3},
	7:  {Level: 7, Shape: ShapeFigureEight, Param: 3},
	8:  {Level: 8, Shape: ShapeRace, Param: 8},
	9:  {Level: 9, Shape: ShapeWave, Param: 3},
	10: {Level: 10, Shape: ShapeRandom, Param: 10},
	11: {Level: 11, Shape: ShapeOval, Param: 11},
	12: {Level: 12, Shape: ShapeFigureEight, Param: 6},
	13: {Level: 13, Shape: ShapeRoamingBox, Param: 13, Health: 3},
	14: {Level: 14, Shape: ShapeTableau, Param: 14},
}

// fallbackParam is the box difficulty used past the end of the table.
const fallbackParam = 3

// Lookup returns the formation for level. Levels below 1 are treated as
// level 1; levels missing from the table get a box whose attackers take as
// many hits as the level number.
func Lookup(level int) LevelDefinition {
	if level < 1 {
		level = 1
	}
	if def, ok := LevelPatterns[level]; ok {
		return def
	}
	return LevelDefinition{Level: level, Shape: ShapeBox, Param: fallbackParam, Health: level}
}
