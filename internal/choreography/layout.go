// Package choreography builds the attacker formation for a level: where each
// attacker starts, the path it follows and how hard it is to kill.
package choreography

import (
	"math"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/utils"
)

const (
	aw = config.AttackerWidth
	ah = config.AttackerHeight
	hs = config.HorizontalSpacing
	vs = config.VerticalSpacing
)

// Choreographer lays out formations for a playfield of the given size.
type Choreographer struct {
	Width, Height float64
}

// New returns a choreographer for a width x height playfield.
func New(width, height float64) Choreographer {
	return Choreographer{Width: width, Height: height}
}

// Layout builds the formation for level on the default playfield.
func Layout(level int, rng utils.Rand) []*component.Attacker {
	return New(config.ScreenWidth, config.ScreenHeight).Layout(level, rng)
}

// Layout builds the formation defs.Lookup selects for level. The result is
// never empty.
func (c Choreographer) Layout(level int, rng utils.Rand) []*component.Attacker {
	def := defs.Lookup(level)
	p := def.Param
	if p < 1 {
		p = 1
	}

	var out []*component.Attacker
	switch def.Shape {
	case defs.ShapeBox:
		out = c.Box(p, healthOr(def.Health, 1))
	case defs.ShapeFlippingBox:
		out = c.FlippingBox(p)
	case defs.ShapeOval:
		out = c.Oval(p)
	case defs.ShapeFigureEight:
		out = c.FigureEight(p)
	case defs.ShapeRace:
		out = c.Race(p, rng)
	case defs.ShapeWave:
		out = c.Wave(p)
	case defs.ShapeRandom:
		out = c.Random(p, rng)
	case defs.ShapeRoamingBox:
		out = c.RoamingBox(p, healthOr(def.Health, 3))
	case defs.ShapeMarch:
		out = c.March(p, healthOr(def.Health, 1))
	case defs.ShapeTableau:
		out = c.Tableau(p)
	}
	if len(out) == 0 {
		out = c.Box(p, 1)
	}
	return out
}

func healthOr(h, fallback int) int {
	if h > 0 {
		return h
	}
	return fallback
}

// maxPerRow is how many attackers fit side by side across the playfield.
func (c Choreographer) maxPerRow() int {
	n := int(math.Ceil((c.Width - hs) / (aw + hs)))
	if n < 1 {
		n = 1
	}
	return n
}

// grid is the rows x columns of the box formations for level.
func (c Choreographer) grid(level int) (rows, cols int) {
	cols = c.maxPerRow()
	if level < 5 {
		cols = level * cols / 5
	}
	if cols < 1 {
		cols = 1
	}
	rows = min(8, level+4)
	return rows, cols
}

// sweep is a back and forth horizontal path over travel pixels at speed s,
// at height y.
func sweep(travel, s, y float64) []component.Waypoint {
	half := 1 + int(math.Round(travel/s))
	pts := make([]component.Waypoint, 2*half)
	for i := 0; i < half; i++ {
		x := s * float64(i)
		pts[i] = component.Waypoint{X: x, Y: y}
		pts[i+half] = component.Waypoint{X: travel - x, Y: y}
	}
	return pts
}

// pathLen rounds length/s to at least one step.
func pathLen(length, s float64) int {
	return max(1, int(math.Round(length/s)))
}
