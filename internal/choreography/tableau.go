package choreography

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
)

// Tableau spells the closing message with stationary attackers. Empty cells
// are corpses that vanish after their death timer.
func (c Choreographer) Tableau(level int) []*component.Attacker {
	grid := defs.TableauGrid
	if len(grid) == 0 {
		return nil
	}
	cols := float64(len(grid[0]))
	x0 := c.Width/2 - aw*cols/2 - hs*(cols-1)/2
	y0 := vs

	out := make([]*component.Attacker, 0, len(grid)*len(grid[0]))
	for r, row := range grid {
		for col, health := range row {
			a := component.NewStationaryAttacker(
				x0+(aw+hs)*float64(col),
				y0+(ah+vs)*float64(r),
				0.0005*float64(level),
			)
			a.SetHealth(health)
			out = append(out, a)
		}
	}
	return out
}
