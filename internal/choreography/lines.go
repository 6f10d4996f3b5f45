package choreography

import (
	"math"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/utils"
)

// Race sends attackers across the screen on straight lines at random heights
// and random speeds.
func (c Choreographer) Race(level int, rng utils.Rand) []*component.Attacker {
	n := int(20 + 3*float64(level)*rng.Float64())

	out := make([]*component.Attacker, 0, n)
	for i := 0; i < n; i++ {
		length := max(1, int((c.Width+aw)/(1+9*rng.Float64())))
		y := rng.Float64() * c.Height * 2 / 3
		path := make([]component.Waypoint, length)
		for j := range path {
			path[j] = component.Waypoint{
				X: (c.Width+aw)*float64(j)/float64(length) - aw,
				Y: y,
			}
		}

		a := component.NewPathAttacker(path, 0.0005*float64(level), 0, 0)
		a.SetHealth(3)
		a.MoveToIndex(int(rng.Float64() * float64(length)))
		out = append(out, a)
	}
	return out
}

// Wave is a full row bobbing up and down, each attacker a little behind its
// left neighbour.
func (c Choreographer) Wave(level int) []*component.Attacker {
	n := max(1, int((c.Width+hs)/(aw+hs)))

	length := pathLen(c.Height*2/3, float64(1+level))
	path := make([]component.Waypoint, length)
	for i := range path {
		path[i] = component.Waypoint{
			Y: c.Height * 5 / 12 * (1 + math.Sin(2*math.Pi*float64(i)/float64(length))),
		}
	}

	out := make([]*component.Attacker, 0, n)
	for i := 0; i < n; i++ {
		a := component.NewPathAttacker(path, 0.005*float64(level), (aw+hs)*float64(i), 0)
		a.MoveToIndex(i * length / n)
		a.SetHealth(3)
		out = append(out, a)
	}
	return out
}

// holdSteps is how long a random walker stays on each point.
const holdSteps = 30

// Random scatters attackers that jump between random points in the upper
// three quarters of the playfield.
func (c Choreographer) Random(level int, rng utils.Rand) []*component.Attacker {
	n := 2 * level
	length := 10 * level

	out := make([]*component.Attacker, 0, n)
	for i := 0; i < n; i++ {
		path := make([]component.Waypoint, length)
		for j := range path {
			if j%holdSteps == 0 {
				path[j] = component.Waypoint{
					X: (c.Width - aw) * rng.Float64(),
					Y: c.Height * 3 / 4 * rng.Float64(),
				}
				continue
			}
			path[j] = path[j-1]
		}
		out = append(out, component.NewPathAttacker(path, 0.001*float64(level), 0, 0))
	}
	return out
}
