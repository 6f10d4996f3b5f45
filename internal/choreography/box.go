package choreography

import (
	"math"

	"go-space-invaders/internal/component"
)

// boxTravel is how far a box of cols columns can slide sideways.
func (c Choreographer) boxTravel(cols int) float64 {
	return math.Max(0, c.Width-float64(cols)*(aw+hs)+hs)
}

// Box is the classic grid sliding left and right as one block.
func (c Choreographer) Box(level, hp int) []*component.Attacker {
	rows, cols := c.grid(level)
	path := sweep(c.boxTravel(cols), float64(1+level), ah)

	out := make([]*component.Attacker, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a := component.NewPathAttacker(path, 0.002*float64(level),
				(hs+aw)*float64(j), (vs+ah)*float64(i))
			a.SetHealth(hp)
			out = append(out, a)
		}
	}
	return out
}

// FlippingBox runs every attacker over the full width, columns staggered
// along the same path so the rows fold over at the walls.
func (c Choreographer) FlippingBox(level int) []*component.Attacker {
	rows, cols := c.grid(level)
	s := float64(1 + level)
	path := sweep(c.Width-aw, s, ah)
	step := int(math.Ceil((aw + hs) / s))

	out := make([]*component.Attacker, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a := component.NewPathAttacker(path, 0.001*float64(level), 0, (vs+ah)*float64(i))
			a.MoveToIndex(step * j)
			out = append(out, a)
		}
	}
	return out
}

// March is the grid where each attacker bounces inside its own column band
// and drops one row height on every bounce.
func (c Choreographer) March(level, hp int) []*component.Attacker {
	rows, cols := c.grid(level)
	travel := c.boxTravel(cols)

	out := make([]*component.Attacker, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x := (hs + aw) * float64(j)
			traj := component.NewBounce(component.BounceRule{
				MinX:  x,
				MaxX:  x + travel,
				Speed: float64(1 + level),
				Drop:  ah,
				Right: true,
			})
			a := component.NewAttacker(x, ah+(vs+ah)*float64(i), traj, 0.002*float64(level))
			a.SetHealth(hp)
			out = append(out, a)
		}
	}
	return out
}

// RoamingBox moves a narrow grid around a rectangle: right along the top,
// down, back left along the middle and up again. Columns near the edges are
// weaker and fire less.
func (c Choreographer) RoamingBox(level, hp int) []*component.Attacker {
	cols := max(1, c.maxPerRow()/3)
	const rows = 6
	travel := math.Max(0, c.Width-float64(cols)*(aw+hs)+hs)
	s := float64(1 + level/4)

	hori := 1 + int(math.Round(travel/s))
	vert := 1 + int(math.Round(c.Height/2/s))
	half := hori + vert
	path := make([]component.Waypoint, 2*half)
	for i := 0; i < hori; i++ {
		x := s * float64(i)
		path[i] = component.Waypoint{X: x, Y: ah}
		path[i+half] = component.Waypoint{X: travel - x, Y: ah + c.Height/2}
	}
	for i := hori; i < half; i++ {
		path[i] = component.Waypoint{X: path[i-1].X, Y: path[i-1].Y + s}
		path[i+half].X = path[0].X
		path[2*half+hori-i-1].Y = path[i].Y
	}

	prob := 0.001 * float64(level)
	out := make([]*component.Attacker, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			health, p := hp, prob
			switch {
			case j < hp:
				health = j + 1
				p = prob * float64(j+1) / float64(hp)
			case j > cols-hp-1:
				health = cols - j
				p = prob * float64(cols-j) / float64(hp)
			}
			a := component.NewPathAttacker(path, p, (hs+aw)*float64(j), (vs+ah)*float64(i))
			a.SetHealth(health)
			out = append(out, a)
		}
	}
	return out
}
