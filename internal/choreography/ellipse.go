package choreography

import (
	"math"

	"go-space-invaders/internal/component"
)

// ellipse lays attackers out evenly around a closed curve centred on the
// upper playfield. freq is the vertical frequency: 1 for an oval, 2 for a
// figure eight.
func (c Choreographer) ellipse(level int, freq float64, prob float64, health int) []*component.Attacker {
	vr := c.Height / 3
	hr := (c.Width - aw) / 2
	circ := (vr + hr) * math.Pi

	most := int(math.Ceil(circ / (hs + aw)))
	n := level * most / 10
	if level > 10 {
		n = most
	}
	n = max(1, n)

	length := pathLen(circ, float64(1+level))
	path := make([]component.Waypoint, length)
	for i := range path {
		t := 2 * math.Pi * float64(i) / float64(length)
		path[i] = component.Waypoint{
			X: hr + hr*math.Cos(t),
			Y: vr + vr*math.Sin(freq*t),
		}
	}

	out := make([]*component.Attacker, 0, n)
	for i := 0; i < n; i++ {
		a := component.NewPathAttacker(path, prob, 0, 0)
		a.MoveToIndex(i * length / n)
		a.SetHealth(health)
		out = append(out, a)
	}
	return out
}

// Oval circles the attackers around the centre. Even levels take two hits.
func (c Choreographer) Oval(level int) []*component.Attacker {
	health := 1
	if level%2 == 0 {
		health = 2
	}
	return c.ellipse(level, 1, 0.0005*float64(level), health)
}

// FigureEight is the oval with a doubled vertical frequency.
func (c Choreographer) FigureEight(level int) []*component.Attacker {
	health := 3
	if level%2 == 1 {
		health = 2
	}
	return c.ellipse(level, 2, 0.001*float64(level), health)
}
