package component

// TrajectoryKind selects how an attacker moves each step.
type TrajectoryKind int

const (
	// Waypoints walks a cyclic list of precomputed positions.
	Waypoints TrajectoryKind = iota
	// Bounce sweeps horizontally between two bounds and drops on each bounce.
	Bounce
)

func (k TrajectoryKind) String() string {
	switch k {
	case Waypoints:
		return "waypoints"
	case Bounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// Waypoint is a single position on a path.
type Waypoint struct {
	X, Y float64
}

// BounceRule parametrises the bounce trajectory. Speed is the per-step
// magnitude; Right holds the current direction.
type BounceRule struct {
	MinX, MaxX float64
	Speed      float64
	Drop       float64
	Right      bool
}

// Trajectory is a tagged variant: exactly one of points or bounce is used,
// according to kind.
type Trajectory struct {
	kind   TrajectoryKind
	points []Waypoint
	index  int
	bounce BounceRule
}

// NewPath copies points shifted by (offX, offY). An empty path becomes a
// single waypoint at the offset.
func NewPath(points []Waypoint, offX, offY float64) Trajectory {
	if len(points) == 0 {
		points = []Waypoint{{}}
	}
	own := make([]Waypoint, len(points))
	for i, p := range points {
		own[i] = Waypoint{X: p.X + offX, Y: p.Y + offY}
	}
	return Trajectory{kind: Waypoints, points: own}
}

// NewStationary is a one-point path.
func NewStationary(x, y float64) Trajectory {
	return NewPath([]Waypoint{{X: x, Y: y}}, 0, 0)
}

// NewBounce creates a bounce trajectory from rule.
func NewBounce(rule BounceRule) Trajectory {
	return Trajectory{kind: Bounce, bounce: rule}
}

func (t *Trajectory) Kind() TrajectoryKind { return t.kind }

// Len is the number of waypoints, 0 for bounce trajectories.
func (t *Trajectory) Len() int { return len(t.points) }

// Index is the current waypoint index.
func (t *Trajectory) Index() int { return t.index }

// Rule returns the current bounce parameters.
func (t *Trajectory) Rule() BounceRule { return t.bounce }

// start returns the initial waypoint of a path trajectory.
func (t *Trajectory) start() Waypoint {
	return t.points[0]
}

// seek jumps to waypoint i modulo the path length.
func (t *Trajectory) seek(i int) Waypoint {
	n := len(t.points)
	t.index = ((i % n) + n) % n
	return t.points[t.index]
}

// next advances one waypoint, wrapping at the end.
func (t *Trajectory) next() Waypoint {
	return t.seek(t.index + 1)
}

// sweep advances a bounce trajectory from x and returns the new x and the
// vertical drop applied this step.
func (t *Trajectory) sweep(x float64) (float64, float64) {
	b := &t.bounce
	if b.Right {
		x += b.Speed
		if x >= b.MaxX {
			x = b.MaxX
			b.Right = false
			return x, b.Drop
		}
		return x, 0
	}
	x -= b.Speed
	if x <= b.MinX {
		x = b.MinX
		b.Right = true
		return x, b.Drop
	}
	return x, 0
}
