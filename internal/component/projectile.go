package component

import "go-space-invaders/internal/config"

// ProjectileKind tells player shells from attacker phasers.
type ProjectileKind int

const (
	// ProjectileUp is fired by the vehicle and travels toward y = 0.
	ProjectileUp ProjectileKind = iota
	// ProjectileDown is fired by attackers and travels toward the floor.
	ProjectileDown
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileUp:
		return "up"
	case ProjectileDown:
		return "down"
	default:
		return "unknown"
	}
}

// Projectile is a single shot in flight.
type Projectile struct {
	Kind  ProjectileKind
	X, Y  float64
	W, H  float64
	Speed float64
}

// NewShell creates a player shell whose footprint is scaled by sizeFactor.
func NewShell(x, y, sizeFactor float64) *Projectile {
	return &Projectile{
		Kind:  ProjectileUp,
		X:     x,
		Y:     y,
		W:     config.ShellWidth * sizeFactor,
		H:     config.ShellHeight * sizeFactor,
		Speed: config.ShellSpeed,
	}
}

// NewPhaser creates an attacker shot.
func NewPhaser(x, y float64) *Projectile {
	return &Projectile{
		Kind:  ProjectileDown,
		X:     x,
		Y:     y,
		W:     config.PhaserWidth,
		H:     config.PhaserHeight,
		Speed: config.PhaserSpeed,
	}
}

// Advance moves the projectile one tick along its direction.
func (p *Projectile) Advance() {
	switch p.Kind {
	case ProjectileUp:
		p.Y -= p.Speed
	case ProjectileDown:
		p.Y += p.Speed
	}
}

// OutOfBounds reports whether the projectile has left a playfield of the
// given height through the edge it travels toward.
func (p *Projectile) OutOfBounds(height float64) bool {
	switch p.Kind {
	case ProjectileUp:
		return p.Y < 0
	case ProjectileDown:
		return p.Y > height
	default:
		return true
	}
}

func (p *Projectile) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
