// internal/system/projectile.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/entity"
)

// ProjectileSystem moves shots in flight and drops those that left the
// playfield.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	w := s.world
	inside := func(p *component.Projectile) bool {
		p.Advance()
		return !p.OutOfBounds(w.Height)
	}
	w.Shells = entity.Filter(w.Shells, inside)
	w.Phasers = entity.Filter(w.Phasers, inside)
}
