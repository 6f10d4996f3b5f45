// internal/system/movement.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/input"
)

// MovementSystem moves attackers and the vehicle.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// StepAttackers advances every attacker one step and drops those that are
// gone: expired corpses and bouncers that marched off the bottom.
func (s *MovementSystem) StepAttackers() {
	w := s.world
	for _, a := range w.Attackers {
		a.Step()
	}
	w.Attackers = entity.Filter(w.Attackers, func(a *component.Attacker) bool {
		return a.Alive() && a.Y <= w.Height
	})
}

// MoveVehicle applies the held Left and Right signals. Holding both moves
// left then right, which cancels out away from the walls.
func (s *MovementSystem) MoveVehicle(in input.Snapshot) {
	w := s.world
	if in.Held(input.Left) {
		w.Vehicle.MoveLeft(0)
	}
	if in.Held(input.Right) {
		w.Vehicle.MoveRight(w.Width)
	}
}
