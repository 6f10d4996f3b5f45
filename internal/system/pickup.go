// internal/system/pickup.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
)

// PickupSystem drops, ages and applies pickups.
type PickupSystem struct {
	world           *entity.World
	rng             utils.Rand
	eventDispatcher *event.Dispatcher
}

func NewPickupSystem(world *entity.World, rng utils.Rand, eventDispatcher *event.Dispatcher) *PickupSystem {
	return &PickupSystem{world: world, rng: rng, eventDispatcher: eventDispatcher}
}

// Spawn drops a new pickup at (x, y).
func (s *PickupSystem) Spawn(x, y float64) {
	s.world.Pickups = append(s.world.Pickups, component.NewPickup(x, y))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PickupSpawned,
		Data: event.PositionData{X: x, Y: y},
	})
}

// Update ages every pickup, hands the vehicle whatever it touches and drops
// the expired ones.
func (s *PickupSystem) Update() {
	w := s.world
	floor := w.Floor(config.PickupHeight)
	for _, p := range w.Pickups {
		p.Update(floor)
		if w.Vehicle == nil || !component.Collides(w.Vehicle, p) {
			continue
		}
		if p.Upgrade(w.Vehicle, s.rng) {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PickupCollected,
				Data: event.PickupData{Upgrade: p.Kind().Key()},
			})
		}
	}
	w.Pickups = entity.Filter(w.Pickups, func(p *component.Pickup) bool {
		return !p.Expired()
	})
}
