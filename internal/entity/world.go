// internal/entity/world.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

// World holds every live entity of a session. Each entity belongs to exactly
// one collection; systems mark removals during a scan and call Compact
// afterwards.
type World struct {
	Width, Height float64

	Vehicle   *component.Vehicle
	Attackers []*component.Attacker
	Shells    []*component.Projectile // fired by the vehicle, travelling up
	Phasers   []*component.Projectile // fired by attackers, travelling down
	Pickups   []*component.Pickup
}

func NewWorld(width, height float64) *World {
	return &World{Width: width, Height: height}
}

// VehicleStart is the spawn point: horizontally centred, one vehicle height
// above the floor.
func (w *World) VehicleStart() (float64, float64) {
	return w.Width/2 - config.VehicleWidth/2, w.Height - 2*config.VehicleHeight
}

// SpawnVehicle replaces the vehicle with a fresh one at the start position.
func (w *World) SpawnVehicle() *component.Vehicle {
	x, y := w.VehicleStart()
	w.Vehicle = component.NewVehicle(x, y)
	return w.Vehicle
}

// ClearTransient drops projectiles and pickups.
func (w *World) ClearTransient() {
	clear(w.Shells)
	clear(w.Phasers)
	clear(w.Pickups)
	w.Shells = w.Shells[:0]
	w.Phasers = w.Phasers[:0]
	w.Pickups = w.Pickups[:0]
}

// Reset empties the world, including the vehicle.
func (w *World) Reset() {
	w.Vehicle = nil
	w.Attackers = nil
	w.ClearTransient()
}

// Floor is the resting height for pickups.
func (w *World) Floor(itemHeight float64) float64 {
	return w.Height - itemHeight
}

// Compact removes the elements whose index is marked in dead, keeping the
// order of the rest. The tail is zeroed so removed entities can be collected.
func Compact[T any](items []*T, dead []bool) []*T {
	n := 0
	for i, it := range items {
		if i < len(dead) && dead[i] {
			continue
		}
		items[n] = it
		n++
	}
	clear(items[n:])
	return items[:n]
}

// Filter keeps the elements for which keep returns true.
func Filter[T any](items []*T, keep func(*T) bool) []*T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
