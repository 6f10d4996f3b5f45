// internal/system/combat.go
package system

import (
	"github.com/rs/zerolog"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/utils"
)

// CombatSystem runs one Playing tick over the world: collisions, firing,
// movement, culling and pickups, always in the same order.
type CombatSystem struct {
	world           *entity.World
	rng             utils.Rand
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger

	movement    *MovementSystem
	projectiles *ProjectileSystem
	pickups     *PickupSystem

	// scratch removal marks, reused between ticks
	deadA, deadB []bool
}

func NewCombatSystem(world *entity.World, rng utils.Rand, eventDispatcher *event.Dispatcher, log zerolog.Logger) *CombatSystem {
	return &CombatSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		log:             log.With().Str("system", "combat").Logger(),
		movement:        NewMovementSystem(world),
		projectiles:     NewProjectileSystem(world),
		pickups:         NewPickupSystem(world, rng, eventDispatcher),
	}
}

// Resolve advances the world by one tick using the given control signals.
func (s *CombatSystem) Resolve(in input.Snapshot) {
	w := s.world
	if w.Vehicle == nil {
		return
	}

	s.phasersVersusShells()
	s.phasersVersusVehicle()
	s.attackersVersusVehicle()
	s.attackersVersusShells()

	if in.Held(input.Fire) {
		if shell := w.Vehicle.Fire(); shell != nil {
			w.Shells = append(w.Shells, shell)
			s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired})
		}
	}

	for _, a := range w.Attackers {
		if p := a.Fire(s.rng); p != nil {
			w.Phasers = append(w.Phasers, p)
		}
	}

	s.movement.StepAttackers()
	s.movement.MoveVehicle(in)
	s.projectiles.Update()
	s.pickups.Update()
}

// marks returns two zeroed removal masks of the given lengths.
func (s *CombatSystem) marks(a, b int) ([]bool, []bool) {
	s.deadA = resize(s.deadA, a)
	s.deadB = resize(s.deadB, b)
	return s.deadA, s.deadB
}

func resize(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}

// phasersVersusShells: a phaser and the first shell it touches cancel out.
func (s *CombatSystem) phasersVersusShells() {
	w := s.world
	if len(w.Phasers) == 0 || len(w.Shells) == 0 {
		return
	}
	deadP, deadS := s.marks(len(w.Phasers), len(w.Shells))
	for i, p := range w.Phasers {
		for j, sh := range w.Shells {
			if deadS[j] || !component.Collides(p, sh) {
				continue
			}
			deadP[i], deadS[j] = true, true
			break
		}
	}
	w.Phasers = entity.Compact(w.Phasers, deadP)
	w.Shells = entity.Compact(w.Shells, deadS)
}

// hitVehicle applies a hit and reports it when the vehicle actually took it.
func (s *CombatSystem) hitVehicle() {
	v := s.world.Vehicle
	before := v.State()
	v.GetHit()
	if before != v.State() {
		s.log.Debug().Float64("x", v.X).Msg("vehicle hit")
		s.eventDispatcher.Dispatch(event.Event{Type: event.VehicleHit})
	}
}

func (s *CombatSystem) phasersVersusVehicle() {
	w := s.world
	deadP, _ := s.marks(len(w.Phasers), 0)
	for i, p := range w.Phasers {
		if component.Collides(w.Vehicle, p) {
			s.hitVehicle()
			deadP[i] = true
		}
	}
	w.Phasers = entity.Compact(w.Phasers, deadP)
}

// attackersVersusVehicle: an attacker that rams the vehicle is spent.
func (s *CombatSystem) attackersVersusVehicle() {
	w := s.world
	deadA, _ := s.marks(len(w.Attackers), 0)
	for i, a := range w.Attackers {
		if component.Collides(w.Vehicle, a) {
			s.hitVehicle()
			deadA[i] = true
		}
	}
	w.Attackers = entity.Compact(w.Attackers, deadA)
}

// attackersVersusShells: the first shell touching an attacker is consumed
// and takes one point of health. The attacker goes when it has none left;
// corpses go on any hit.
func (s *CombatSystem) attackersVersusShells() {
	w := s.world
	if len(w.Shells) == 0 {
		return
	}
	deadA, deadS := s.marks(len(w.Attackers), len(w.Shells))
	for i, a := range w.Attackers {
		for j, sh := range w.Shells {
			if deadS[j] || !component.Collides(a, sh) {
				continue
			}
			deadS[j] = true
			if a.IsCorpse() {
				deadA[i] = true
				break
			}
			a.Hit()
			if a.Health() == 0 {
				deadA[i] = true
				s.destroyed(a)
			}
			break
		}
	}
	w.Attackers = entity.Compact(w.Attackers, deadA)
	w.Shells = entity.Compact(w.Shells, deadS)
}

// destroyed reports a kill and maybe drops a pickup where it happened.
func (s *CombatSystem) destroyed(a *component.Attacker) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.AttackerDestroyed,
		Data: event.PositionData{X: a.X, Y: a.Y},
	})
	if s.rng.Float64() < config.DropRate {
		s.pickups.Spawn(a.X, a.Y)
	}
}
