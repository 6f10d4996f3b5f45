package component

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils"
)

// Attacker is one member of an attacking formation.
type Attacker struct {
	X, Y              float64 // top-left
	AttackProbability float64 // chance to fire per tick, in [0, 1]

	traj       Trajectory
	health     int
	deathTimer int
}

// NewAttacker places an attacker at the start of traj. Bounce trajectories
// start at (x, y); path trajectories ignore x and y and start on their first
// waypoint.
func NewAttacker(x, y float64, traj Trajectory, attackProbability float64) *Attacker {
	a := &Attacker{
		X:                 x,
		Y:                 y,
		AttackProbability: attackProbability,
		traj:              traj,
		health:            1,
		deathTimer:        config.DeathTimerLength,
	}
	if traj.kind == Waypoints {
		p := a.traj.start()
		a.X, a.Y = p.X, p.Y
	}
	return a
}

// NewPathAttacker follows points shifted by (offX, offY).
func NewPathAttacker(points []Waypoint, attackProbability, offX, offY float64) *Attacker {
	return NewAttacker(0, 0, NewPath(points, offX, offY), attackProbability)
}

// NewStationaryAttacker never moves.
func NewStationaryAttacker(x, y, attackProbability float64) *Attacker {
	return NewAttacker(x, y, NewStationary(x, y), attackProbability)
}

// SetHealth sets health and rearms the death timer.
func (a *Attacker) SetHealth(h int) {
	if h < 0 {
		h = 0
	}
	a.health = h
	a.deathTimer = config.DeathTimerLength
}

// MoveToIndex jumps to waypoint i (modulo the path length). Bounce
// trajectories ignore it.
func (a *Attacker) MoveToIndex(i int) {
	if a.traj.kind != Waypoints {
		return
	}
	p := a.traj.seek(i)
	a.X, a.Y = p.X, p.Y
}

// Step moves the attacker one tick along its trajectory. On a path a dead
// attacker keeps walking while its corpse timer runs down.
func (a *Attacker) Step() {
	switch a.traj.kind {
	case Waypoints:
		if a.health <= 0 {
			a.deathTimer--
		}
		p := a.traj.next()
		a.X, a.Y = p.X, p.Y
	case Bounce:
		x, drop := a.traj.sweep(a.X)
		a.X = x
		a.Y += drop
	}
}

// Fire rolls against AttackProbability and returns a phaser centred on the
// attacker's bottom edge, or nil.
func (a *Attacker) Fire(r utils.Rand) *Projectile {
	if r.Float64() < a.AttackProbability {
		return NewPhaser(a.X+config.AttackerWidth/2-config.PhaserWidth/2, a.Y+config.AttackerHeight)
	}
	return nil
}

// Hit removes one point of health.
func (a *Attacker) Hit() {
	if a.health > 0 {
		a.health--
	}
}

// Alive reports whether the attacker is still on the field. Path attackers
// stay as corpses until their death timer runs out; bounce attackers leave as
// soon as their health is gone.
func (a *Attacker) Alive() bool {
	if a.traj.kind == Bounce {
		return a.health > 0
	}
	return a.deathTimer > 0
}

// IsCorpse reports a dead attacker still on display.
func (a *Attacker) IsCorpse() bool {
	return a.health <= 0 && a.Alive()
}

// Tier buckets health for rendering: 0 corpse, 1, 2, 3 for many.
func (a *Attacker) Tier() int {
	switch {
	case a.health <= 0:
		return 0
	case a.health >= 3:
		return 3
	default:
		return a.health
	}
}

func (a *Attacker) Health() int                  { return a.health }
func (a *Attacker) DeathTimer() int              { return a.deathTimer }
func (a *Attacker) Trajectory() *Trajectory      { return &a.traj }
func (a *Attacker) TrajectoryKind() TrajectoryKind { return a.traj.kind }

func (a *Attacker) Bounds() Rect {
	return Rect{X: a.X, Y: a.Y, W: config.AttackerWidth, H: config.AttackerHeight}
}
