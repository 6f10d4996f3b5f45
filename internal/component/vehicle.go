package component

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/utils"
)

// VehicleState is the player vehicle's life-cycle tag.
type VehicleState int

const (
	Healthy VehicleState = iota
	Exploding
	Dead
	Shielded
)

func (s VehicleState) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Exploding:
		return "exploding"
	case Dead:
		return "dead"
	case Shielded:
		return "shielded"
	default:
		return "unknown"
	}
}

// Vehicle is the player-controlled tank at the bottom of the playfield.
type Vehicle struct {
	X, Y float64 // top-left

	speed float64

	state        VehicleState
	stateCounter int // ticks spent in the current state

	ammo         float64
	maxAmmo      float64
	rechargeRate float64
	reloadTime   float64 // ticks between shots
	reloadStage  float64 // ticks until the next shot is allowed
	sizeFactor   float64
	overheated   bool
}

// NewVehicle creates a healthy vehicle with full ammo at (x, y).
func NewVehicle(x, y float64) *Vehicle {
	return &Vehicle{
		X:            x,
		Y:            y,
		speed:        config.VehicleSpeed,
		state:        Healthy,
		maxAmmo:      config.MaxAmmo,
		ammo:         config.MaxAmmo,
		rechargeRate: config.AmmoRechargeRate,
		reloadTime:   config.AmmoReloadTime,
		sizeFactor:   1,
	}
}

// GetHit reacts to enemy fire or a ram. Only a healthy vehicle is affected;
// exploding, dead and shielded vehicles ignore the hit.
func (v *Vehicle) GetHit() {
	switch v.state {
	case Healthy:
		v.state = Exploding
		v.stateCounter = 0
	default:
	}
}

// IsDead reports whether the explosion has finished.
func (v *Vehicle) IsDead() bool {
	return v.state == Dead
}

// UpdateState advances the vehicle by one tick: state timers, reload and
// ammo regeneration.
func (v *Vehicle) UpdateState() {
	v.stateCounter++

	switch v.state {
	case Shielded:
		if v.stateCounter >= config.ShieldTime {
			v.state = Healthy
			v.stateCounter = 0
		}
		v.reload()
	case Healthy:
		v.reload()
	case Exploding:
		if v.stateCounter >= config.ExplodeTime {
			v.state = Dead
			v.stateCounter = 0
		}
	case Dead:
	}
}

func (v *Vehicle) reload() {
	if v.reloadStage > 0 {
		v.reloadStage--
		if v.reloadStage < 0 {
			v.reloadStage = 0
		}
	} else if v.ammo < v.maxAmmo {
		v.ammo += v.rechargeRate
		if !v.overheated {
			v.ammo += 2 * v.rechargeRate
		} else if v.ammo > config.OverheatRecoverFrac*v.maxAmmo {
			v.overheated = false
		}
	}
	v.ammo = utils.ClampF(v.ammo, 0, v.maxAmmo)
}

// Fire tries to shoot a shell. It returns nil when overheated, out of ammo
// (which overheats the vehicle), still reloading, or not able to fight.
func (v *Vehicle) Fire() *Projectile {
	if v.overheated || v.ammo <= 0 {
		v.overheated = true
		return nil
	}
	if v.reloadStage > 0 {
		return nil
	}

	switch v.state {
	case Healthy, Shielded:
		v.ammo = utils.ClampF(v.ammo-1, 0, v.maxAmmo)
		v.reloadStage = v.reloadTime

		return NewShell(
			v.X+config.VehicleWidth/2-v.sizeFactor*config.ShellWidth/2,
			v.Y-config.ShellHeight*v.sizeFactor,
			v.sizeFactor,
		)
	default:
		return nil
	}
}

// MoveLeft moves by the vehicle's speed without crossing leftWall.
func (v *Vehicle) MoveLeft(leftWall float64) {
	if !v.canAct() {
		return
	}
	v.X -= v.speed
	if v.X < leftWall {
		v.X = leftWall
	}
}

// MoveRight moves by the vehicle's speed without letting the right edge cross
// rightWall.
func (v *Vehicle) MoveRight(rightWall float64) {
	if !v.canAct() {
		return
	}
	v.X += v.speed
	if v.X+config.VehicleWidth > rightWall {
		v.X = rightWall - config.VehicleWidth
	}
}

func (v *Vehicle) canAct() bool {
	return v.state == Healthy || v.state == Shielded
}

func (v *Vehicle) Bounds() Rect {
	return Rect{X: v.X, Y: v.Y, W: config.VehicleWidth, H: config.VehicleHeight}
}

// Upgrades applied by pickups.

func (v *Vehicle) SetShielded() {
	v.state = Shielded
	v.stateCounter = 0
}

func (v *Vehicle) IncreaseSpeed() {
	v.speed += config.VehicleSpeedBoost
}

func (v *Vehicle) SetAmmoRechargeRate(rate float64) {
	v.rechargeRate = rate
}

func (v *Vehicle) SetAmmoReloadTime(ticks float64) {
	v.reloadTime = ticks
	if v.reloadStage > ticks {
		v.reloadStage = ticks
	}
}

func (v *Vehicle) IncreaseSizeFactor() {
	v.sizeFactor++
}

// Accessors

func (v *Vehicle) State() VehicleState { return v.state }
func (v *Vehicle) StateCounter() int   { return v.stateCounter }
func (v *Vehicle) Ammo() float64       { return v.ammo }
func (v *Vehicle) MaxAmmo() float64    { return v.maxAmmo }
func (v *Vehicle) Overheated() bool    { return v.overheated }
func (v *Vehicle) Speed() float64      { return v.speed }
func (v *Vehicle) SizeFactor() float64 { return v.sizeFactor }

// AmmoFraction is ammo / max, the value shown by the ammo gauge.
func (v *Vehicle) AmmoFraction() float64 {
	return v.ammo / v.maxAmmo
}

// ReloadFraction is 1 when a shot is ready and falls toward 0 right after
// firing.
func (v *Vehicle) ReloadFraction() float64 {
	return 1 - v.reloadStage/(1+v.reloadTime)
}
