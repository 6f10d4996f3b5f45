package component

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/utils"
)

// PickupKind is the upgrade a pickup grants. A pickup stays Unassigned until
// the vehicle touches it.
type PickupKind int

const (
	Unassigned PickupKind = iota
	Shields
	SpeedBoost
	AmmoBoost
	RapidFire
	BiggerAmmo
)

// pickupKinds are the upgrades a pickup can roll.
var pickupKinds = []PickupKind{Shields, SpeedBoost, AmmoBoost, RapidFire, BiggerAmmo}

// String is the label drawn under a collected pickup.
func (k PickupKind) String() string {
	switch k {
	case Unassigned:
		return ""
	case Shields:
		return "Shields"
	case SpeedBoost:
		return "Speed"
	case AmmoBoost:
		return "Ammo Boost"
	case RapidFire:
		return "Rapid Fire"
	case BiggerAmmo:
		return "Bigger Ammo"
	default:
		return "unknown"
	}
}

// Key is the name used in the loot table.
func (k PickupKind) Key() string {
	switch k {
	case Shields:
		return "shields"
	case SpeedBoost:
		return "speed"
	case AmmoBoost:
		return "ammo_boost"
	case RapidFire:
		return "rapid_fire"
	case BiggerAmmo:
		return "bigger_ammo"
	default:
		return ""
	}
}

// rollKind picks an upgrade according to the loot table weights.
func rollKind(r utils.Rand) PickupKind {
	weights := make([]int, len(pickupKinds))
	for i, k := range pickupKinds {
		weights[i] = defs.LootWeight(k.Key())
	}
	return pickupKinds[utils.ChooseWeighted(r, weights)]
}

// Pickup is a crate dropped by a destroyed attacker. It falls to the floor,
// waits there for a while and, once collected, shows its label briefly.
type Pickup struct {
	X, Y float64

	kind PickupKind
	ttl  int
}

// NewPickup drops a pickup at (x, y).
func NewPickup(x, y float64) *Pickup {
	return &Pickup{X: x, Y: y, ttl: config.PickupLifespan}
}

// Update counts down the lifetime and lets an unused pickup fall until it
// rests on floor. A collected pickup stays put while its label shows.
func (p *Pickup) Update(floor float64) {
	p.ttl--
	if p.kind == Unassigned && p.Y < floor {
		p.Y += config.PickupFallSpeed
		if p.Y > floor {
			p.Y = floor
		}
	}
}

// Expired reports that the pickup should be removed.
func (p *Pickup) Expired() bool {
	return p.ttl <= 0
}

// Upgrade rolls a kind, applies it to v and starts the label countdown. It
// returns false when the pickup was already used.
func (p *Pickup) Upgrade(v *Vehicle, r utils.Rand) bool {
	if p.kind != Unassigned {
		return false
	}
	p.kind = rollKind(r)

	switch p.kind {
	case Shields:
		v.SetShielded()
	case SpeedBoost:
		v.IncreaseSpeed()
	case AmmoBoost:
		v.SetAmmoRechargeRate(config.BoostedRegenRate)
	case RapidFire:
		v.SetAmmoReloadTime(0)
	case BiggerAmmo:
		v.IncreaseSizeFactor()
	}
	p.ttl = config.PickupDisplayTime
	return true
}

// Flashing is true during the last stretch before an unused pickup vanishes.
func (p *Pickup) Flashing() bool {
	return p.kind == Unassigned && p.ttl <= config.PickupFlashTTL
}

func (p *Pickup) Kind() PickupKind { return p.kind }
func (p *Pickup) TTL() int         { return p.ttl }
func (p *Pickup) Assigned() bool   { return p.kind != Unassigned }

func (p *Pickup) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: config.PickupWidth, H: config.PickupHeight}
}
