// internal/app/snapshot.go
package app

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/state"
)

// VehicleView is the vehicle as the renderer sees it.
type VehicleView struct {
	X, Y, W, H float64
	State      component.VehicleState
	Ammo       float64 // fraction of the magazine, 0..1
	Reload     float64 // 1 when a shot is ready
	Overheated bool
	Shielded   bool
}

type AttackerView struct {
	X, Y, W, H float64
	Tier       int // 0 corpse, 1, 2, 3 for many hits
}

type ProjectileView struct {
	X, Y, W, H float64
	Kind       component.ProjectileKind
}

type PickupView struct {
	X, Y, W, H float64
	Kind       component.PickupKind
	TTL        int
	Flashing   bool
}

// Snapshot is an immutable copy of everything a frame needs. A published
// snapshot is never modified.
type Snapshot struct {
	Phase         state.Phase
	Level         int
	Lives         int
	UptimeMs      int64
	Width, Height float64

	Vehicle     *VehicleView // nil before the first game
	Attackers   []AttackerView
	Projectiles []ProjectileView
	Pickups     []PickupView
}

// capture copies the world into a new snapshot.
func capture(w *entity.World, phase state.Phase, level, lives int, uptimeMs int64) *Snapshot {
	snap := &Snapshot{
		Phase:    phase,
		Level:    level,
		Lives:    lives,
		UptimeMs: uptimeMs,
		Width:    w.Width,
		Height:   w.Height,
	}

	if v := w.Vehicle; v != nil {
		b := v.Bounds()
		snap.Vehicle = &VehicleView{
			X: b.X, Y: b.Y, W: b.W, H: b.H,
			State:      v.State(),
			Ammo:       v.AmmoFraction(),
			Reload:     v.ReloadFraction(),
			Overheated: v.Overheated(),
			Shielded:   v.State() == component.Shielded,
		}
	}

	snap.Attackers = make([]AttackerView, len(w.Attackers))
	for i, a := range w.Attackers {
		b := a.Bounds()
		snap.Attackers[i] = AttackerView{X: b.X, Y: b.Y, W: b.W, H: b.H, Tier: a.Tier()}
	}

	snap.Projectiles = make([]ProjectileView, 0, len(w.Shells)+len(w.Phasers))
	for _, list := range [][]*component.Projectile{w.Shells, w.Phasers} {
		for _, p := range list {
			b := p.Bounds()
			snap.Projectiles = append(snap.Projectiles, ProjectileView{X: b.X, Y: b.Y, W: b.W, H: b.H, Kind: p.Kind})
		}
	}

	snap.Pickups = make([]PickupView, len(w.Pickups))
	for i, p := range w.Pickups {
		b := p.Bounds()
		snap.Pickups[i] = PickupView{
			X: b.X, Y: b.Y, W: b.W, H: b.H,
			Kind:     p.Kind(),
			TTL:      p.TTL(),
			Flashing: p.Flashing(),
		}
	}
	return snap
}

// AttackerColorTier clamps a tier into config.AttackerTierColors.
func AttackerColorTier(tier int) int {
	return max(0, min(tier, len(config.AttackerTierColors)-1))
}

// Visible reports whether a flashing pickup is drawn this frame. Unused
// pickups blink during their last moments.
func (p PickupView) Visible() bool {
	return !p.Flashing || (p.TTL/5)%2 == 0
}

// LabelY is where a collected pickup's label is drawn. The label rises as
// its countdown runs out.
func (p PickupView) LabelY() float64 {
	return p.Y - 30 + float64(p.TTL)
}

// Overlay is the box a renderer draws over the playfield.
type Overlay int

const (
	NoOverlay Overlay = iota
	MenuOverlay
	PauseOverlay
)

// Overlay picks the overlay for this frame. A suspended scheduler shows the
// pause box even before the session has switched phase.
func (s *Snapshot) Overlay(suspended bool) Overlay {
	switch {
	case s.Phase == state.Menu:
		return MenuOverlay
	case s.Phase == state.Paused || suspended:
		return PauseOverlay
	default:
		return NoOverlay
	}
}

// HUDVisible reports whether level, lives and ammo are drawn.
func (s *Snapshot) HUDVisible() bool {
	return s.Phase != state.Menu
}
