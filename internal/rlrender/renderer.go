// Package rlrender draws snapshots with raylib.
package rlrender

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils"
)

const (
	starCount      = 120
	explosionBalls = 6
	explosionSize  = 12
)

// Renderer draws published snapshots between BeginDrawing and EndDrawing.
type Renderer struct {
	font rl.Font

	level *LevelIndicator
	lives *LivesIndicator
	ammo  *AmmoGauge
	menu  *Overlay
	pause *Overlay

	stars []rl.Vector2
	rng   utils.Rand // explosion flicker only
}

// New needs an open window for the default font.
func New(width, height float64, seed int64) *Renderer {
	r := &Renderer{
		font:  rl.GetFontDefault(),
		level: NewLevelIndicator(18, 20),
		lives: NewLivesIndicator(20, 50, 50),
		ammo:  NewAmmoGauge(40, 120, 10, 100),
		menu:  &Overlay{Title: "New Game?", Subtitle: "(press space)"},
		pause: &Overlay{Title: "PAUSED"},
		rng:   utils.NewPRNGService(seed),
	}
	r.stars = make([]rl.Vector2, starCount)
	for i := range r.stars {
		r.stars[i] = rl.NewVector2(float32(r.rng.Float64()*width), float32(r.rng.Float64()*height))
	}
	return r
}

func rect(x, y, w, h float64) rl.Rectangle {
	return rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
}

// Draw renders snap. suspended is true while the scheduler is held.
func (r *Renderer) Draw(snap *app.Snapshot, suspended bool) {
	rl.ClearBackground(toRL(config.BackgroundColor))
	if snap == nil {
		return
	}
	for _, s := range r.stars {
		rl.DrawPixelV(s, toRL(config.StarColor))
	}

	for _, p := range snap.Projectiles {
		c := config.ShellColor
		if p.Kind == component.ProjectileDown {
			c = config.PhaserColor
		}
		rl.DrawRectangleRec(rect(p.X, p.Y, p.W, p.H), toRL(c))
	}

	for _, a := range snap.Attackers {
		c := config.AttackerTierColors[app.AttackerColorTier(a.Tier)]
		rl.DrawRectangleRec(rect(a.X, a.Y, a.W, a.H), toRL(c))
	}

	for _, p := range snap.Pickups {
		if p.Kind != component.Unassigned {
			rl.DrawTextEx(r.font, p.Kind.String(), rl.NewVector2(float32(p.X), float32(p.LabelY())), smallFont, 1, toRL(config.PickupLabelColor))
			continue
		}
		if p.Visible() {
			rl.DrawRectangleRec(rect(p.X, p.Y, p.W, p.H), toRL(config.PickupColor))
		}
	}

	if snap.Vehicle != nil {
		r.drawVehicle(*snap.Vehicle)
	}

	if snap.HUDVisible() {
		r.level.Draw(snap.Level, r.font)
		r.lives.Draw(snap.Lives, r.font)
		if v := snap.Vehicle; v != nil {
			r.ammo.Draw(v.Ammo, v.Overheated)
		}
	}

	w, h := float32(snap.Width), float32(snap.Height)
	switch snap.Overlay(suspended) {
	case app.MenuOverlay:
		r.menu.Draw(w, h, snap.UptimeMs, r.font)
	case app.PauseOverlay:
		r.pause.Draw(w, h, snap.UptimeMs, r.font)
	}
}

func (r *Renderer) drawVehicle(v app.VehicleView) {
	x, y, w, h := float32(v.X), float32(v.Y), float32(v.W), float32(v.H)

	switch v.State {
	case component.Exploding:
		for i := 0; i < explosionBalls; i++ {
			c := rl.NewVector2(x+float32(r.rng.Float64())*w, y+float32(r.rng.Float64())*h)
			rl.DrawCircleV(c, float32(2+r.rng.Float64()*explosionSize), rl.Orange)
		}
		return
	case component.Dead:
		rl.DrawRectangleRec(rl.NewRectangle(x+w/4, y+h/2, w/2, h/2), toRL(config.DeadVehicleColor))
		return
	}

	if v.Shielded {
		rl.DrawEllipse(int32(x+w/2), int32(y+h/2), w, h*2, toRL(config.ShieldColor))
	}

	barrel := utils.Lerp(0, h, float32(v.Reload))
	rl.DrawLineEx(rl.NewVector2(x+w/2, y), rl.NewVector2(x+w/2, y-barrel), 2, toRL(config.DeadVehicleColor))

	body := rl.NewRectangle(x, y, w, h)
	rl.DrawRectangleRec(body, toRL(config.VehicleBodyColor))
	rl.DrawRectangleLinesEx(body, borderWidth, toRL(config.VehicleTrimColor))
}
