// internal/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"
	"go-space-invaders/internal/utils"
	palette "go-space-invaders/pkg/render"
)

const (
	starCount      = 120
	explosionBalls = 6
	explosionSize  = 12
)

type star struct {
	x, y float32
}

// Renderer draws published snapshots. It never touches the simulation.
type Renderer struct {
	colors palette.Palette
	face   font.Face

	level *ui.LevelIndicator
	lives *ui.LivesIndicator
	ammo  *ui.AmmoGauge
	menu  *ui.Overlay
	pause *ui.Overlay

	stars []star
	rng   utils.Rand // explosion flicker only
}

// DefaultPalette builds the sprite palette from the config colours.
func DefaultPalette() palette.Palette {
	return palette.Palette{
		Background:   config.BackgroundColor,
		Star:         config.StarColor,
		Text:         config.TextLightColor,
		VehicleBody:  config.VehicleBodyColor,
		VehicleTrim:  config.VehicleTrimColor,
		Shield:       config.ShieldColor,
		DeadVehicle:  config.DeadVehicleColor,
		Shell:        config.ShellColor,
		Phaser:       config.PhaserColor,
		Pickup:       config.PickupColor,
		PickupLabel:  config.PickupLabelColor,
		Explosion:    color.RGBA{255, 140, 0, 255},
		AttackerTier: config.AttackerTierColors,
		StrokeWidth:  1,
	}
}

// New creates a renderer for a width x height playfield.
func New(width, height float64, seed int64) *Renderer {
	face := basicfont.Face7x13
	r := &Renderer{
		colors: DefaultPalette(),
		face:   face,
		level:  ui.NewLevelIndicator(18, 20, face),
		lives:  ui.NewLivesIndicator(20, 50, face),
		ammo:   ui.NewAmmoGauge(40, 120),
		menu:   ui.NewOverlay("New Game?", "(press space)", face, face),
		pause:  ui.NewOverlay("PAUSED", "", face, face),
		rng:    utils.NewPRNGService(seed),
	}
	r.stars = make([]star, starCount)
	for i := range r.stars {
		r.stars[i] = star{
			x: float32(r.rng.Float64() * width),
			y: float32(r.rng.Float64() * height),
		}
	}
	return r
}

// Draw renders snap onto screen. A nil snapshot draws only the background.
// suspended is true while the host has paused the scheduler.
func (r *Renderer) Draw(screen *ebiten.Image, snap *app.Snapshot, suspended bool) {
	screen.Fill(r.colors.Background)
	if snap == nil {
		return
	}
	for _, s := range r.stars {
		vector.DrawFilledRect(screen, s.x, s.y, 1, 1, r.colors.Star, false)
	}

	for _, p := range snap.Projectiles {
		c := r.colors.Shell
		if p.Kind == component.ProjectileDown {
			c = r.colors.Phaser
		}
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), c, false)
	}

	for _, a := range snap.Attackers {
		c := r.colors.Tier(app.AttackerColorTier(a.Tier))
		vector.DrawFilledRect(screen, float32(a.X), float32(a.Y), float32(a.W), float32(a.H), c, false)
		vector.StrokeRect(screen, float32(a.X), float32(a.Y), float32(a.W), float32(a.H), r.colors.StrokeWidth, palette.DarkenColor(c), false)
	}

	for _, p := range snap.Pickups {
		r.drawPickup(screen, p)
	}

	if snap.Vehicle != nil {
		r.drawVehicle(screen, *snap.Vehicle)
	}

	r.drawHUD(screen, snap)

	w, h := float32(snap.Width), float32(snap.Height)
	switch snap.Overlay(suspended) {
	case app.MenuOverlay:
		r.menu.Draw(screen, w, h, snap.UptimeMs)
	case app.PauseOverlay:
		r.pause.Draw(screen, w, h, snap.UptimeMs)
	}
}

func (r *Renderer) drawPickup(screen *ebiten.Image, p app.PickupView) {
	if p.Kind != component.Unassigned {
		text.Draw(screen, p.Kind.String(), r.face, int(p.X), int(p.LabelY()), r.colors.PickupLabel)
		return
	}
	if !p.Visible() {
		return
	}
	x, y, w, h := float32(p.X), float32(p.Y), float32(p.W), float32(p.H)
	vector.DrawFilledRect(screen, x, y, w, h, r.colors.Pickup, false)
	vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, palette.DarkenColor(r.colors.Pickup), false)
	vector.StrokeLine(screen, x, y, x+w, y+h, r.colors.StrokeWidth, palette.DarkenColor(r.colors.Pickup), false)
}

func (r *Renderer) drawVehicle(screen *ebiten.Image, v app.VehicleView) {
	x, y, w, h := float32(v.X), float32(v.Y), float32(v.W), float32(v.H)

	switch v.State {
	case component.Exploding:
		for i := 0; i < explosionBalls; i++ {
			cx := x + float32(r.rng.Float64())*w
			cy := y + float32(r.rng.Float64())*h
			rad := float32(2 + r.rng.Float64()*explosionSize)
			vector.DrawFilledCircle(screen, cx, cy, rad, r.colors.Explosion, true)
		}
		return
	case component.Dead:
		vector.DrawFilledRect(screen, x+w/4, y+h/2, w/2, h/2, r.colors.DeadVehicle, false)
		return
	}

	if v.Shielded {
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, w, r.colors.Shield, true)
	}

	// barrel grows back as the reload completes
	barrel := utils.Lerp(0, h, float32(v.Reload))
	vector.StrokeLine(screen, x+w/2, y, x+w/2, y-barrel, 2, r.colors.DeadVehicle, false)

	vector.DrawFilledRect(screen, x, y, w, h, r.colors.VehicleBody, false)
	vector.DrawFilledRect(screen, x, y+h*2/3, w, h/3, palette.DarkenColor(r.colors.VehicleBody), false)
	vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, r.colors.VehicleTrim, false)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap *app.Snapshot) {
	if !snap.HUDVisible() {
		return
	}
	r.level.Draw(screen, snap.Level)
	r.lives.Draw(screen, snap.Lives)
	if v := snap.Vehicle; v != nil {
		r.ammo.Draw(screen, v.Ammo, v.Overheated)
	}
}
