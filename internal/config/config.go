// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	TickInterval = 20 * time.Millisecond

	// Choreography spacing between neighbouring attackers.
	HorizontalSpacing = 20.0
	VerticalSpacing   = 20.0

	StartLives = 3
	StartLevel = 1
)

// Vehicle (player tank)
const (
	VehicleWidth        = 20.0
	VehicleHeight       = 10.0
	VehicleSpeed        = 5.0
	VehicleSpeedBoost   = 2.0
	AmmoRechargeRate    = 0.2 // ammo per tick
	AmmoReloadTime      = 8.0 // ticks between shots
	MaxAmmo             = 15.0
	OverheatRecoverFrac = 0.5
	ExplodeTime         = 30  // ticks
	ShieldTime          = 400 // ticks
)

// Attackers
const (
	AttackerWidth    = 20.0
	AttackerHeight   = 10.0
	DeathTimerLength = 30 // ticks a corpse stays on the field
)

// Projectiles
const (
	ShellWidth   = 4.0
	ShellHeight  = 7.0
	ShellSpeed   = 5.0
	PhaserWidth  = 7.0
	PhaserHeight = 7.0
	PhaserSpeed  = 5.0
)

// Pickups
const (
	PickupWidth       = 15.0
	PickupHeight      = 15.0
	PickupFallSpeed   = 5.0
	PickupLifespan    = 400 // ticks
	PickupDisplayTime = 30  // ticks the label stays after activation
	PickupFlashTTL    = 100
	DropRate          = 0.02 // chance per destroyed attacker
	BoostedRegenRate  = 100.0
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	StarColor       = color.RGBA{180, 180, 200, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}

	VehicleBodyColor = color.RGBA{0, 90, 0, 255}
	VehicleTrimColor = color.RGBA{192, 192, 192, 255}
	ShieldColor      = color.RGBA{0, 150, 230, 60}
	DeadVehicleColor = color.RGBA{128, 128, 128, 255}

	ShellColor  = color.RGBA{255, 255, 0, 255}
	PhaserColor = color.RGBA{255, 200, 0, 255}

	PickupColor      = color.RGBA{255, 200, 0, 255}
	PickupLabelColor = color.RGBA{255, 255, 255, 255}

	AmmoColor       = color.RGBA{255, 255, 0, 255}
	OverheatedColor = color.RGBA{255, 0, 0, 255}

	// Indexed by attacker health tier: corpse, one hit, two hits, many hits.
	AttackerTierColors = []color.RGBA{
		{128, 128, 128, 255},
		{0, 255, 0, 255},
		{255, 0, 0, 255},
		{0, 0, 255, 255},
	}
)
