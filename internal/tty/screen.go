// Package tty renders snapshots on a character terminal.
package tty

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/utils"
)

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

const gaugeCells = 10

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

var (
	styleDefault = style(config.TextLightColor)
	styleVehicle = style(config.VehicleTrimColor)
	styleShield  = style(color.RGBA{0, 150, 230, 255})
	styleBoom    = style(color.RGBA{255, 140, 0, 255})
	styleDead    = style(config.DeadVehicleColor)
	styleShell   = style(config.ShellColor)
	stylePhaser  = style(config.PhaserColor)
	stylePickup  = style(config.PickupColor)
	styleAmmo    = style(config.AmmoColor)
	styleHot     = style(config.OverheatedColor)
	stylePaused  = styleDefault.Reverse(true)
)

// Screen draws snapshots onto a tcell screen, scaling the playfield to the
// terminal size.
type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// cell maps playfield coordinates to a terminal cell below the HUD.
func cell(x, y, width, height float64, cols, rows int) (int, int) {
	field := rows - hudRows
	if field < 1 || cols < 1 || width <= 0 || height <= 0 {
		return 0, hudRows
	}
	cx := int(x / width * float64(cols))
	cy := int(y / height * float64(field))
	return utils.Clamp(cx, 0, cols-1), utils.Clamp(cy, 0, field-1) + hudRows
}

// ammoBar renders the ammo fraction as a fixed-width bar.
func ammoBar(ammo float64) string {
	n := int(utils.ClampF(ammo, 0, 1) * gaugeCells)
	return "[" + strings.Repeat("#", n) + strings.Repeat(" ", gaugeCells-n) + "]"
}

var tierGlyphs = []rune{'x', 'w', 'W', 'M'}

// Draw renders snap and shows the result. A nil snapshot clears the screen.
// suspended shows the pause box while the scheduler is held.
func (s *Screen) Draw(snap *app.Snapshot, suspended bool) {
	s.screen.Clear()
	defer s.screen.Show()
	if snap == nil {
		return
	}
	cols, rows := s.screen.Size()

	put := func(x, y float64, r rune, st tcell.Style) {
		cx, cy := cell(x, y, snap.Width, snap.Height, cols, rows)
		s.screen.SetContent(cx, cy, r, nil, st)
	}

	for _, p := range snap.Projectiles {
		if p.Kind == component.ProjectileDown {
			put(p.X, p.Y, '!', stylePhaser)
		} else {
			put(p.X, p.Y, '|', styleShell)
		}
	}

	for _, a := range snap.Attackers {
		tier := app.AttackerColorTier(a.Tier)
		put(a.X, a.Y, tierGlyphs[min(tier, len(tierGlyphs)-1)], style(config.AttackerTierColors[tier]))
	}

	for _, p := range snap.Pickups {
		if p.Kind != component.Unassigned {
			cx, cy := cell(p.X, p.LabelY(), snap.Width, snap.Height, cols, rows)
			s.text(cx, cy, p.Kind.String(), stylePickup)
			continue
		}
		if p.Visible() {
			put(p.X, p.Y, '$', stylePickup)
		}
	}

	if v := snap.Vehicle; v != nil {
		switch v.State {
		case component.Exploding:
			put(v.X, v.Y, '*', styleBoom)
		case component.Dead:
			put(v.X, v.Y, '_', styleDead)
		case component.Shielded:
			put(v.X, v.Y, 'A', styleShield)
		default:
			put(v.X, v.Y, 'A', styleVehicle)
		}
	}

	s.hud(snap)

	switch snap.Overlay(suspended) {
	case app.MenuOverlay:
		s.centre(rows/2, "New Game?", styleDefault, cols)
		s.centre(rows/2+1, "(press space)", styleDefault, cols)
	case app.PauseOverlay:
		s.centre(rows/2, " PAUSED ", stylePaused, cols)
	}
}

func (s *Screen) hud(snap *app.Snapshot) {
	if !snap.HUDVisible() {
		return
	}
	line := fmt.Sprintf("Level %d  Lives %d  ", snap.Level, snap.Lives)
	s.text(0, 0, line, styleDefault)
	if v := snap.Vehicle; v != nil {
		st := styleAmmo
		if v.Overheated {
			st = styleHot
		}
		s.text(len(line), 0, ammoBar(v.Ammo), st)
	}
}

func (s *Screen) centre(y int, msg string, st tcell.Style, cols int) {
	s.text(max(0, (cols-len(msg))/2), y, msg, st)
}

func (s *Screen) text(x, y int, msg string, st tcell.Style) {
	for i, r := range msg {
		s.screen.SetContent(x+i, y, r, nil, st)
	}
}
