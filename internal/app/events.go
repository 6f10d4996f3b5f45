// internal/app/events.go
package app

import (
	"github.com/rs/zerolog"

	"go-space-invaders/internal/event"
)

// eventLogger writes the event stream to the session log. Per-tick events
// go to Debug.
type eventLogger struct {
	log zerolog.Logger
}

func (l *eventLogger) OnEvent(e event.Event) {
	var ev *zerolog.Event
	switch e.Type {
	case event.ShotFired, event.AttackerDestroyed, event.PickupSpawned, event.VehicleHit:
		ev = l.log.Debug()
	default:
		ev = l.log.Info()
	}

	switch d := e.Data.(type) {
	case event.LevelData:
		ev = ev.Int("level", d.Level)
	case event.LivesData:
		ev = ev.Int("lives", d.Remaining)
	case event.PhaseData:
		ev = ev.Str("from", d.From).Str("to", d.To)
	case event.PositionData:
		ev = ev.Float64("x", d.X).Float64("y", d.Y)
	case event.PickupData:
		ev = ev.Str("upgrade", d.Upgrade)
	}
	ev.Str("event", string(e.Type)).Msg("event")
}
