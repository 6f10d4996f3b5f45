// Package metrics turns gameplay events into OpenTelemetry instruments.
package metrics

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"go-space-invaders/internal/event"
)

const instrumentationName = "go-space-invaders/internal/metrics"

// Meter returns the meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder counts gameplay events. Subscribe it to a dispatcher with
// SubscribeAll.
type Recorder struct {
	shots      metric.Int64Counter
	kills      metric.Int64Counter
	hits       metric.Int64Counter
	livesLost  metric.Int64Counter
	cleared    metric.Int64Counter
	gamesOver  metric.Int64Counter
	dropped    metric.Int64Counter
	collected  metric.Int64Counter
	levelGauge metric.Int64ObservableGauge

	level atomic.Int64
}

var _ event.Listener = (*Recorder)(nil)

// NewRecorder creates the instruments on m.
func NewRecorder(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&r.shots, "invaders.shots", "Shells fired by the vehicle"},
		{&r.kills, "invaders.attackers.destroyed", "Attackers destroyed"},
		{&r.hits, "invaders.vehicle.hits", "Hits taken by the vehicle"},
		{&r.livesLost, "invaders.lives.lost", "Lives lost"},
		{&r.cleared, "invaders.levels.cleared", "Levels cleared"},
		{&r.gamesOver, "invaders.games.over", "Games ended"},
		{&r.dropped, "invaders.pickups.spawned", "Pickups dropped"},
		{&r.collected, "invaders.pickups.collected", "Pickups collected, by upgrade"},
	}
	for _, c := range counters {
		counter, err := m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
		*c.dst = counter
	}

	var err error
	r.levelGauge, err = m.Int64ObservableGauge(
		"invaders.level",
		metric.WithDescription("Level being played"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating level gauge: %w", err)
	}
	_, err = m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(r.levelGauge, r.level.Load())
			return nil
		},
		r.levelGauge,
	)
	if err != nil {
		return nil, fmt.Errorf("registering level callback: %w", err)
	}
	return r, nil
}

// OnEvent records e. It runs on the scheduler goroutine.
func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.GameStarted:
		if d, ok := e.Data.(event.LevelData); ok {
			r.level.Store(int64(d.Level))
		}
	case event.ShotFired:
		r.shots.Add(ctx, 1)
	case event.AttackerDestroyed:
		r.kills.Add(ctx, 1)
	case event.VehicleHit:
		r.hits.Add(ctx, 1)
	case event.LifeLost:
		r.livesLost.Add(ctx, 1)
	case event.LevelCleared:
		r.cleared.Add(ctx, 1)
		if d, ok := e.Data.(event.LevelData); ok {
			r.level.Store(int64(d.Level + 1))
		}
	case event.GameOver:
		r.gamesOver.Add(ctx, 1)
	case event.PickupSpawned:
		r.dropped.Add(ctx, 1)
	case event.PickupCollected:
		var upgrade string
		if d, ok := e.Data.(event.PickupData); ok {
			upgrade = d.Upgrade
		}
		r.collected.Add(ctx, 1, metric.WithAttributes(attribute.String("upgrade", upgrade)))
	}
}
