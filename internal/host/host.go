// Package host wires the simulation for the window and terminal front ends.
package host

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/metrics"
	"go-space-invaders/internal/scheduler"
	"go-space-invaders/internal/utils"
)

// Runtime is everything a front end drives: it feeds Input, advances
// Scheduler and draws Session snapshots.
type Runtime struct {
	Settings  config.Settings
	Input     *input.State
	Session   *app.Session
	Scheduler *scheduler.Scheduler
	Seed      int64
}

// Option customises New.
type Option func(*options)

type options struct {
	clock scheduler.Clock
}

// WithClock replaces the scheduler clock, for tests.
func WithClock(c scheduler.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New loads the optional levels file, registers the metrics recorder and
// builds the session and its scheduler.
func New(settings config.Settings, log zerolog.Logger, opts ...Option) (*Runtime, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if settings.LevelsFile != "" {
		n, err := defs.LoadLevelPatterns(settings.LevelsFile)
		if err != nil {
			return nil, fmt.Errorf("loading levels: %w", err)
		}
		log.Info().Int("levels", n).Str("file", settings.LevelsFile).Msg("level patterns loaded")
	}

	dispatcher := event.NewDispatcher()
	recorder, err := metrics.NewRecorder(metrics.Meter())
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	dispatcher.SubscribeAll(recorder)

	rng := utils.NewPRNGService(settings.Seed)
	st := input.NewState()
	session, err := app.NewSession(settings, st, rng, dispatcher, log)
	if err != nil {
		return nil, err
	}

	schedOpts := []scheduler.Option{scheduler.WithLogger(log)}
	if o.clock != nil {
		schedOpts = append(schedOpts, scheduler.WithClock(o.clock))
	}
	sched, err := scheduler.New(settings.TickInterval, schedOpts...)
	if err != nil {
		return nil, err
	}
	sched.Register(session)

	log.Info().Int64("seed", rng.Seed()).Msg("runtime ready")
	return &Runtime{
		Settings:  settings,
		Input:     st,
		Session:   session,
		Scheduler: sched,
		Seed:      rng.Seed(),
	}, nil
}

// FocusChanged pauses the scheduler while the front end is unfocused and
// drops every held key so nothing sticks on return.
func (r *Runtime) FocusChanged(focused bool) {
	if !focused {
		r.Input.ReleaseAll()
	}
	r.Scheduler.SetPaused(!focused)
}
