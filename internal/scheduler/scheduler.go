// Package scheduler drives the simulation at a fixed tick interval.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"go-space-invaders/internal/config"
)

// Consumer receives ticks and pause notifications, in registration order.
type Consumer interface {
	// OnTick runs one frame. uptimeMs is the simulated time before this
	// frame, excluding pauses.
	OnTick(uptimeMs int64)
	OnPaused()
	OnResumed()
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the time source.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithLogger sets the scheduler's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// Scheduler fires one tick per interval. Ticks are delivered on the
// goroutine calling Run or Step; Pause and Stop may be called from any
// goroutine.
type Scheduler struct {
	interval time.Duration
	clock    Clock
	log      zerolog.Logger

	mu        sync.Mutex
	consumers []Consumer
	paused    bool
	started   bool
	uptime    time.Duration
	lastFrame time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a running scheduler. A non-positive interval is an invalid
// configuration.
func New(interval time.Duration, opts ...Option) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: tick interval %v", config.ErrInvalidConfig, interval)
	}
	s := &Scheduler{
		interval: interval,
		clock:    SystemClock{},
		log:      zerolog.Nop(),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "scheduler").Logger()
	return s, nil
}

// Register appends a consumer. Register before the first tick.
func (s *Scheduler) Register(c Consumer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consumers = append(s.consumers, c)
}

func (s *Scheduler) Interval() time.Duration { return s.interval }

// Run delivers a tick per interval until ctx is cancelled or Stop is called.
// A late ticker delivers one tick, never a burst. Run returns ctx.Err() on
// cancellation and nil after Stop.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("scheduler started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("scheduler cancelled")
			return ctx.Err()
		case <-s.stop:
			s.log.Info().Msg("scheduler stopped")
			return nil
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step delivers exactly one tick unless paused, and reports whether it did.
// Hosts with their own fixed-rate loop call it once per frame.
func (s *Scheduler) Step() bool {
	s.mu.Lock()
	if s.paused {
		s.mu.Unlock()
		return false
	}
	if !s.started {
		s.started = true
		s.lastFrame = s.clock.Now()
	}
	uptimeMs := s.uptime.Milliseconds()
	consumers := s.consumers
	s.mu.Unlock()

	for _, c := range consumers {
		c.OnTick(uptimeMs)
	}

	s.mu.Lock()
	if !s.paused {
		now := s.clock.Now()
		s.uptime += now.Sub(s.lastFrame)
		s.lastFrame = now
	}
	s.mu.Unlock()
	return true
}

// Pause toggles between running and paused and notifies every consumer.
// Time spent paused does not count as uptime.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.paused = !s.paused
	paused := s.paused
	if !paused {
		s.lastFrame = s.clock.Now()
	}
	consumers := s.consumers
	s.mu.Unlock()

	s.log.Debug().Bool("paused", paused).Msg("pause toggled")
	for _, c := range consumers {
		if paused {
			c.OnPaused()
		} else {
			c.OnResumed()
		}
	}
}

// SetPaused pauses or resumes, doing nothing when already in that state.
func (s *Scheduler) SetPaused(paused bool) {
	if s.Paused() != paused {
		s.Pause()
	}
}

func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Uptime is the cumulative running time.
func (s *Scheduler) Uptime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uptime
}

// Stop ends Run. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
