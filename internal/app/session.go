// internal/app/session.go
package app

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"go-space-invaders/internal/choreography"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/scheduler"
	"go-space-invaders/internal/state"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/utils"
)

var (
	_ scheduler.Consumer = (*Session)(nil)
	_ interfaces.Game    = (*Session)(nil)
)

// Session owns the simulation: the world, the phase machine, level and
// lives. All of it is written only from OnTick.
type Session struct {
	World           *entity.World
	CombatSystem    *system.CombatSystem
	EventDispatcher *event.Dispatcher
	Rng             utils.Rand

	input         input.Source
	sm            *state.StateMachine
	choreographer choreography.Choreographer
	log           zerolog.Logger

	level    int
	lives    int
	uptimeMs int64

	snapshot       atomic.Pointer[Snapshot]
	suspended      atomic.Bool
	pauseRequested atomic.Bool
}

// NewSession builds a session in the Menu phase. dispatcher may be shared
// with other listeners; a nil one gets a private dispatcher.
func NewSession(settings config.Settings, src input.Source, rng utils.Rand, dispatcher *event.Dispatcher, log zerolog.Logger) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	world := entity.NewWorld(settings.Width, settings.Height)
	s := &Session{
		World:           world,
		EventDispatcher: dispatcher,
		Rng:             rng,
		input:           src,
		choreographer:   choreography.New(settings.Width, settings.Height),
		log:             log.With().Str("component", "session").Logger(),
	}
	s.CombatSystem = system.NewCombatSystem(world, rng, dispatcher, log)

	s.sm = state.NewStateMachine(log)
	s.sm.Register(state.NewMenuState(s.sm, s))
	s.sm.Register(state.NewGameState(s.sm, s))
	s.sm.Register(state.NewPauseState(s.sm))
	s.sm.OnChange(func(from, to state.Phase) {
		dispatcher.Dispatch(event.Event{
			Type: event.PhaseChanged,
			Data: event.PhaseData{From: from.String(), To: to.String()},
		})
	})
	if err := s.sm.Start(state.Menu); err != nil {
		return nil, err
	}

	dispatcher.SubscribeAll(&eventLogger{log: s.log})
	s.publish()
	return s, nil
}

// OnTick runs one frame: read input, run the current phase, publish the
// snapshot and clear the edge-triggered signals.
func (s *Session) OnTick(uptimeMs int64) {
	s.uptimeMs = uptimeMs
	in := s.input.Snapshot()

	if s.pauseRequested.Swap(false) && s.sm.Phase() == state.Playing {
		_ = s.sm.SetState(state.Paused)
	} else {
		s.sm.Tick(in)
	}

	s.publish()
	s.input.ResetTriggered()
}

// OnPaused is called when the host suspends the scheduler. A game in
// progress comes back in the Paused phase.
func (s *Session) OnPaused() {
	s.suspended.Store(true)
	s.pauseRequested.Store(true)
	s.log.Debug().Msg("scheduler paused")
}

func (s *Session) OnResumed() {
	s.suspended.Store(false)
	s.log.Debug().Msg("scheduler resumed")
}

// StartGame is the Menu -> Playing transition.
func (s *Session) StartGame() {
	s.level = config.StartLevel
	s.lives = config.StartLives
	s.startLevel()
	s.log.Info().Int("level", s.level).Int("lives", s.lives).Msg("game started")
	s.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted, Data: event.LevelData{Level: s.level}})
}

// startLevel lays out the current level with a fresh vehicle.
func (s *Session) startLevel() {
	s.World.Reset()
	s.World.Attackers = s.choreographer.Layout(s.level, s.Rng)
	s.World.SpawnVehicle()
	s.log.Debug().Int("level", s.level).Int("attackers", len(s.World.Attackers)).Msg("level laid out")
}

// PlayTick runs one Playing frame. It returns false when the game is over.
func (s *Session) PlayTick(in input.Snapshot) bool {
	w := s.World
	w.Vehicle.UpdateState()

	if w.Vehicle.IsDead() {
		s.lives--
		s.EventDispatcher.Dispatch(event.Event{Type: event.LifeLost, Data: event.LivesData{Remaining: s.lives}})
		if s.lives <= 0 {
			s.log.Info().Int("level", s.level).Msg("game over")
			s.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.LevelData{Level: s.level}})
			return false
		}
		w.ClearTransient()
		w.SpawnVehicle()
	}

	if len(w.Attackers) == 0 {
		s.EventDispatcher.Dispatch(event.Event{Type: event.LevelCleared, Data: event.LevelData{Level: s.level}})
		s.level++
		s.startLevel()
		s.log.Info().Int("level", s.level).Msg("level advanced")
	}

	s.CombatSystem.Resolve(in)
	return true
}

func (s *Session) publish() {
	s.snapshot.Store(capture(s.World, s.sm.Phase(), s.level, s.lives, s.uptimeMs))
}

// Snapshot returns the latest published frame. Safe from any goroutine.
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Suspended reports whether the scheduler is paused, e.g. after focus loss.
func (s *Session) Suspended() bool {
	return s.suspended.Load()
}

func (s *Session) Phase() state.Phase { return s.sm.Phase() }
func (s *Session) Level() int         { return s.level }
func (s *Session) Lives() int         { return s.lives }
