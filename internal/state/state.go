// internal/state/state.go
package state

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"go-space-invaders/internal/input"
)

// ErrInvalidTransition is returned for a phase change the table does not
// allow.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the session's top-level mode.
type Phase int

const (
	Menu Phase = iota
	Playing
	Paused
)

func (p Phase) String() string {
	switch p {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// transitions lists the phases reachable from each phase.
var transitions = map[Phase][]Phase{
	Menu:    {Playing},
	Playing: {Paused, Menu},
	Paused:  {Playing},
}

// Allowed reports whether from -> to is in the transition table.
func Allowed(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// State is the behaviour of one phase.
type State interface {
	Phase() Phase
	Enter()
	Tick(in input.Snapshot)
	Exit()
}

// StateMachine holds the current phase and switches between the registered
// states.
type StateMachine struct {
	current  State
	states   map[Phase]State
	log      zerolog.Logger
	onChange func(from, to Phase)
}

// NewStateMachine creates a machine with no states registered.
func NewStateMachine(log zerolog.Logger) *StateMachine {
	return &StateMachine{
		states: make(map[Phase]State),
		log:    log.With().Str("component", "state").Logger(),
	}
}

// Register adds the state for its phase, replacing any previous one.
func (sm *StateMachine) Register(s State) {
	sm.states[s.Phase()] = s
}

// OnChange sets a hook called after every successful transition.
func (sm *StateMachine) OnChange(fn func(from, to Phase)) {
	sm.onChange = fn
}

// Start enters the initial phase without checking the table.
func (sm *StateMachine) Start(p Phase) error {
	s, ok := sm.states[p]
	if !ok {
		return fmt.Errorf("%w: no state registered for %s", ErrInvalidTransition, p)
	}
	sm.current = s
	s.Enter()
	return nil
}

// SetState moves to phase to, running Exit on the old state and Enter on the
// new one.
func (sm *StateMachine) SetState(to Phase) error {
	if sm.current == nil {
		return sm.Start(to)
	}
	from := sm.current.Phase()
	next, ok := sm.states[to]
	if !ok || !Allowed(from, to) {
		err := fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		sm.log.Error().Err(err).Msg("rejected transition")
		return err
	}

	sm.current.Exit()
	sm.current = next
	next.Enter()

	sm.log.Info().Stringer("from", from).Stringer("to", to).Msg("phase changed")
	if sm.onChange != nil {
		sm.onChange(from, to)
	}
	return nil
}

// Tick runs the current state.
func (sm *StateMachine) Tick(in input.Snapshot) {
	if sm.current != nil {
		sm.current.Tick(in)
	}
}

// Phase is the current phase, Menu before Start.
func (sm *StateMachine) Phase() Phase {
	if sm.current == nil {
		return Menu
	}
	return sm.current.Phase()
}
