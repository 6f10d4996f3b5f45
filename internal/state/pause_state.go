// internal/state/pause_state.go
package state

import "go-space-invaders/internal/input"

// PauseState must satisfy State.
var _ State = (*PauseState)(nil)

// PauseState freezes the world until Pause is pressed again.
type PauseState struct {
	sm *StateMachine
}

func NewPauseState(sm *StateMachine) *PauseState {
	return &PauseState{sm: sm}
}

func (s *PauseState) Phase() Phase { return Paused }

func (s *PauseState) Enter() {}

func (s *PauseState) Tick(in input.Snapshot) {
	if in.Triggered(input.Pause) {
		_ = s.sm.SetState(Playing)
	}
}

func (s *PauseState) Exit() {}
