// internal/state/menu_state.go
package state

import (
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/interfaces"
)

// MenuState waits for Start.
type MenuState struct {
	sm   *StateMachine
	game interfaces.Game
}

func NewMenuState(sm *StateMachine, game interfaces.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Phase() Phase { return Menu }

func (m *MenuState) Enter() {}

func (m *MenuState) Tick(in input.Snapshot) {
	if in.Triggered(input.Start) {
		m.game.StartGame()
		_ = m.sm.SetState(Playing)
	}
}

func (m *MenuState) Exit() {}
