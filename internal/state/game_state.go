// internal/state/game_state.go
package state

import (
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/interfaces"
)

// GameState runs the simulation. Pause is checked after the tick so the
// frame that saw the key is still played.
type GameState struct {
	sm   *StateMachine
	game interfaces.Game
}

func NewGameState(sm *StateMachine, game interfaces.Game) *GameState {
	return &GameState{sm: sm, game: game}
}

func (g *GameState) Phase() Phase { return Playing }

func (g *GameState) Enter() {}

func (g *GameState) Tick(in input.Snapshot) {
	if !g.game.PlayTick(in) {
		_ = g.sm.SetState(Menu)
		return
	}
	if in.Triggered(input.Pause) {
		_ = g.sm.SetState(Paused)
	}
}

func (g *GameState) Exit() {}
