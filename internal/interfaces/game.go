package interfaces

import "go-space-invaders/internal/input"

// Game is what the phase states drive. It is implemented by app.Session.
type Game interface {
	// StartGame resets level, lives and the world for a new game.
	StartGame()
	// PlayTick runs one Playing tick and reports false once the last life
	// is gone.
	PlayTick(in input.Snapshot) bool
}
