// internal/event/types.go
package event

const (
	GameStarted       EventType = "GameStarted"       // LevelData
	PhaseChanged      EventType = "PhaseChanged"      // PhaseData
	ShotFired         EventType = "ShotFired"         // nil
	AttackerDestroyed EventType = "AttackerDestroyed" // PositionData
	VehicleHit        EventType = "VehicleHit"        // nil
	LifeLost          EventType = "LifeLost"          // LivesData
	LevelCleared      EventType = "LevelCleared"      // LevelData, the level just cleared
	GameOver          EventType = "GameOver"          // LevelData, the level reached
	PickupSpawned     EventType = "PickupSpawned"     // PositionData
	PickupCollected   EventType = "PickupCollected"   // PickupData
)

type LevelData struct {
	Level int
}

type PhaseData struct {
	From, To string
}

type LivesData struct {
	Remaining int
}

type PositionData struct {
	X, Y float64
}

type PickupData struct {
	Upgrade string
}
