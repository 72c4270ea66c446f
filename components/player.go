package components

import (
	"github.com/automoto/jumpdash/level"
	"github.com/automoto/jumpdash/physics"
	"github.com/yohamta/donburi"
)

// PlayerData wires the deterministic simulation core into the ECS. The
// simulation owns all movement state; the client only drives it and reads it
// back for rendering.
type PlayerData struct {
	Sim   *physics.Player
	Level *level.Level

	LevelName string
	Attempts  int
	BestPct   float64

	// Frames remaining until respawn after a death; 0 while alive.
	RespawnTimer int
	Completed    bool
}

var Player = donburi.NewComponentType[PlayerData]()
