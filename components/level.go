package components

import (
	"github.com/automoto/jumpdash/level"
	"github.com/automoto/jumpdash/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding both views of the current level: the
// raw parsed data (renderer, camera bounds) and the built collision space
// (simulation).
type LevelData struct {
	Name  string
	Data  *leveldata.LevelData
	Built *level.Level
}

var Level = donburi.NewComponentType[LevelData]()
