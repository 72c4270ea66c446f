// Package assets embeds the level files shipped with the game. The headless
// simulator reads levels from disk instead, so only the client imports this.
package assets

import (
	"embed"

	"github.com/automoto/jumpdash/shared/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// LoadLevels parses every embedded level, returning them keyed by stem name
// plus a sorted name list.
func LoadLevels() (map[string]*leveldata.LevelData, []string, error) {
	return leveldata.LoadAll(levelFS, "levels")
}
