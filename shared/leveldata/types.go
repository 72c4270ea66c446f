// Package leveldata provides TMX level parsing shared between client and the
// headless simulator. It has no dependencies on ebitengine, donburi, or
// resolv — pure data only. Portal targets stay as strings here; the level
// package validates them against the mode table when the space is built.
package leveldata

// LevelData holds everything parsed from a TMX level file.
type LevelData struct {
	Blocks   []Rect
	Spikes   []Rect
	Portals  []PortalDef
	Orbs     []OrbDef
	Pads     []OrbDef
	Triggers []TriggerDef

	Spawn     SpawnPoint
	MapWidth  int
	MapHeight int

	// Length is the x extent used for completion percent: the map width
	// unless a finish object overrides it.
	Length float64
}

// Rect is an axis-aligned solid or hazard region.
type Rect struct {
	X, Y, W, H float64
}

// PortalDef carries the optional state overrides a portal applies. Nil means
// the portal leaves that part of the player state alone.
type PortalDef struct {
	Rect
	Mode  string
	Flip  *float64
	Mini  *bool
	Speed *float64
}

// OrbDef is a tap orb or jump pad: a region that fires a vertical impulse.
type OrbDef struct {
	Rect
	Impulse float64
}

// TriggerDef rescales the global speed multiplier on contact.
type TriggerDef struct {
	Rect
	Speed float64
}

// SpawnPoint is the attempt start state.
type SpawnPoint struct {
	X, Y  float64
	Mode  string
	Flip  float64
	Mini  bool
	Speed float64
}
