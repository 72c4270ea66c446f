package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names the loader recognizes in a level TMX.
const (
	geometryLayer = "geometry"

	groupHazards  = "Hazards"
	groupPortals  = "Portals"
	groupOrbs     = "Orbs"
	groupPads     = "Pads"
	groupTriggers = "Triggers"
	groupSpawn    = "PlayerSpawn"
	groupFinish   = "Finish"
)

// Load parses a TMX file into LevelData. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (simulator).
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		Spawn:     SpawnPoint{Mode: "cube", Flip: 1, Speed: 1},
	}
	data.Length = float64(data.MapWidth)

	// Solid geometry comes from one tile layer; every occupied cell is a
	// block rect. The level package merges nothing: the spatial hash keeps
	// per-tile objects cheap.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != geometryLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				data.Blocks = append(data.Blocks, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupHazards:
			for _, o := range og.Objects {
				data.Spikes = append(data.Spikes, objectRect(o))
			}
		case groupPortals:
			for _, o := range og.Objects {
				data.Portals = append(data.Portals, portalDef(o))
			}
		case groupOrbs:
			for _, o := range og.Objects {
				data.Orbs = append(data.Orbs, OrbDef{
					Rect:    objectRect(o),
					Impulse: o.Properties.GetFloat("impulse"),
				})
			}
		case groupPads:
			for _, o := range og.Objects {
				data.Pads = append(data.Pads, OrbDef{
					Rect:    objectRect(o),
					Impulse: o.Properties.GetFloat("impulse"),
				})
			}
		case groupTriggers:
			for _, o := range og.Objects {
				data.Triggers = append(data.Triggers, TriggerDef{
					Rect:  objectRect(o),
					Speed: o.Properties.GetFloat("speed"),
				})
			}
		case groupSpawn:
			if len(og.Objects) > 0 {
				data.Spawn = spawnPoint(og.Objects[0])
			}
		case groupFinish:
			if len(og.Objects) > 0 {
				data.Length = og.Objects[0].X
			}
		}
	}

	return data, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func portalDef(o *tiled.Object) PortalDef {
	def := PortalDef{
		Rect: objectRect(o),
		Mode: o.Properties.GetString("mode"),
	}
	// Only properties present on the object become overrides; a portal that
	// says nothing about flip/mini/speed leaves that state alone.
	if len(o.Properties.Get("flip")) > 0 {
		flip := o.Properties.GetFloat("flip")
		def.Flip = &flip
	}
	if len(o.Properties.Get("mini")) > 0 {
		mini := o.Properties.GetBool("mini")
		def.Mini = &mini
	}
	if len(o.Properties.Get("speed")) > 0 {
		speed := o.Properties.GetFloat("speed")
		def.Speed = &speed
	}
	return def
}

func spawnPoint(o *tiled.Object) SpawnPoint {
	sp := SpawnPoint{
		X:     o.X,
		Y:     o.Y,
		Mode:  o.Properties.GetString("mode"),
		Flip:  o.Properties.GetFloat("flip"),
		Mini:  o.Properties.GetBool("mini"),
		Speed: o.Properties.GetFloat("speed"),
	}
	if sp.Mode == "" {
		sp.Mode = "cube"
	}
	if sp.Flip == 0 {
		sp.Flip = 1
	}
	if sp.Speed == 0 {
		sp.Speed = 1
	}
	return sp
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns a map
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
