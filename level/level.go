// Package level turns parsed level data into a queryable collision space and
// the spawn/progress bookkeeping a play session needs.
package level

import (
	"fmt"

	"github.com/automoto/jumpdash/physics"
	"github.com/automoto/jumpdash/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Object tags inside the resolv space, one per collidable kind.
const (
	tagBlock   = "block"
	tagSpike   = "spike"
	tagPortal  = "portal"
	tagOrb     = "orb"
	tagPad     = "pad"
	tagTrigger = "trigger"
)

// cellSize matches the tile grid so most queries touch at most four cells.
const cellSize = 30

// Level holds the built collision space for one level. It implements
// physics.SpatialIndex through a persistent probe object, so Query is not
// safe for concurrent use; the fixed-tick loop is single-threaded.
type Level struct {
	Space *resolv.Space

	spawn     physics.Spawn
	length    float64
	mapWidth  int
	mapHeight int

	probe *resolv.Object
	out   []physics.Collidable
}

// New validates the level data against the mode table and builds the space.
// Blocks are inserted before interactive objects so the resolver sees solid
// geometry first within a cell.
func New(data *leveldata.LevelData) (*Level, error) {
	spawnMode, err := physics.ParseMode(data.Spawn.Mode)
	if err != nil {
		return nil, fmt.Errorf("spawn: %w", err)
	}

	space := resolv.NewSpace(data.MapWidth, data.MapHeight, cellSize, cellSize)
	lvl := &Level{
		Space: space,
		spawn: physics.Spawn{
			X:     data.Spawn.X,
			Y:     data.Spawn.Y,
			Mode:  spawnMode,
			Flip:  data.Spawn.Flip,
			Mini:  data.Spawn.Mini,
			Speed: data.Spawn.Speed,
		},
		length:    data.Length,
		mapWidth:  data.MapWidth,
		mapHeight: data.MapHeight,
	}

	for _, r := range data.Blocks {
		lvl.add(tagBlock, physics.Collidable{Kind: physics.KindBlock, X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	for _, r := range data.Spikes {
		lvl.add(tagSpike, physics.Collidable{Kind: physics.KindSpike, X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	for i, def := range data.Portals {
		portal, err := portalData(def)
		if err != nil {
			return nil, fmt.Errorf("portal %d: %w", i, err)
		}
		lvl.add(tagPortal, physics.Collidable{
			Kind: physics.KindPortal, X: def.X, Y: def.Y, W: def.W, H: def.H,
			Portal: portal,
		})
	}
	for _, def := range data.Orbs {
		lvl.add(tagOrb, physics.Collidable{
			Kind: physics.KindOrb, X: def.X, Y: def.Y, W: def.W, H: def.H,
			Orb: &physics.OrbData{Impulse: def.Impulse},
		})
	}
	for _, def := range data.Pads {
		lvl.add(tagPad, physics.Collidable{
			Kind: physics.KindPad, X: def.X, Y: def.Y, W: def.W, H: def.H,
			Orb: &physics.OrbData{Impulse: def.Impulse},
		})
	}
	for _, def := range data.Triggers {
		lvl.add(tagTrigger, physics.Collidable{
			Kind: physics.KindTrigger, X: def.X, Y: def.Y, W: def.W, H: def.H,
			Trigger: &physics.TriggerData{Speed: def.Speed},
		})
	}

	// The probe never collides as itself: it carries no tags and Check
	// excludes the checking object from its results.
	lvl.probe = resolv.NewObject(0, 0, 1, 1)
	space.Add(lvl.probe)

	return lvl, nil
}

func (l *Level) add(tag string, c physics.Collidable) {
	obj := resolv.NewObject(c.X, c.Y, c.W, c.H, tag)
	obj.Data = c
	l.Space.Add(obj)
}

func portalData(def leveldata.PortalDef) (*physics.PortalData, error) {
	data := &physics.PortalData{Flip: def.Flip, Mini: def.Mini, Speed: def.Speed}
	if def.Mode != "" {
		mode, err := physics.ParseMode(def.Mode)
		if err != nil {
			return nil, err
		}
		data.Mode = &mode
	}
	return data, nil
}

// Query returns every collidable whose grid cells intersect the region. The
// result may include near misses; the resolver re-checks exact overlap. The
// returned slice is reused between calls.
func (l *Level) Query(region physics.AABB) []physics.Collidable {
	l.probe.X = region.X
	l.probe.Y = region.Y
	l.probe.W = region.W
	l.probe.H = region.H
	l.probe.Update()

	l.out = l.out[:0]
	collision := l.probe.Check(0, 0)
	if collision == nil {
		return l.out
	}
	for _, obj := range collision.Objects {
		if c, ok := obj.Data.(physics.Collidable); ok {
			l.out = append(l.out, c)
		}
	}
	return l.out
}

// Spawn returns the attempt start state for this level.
func (l *Level) Spawn() physics.Spawn { return l.spawn }

// Size returns the pixel dimensions of the level map.
func (l *Level) Size() (w, h int) { return l.mapWidth, l.mapHeight }

// Length returns the x extent used for completion percent.
func (l *Level) Length() float64 { return l.length }

// Progress converts a player x position into a completion percent in [0,100].
func (l *Level) Progress(x float64) float64 {
	if l.length <= 0 {
		return 0
	}
	pct := (x - l.spawn.X) / (l.length - l.spawn.X) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Complete reports whether the player x position has passed the level end.
func (l *Level) Complete(x float64) bool { return x >= l.length }
