package level

import (
	"testing"

	"github.com/automoto/jumpdash/physics"
	"github.com/automoto/jumpdash/shared/leveldata"
	"github.com/stretchr/testify/require"
)

// flatLevel builds a 30-tile ground strip with the spawn resting on it.
func flatLevel() *leveldata.LevelData {
	data := &leveldata.LevelData{
		MapWidth:  900,
		MapHeight: 600,
		Length:    900,
		Spawn:     leveldata.SpawnPoint{X: 30, Y: 291, Mode: "cube", Flip: 1, Speed: 1},
	}
	for i := 0; i < 30; i++ {
		data.Blocks = append(data.Blocks, leveldata.Rect{X: float64(i) * 30, Y: 300, W: 30, H: 30})
	}
	return data
}

func TestNewRejectsUnknownPortalMode(t *testing.T) {
	data := flatLevel()
	data.Portals = append(data.Portals, leveldata.PortalDef{
		Rect: leveldata.Rect{X: 120, Y: 240, W: 30, H: 60},
		Mode: "boat",
	})
	_, err := New(data)
	require.Error(t, err)
	require.ErrorContains(t, err, "boat")
}

func TestNewRejectsUnknownSpawnMode(t *testing.T) {
	data := flatLevel()
	data.Spawn.Mode = "submarine"
	_, err := New(data)
	require.Error(t, err)
}

func TestQueryFiltersByRegion(t *testing.T) {
	lvl, err := New(flatLevel())
	require.NoError(t, err)

	// Far above the ground strip: nothing in those cells.
	require.Empty(t, lvl.Query(physics.AABB{X: 100, Y: 30, W: 15, H: 15}))

	// Straddling the ground: at least the tile under the region.
	hits := lvl.Query(physics.AABB{X: 100, Y: 290, W: 15, H: 20})
	require.NotEmpty(t, hits)
	for _, c := range hits {
		require.Equal(t, physics.KindBlock, c.Kind)
	}
}

func TestPlayerRunsOnLevelGeometry(t *testing.T) {
	lvl, err := New(flatLevel())
	require.NoError(t, err)

	p, err := physics.NewPlayer(&physics.DefaultTable, lvl.Spawn())
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		require.NoError(t, p.Step(physics.TickContext{Dt: physics.FixedDelta, Index: lvl}))
	}
	require.True(t, p.OnGround)
	require.InDelta(t, 300-physics.HitboxHalf-1.5, p.Y, 1e-9)
	require.Greater(t, p.X, 30.0)
}

func TestSpikeFromLevelDataKills(t *testing.T) {
	data := flatLevel()
	data.Spikes = append(data.Spikes, leveldata.Rect{X: 150, Y: 285, W: 15, H: 15})
	lvl, err := New(data)
	require.NoError(t, err)

	p, err := physics.NewPlayer(&physics.DefaultTable, lvl.Spawn())
	require.NoError(t, err)

	for i := 0; i < 120 && !p.Dead(); i++ {
		require.NoError(t, p.Step(physics.TickContext{Dt: physics.FixedDelta, Index: lvl}))
	}
	require.True(t, p.Dead())
	require.Less(t, p.X, 170.0, "died at the spike, not past it")
}

func TestPortalFromLevelDataSwitchesMode(t *testing.T) {
	speed := 1.5
	data := flatLevel()
	data.Portals = append(data.Portals, leveldata.PortalDef{
		Rect:  leveldata.Rect{X: 120, Y: 240, W: 30, H: 60},
		Mode:  "ship",
		Speed: &speed,
	})
	lvl, err := New(data)
	require.NoError(t, err)

	p, err := physics.NewPlayer(&physics.DefaultTable, lvl.Spawn())
	require.NoError(t, err)

	for i := 0; i < 60 && p.Mode != physics.ModeShip; i++ {
		require.NoError(t, p.Step(physics.TickContext{Dt: physics.FixedDelta, Index: lvl}))
	}
	require.Equal(t, physics.ModeShip, p.Mode)
	require.Equal(t, 1.5, p.SpeedMult)
}

func TestProgressClampsToPercentRange(t *testing.T) {
	lvl, err := New(flatLevel())
	require.NoError(t, err)

	require.Equal(t, 0.0, lvl.Progress(30))
	require.Equal(t, 0.0, lvl.Progress(-100), "behind spawn clamps to zero")
	require.Equal(t, 100.0, lvl.Progress(2000))
	require.InDelta(t, 50.0, lvl.Progress(465), 1e-9)
	require.True(t, lvl.Complete(900))
	require.False(t, lvl.Complete(899))
}
