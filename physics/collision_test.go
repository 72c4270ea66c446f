package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXPassSnapsToNearEdge(t *testing.T) {
	idx := flatGround()
	idx.add(Collidable{Kind: KindBlock, X: 60, Y: 270, W: 30, H: 30})

	p := newTestPlayer(t, ModeCube, 40, cubeRestY)
	settle(t, p, idx)

	for i := 0; i < 5; i++ {
		tick(t, p, idx, false)
	}
	// Moving right: x snaps so the hitbox right edge sits on the wall.
	approxEqual(t, p.X, 60-HitboxHalf, 1e-9, "x against wall")

	// Pushing further does not tunnel.
	tick(t, p, idx, false)
	approxEqual(t, p.X, 60-HitboxHalf, 1e-9, "x stays pinned")
}

func TestXPassSnapsLeftWhenMirrored(t *testing.T) {
	idx := flatGround()
	idx.add(Collidable{Kind: KindBlock, X: -90, Y: 270, W: 30, H: 30})

	p := newTestPlayer(t, ModeCube, -40, cubeRestY)
	p.Mirrored = true
	settle(t, p, idx)

	for i := 0; i < 5; i++ {
		tick(t, p, idx, false)
	}
	approxEqual(t, p.X, -60+HitboxHalf, 1e-9, "x against left wall")
}

func TestYPassFirstMatchWins(t *testing.T) {
	// Two overlapping blocks in candidate order; the resolver must stop at
	// the first, even though the second has a higher surface.
	idx := &stubIndex{}
	idx.add(Collidable{Kind: KindBlock, X: -100, Y: 300, W: 200, H: 30})
	idx.add(Collidable{Kind: KindBlock, X: -100, Y: 295, W: 200, H: 35})

	p := newTestPlayer(t, ModeCube, 0, 260)
	p.VY = 12
	tick(t, p, nil, false) // integrate freely once to keep vy positive
	for i := 0; i < 10 && !p.OnGround; i++ {
		tick(t, p, idx, false)
	}
	require.True(t, p.OnGround)
	approxEqual(t, p.Y, 300-HitboxHalf-1.5, 1e-9, "landed on first candidate's top")
}

func TestCeilingBumpZeroesVelocity(t *testing.T) {
	idx := flatGround()
	idx.add(Collidable{Kind: KindBlock, X: -10000, Y: 240, W: 20000, H: 30})

	p := newTestPlayer(t, ModeCube, 0, cubeRestY)
	settle(t, p, idx)
	tick(t, p, idx, true) // jump into the ceiling

	bumped := false
	for i := 0; i < 20; i++ {
		tick(t, p, idx, false)
		if p.VY == 0 && !p.OnGround {
			bumped = true
			// Snapped to the block bottom, not inside it.
			approxEqual(t, p.Y, 270+HitboxHalf-1.5, 1e-9, "y under ceiling")
			break
		}
	}
	require.True(t, bumped, "never hit the ceiling")
}

func TestMalformedCollidablesSkipped(t *testing.T) {
	idx := flatGround()
	// Zero-width block and NaN-positioned spike directly in the path: both
	// must be ignored without ending the tick or the attempt.
	idx.add(Collidable{Kind: KindBlock, X: 30, Y: 270, W: 0, H: 30})
	idx.add(Collidable{Kind: KindSpike, X: math.NaN(), Y: 270, W: 30, H: 30})

	session := &recordingSession{}
	p := newTestPlayer(t, ModeCube, 0, cubeRestY)
	for i := 0; i < 20; i++ {
		err := p.Step(TickContext{Dt: FixedDelta, Input: false, Index: idx, Session: session})
		require.NoError(t, err)
	}
	require.Zero(t, session.deaths)
	require.False(t, p.Dead())
	require.Greater(t, p.X, 60.0, "walked straight through the bad entries")
	require.False(t, math.IsNaN(p.X))
	require.False(t, math.IsNaN(p.Y))
}

func TestSpikeContactIsTerminal(t *testing.T) {
	idx := flatGround()
	idx.add(Collidable{Kind: KindSpike, X: 30, Y: 285, W: 15, H: 15})

	session := &recordingSession{}
	p := newTestPlayer(t, ModeCube, 0, cubeRestY)

	ticks := 0
	for !p.Dead() && ticks < 30 {
		err := p.Step(TickContext{Dt: FixedDelta, Input: false, Index: idx, Session: session})
		require.NoError(t, err)
		ticks++
	}
	require.True(t, p.Dead())
	require.Equal(t, 1, session.deaths)
	// The death tick is terminal: no trail sample was pushed for it.
	require.Equal(t, ticks-1, p.Trail().Len())
}

func TestPortalOverwritesStateMidTick(t *testing.T) {
	ship := ModeShip
	mini := true
	speed := 1.5
	idx := flatGround()
	idx.add(Collidable{
		Kind: KindPortal, X: 0, Y: 270, W: 30, H: 40,
		Portal: &PortalData{Mode: &ship, Mini: &mini, Speed: &speed},
	})

	p := newTestPlayer(t, ModeCube, 0, cubeRestY)
	tick(t, p, idx, false)

	require.Equal(t, ModeShip, p.Mode)
	require.True(t, p.Mini)
	require.Equal(t, 1.5, p.SpeedMult)

	// The next tick already runs the ship branch with ship constants.
	vyBefore := p.VY
	tick(t, p, idx, true)
	approxEqual(t, p.VY, vyBefore+0.25-1.15*1.5, 1e-9, "ship thrust after portal")
	require.Equal(t, 9.0, p.VX, "base speed times portal multiplier")
}

func TestPortalToWaveShrinksTrail(t *testing.T) {
	wave := ModeWave
	idx := flatGround()
	idx.add(Collidable{Kind: KindPortal, X: 0, Y: 270, W: 30, H: 40, Portal: &PortalData{Mode: &wave}})

	p := newTestPlayer(t, ModeCube, 0, cubeRestY)
	require.Equal(t, 20, p.Trail().Cap())
	tick(t, p, idx, false)
	require.Equal(t, ModeWave, p.Mode)
	require.Equal(t, 5, p.Trail().Cap())
}

func TestOrbAndTriggerBothApply(t *testing.T) {
	idx := flatGround()
	idx.add(Collidable{Kind: KindOrb, X: 0, Y: 270, W: 30, H: 40, Orb: &OrbData{Impulse: 9}})
	idx.add(Collidable{Kind: KindTrigger, X: 0, Y: 270, W: 30, H: 40, Trigger: &TriggerData{Speed: 2}})

	p := newTestPlayer(t, ModeCube, 0, 280)
	tick(t, p, idx, false)

	approxEqual(t, p.VY, -9.0, 1e-12, "orb impulse applied")
	require.Equal(t, 2.0, p.SpeedMult, "speed trigger applied in the same tick")
}

func TestNonPenetrationOverCourse(t *testing.T) {
	idx := flatGround()
	// A small obstacle course: a step up, a ceiling strip and a far wall.
	blocks := []Collidable{
		{Kind: KindBlock, X: 120, Y: 270, W: 60, H: 30},
		{Kind: KindBlock, X: 240, Y: 210, W: 120, H: 15},
		{Kind: KindBlock, X: 480, Y: 150, W: 30, H: 150},
	}
	for _, b := range blocks {
		idx.add(b)
	}

	p := newTestPlayer(t, ModeCube, 0, cubeRestY)
	const tol = 1e-6
	for i := 0; i < 600; i++ {
		tick(t, p, idx, i%11 < 3)
		box := p.Hitbox()
		for _, b := range idx.objects {
			shrunk := AABB{X: b.X + tol, Y: b.Y + tol, W: b.W - 2*tol, H: b.H - 2*tol}
			require.False(t, box.Overlaps(shrunk),
				"tick %d: hitbox %+v penetrates block %+v", i, box, b)
		}
	}
}
