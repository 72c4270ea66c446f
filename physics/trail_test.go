package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrailPushFrontEvictOldest(t *testing.T) {
	tr := newTrail(3)
	require.Zero(t, tr.Len())

	tr.Push(TrailSample{X: 1})
	tr.Push(TrailSample{X: 2})
	require.Equal(t, 2, tr.Len())
	require.Equal(t, 2.0, tr.At(0).X, "newest first")
	require.Equal(t, 1.0, tr.At(1).X)

	tr.Push(TrailSample{X: 3})
	tr.Push(TrailSample{X: 4}) // evicts 1
	require.Equal(t, 3, tr.Len())
	require.Equal(t, 4.0, tr.At(0).X)
	require.Equal(t, 3.0, tr.At(1).X)
	require.Equal(t, 2.0, tr.At(2).X)
}

func TestTrailReset(t *testing.T) {
	tr := newTrail(4)
	for i := 0; i < 6; i++ {
		tr.Push(TrailSample{X: float64(i)})
	}
	tr.Reset()
	require.Zero(t, tr.Len())
	require.Equal(t, 4, tr.Cap())
}

func TestPlayerTrailFillsDuringRun(t *testing.T) {
	idx := flatGround()
	p := newTestPlayer(t, ModeCube, 0, cubeRestY)
	for i := 0; i < 30; i++ {
		tick(t, p, idx, false)
	}
	require.Equal(t, 20, p.Trail().Len(), "capped at the cube capacity")
	// Newest sample is the current position.
	require.Equal(t, p.X, p.Trail().At(0).X)
	require.Equal(t, p.Y, p.Trail().At(0).Y)
}
