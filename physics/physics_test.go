package physics

// Shared test fixtures: a slice-backed spatial index, recording event sink
// and session controller, and a flat-ground world the scenario tests run on.

import (
	"math"
	"testing"
)

const (
	groundTop = 300.0
	// Resting y for a full-size cube standing on groundTop.
	cubeRestY = groundTop - HitboxHalf - 1.5
)

// stubIndex returns every stored collidable for any query, in insertion
// order. False positives are allowed by the contract, and returning the full
// set keeps candidate iteration order obvious in ordering-sensitive tests.
type stubIndex struct {
	objects []Collidable
}

func (s *stubIndex) Query(AABB) []Collidable {
	out := make([]Collidable, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *stubIndex) add(c Collidable) { s.objects = append(s.objects, c) }

func flatGround() *stubIndex {
	idx := &stubIndex{}
	idx.add(Collidable{Kind: KindBlock, X: -10000, Y: groundTop, W: 20000, H: 60})
	return idx
}

type recordingSink struct {
	events []EventKind
}

func (r *recordingSink) Emit(kind EventKind, x, y float64, count int) {
	r.events = append(r.events, kind)
}

func (r *recordingSink) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e == kind {
			n++
		}
	}
	return n
}

type recordingSession struct {
	deaths int
}

func (r *recordingSession) OnDeath(*Player) { r.deaths++ }

func newTestPlayer(t *testing.T, mode Mode, x, y float64) *Player {
	t.Helper()
	p, err := NewPlayer(&DefaultTable, Spawn{X: x, Y: y, Mode: mode})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func tick(t *testing.T, p *Player, idx SpatialIndex, input bool) {
	t.Helper()
	err := p.Step(TickContext{Dt: FixedDelta, Input: input, Index: idx})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
}

// settle steps without input until the player grounds, failing the test if
// it never does.
func settle(t *testing.T, p *Player, idx SpatialIndex) {
	t.Helper()
	for i := 0; i < 240; i++ {
		tick(t, p, idx, false)
		if p.OnGround {
			return
		}
	}
	t.Fatalf("player never grounded: y=%v vy=%v", p.Y, p.VY)
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.9f, want %.9f (tol=%g)", field, got, want, tol)
	}
}
