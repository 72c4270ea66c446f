package physics

// Collaborator contracts consumed by the core. The surrounding session
// provides implementations; the core never reaches into ambient globals.

// AABB is an axis-aligned box, top-left anchored, in level pixels.
type AABB struct {
	X, Y, W, H float64
}

// Overlaps reports strict interior overlap. Boxes that merely touch along an
// edge do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Kind classifies a level object for collision and interaction handling.
type Kind uint8

const (
	KindBlock Kind = iota
	KindSpike
	KindPortal
	KindOrb
	KindPad
	KindTrigger
)

var kindNames = [...]string{"block", "spike", "portal", "orb", "pad", "trigger"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// PortalData is the type-specific payload of a portal. Nil fields leave the
// corresponding player state untouched; set fields overwrite it instantly.
type PortalData struct {
	Mode  *Mode
	Flip  *float64 // gravity direction, +1 or -1
	Mini  *bool
	Speed *float64 // global speed multiplier override
}

// OrbData configures jump orbs and pads: contact sets vy to the impulse,
// signed against the current gravity direction.
type OrbData struct {
	Impulse float64
}

// TriggerData configures plain triggers. Currently only the global speed
// multiplier is driven this way.
type TriggerData struct {
	Speed float64
}

// Collidable is one candidate returned by the spatial index. Geometry plus a
// kind-specific payload consumed by the interaction pass.
type Collidable struct {
	Kind Kind
	X, Y float64 // top-left
	W, H float64

	Portal  *PortalData
	Orb     *OrbData
	Trigger *TriggerData
}

// Bounds returns the collidable's region as an AABB.
func (c *Collidable) Bounds() AABB {
	return AABB{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// valid rejects malformed level-data entries (zero or negative size, NaN
// geometry). A single bad entry must not take down the simulation tick.
func (c *Collidable) valid() bool {
	return c.W > 0 && c.H > 0 &&
		c.X == c.X && c.Y == c.Y && c.W == c.W && c.H == c.H
}

// SpatialIndex yields collision candidates for a query region. It must
// return every collidable that truly overlaps the region; false positives
// are fine, the core runs its own exact tests.
type SpatialIndex interface {
	Query(region AABB) []Collidable
}

// EventKind names a fire-and-forget visual/audio event.
type EventKind uint8

const (
	EventJumpDust EventKind = iota
	EventDeathBurst
)

// EventSink receives visual/audio events. Emit must never block the tick.
type EventSink interface {
	Emit(kind EventKind, x, y float64, count int)
}

// SessionController owns death and respawn timing. OnDeath is invoked
// synchronously on hazard contact; the tick is terminal once it returns.
type SessionController interface {
	OnDeath(p *Player)
}

// TickContext is the explicit per-tick environment for Player.Step: the
// input snapshot and the collaborator handles, with no hidden globals.
// Index, Events and Session may be nil in headless/unit setups; the core
// skips the corresponding stage.
type TickContext struct {
	Dt      float64 // fixed tick duration in seconds (reference 1/60)
	Input   bool    // raw jump input for this tick
	Index   SpatialIndex
	Events  EventSink
	Session SessionController
}
