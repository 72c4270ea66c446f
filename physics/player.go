package physics

import "math"

// Hitbox dimensions. The box is centered on the player position, with a
// per-mode vertical bias (cube rides slightly low).
const (
	HitboxHalf     = 7.5
	HitboxHalfMini = 3.75

	// Floor for the half-size so degenerate geometry can never divide by
	// zero or feed NaN into position.
	minHalfSize = 1e-3
)

// TicksPerSecond is the reference simulation rate. The mode table constants
// are per-frame values at this rate; Step converts the incoming dt into
// frame-equivalents.
const TicksPerSecond = 60.0

// FixedDelta is the reference tick duration in seconds.
const FixedDelta = 1.0 / TicksPerSecond

// Spawn describes the reset state for a player at level start or respawn.
type Spawn struct {
	X, Y  float64
	Mode  Mode
	Flip  float64 // 0 means +1
	Mini  bool
	Speed float64 // 0 means 1x
}

// Player is the full simulation state of one entity. It is owned by the
// session and mutated exclusively by Step; there is no concurrent access
// under the single-threaded tick contract.
type Player struct {
	X, Y   float64
	VX, VY float64

	Mode     Mode
	Flip     float64 // +1 or -1, inverts gravity and jump direction
	Mini     bool
	Mirrored bool
	Rotation float64 // degrees; wraps into [0,360) for cube only

	OnGround bool

	// Global speed multiplier. Session state rather than per-tick context
	// because portals and triggers overwrite it mid-tick and it must
	// persist across ticks.
	SpeedMult float64

	// Input edge tracking and hold accumulation (robot charge jump).
	lastInput  bool
	holdFrames float64

	age   float64 // frames since spawn, drives the ufo bobble
	dead  bool
	table *Table
	trail Trail
}

// NewPlayer creates a player bound to a mode table and resets it to spawn.
// The spawn mode is validated against the table up front so an unknown mode
// fails at construction, not mid-tick.
func NewPlayer(table *Table, spawn Spawn) (*Player, error) {
	entry, err := table.Lookup(spawn.Mode)
	if err != nil {
		return nil, err
	}
	p := &Player{table: table}
	p.reset(spawn, entry)
	return p, nil
}

// Reset restores the player to the given spawn state, replacing all
// simulation state wholesale (death + restart path).
func (p *Player) Reset(spawn Spawn) error {
	entry, err := p.table.Lookup(spawn.Mode)
	if err != nil {
		return err
	}
	p.reset(spawn, entry)
	return nil
}

func (p *Player) reset(spawn Spawn, entry *ModeEntry) {
	flip := spawn.Flip
	if flip == 0 {
		flip = 1
	}
	speed := spawn.Speed
	if speed == 0 {
		speed = 1
	}
	*p = Player{
		X:         spawn.X,
		Y:         spawn.Y,
		Mode:      spawn.Mode,
		Flip:      flip,
		Mini:      spawn.Mini,
		SpeedMult: speed,
		table:     p.table,
		trail:     newTrail(entry.TrailCap),
	}
}

// Dead reports whether a hazard ended the current attempt. The session is
// expected to Reset the player before stepping again.
func (p *Player) Dead() bool { return p.dead }

// Trail exposes the render history buffer, newest sample first.
func (p *Player) Trail() *Trail { return &p.trail }

// HalfSize returns the current hitbox half-extent, mini-scaled and clamped
// away from zero.
func (p *Player) HalfSize() float64 {
	h := HitboxHalf
	if p.Mini {
		h = HitboxHalfMini
	}
	return math.Max(h, minHalfSize)
}

// Hitbox returns the collision box at the current position.
func (p *Player) Hitbox() AABB {
	return p.hitboxAt(p.X, p.Y)
}

func (p *Player) hitboxAt(x, y float64) AABB {
	half := p.HalfSize()
	bias := p.biasY()
	return AABB{
		X: x - half,
		Y: y + bias - half,
		W: half * 2,
		H: half * 2,
	}
}

func (p *Player) biasY() float64 {
	entry, err := p.table.Lookup(p.Mode)
	if err != nil {
		return 0
	}
	return entry.HitboxYBias
}

// jumpImpulse returns the tap-jump strength for the current size state.
func (p *Player) jumpImpulse(entry *ModeEntry) float64 {
	if p.Mini {
		return entry.JumpMini
	}
	return entry.Jump
}

// effectiveGravity returns the mini-scaled gravity for the current size.
func (p *Player) effectiveGravity(entry *ModeEntry) float64 {
	if p.Mini {
		return entry.GravityMini
	}
	return entry.Gravity
}

// switchMode applies a portal mode change: the hold accumulator is cleared
// and the trail is rebuilt at the new mode's capacity. Velocity, flip and
// size carry over unless the portal payload overrides them.
func (p *Player) switchMode(m Mode) error {
	entry, err := p.table.Lookup(m)
	if err != nil {
		return err
	}
	p.Mode = m
	p.holdFrames = 0
	p.trail = newTrail(entry.TrailCap)
	return nil
}
