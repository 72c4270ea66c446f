package physics

import "fmt"

// Mode identifies one of the eight player movement behaviors. Exactly one
// mode is active at a time; portals are the only thing that switches it.
type Mode uint8

const (
	ModeCube Mode = iota
	ModeShip
	ModeBall
	ModeUFO
	ModeWave
	ModeRobot
	ModeSpider
	ModeSwing

	modeCount // must be last
)

var modeNames = [modeCount]string{
	ModeCube:   "cube",
	ModeShip:   "ship",
	ModeBall:   "ball",
	ModeUFO:    "ufo",
	ModeWave:   "wave",
	ModeRobot:  "robot",
	ModeSpider: "spider",
	ModeSwing:  "swing",
}

func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode maps a level-data identifier to a Mode. Used by the level loader
// for portal target properties.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, &UnknownModeError{Name: s}
}

// UnknownModeError reports a mode identifier outside the closed set of eight.
// This is a level-data/configuration bug and must never be silently defaulted.
type UnknownModeError struct {
	Mode Mode
	Name string // set when the failure came from parsing level data
}

func (e *UnknownModeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown player mode %q", e.Name)
	}
	return fmt.Sprintf("unknown player mode %d", uint8(e.Mode))
}

// ModeEntry holds the tuned physics constants for one mode. Entries are
// immutable after init and shared read-only by all players. Units are
// px/frame and px/frame^2 at the 60 Hz reference tick; degrees for rotation.
type ModeEntry struct {
	BaseSpeed float64 // horizontal px/frame at 1x speed multiplier

	Gravity     float64
	GravityMini float64

	Jump     float64 // cube/ufo/robot(base)/spider impulse
	JumpMini float64

	// Ship and swing: continuous hold-based vertical thrust per frame.
	ThrustHold   float64
	ThrustNoHold float64

	// Wave: vy is set directly each frame, never accumulated.
	AmpHold   float64
	AmpNoHold float64

	// UFO: |vy| clamp, scaled by the speed multiplier.
	VyClamp float64

	// Robot: impulse interpolates Jump..JumpMax over ChargeFrames of hold.
	JumpMax      float64
	JumpMaxMini  float64
	ChargeFrames float64

	// Spider: per-frame vy decay toward the stuck state.
	Decay float64

	// Rotation tuning. Cube spins at RotGround/RotAir scaled by vx/BaseSpeed,
	// ball at a fixed RotSpeed, ship/swing tilt by velocity angle times
	// TiltMult, ufo bobs sinusoidally.
	RotGround float64
	RotAir    float64
	RotSpeed  float64
	TiltMult  float64
	BobAmp    float64
	BobFreq   float64

	// Trail history capacity for this mode.
	TrailCap int

	// Vertical hitbox bias (cube rides slightly low in its box).
	HitboxYBias float64
}

// Table is the static mode -> constants mapping. Pure data, no behavior
// beyond lookup.
type Table [modeCount]ModeEntry

// Lookup returns the entry for mode, or UnknownModeError when the identifier
// is outside the defined set.
func (t *Table) Lookup(m Mode) (*ModeEntry, error) {
	if m >= modeCount {
		return nil, &UnknownModeError{Mode: m}
	}
	return &t[m], nil
}

// DefaultTable carries the reference tuning constants. Values must be
// reproduced exactly; do not round or "clean up".
var DefaultTable = Table{
	ModeCube: {
		BaseSpeed:   6.0,
		Gravity:     0.50,
		GravityMini: 0.413,
		Jump:        12.0,
		JumpMini:    9.58,
		RotGround:   2.5,
		RotAir:      7.5,
		TrailCap:    20,
		HitboxYBias: 1.5,
	},
	ModeShip: {
		BaseSpeed:    6.0,
		Gravity:      0.25,
		GravityMini:  0.25,
		ThrustHold:   1.15,
		ThrustNoHold: 0.20,
		TiltMult:     0.5,
		TrailCap:     20,
	},
	ModeBall: {
		BaseSpeed:   6.0,
		Gravity:     0.55,
		GravityMini: 0.55,
		RotSpeed:    10.0,
		TrailCap:    20,
	},
	ModeUFO: {
		BaseSpeed:   6.0,
		Gravity:     0.40,
		GravityMini: 0.33,
		Jump:        6.60,
		JumpMini:    5.28,
		VyClamp:     8.0,
		BobAmp:      4.0,
		BobFreq:     0.15,
		TrailCap:    20,
	},
	ModeWave: {
		BaseSpeed: 6.0,
		AmpHold:   1.35,
		AmpNoHold: 1.35,
		TrailCap:  5,
	},
	ModeRobot: {
		BaseSpeed:    6.0,
		Gravity:      0.84,
		GravityMini:  0.69,
		Jump:         10.34,
		JumpMini:     8.25,
		JumpMax:      16.0,
		JumpMaxMini:  12.77,
		ChargeFrames: 20,
		TrailCap:     20,
	},
	ModeSpider: {
		BaseSpeed: 6.0,
		Jump:      11.5,
		JumpMini:  9.18,
		Decay:     0.92,
		TrailCap:  20,
	},
	ModeSwing: {
		BaseSpeed:   6.0,
		Gravity:     0.40,
		GravityMini: 0.40,
		// The swing fall thrust is an explicit constant. Zero is never a
		// valid value here; a missing constant is a table bug, not a
		// runtime fallback.
		ThrustHold:   1.00,
		ThrustNoHold: 0.40,
		TiltMult:     0.5,
		TrailCap:     20,
	},
}
