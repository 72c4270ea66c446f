package physics

import "math"

const degPerRad = 180.0 / math.Pi

// Dust particle count for the cube ground jump event.
const jumpDustCount = 8

// Step advances the player by one fixed tick. It must be called exactly once
// per simulation frame; the stage order below is load-bearing and reordering
// changes trajectories.
//
//	input sampling -> horizontal -> gravity -> mode rule -> vertical ->
//	collision resolution -> rotation wrap -> trail
//
// The only error path is an unknown mode, which is a configuration bug; all
// gameplay outcomes (death, mode change) are state transitions.
func (p *Player) Step(ctx TickContext) error {
	entry, err := p.table.Lookup(p.Mode)
	if err != nil {
		return err
	}

	frames := ctx.Dt * TicksPerSecond

	// 1. Input sampling: rising edge plus hold accumulation. The charge is
	// captured before the press edge clears the accumulator so a charge
	// built up before release still feeds the next jump.
	input := ctx.Input
	justPressed := input && !p.lastInput
	holding := input
	charge := p.holdFrames
	if justPressed {
		p.holdFrames = 0
	}
	if holding {
		p.holdFrames += frames
	}
	p.lastInput = input

	// 2. Horizontal integration. vx is fully determined by mode speed,
	// multiplier and mirror state; nothing accumulates.
	dir := 1.0
	if p.Mirrored {
		dir = -1.0
	}
	p.VX = entry.BaseSpeed * p.SpeedMult * dir
	p.X += p.VX * frames

	// 3. Gravity integration, sign-flipped by the gravity direction.
	p.VY += p.effectiveGravity(entry) * p.Flip * frames

	// 4. Mode-specific rule: exactly one branch fires.
	switch p.Mode {
	case ModeCube:
		p.stepCube(ctx, entry, justPressed, frames)
	case ModeShip, ModeSwing:
		p.stepShip(entry, holding, frames)
	case ModeBall:
		p.stepBall(entry, justPressed, frames)
	case ModeUFO:
		p.stepUFO(entry, justPressed)
	case ModeWave:
		p.stepWave(entry, holding)
	case ModeRobot:
		p.stepRobot(entry, justPressed, charge)
	case ModeSpider:
		p.stepSpider(entry, justPressed, frames)
	}

	// 5. Vertical integration. The X collision pass below still needs the
	// pre-integration y extent.
	oldY := p.Y
	p.Y += p.VY * frames

	// 6. Axis-separated collision resolution and interactions. Death is
	// terminal for the tick: no wrap, no trail sample.
	if p.resolveCollisions(ctx, oldY) {
		return nil
	}

	// 7. Post-collision normalization: cube rotation stays in [0,360).
	if p.Mode == ModeCube {
		p.Rotation = wrapDegrees(p.Rotation)
	}

	// 8. Trail history.
	p.trail.Push(TrailSample{X: p.X, Y: p.Y, Rotation: p.Rotation})
	p.age += frames
	return nil
}

// stepCube: ground-only tap jump with dust, rotation accumulates at the
// ground or air rate scaled by the signed speed ratio.
func (p *Player) stepCube(ctx TickContext, entry *ModeEntry, justPressed bool, frames float64) {
	if justPressed && p.OnGround {
		p.VY = -p.jumpImpulse(entry) * p.Flip
		p.OnGround = false
		if ctx.Events != nil {
			feet := p.Y + entry.HitboxYBias + p.HalfSize()
			ctx.Events.Emit(EventJumpDust, p.X, feet, jumpDustCount)
		}
	}
	rate := entry.RotAir
	if p.OnGround {
		rate = entry.RotGround
	}
	p.Rotation += rate * (p.VX / entry.BaseSpeed) * frames
}

// stepShip covers ship and swing: continuous hold thrust against gravity,
// tilt derived from the velocity angle every tick.
func (p *Player) stepShip(entry *ModeEntry, holding bool, frames float64) {
	thrust := entry.ThrustNoHold
	if holding {
		thrust = -entry.ThrustHold
	}
	p.VY += thrust * p.SpeedMult * frames
	p.Rotation = math.Atan2(-p.VY, math.Abs(p.VX)) * degPerRad * entry.TiltMult
}

// stepBall: tap toggles the gravity direction without touching vy; the ball
// spins continuously and may exceed 360.
func (p *Player) stepBall(entry *ModeEntry, justPressed bool, frames float64) {
	if justPressed {
		p.Flip = -p.Flip
	}
	p.Rotation += entry.RotSpeed * frames
}

// stepUFO: tap jump anywhere, vy clamped to the mode limit scaled by the
// speed multiplier, rotation bobbles sinusoidally.
func (p *Player) stepUFO(entry *ModeEntry, justPressed bool) {
	if justPressed {
		p.VY = -p.jumpImpulse(entry) * p.Flip
	}
	clamp := entry.VyClamp * p.SpeedMult
	if p.VY > clamp {
		p.VY = clamp
	} else if p.VY < -clamp {
		p.VY = -clamp
	}
	p.Rotation = math.Sin(p.age*entry.BobFreq) * entry.BobAmp
}

// stepWave: vy is driven directly by hold state, no carry-over from the
// previous tick and no gravity accumulation (the table entry has zero
// gravity, so stage 3 was a no-op).
func (p *Player) stepWave(entry *ModeEntry, holding bool) {
	amp := entry.AmpNoHold
	if holding {
		amp = -entry.AmpHold
	}
	p.VY = p.Flip * amp * p.SpeedMult
	p.Rotation = math.Atan2(p.VY, p.VX)*degPerRad + 90
}

// stepRobot: charge jump. The impulse interpolates between the base and max
// jump over ChargeFrames of accumulated hold, saturating at the max.
func (p *Player) stepRobot(entry *ModeEntry, justPressed bool, charge float64) {
	if !justPressed || !p.OnGround {
		return
	}
	frac := math.Min(charge, entry.ChargeFrames) / entry.ChargeFrames
	base, max := entry.Jump, entry.JumpMax
	if p.Mini {
		base, max = entry.JumpMini, entry.JumpMaxMini
	}
	p.VY = -(base + (max-base)*frac) * p.Flip
	p.OnGround = false
}

// stepSpider: tap flips gravity and fires a wall-jump impulse in the new
// direction; otherwise vy decays toward the stuck state.
func (p *Player) stepSpider(entry *ModeEntry, justPressed bool, frames float64) {
	if justPressed {
		p.Flip = -p.Flip
		p.VY = -p.jumpImpulse(entry) * p.Flip
	} else {
		p.VY *= math.Pow(entry.Decay, frames)
	}
	if p.Flip < 0 {
		p.Rotation = 180
	} else {
		p.Rotation = 0
	}
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
