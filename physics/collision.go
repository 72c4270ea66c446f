package physics

import "math"

// resolveCollisions runs the three collision passes for one tick and returns
// true when a hazard ended the attempt.
//
// The resolver is axis-separated: the X pass tests the new x against the
// pre-integration y extent and snaps against every overlapping block; the Y
// pass then tests the corrected x against the new y and resolves only the
// first overlapping block, in candidate order. The interaction pass finally
// applies every remaining overlap (portals, orbs, pads, triggers, hazards)
// in candidate order.
func (p *Player) resolveCollisions(ctx TickContext, oldY float64) bool {
	p.OnGround = false
	if ctx.Index == nil {
		return false
	}

	candidates := ctx.Index.Query(p.queryRegion(oldY))
	half := p.HalfSize()
	bias := p.biasY()

	// X pass: blocks only, hazards are handled by the interaction pass.
	// All candidates are checked; several stacked blocks may each snap x.
	box := p.hitboxAt(p.X, oldY)
	for i := range candidates {
		c := &candidates[i]
		if c.Kind != KindBlock || !c.valid() {
			continue
		}
		if !box.Overlaps(c.Bounds()) {
			continue
		}
		if p.VX >= 0 {
			p.X = c.X - half
		} else {
			p.X = c.X + c.W + half
		}
		box = p.hitboxAt(p.X, oldY)
	}

	// Y pass: corrected x against the new y, first match wins.
	box = p.hitboxAt(p.X, p.Y)
	for i := range candidates {
		c := &candidates[i]
		if c.Kind != KindBlock || !c.valid() {
			continue
		}
		if !box.Overlaps(c.Bounds()) {
			continue
		}
		if p.VY > 0 {
			// Descending: land on the block top.
			p.Y = c.Y - half - bias
			p.VY = 0
			p.OnGround = true
		} else {
			// Ascending: bump against the block bottom.
			p.Y = c.Y + c.H + half - bias
			p.VY = 0
		}
		break
	}

	// Interaction pass: everything overlapping the resolved hitbox, in
	// candidate order. Multiple simultaneous interactions all apply.
	box = p.hitboxAt(p.X, p.Y)
	for i := range candidates {
		c := &candidates[i]
		if !c.valid() {
			continue
		}
		if !box.Overlaps(c.Bounds()) {
			continue
		}
		if p.interact(ctx, c) {
			return true
		}
	}
	return false
}

// interact applies a single overlapping collidable. Returns true on death.
func (p *Player) interact(ctx TickContext, c *Collidable) bool {
	switch c.Kind {
	case KindSpike:
		p.dead = true
		if ctx.Events != nil {
			ctx.Events.Emit(EventDeathBurst, p.X, p.Y, jumpDustCount*2)
		}
		if ctx.Session != nil {
			ctx.Session.OnDeath(p)
		}
		return true

	case KindPortal:
		if c.Portal != nil {
			p.applyPortal(c.Portal)
		}

	case KindOrb, KindPad:
		if c.Orb != nil {
			p.VY = -c.Orb.Impulse * p.Flip
		}

	case KindTrigger:
		if c.Trigger != nil && c.Trigger.Speed > 0 {
			p.SpeedMult = c.Trigger.Speed
		}
	}
	return false
}

// applyPortal overwrites player state per the portal payload. Set fields win
// instantly; the next tick already runs under the new mode and constants.
func (p *Player) applyPortal(pd *PortalData) {
	if pd.Mode != nil && *pd.Mode != p.Mode {
		// The loader validates portal targets against the mode table, so
		// a failure here cannot happen with well-formed level data.
		if err := p.switchMode(*pd.Mode); err != nil {
			return
		}
	}
	if pd.Flip != nil && (*pd.Flip == 1 || *pd.Flip == -1) {
		p.Flip = *pd.Flip
	}
	if pd.Mini != nil {
		p.Mini = *pd.Mini
	}
	if pd.Speed != nil && *pd.Speed > 0 {
		p.SpeedMult = *pd.Speed
	}
}

// queryRegion is the hitbox swept over the pre- and post-integration y so
// the broad phase covers both the X pass (old y) and the Y pass (new y).
func (p *Player) queryRegion(oldY float64) AABB {
	lo := math.Min(oldY, p.Y)
	hi := math.Max(oldY, p.Y)
	box := p.hitboxAt(p.X, lo)
	box.H += hi - lo
	return box
}
