package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/jumpdash/components"
	cfg "github.com/automoto/jumpdash/config"
	"github.com/automoto/jumpdash/physics"
	"github.com/automoto/jumpdash/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ParticleSink spawns particle entities from simulation events. It is handed
// to the simulation as its event sink; cosmetic randomness here never feeds
// back into physics state.
type ParticleSink struct {
	ECS *ecs.ECS
}

func (s *ParticleSink) Emit(kind physics.EventKind, x, y float64, count int) {
	switch kind {
	case physics.EventJumpDust:
		for i := 0; i < count; i++ {
			spawnParticle(s.ECS, components.ParticleData{
				X:               x + (rand.Float64()-0.5)*8,
				Y:               y,
				VX:              (rand.Float64() - 0.5) * cfg.Particle.DustSpread,
				VY:              -rand.Float64() * cfg.Particle.DustRise,
				Size:            cfg.Particle.Size,
				Color:           cfg.White,
				FramesRemaining: cfg.Particle.DustLifetimeFrames,
				Fade:            gween.New(1, 0, float32(cfg.Particle.DustLifetimeFrames), ease.Linear),
				Alpha:           1,
			})
		}
	case physics.EventDeathBurst:
		n := cfg.Particle.BurstCount
		for i := 0; i < n; i++ {
			angle := float64(i) / float64(n) * 2 * math.Pi
			speed := cfg.Particle.BurstSpeed * (0.5 + rand.Float64()*0.5)
			spawnParticle(s.ECS, components.ParticleData{
				X:               x,
				Y:               y,
				VX:              math.Cos(angle) * speed,
				VY:              math.Sin(angle) * speed,
				Size:            cfg.Particle.Size,
				Color:           cfg.Red,
				FramesRemaining: cfg.Particle.BurstLifetimeFrames,
				Fade:            gween.New(1, 0, float32(cfg.Particle.BurstLifetimeFrames), ease.Linear),
				Alpha:           1,
			})
		}
	}
}

func spawnParticle(e *ecs.ECS, data components.ParticleData) {
	entry := e.World.Entry(e.World.Create(tags.Particle, components.ParticleComp))
	components.ParticleComp.SetValue(entry, data)
}

// UpdateParticles integrates particle motion and removes expired ones.
func UpdateParticles(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.ParticleComp.Each(e.World, func(entry *donburi.Entry) {
		p := components.ParticleComp.Get(entry)
		p.X += p.VX
		p.Y += p.VY
		p.VY += cfg.Particle.Gravity

		alpha, done := p.Fade.Update(1)
		p.Alpha = float64(alpha)

		p.FramesRemaining--
		if done || p.FramesRemaining <= 0 {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		entry.Remove()
	}
}
