package systems

import (
	"log"

	"github.com/automoto/jumpdash/components"
	cfg "github.com/automoto/jumpdash/config"
	"github.com/automoto/jumpdash/physics"
	"github.com/automoto/jumpdash/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances the simulation by one fixed tick per frame and
// handles the attempt lifecycle around it: death delay, respawn, completion.
// Must run AFTER UpdateInput.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	input := getOrCreateInput(e)

	if player.Completed {
		return
	}

	if player.RespawnTimer > 0 {
		player.RespawnTimer--
		if player.RespawnTimer == 0 {
			respawn(player)
		}
		return
	}

	if GetAction(input, cfg.ActionRestart).JustPressed {
		player.BestPct = RecordAttempt(player.LevelName, player.Level.Progress(player.Sim.X))
		respawn(player)
		return
	}

	jump := GetAction(input, cfg.ActionJump).Pressed
	err := player.Sim.Step(physics.TickContext{
		Dt:      physics.FixedDelta,
		Input:   jump,
		Index:   player.Level,
		Events:  &ParticleSink{ECS: e},
		Session: &deathHandler{ecs: e, player: player},
	})
	if err != nil {
		// Unknown mode is a level data bug; freeze instead of crashing.
		log.Printf("simulation step failed: %v", err)
		return
	}

	if !player.Sim.Dead() && player.Level.Complete(player.Sim.X) {
		player.Completed = true
		player.BestPct = RecordAttempt(player.LevelName, 100)
	}
}

// deathHandler reacts to a hazard kill reported by the simulation mid-tick.
type deathHandler struct {
	ecs    *ecs.ECS
	player *components.PlayerData
}

func (d *deathHandler) OnDeath(p *physics.Player) {
	d.player.RespawnTimer = cfg.Respawn.DelayFrames
	d.player.BestPct = RecordAttempt(d.player.LevelName, d.player.Level.Progress(p.X))
	TriggerScreenShake(d.ecs, cfg.Respawn.ScreenShakeIntensity, cfg.Respawn.ScreenShakeDuration)
}

func respawn(player *components.PlayerData) {
	if err := player.Sim.Reset(player.Level.Spawn()); err != nil {
		log.Printf("respawn failed: %v", err)
		return
	}
	player.Attempts++
}
