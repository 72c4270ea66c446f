package scenes

import (
	"log"
	"sync"

	"github.com/automoto/jumpdash/assets"
	"github.com/automoto/jumpdash/components"
	cfg "github.com/automoto/jumpdash/config"
	"github.com/automoto/jumpdash/fonts"
	"github.com/automoto/jumpdash/level"
	"github.com/automoto/jumpdash/physics"
	"github.com/automoto/jumpdash/systems"
	"github.com/automoto/jumpdash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one level: simulation, camera, particles, HUD.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	paused       bool
	once         sync.Once
}

// NewWorldScene creates a scene for the named level.
func NewWorldScene(sc SceneChanger, levelName string) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelName: levelName}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	// Input polling runs even while paused so the pause edge is seen.
	systems.UpdateInput(ws.ecs)
	input, _ := components.Input.First(ws.ecs.World)
	pause := systems.GetAction(components.Input.Get(input), cfg.ActionPause)
	back := systems.GetAction(components.Input.Get(input), cfg.ActionMenuBack)
	selectAct := systems.GetAction(components.Input.Get(input), cfg.ActionMenuSelect)

	if pause.JustPressed {
		ws.paused = !ws.paused
	}
	if ws.paused {
		if back.JustPressed {
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		}
		return
	}

	if playerEntry, ok := tags.Player.First(ws.ecs.World); ok {
		player := components.Player.Get(playerEntry)
		if player.Completed && selectAct.JustPressed {
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
			return
		}
	}

	systems.UpdatePlayer(ws.ecs)
	systems.UpdateParticles(ws.ecs)
	systems.UpdateCamera(ws.ecs)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		screen.Fill(cfg.World.BackgroundColor)
		return
	}
	ws.ecs.Draw(screen)

	if ws.paused {
		w := float32(cfg.C.Width)
		h := float32(cfg.C.Height)
		vector.DrawFilledRect(screen, 0, 0, w, h, cfg.BlackOverlay, false)
		text.Draw(screen, "Paused", fonts.Title.Get(), cfg.C.Width/2-48, cfg.C.Height/2-10, cfg.White)
		text.Draw(screen, "ESC resume / Backspace menu", fonts.Regular.Get(), cfg.C.Width/2-90, cfg.C.Height/2+20, cfg.White)
	}
}

func (ws *WorldScene) configure() {
	levels, _, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("load levels: %v", err)
	}
	data, ok := levels[ws.levelName]
	if !ok {
		log.Fatalf("unknown level %q", ws.levelName)
	}
	built, err := level.New(data)
	if err != nil {
		log.Fatalf("build level %q: %v", ws.levelName, err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Update order matters: input -> simulation -> particles -> camera. The
	// scene drives updates itself so the pause state can gate them; only
	// renderers are registered with the ECS.
	e.AddRenderer(0, systems.DrawWorld)
	e.AddRenderer(0, systems.DrawPlayer)
	e.AddRenderer(0, systems.DrawParticles)
	e.AddRenderer(0, systems.DrawHUD)
	e.AddRenderer(0, systems.DrawLevelComplete)

	ws.ecs = e

	levelEntry := e.World.Entry(e.World.Create(components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{
		Name:  ws.levelName,
		Data:  data,
		Built: built,
	})

	sim, err := physics.NewPlayer(&physics.DefaultTable, built.Spawn())
	if err != nil {
		log.Fatalf("spawn player: %v", err)
	}

	progress := systems.LoadProgress()
	playerEntry := e.World.Entry(e.World.Create(tags.Player, components.Player))
	components.Player.SetValue(playerEntry, components.PlayerData{
		Sim:       sim,
		Level:     built,
		LevelName: ws.levelName,
		Attempts:  1,
		BestPct:   progress.BestPct[ws.levelName],
	})

	// Snap the camera to the spawn so the first frame doesn't pan in from
	// the map origin.
	cameraEntry := e.World.Entry(e.World.Create(components.Camera))
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = sim.X
	camera.Position.Y = sim.Y

	log.Printf("level %s: %d blocks, %d hazards, length %.0f",
		ws.levelName, len(data.Blocks), len(data.Spikes), data.Length)
}
