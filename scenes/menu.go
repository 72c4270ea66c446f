package scenes

import (
	"log"
	"sync"

	"github.com/automoto/jumpdash/assets"
	cfg "github.com/automoto/jumpdash/config"
	"github.com/automoto/jumpdash/systems"
	"github.com/automoto/jumpdash/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the level select menu
type MenuScene struct {
	ui           *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	_, names, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("load levels: %v", err)
	}

	progress := systems.LoadProgress()
	ms.ui = ui.NewMenuUI(names, progress.BestPct, func(levelName string) {
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, levelName))
	})
}
