package systems

import (
	"fmt"

	"github.com/automoto/jumpdash/components"
	cfg "github.com/automoto/jumpdash/config"
	"github.com/automoto/jumpdash/fonts"
	"github.com/automoto/jumpdash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the attempt counter, the progress bar and the best percent.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	margin := cfg.HUD.Margin
	barW := cfg.HUD.ProgressBarW
	barH := cfg.HUD.ProgressBarH
	barX := (float64(cfg.C.Width) - barW) / 2

	pct := player.Level.Progress(player.Sim.X)
	vector.DrawFilledRect(screen, float32(barX), float32(margin), float32(barW), float32(barH), cfg.HUD.BarBgColor, false)
	vector.DrawFilledRect(screen, float32(barX), float32(margin), float32(barW*pct/100), float32(barH), cfg.HUD.BarFgColor, false)

	face := fonts.Regular.Get()
	text.Draw(screen, fmt.Sprintf("Attempt %d", player.Attempts), face, int(margin), 20, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("%.0f%%", pct), face, int(barX+barW)+6, int(margin)+int(barH)+2, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("best %.0f%%", player.BestPct), face, int(margin), 36, cfg.HUD.BestTextColor)
}

// DrawLevelComplete renders the end-of-level overlay once the player crosses
// the finish line.
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.Completed {
		return
	}

	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, cfg.LevelComplete.OverlayColor, false)

	text.Draw(screen, cfg.LevelComplete.Title, fonts.Title.Get(), cfg.C.Width/2-110, 120, cfg.LevelComplete.TitleColor)
	text.Draw(screen, fmt.Sprintf("Attempts: %d", player.Attempts), fonts.Regular.Get(), cfg.C.Width/2-40, 160, cfg.LevelComplete.TextColor)
	text.Draw(screen, cfg.LevelComplete.ContinueHint, fonts.Regular.Get(), cfg.C.Width/2-60, 280, cfg.LevelComplete.TextColor)
}
