package systems

import (
	"image/color"
	"math"

	"github.com/automoto/jumpdash/components"
	cfg "github.com/automoto/jumpdash/config"
	"github.com/automoto/jumpdash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pixel is the 1x1 white source image used for tinted, rotated quads.
var pixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// cameraOffset returns the world-to-screen translation for the current frame.
func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(cfg.C.Width)/2, camera.Position.Y - float64(cfg.C.Height)/2
}

// DrawWorld renders the level geometry and interactive objects as flat
// colored shapes.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.BackgroundColor)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	data := components.Level.Get(levelEntry).Data
	ox, oy := cameraOffset(e)

	for _, b := range data.Blocks {
		x, y := float32(b.X-ox), float32(b.Y-oy)
		w, h := float32(b.W), float32(b.H)
		vector.DrawFilledRect(screen, x, y, w, h, cfg.World.BlockColor, false)
		vector.StrokeRect(screen, x, y, w, h, 1, cfg.World.BlockLineColor, false)
	}

	for _, s := range data.Spikes {
		x, y := float32(s.X-ox), float32(s.Y-oy)
		w, h := float32(s.W), float32(s.H)
		// Triangle outline over a narrow base; reads as a spike without
		// sprite assets.
		vector.StrokeLine(screen, x, y+h, x+w/2, y, 1.5, cfg.World.SpikeColor, false)
		vector.StrokeLine(screen, x+w/2, y, x+w, y+h, 1.5, cfg.World.SpikeColor, false)
		vector.StrokeLine(screen, x, y+h, x+w, y+h, 1.5, cfg.World.SpikeColor, false)
	}

	for _, p := range data.Portals {
		clr, ok := cfg.World.PortalColors[p.Mode]
		if !ok {
			clr = cfg.White
		}
		vector.StrokeRect(screen, float32(p.X-ox), float32(p.Y-oy), float32(p.W), float32(p.H), 2, clr, false)
	}

	for _, o := range data.Orbs {
		cx := float32(o.X + o.W/2 - ox)
		cy := float32(o.Y + o.H/2 - oy)
		vector.DrawFilledCircle(screen, cx, cy, float32(o.W)/3, cfg.World.OrbColor, false)
	}

	for _, p := range data.Pads {
		vector.DrawFilledRect(screen, float32(p.X-ox), float32(p.Y-oy), float32(p.W), float32(p.H), cfg.World.PadColor, false)
	}
}

// DrawPlayer renders the trail and the player quad with its current rotation.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	sim := player.Sim
	ox, oy := cameraOffset(e)

	if sim.Dead() {
		return // the death burst is the only visual until respawn
	}

	drawTrail(screen, player, ox, oy)

	size := sim.HalfSize() * 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Rotate(sim.Rotation * math.Pi / 180)
	op.GeoM.Translate(sim.X-ox, sim.Y-oy)
	op.ColorScale.ScaleWithColor(cfg.World.PlayerColor)
	screen.DrawImage(pixel, op)
}

func drawTrail(screen *ebiten.Image, player *components.PlayerData, ox, oy float64) {
	trail := player.Sim.Trail()
	n := trail.Len()
	if n < 2 {
		return
	}

	for i := 0; i < n-1; i++ {
		a := trail.At(i)
		b := trail.At(i + 1)
		// Fade from head alpha to tail alpha along the buffer.
		t := float64(i) / float64(n-1)
		alpha := cfg.Trail.AlphaHead + (cfg.Trail.AlphaTail-cfg.Trail.AlphaHead)*t
		vector.StrokeLine(screen,
			float32(a.X-ox), float32(a.Y-oy),
			float32(b.X-ox), float32(b.Y-oy),
			float32(cfg.Trail.Width), withAlpha(cfg.World.PlayerColor, alpha), false)
	}
}

// DrawParticles renders the dust and burst squares.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := cameraOffset(e)
	components.ParticleComp.Each(e.World, func(entry *donburi.Entry) {
		p := components.ParticleComp.Get(entry)
		vector.DrawFilledRect(screen,
			float32(p.X-ox-p.Size/2), float32(p.Y-oy-p.Size/2),
			float32(p.Size), float32(p.Size),
			withAlpha(p.Color, p.Alpha), false)
	})
}

func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}
