package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is one short-lived visual square (jump dust, death burst).
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA

	FramesRemaining int
	Fade            *gween.Tween // alpha over lifetime
	Alpha           float64
}

var ParticleComp = donburi.NewComponentType[ParticleData]()
