package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

type ScreenShakeData struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

var Camera = donburi.NewComponentType[CameraData]()
var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
