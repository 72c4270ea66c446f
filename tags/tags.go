package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Particle = donburi.NewTag().SetName("Particle")
)
