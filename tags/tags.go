package tags

import "github.com/yohamta/donburi"

var (
	Shooter       = donburi.NewTag().SetName("Shooter")
	GravitySource = donburi.NewTag().SetName("GravitySource")
	Projectile    = donburi.NewTag().SetName("Projectile")
	Archived      = donburi.NewTag().SetName("Archived")
)

// Resolv tags for broad-phase collision
const (
	ResolvShooter = "shooter"
	ResolvSource  = "source"
	ResolvProbe   = "probe"
)
