package components

import "github.com/yohamta/donburi"

// GravitySourceData is a point mass. A source with zero weight exerts no
// force but still blocks projectiles.
type GravitySourceData struct {
	Weight float64
	Fixed  bool // the central source, never deactivated
	Order  int  // position in the escalation order, heaviest first
}

func (g *GravitySourceData) Active() bool {
	return g.Weight > 0
}

var GravitySource = donburi.NewComponentType[GravitySourceData]()
