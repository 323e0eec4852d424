package components

import (
	"github.com/automoto/trajectory/shared/noise"
	"github.com/yohamta/donburi"
)

// TerrainData is the singleton altitude map of a golf round. Version bumps
// whenever the field is regenerated so renderers can rebuild their image.
type TerrainData struct {
	Field   *noise.Field
	Version int
}

var Terrain = donburi.NewComponentType[TerrainData]()
