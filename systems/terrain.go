package systems

import (
	"image"

	"github.com/automoto/trajectory/components"
	"github.com/automoto/trajectory/shared/palette"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	terrainImage   *ebiten.Image
	terrainVersion = -1
	terrainOp      = &ebiten.DrawImageOptions{}
)

// DrawTerrain renders the golf altitude map. The image is rebuilt only when
// the field is regenerated.
func DrawTerrain(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	t := components.Terrain.Get(entry)
	if t.Field == nil {
		return
	}
	if terrainImage == nil || terrainVersion != t.Version {
		rebuildTerrainImage(t)
	}
	screen.DrawImage(terrainImage, terrainOp)
}

func rebuildTerrainImage(t *components.TerrainData) {
	f := t.Field
	rgba := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			rgba.SetRGBA(col, row, palette.Terrain(f.At(row, col)))
		}
	}
	if terrainImage != nil {
		terrainImage.Deallocate()
	}
	terrainImage = ebiten.NewImageFromImage(rgba)
	terrainVersion = t.Version
}
