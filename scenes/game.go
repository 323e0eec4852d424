package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/core"
	"github.com/automoto/trajectory/shared/arena"
	"github.com/automoto/trajectory/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene plays rounds of one variant until the player returns to the
// menu.
type GameScene struct {
	ecs          *ecs.ECS
	round        *core.Round
	variant      cfg.VariantID
	sceneChanger SceneChanger
	once         sync.Once
	leaving      bool
}

// NewGameScene creates a game scene for variant v
func NewGameScene(sc SceneChanger, v cfg.VariantID) *GameScene {
	return &GameScene{sceneChanger: sc, variant: v}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	if gs.ecs == nil {
		gs.backToMenu()
		return
	}

	gs.ecs.Update()
	if gs.leaving {
		gs.backToMenu()
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) backToMenu() {
	gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
}

func (gs *GameScene) configure() {
	world := donburi.NewWorld()
	variant := cfg.Variant(gs.variant)

	layout, err := arena.Builtin(variant.ID.String())
	if err != nil {
		log.Printf("Warning: using default spawns for %s: %v", variant.ID, err)
	}

	round, err := core.NewRound(variant, core.Options{
		Seed:   cfg.Debug.Seed,
		World:  world,
		Layout: layout,
	})
	if err != nil {
		log.Printf("Could not start %s round: %v", variant.ID, err)
		return
	}
	gs.round = round
	gs.ecs = ecs.NewECS(world)

	// Input first, then the round, then the effects that read its state
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateRound(round, func() { gs.leaving = true }))
	gs.ecs.AddSystem(systems.UpdateTransition)
	gs.ecs.AddSystem(systems.UpdatePulse)

	// Board
	gs.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawBackground(variant))
	gs.ecs.AddRenderer(systems.LayerDefault, systems.DrawTerrain)
	gs.ecs.AddRenderer(systems.LayerDefault, systems.DrawArchive)
	gs.ecs.AddRenderer(systems.LayerDefault, systems.DrawSources)
	gs.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawShooters(variant))
	gs.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawProjectiles(variant))

	// Overlays
	gs.ecs.AddRenderer(systems.LayerHUD, systems.DrawTransition)
	gs.ecs.AddRenderer(systems.LayerHUD, systems.DrawHUD)
	gs.ecs.AddRenderer(systems.LayerHUD, systems.DrawControls)
}
