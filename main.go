package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/fonts"
	"github.com/automoto/trajectory/scenes"
	"github.com/automoto/trajectory/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g, config.Debug.Variant)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	variant := flag.String("variant", "", "variant to start when -skipmenu is set (golf or slingshot)")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "random seed, 0 for a time-based seed")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "start a round directly")
	flag.Parse()

	// Initialize persistence before the menu reads preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	config.Debug.Variant = systems.PreferredVariant()
	if *variant != "" {
		v, err := config.ParseVariant(*variant)
		if err != nil {
			log.Fatalf("Invalid -variant: %v", err)
		}
		config.Debug.Variant = v
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Trajectory")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
