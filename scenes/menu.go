package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/systems"
	"github.com/automoto/trajectory/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the variant picker
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	selected     *cfg.VariantID
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()

	if ms.selected != nil {
		v := *ms.selected
		systems.RememberVariant(v)
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, v))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(systems.PreferredVariant(), func(v cfg.VariantID) {
		ms.selected = &v
	})
}
