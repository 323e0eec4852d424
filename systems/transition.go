package systems

import (
	"image/color"

	"github.com/automoto/trajectory/components"
	cfg "github.com/automoto/trajectory/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartTransition darkens the board and fades it back in over seconds.
func StartTransition(e *ecs.ECS, seconds float64) {
	t := getOrCreateTransition(e)
	if seconds <= 0 {
		t.Active = false
		t.Alpha = 0
		return
	}
	peak := float32(cfg.UI.TransitionOverlayMax)
	t.Tween = gween.New(peak, 0, float32(seconds), ease.InQuad)
	t.Alpha = peak
	t.Active = true
}

// IsTransitioning reports whether the reset fade is still playing.
func IsTransitioning(e *ecs.ECS) bool {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		return false
	}
	return components.Transition.Get(entry).Active
}

func UpdateTransition(e *ecs.ECS) {
	t := getOrCreateTransition(e)
	if !t.Active || t.Tween == nil {
		return
	}
	alpha, done := t.Tween.Update(1 / float32(cfg.C.TPS))
	t.Alpha = alpha
	if done {
		t.Active = false
		t.Alpha = 0
	}
}

func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		return
	}
	t := components.Transition.Get(entry)
	if !t.Active || t.Alpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h),
		color.RGBA{A: uint8(t.Alpha * 255)}, false)
}

func getOrCreateTransition(e *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Transition))
	}
	return components.Transition.Get(entry)
}
