package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/trajectory/components"
	cfg "github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/core"
	"github.com/automoto/trajectory/fonts"
	"github.com/automoto/trajectory/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 18

// DrawHUD renders the score banner and a status line in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	scores := make([]int, 0, 2)
	tags.Shooter.Each(e.World, func(entry *donburi.Entry) {
		sh := components.Shooter.Get(entry)
		for len(scores) <= sh.Index {
			scores = append(scores, 0)
		}
		scores[sh.Index] = sh.Score
	})

	x, y := int(cfg.UI.ScoreX), int(cfg.UI.ScoreY)
	text.Draw(screen, core.ScoreBanner(scores), fonts.Score.Get(), x, y+28, cfg.White)

	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(entry)
	status := fmt.Sprintf("%s  shots %d", s.Variant, s.Shots)
	if s.Variant == cfg.VariantSlingshot {
		status += fmt.Sprintf("  escalations %d", s.Escalations)
	}
	text.Draw(screen, status, fonts.Small.Get(), x, y+28+hudLineHeight, cfg.Grey)

	if s.LastError != "" {
		msg := "can't fire: " + s.LastError
		w := float32(len(msg) * 8)
		vector.DrawFilledRect(screen, float32(x)-2, float32(y+36+hudLineHeight), w, hudLineHeight,
			color.RGBA{0, 0, 0, 180}, false)
		text.Draw(screen, msg, fonts.Small.Get(), x, y+50+hudLineHeight, cfg.Red)
	}
}

// DrawControls lists the key bindings along the bottom edge.
func DrawControls(e *ecs.ECS, screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	text.Draw(screen, "click: fire   R: range   N: new field   Esc: menu",
		fonts.Small.Get(), int(cfg.UI.ScoreX), h-8, cfg.Grey)
}
