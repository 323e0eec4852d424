package systems

import (
	"image/color"

	"github.com/automoto/trajectory/components"
	cfg "github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/shared/palette"
	"github.com/automoto/trajectory/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewDrawBackground fills the screen and draws the grid of variant v.
func NewDrawBackground(v cfg.VariantConfig) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(v.Background)
		if v.GridSpacing <= 0 {
			return
		}
		w, h := float32(v.Width), float32(v.Height)
		step := float32(v.GridSpacing)
		for x := float32(0); x < w; x += step {
			vector.StrokeLine(screen, x, 0, x, h, 1, v.GridColor, false)
		}
		for y := float32(0); y < h; y += step {
			vector.StrokeLine(screen, 0, y, w, y, 1, v.GridColor, false)
		}
	}
}

// DrawArchive renders finished trajectories with a cross at their aim
// point. Traces faded to near black are skipped.
func DrawArchive(e *ecs.ECS, screen *ebiten.Image) {
	tags.Archived.Each(e.World, func(entry *donburi.Entry) {
		a := components.Archived.Get(entry)
		c := a.Faded()
		if len(a.Points) < 2 || !palette.Visible(c, cfg.UI.ArchiveVisibleNorm) {
			return
		}
		strokePath(screen, a.Points, c)
		drawCross(screen, a.Origin)
	})
}

// DrawSources renders gravity sources; inert ones keep their disc.
func DrawSources(e *ecs.ECS, screen *ebiten.Image) {
	tags.GravitySource.Each(e.World, func(entry *donburi.Entry) {
		drawDisc(screen, components.Body.Get(entry))
	})
}

// NewDrawShooters renders shooters with their range ring and the turn
// marker on the shooter to play.
func NewDrawShooters(v cfg.VariantConfig) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		session, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		s := components.Session.Get(session)
		scale := pulseScale(e)

		tags.Shooter.Each(e.World, func(entry *donburi.Entry) {
			body := components.Body.Get(entry)
			drawDisc(screen, body)

			x, y := float32(body.Position.X), float32(body.Position.Y)
			if s.ShowRange {
				ring := float32(v.Fan.Divisor * s.VInitMax)
				vector.StrokeCircle(screen, x, y, ring, 1, body.Color, true)
			}

			marker := float32(body.Radius * cfg.UI.TurnMarkerRatio)
			if components.Shooter.Get(entry).Index == s.Turn {
				marker *= float32(scale)
				vector.DrawFilledCircle(screen, x, y, marker+2, cfg.Black, true)
				vector.DrawFilledCircle(screen, x, y, marker-2, cfg.Red, true)
				return
			}
			vector.DrawFilledCircle(screen, x, y, marker-2, cfg.Black, true)
		})
	}
}

// NewDrawProjectiles renders live trajectories and their heads.
func NewDrawProjectiles(v cfg.VariantConfig) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
			p := components.Projectile.Get(entry)
			body := components.Body.Get(entry)
			if p.Trail != nil && p.Trail.Len() > 1 {
				strokePath(screen, p.Trail.Points(), v.TrailColor)
			}
			vector.DrawFilledCircle(screen, float32(body.Position.X), float32(body.Position.Y),
				cfg.UI.ProjectileDotRadius, body.Color, true)
		})
	}
}

func drawDisc(screen *ebiten.Image, body *components.BodyData) {
	vector.DrawFilledCircle(screen, float32(body.Position.X), float32(body.Position.Y),
		float32(body.Radius), body.Color, true)
}

func strokePath(screen *ebiten.Image, points []dmath.Vec2, c color.Color) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
	}
}

func drawCross(screen *ebiten.Image, at dmath.Vec2) {
	x, y, s := float32(at.X), float32(at.Y), cfg.UI.CrossSize
	for _, pass := range []struct {
		width float32
		c     color.Color
	}{{3, cfg.Black}, {1, cfg.White}} {
		vector.StrokeLine(screen, x-s, y, x+s, y, pass.width, pass.c, false)
		vector.StrokeLine(screen, x, y-s, x, y+s, pass.width, pass.c, false)
	}
}
