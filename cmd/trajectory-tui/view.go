package main

import (
	"image/color"
	"sync"

	"github.com/automoto/trajectory/components"
	cfg "github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/core"
	"github.com/automoto/trajectory/shared/noise"
	"github.com/automoto/trajectory/shared/palette"
	"github.com/gdamore/tcell/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// hudRows is the number of terminal rows reserved above the board.
const hudRows = 1

// grid maps the world rectangle onto a block of terminal cells.
type grid struct {
	bounds core.Bounds
	cols   int
	rows   int
}

// cell returns the terminal cell containing pos, and false when pos falls
// outside the board.
func (g grid) cell(pos dmath.Vec2) (int, int, bool) {
	if !g.bounds.Contains(pos) || g.cols <= 0 || g.rows <= 0 {
		return 0, 0, false
	}
	x := int(pos.X * float64(g.cols) / g.bounds.Width)
	y := int(pos.Y * float64(g.rows) / g.bounds.Height)
	return x, y + hudRows, true
}

// world returns the centre of a terminal cell in world coordinates.
func (g grid) world(x, y int) (dmath.Vec2, bool) {
	y -= hudRows
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return dmath.Vec2{}, false
	}
	return dmath.Vec2{
		X: (float64(x) + 0.5) * g.bounds.Width / float64(g.cols),
		Y: (float64(y) + 0.5) * g.bounds.Height / float64(g.rows),
	}, true
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// view draws a round onto a tcell screen. draw runs on the loop goroutine
// while target and resize run on the event goroutine, so the grid is
// guarded.
type view struct {
	screen tcell.Screen

	mu   sync.Mutex
	grid grid

	terrain      *noise.Field
	terrainCells []tcell.Color
	status       string
}

func newView(screen tcell.Screen, bounds core.Bounds) *view {
	v := &view{screen: screen}
	v.resize(bounds)
	return v
}

func (v *view) resize(bounds core.Bounds) {
	w, h := v.screen.Size()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.grid = grid{bounds: bounds, cols: w, rows: h - hudRows}
	v.terrain = nil
}

// target converts a clicked cell to a world position.
func (v *view) target(x, y int) (dmath.Vec2, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.grid.world(x, y)
}

func (v *view) draw(r *core.Round) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.screen.Clear()
	v.drawTerrain(r.Terrain())

	for _, e := range r.Archive() {
		a := components.Archived.Get(e)
		c := a.Faded()
		if !palette.Visible(c, cfg.UI.ArchiveVisibleNorm) {
			continue
		}
		v.plotPath(a.Points, '·', tcell.StyleDefault.Foreground(rgb(c)))
		v.plot(a.Origin, '+', tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}

	for _, e := range r.Sources() {
		v.fillDisc(components.Body.Get(e))
	}
	turn := r.Turn()
	for _, e := range r.Shooters() {
		body := components.Body.Get(e)
		v.fillDisc(body)
		if components.Shooter.Get(e).Index == turn {
			v.plot(body.Position, '@', tcell.StyleDefault.Foreground(tcell.ColorRed).Background(rgb(body.Color)))
		}
	}

	trail := tcell.StyleDefault.Foreground(rgb(r.Config().TrailColor))
	for _, e := range r.Projectiles() {
		p := components.Projectile.Get(e)
		if p.Trail != nil {
			v.plotPath(p.Trail.Points(), '.', trail)
		}
		v.plot(components.Body.Get(e).Position, '*', tcell.StyleDefault.Foreground(rgb(components.Body.Get(e).Color)))
	}

	v.drawHUD(r)
	v.screen.Show()
}

func (v *view) drawTerrain(f *noise.Field) {
	if f == nil {
		return
	}
	if v.terrain != f {
		v.terrain = f
		v.terrainCells = make([]tcell.Color, v.grid.cols*v.grid.rows)
		for y := 0; y < v.grid.rows; y++ {
			for x := 0; x < v.grid.cols; x++ {
				pos, _ := v.grid.world(x, y+hudRows)
				row, col := int(pos.Y), int(pos.X)
				if row >= f.Height {
					row = f.Height - 1
				}
				if col >= f.Width {
					col = f.Width - 1
				}
				v.terrainCells[y*v.grid.cols+x] = rgb(palette.Terrain(f.At(row, col)))
			}
		}
	}
	for y := 0; y < v.grid.rows; y++ {
		for x := 0; x < v.grid.cols; x++ {
			v.screen.SetContent(x, y+hudRows, ' ', nil, tcell.StyleDefault.Background(v.terrainCells[y*v.grid.cols+x]))
		}
	}
}

func (v *view) fillDisc(body *components.BodyData) {
	style := tcell.StyleDefault.Foreground(rgb(body.Color))
	x0, y0, ok0 := v.grid.cell(dmath.Vec2{X: max(body.Position.X-body.Radius, 0), Y: max(body.Position.Y-body.Radius, 0)})
	x1, y1, ok1 := v.grid.cell(dmath.Vec2{
		X: min(body.Position.X+body.Radius, v.grid.bounds.Width-1),
		Y: min(body.Position.Y+body.Radius, v.grid.bounds.Height-1),
	})
	if !ok0 || !ok1 {
		return
	}
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			centre, ok := v.grid.world(x, y)
			if ok && centre.Distance(body.Position) < body.Radius {
				v.screen.SetContent(x, y, '█', nil, style)
				drawn = true
			}
		}
	}
	// Discs smaller than a cell still get one.
	if !drawn {
		v.plot(body.Position, '●', style)
	}
}

func (v *view) plotPath(points []dmath.Vec2, ch rune, style tcell.Style) {
	for _, p := range points {
		v.plot(p, ch, style)
	}
}

func (v *view) plot(pos dmath.Vec2, ch rune, style tcell.Style) {
	if x, y, ok := v.grid.cell(pos); ok {
		v.screen.SetContent(x, y, ch, nil, style)
	}
}

func (v *view) drawHUD(r *core.Round) {
	line := core.ScoreBanner(r.Scores()) + "   " + r.Config().ID.String()
	if v.status != "" {
		line += "   " + v.status
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i, ch := range []rune(line) {
		v.screen.SetContent(i, 0, ch, nil, style)
	}
}
