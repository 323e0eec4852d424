package core

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/trajectory/components"
	"github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/shared/arena"
	"github.com/automoto/trajectory/shared/noise"
	dmath "github.com/yohamta/donburi/features/math"
)

func twoShooters(ax, ay, bx, by float64) *arena.Layout {
	return &arena.Layout{Spawns: []arena.SpawnPoint{
		{X: ax, Y: ay, Index: 0},
		{X: bx, Y: by, Index: 1},
	}}
}

func newFlatGolfRound(t *testing.T) *Round {
	t.Helper()
	cfg := config.Variant(config.VariantGolf)
	r, err := NewRound(cfg, Options{
		Seed:    1,
		Layout:  twoShooters(100, 100, 1400, 650),
		Terrain: noise.Flat(cfg.Width, cfg.Height, 0.5),
	})
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	return r
}

func newSlingRound(t *testing.T, layout *arena.Layout, sources []SourceSpec) *Round {
	t.Helper()
	r, err := NewRound(config.Variant(config.VariantSlingshot), Options{
		Seed:    1,
		Layout:  layout,
		Sources: sources,
	})
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	return r
}

// runUntilIdle ticks until no projectile is flying and returns every change.
func runUntilIdle(t *testing.T, r *Round) []StateChange {
	t.Helper()
	var all []StateChange
	for i := 0; i < 2000; i++ {
		all = append(all, r.Tick(0)...)
		if len(r.Projectiles()) == 0 {
			return all
		}
	}
	t.Fatalf("projectiles still flying after 2000 ticks")
	return nil
}

func TestFlatTerrainShotsTravelStraightToTheEdge(t *testing.T) {
	r := newFlatGolfRound(t)
	target := dmath.Vec2{X: 1400, Y: 100}

	fired, err := r.Fire(0, target)
	if err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if len(fired) != FanSize {
		t.Fatalf("fired %d projectiles, want %d", len(fired), FanSize)
	}
	for _, e := range fired {
		if o := components.Projectile.Get(e).Origin; o != target {
			t.Fatalf("origin = %+v, want %+v", o, target)
		}
	}

	changes := runUntilIdle(t, r)
	if len(changes) != FanSize {
		t.Fatalf("got %d state changes, want %d", len(changes), FanSize)
	}
	for _, c := range changes {
		if c.To != config.StateOutOfBounds {
			t.Fatalf("projectile ended %v, want out-of-bounds", c.To)
		}
		if c.Position.X < float64(r.Config().Width) {
			t.Fatalf("left the field at x=%f, want the right edge", c.Position.X)
		}
	}

	archive := r.Archive()
	if len(archive) != FanSize {
		t.Fatalf("archive has %d traces, want %d", len(archive), FanSize)
	}
	horizontal := 0
	for _, e := range archive {
		a := components.Archived.Get(e)
		pts := a.Points
		step := pts[1].Sub(pts[0])
		for i := 2; i < len(pts); i++ {
			d := pts[i].Sub(pts[i-1])
			if math.Abs(d.X-step.X) > 1e-9 || math.Abs(d.Y-step.Y) > 1e-9 {
				t.Fatalf("trace bends at point %d: %+v vs %+v", i, d, step)
			}
		}
		if math.Abs(pts[len(pts)-1].Y-pts[0].Y) > 2 {
			t.Fatalf("trace drifted %f vertically", pts[len(pts)-1].Y-pts[0].Y)
		}
		if pts[0].Y == 100 && pts[len(pts)-1].Y == 100 {
			horizontal++
		}
	}
	if horizontal != 3 {
		t.Fatalf("%d exactly horizontal traces, want 3", horizontal)
	}
}

func TestFireRejectsBadCommands(t *testing.T) {
	r := newFlatGolfRound(t)

	_, err := r.Fire(0, dmath.Vec2{X: 100, Y: 100})
	var aimErr *InvalidAimError
	if !errors.As(err, &aimErr) {
		t.Fatalf("err = %v, want *InvalidAimError", err)
	}
	if _, err := r.Fire(7, dmath.Vec2{X: 5, Y: 5}); !errors.Is(err, ErrUnknownShooter) {
		t.Fatalf("err = %v, want ErrUnknownShooter", err)
	}
	if len(r.Projectiles()) != 0 || r.Shots() != 0 || r.VInitMax() != 3 {
		t.Fatalf("rejected commands changed state: %d projectiles, %d shots, vInitMax %f",
			len(r.Projectiles()), r.Shots(), r.VInitMax())
	}

	if _, err := r.Fire(0, dmath.Vec2{X: 500, Y: 100}); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if _, err := r.Fire(1, dmath.Vec2{X: 500, Y: 100}); !errors.Is(err, ErrVolleyInFlight) {
		t.Fatalf("err = %v, want ErrVolleyInFlight", err)
	}
	if r.Turn() != 1 {
		t.Fatalf("turn = %d, want 1", r.Turn())
	}
}

func TestGolfGrowsSpeedAndFadesPerShot(t *testing.T) {
	r := newFlatGolfRound(t)

	if _, err := r.Fire(0, dmath.Vec2{X: 100, Y: 0}); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	runUntilIdle(t, r)
	if _, err := r.Fire(1, dmath.Vec2{X: 1400, Y: 749}); err != nil {
		t.Fatalf("Fire: %v", err)
	}

	if want := 3 * 1.05 * 1.05; math.Abs(r.VInitMax()-want) > 1e-12 {
		t.Fatalf("VInitMax = %f, want %f", r.VInitMax(), want)
	}
	for _, e := range r.Archive() {
		if f := components.Archived.Get(e).Fade; math.Abs(f-0.95) > 1e-12 {
			t.Fatalf("fade = %f, want 0.95", f)
		}
	}
}

func TestHitScoresOpponentAndResetsRound(t *testing.T) {
	r := newSlingRound(t, twoShooters(100, 100, 400, 100), []SourceSpec{})
	firstID := r.ID()

	if _, err := r.Fire(0, dmath.Vec2{X: 100, Y: 0}); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	runUntilIdle(t, r)
	if len(r.Archive()) != FanSize {
		t.Fatalf("archive has %d traces, want %d", len(r.Archive()), FanSize)
	}

	if _, err := r.Fire(0, dmath.Vec2{X: 400, Y: 100}); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	changes := runUntilIdle(t, r)

	hits := 0
	for _, c := range changes {
		if c.To == config.StateHit {
			hits++
			if c.Shooter != 1 {
				t.Fatalf("hit shooter %d, want 1", c.Shooter)
			}
		}
	}
	if hits == 0 {
		t.Fatal("no projectile hit shooter 1")
	}

	if got := r.Scores(); got[0] != 1 || got[1] != 0 {
		t.Fatalf("scores = %v, want [1 0]", got)
	}
	if r.Turn() != 0 {
		t.Fatalf("turn = %d, want 0", r.Turn())
	}
	if len(r.Projectiles()) != 0 || len(r.Archive()) != 0 {
		t.Fatalf("after hit: %d projectiles, %d traces, want none", len(r.Projectiles()), len(r.Archive()))
	}
	if r.Shots() != 0 || r.Escalations() != 0 {
		t.Fatalf("counters not reset: shots %d escalations %d", r.Shots(), r.Escalations())
	}

	ev, ok := r.ConsumeReset()
	if !ok {
		t.Fatal("no reset event")
	}
	if ev.PreviousID != firstID || ev.RoundID == firstID || ev.RoundID != r.ID() {
		t.Fatalf("reset ids = %q -> %q, round %q", ev.PreviousID, ev.RoundID, r.ID())
	}
	if len(ev.Hit) != 1 || ev.Hit[0] != 1 || ev.Next != 0 {
		t.Fatalf("reset event = %+v", ev)
	}
	if _, ok := r.ConsumeReset(); ok {
		t.Fatal("reset event delivered twice")
	}
}

func TestResolveHits(t *testing.T) {
	tests := []struct {
		name       string
		hits       []hitRecord
		wantScores []int
		wantTurn   int
	}{
		{"opponent's shot", []hitRecord{{shooter: 1, owner: 0}}, []int{1, 0}, 0},
		{"own shot credits the next shooter", []hitRecord{{shooter: 0, owner: 0}}, []int{0, 1}, 1},
		{"one shooter hit twice counts once", []hitRecord{{shooter: 1, owner: 0}, {shooter: 1, owner: 0}}, []int{1, 0}, 0},
		{"both hit in the same tick", []hitRecord{{shooter: 1, owner: 0}, {shooter: 0, owner: 1}}, []int{1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newSlingRound(t, twoShooters(100, 100, 400, 100), []SourceSpec{})
			r.resolveHits(tt.hits)

			got := r.Scores()
			for i := range tt.wantScores {
				if got[i] != tt.wantScores[i] {
					t.Fatalf("scores = %v, want %v", got, tt.wantScores)
				}
			}
			if r.Turn() != tt.wantTurn {
				t.Fatalf("turn = %d, want %d", r.Turn(), tt.wantTurn)
			}
		})
	}
}

func centralSource() []SourceSpec {
	return []SourceSpec{{Position: dmath.Vec2{X: 750, Y: 390}, Radius: 30, Fixed: true}}
}

func launch(r *Round, pos, vel dmath.Vec2) {
	e := r.spawnProjectile(0, pos, Shot{Position: pos, Velocity: vel}, config.White)
	r.active = append(r.active, e)
}

func TestSimultaneousExitsKeepOnlyLiveProjectiles(t *testing.T) {
	r := newSlingRound(t, twoShooters(100, 100, 1400, 700), []SourceSpec{})
	launch(r, dmath.Vec2{X: 10, Y: 300}, dmath.Vec2{X: -40, Y: 0})
	launch(r, dmath.Vec2{X: 750, Y: 400}, dmath.Vec2{X: 2, Y: 0})
	launch(r, dmath.Vec2{X: 10, Y: 500}, dmath.Vec2{X: -40, Y: 0})
	launch(r, dmath.Vec2{X: 10, Y: 600}, dmath.Vec2{X: -40, Y: 0})

	changes := r.Tick(0)
	if len(changes) != 3 {
		t.Fatalf("got %d state changes, want 3", len(changes))
	}
	if n := len(r.Archive()); n != 3 {
		t.Fatalf("archive has %d traces, want 3", n)
	}

	for tick := 2; tick <= 3; tick++ {
		if changes := r.Tick(0); len(changes) != 0 {
			t.Fatalf("tick %d: unexpected changes %+v", tick, changes)
		}
		active := r.Projectiles()
		if len(active) != 1 {
			t.Fatalf("tick %d: %d projectiles in flight, want 1", tick, len(active))
		}
		e := active[0]
		if !e.HasComponent(components.Projectile) || e.HasComponent(components.Archived) {
			t.Fatalf("tick %d: active entry is not a projectile", tick)
		}
		if y := components.Body.Get(e).Position.Y; y != 400 {
			t.Fatalf("tick %d: live projectile at y=%f, want 400", tick, y)
		}
	}
}

func TestShooterAtReachesPartialEdgeCells(t *testing.T) {
	tests := []struct {
		name  string
		width int
		at    dmath.Vec2
	}{
		{"bottom row", 1500, dmath.Vec2{X: 700, Y: 742}},
		{"right column", 1510, dmath.Vec2{X: 1505, Y: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Variant(config.VariantGolf)
			cfg.Width = tt.width
			r, err := NewRound(cfg, Options{
				Seed:    1,
				Layout:  twoShooters(100, 100, tt.at.X, tt.at.Y),
				Terrain: noise.Flat(cfg.Width, cfg.Height, 0.5),
			})
			if err != nil {
				t.Fatalf("NewRound: %v", err)
			}
			for _, p := range []dmath.Vec2{tt.at, tt.at.Add(dmath.Vec2{X: 3, Y: 3})} {
				idx, ok := r.space.ShooterAt(p)
				if !ok || idx != 1 {
					t.Fatalf("ShooterAt(%+v) = %d, %v, want 1, true", p, idx, ok)
				}
			}
		})
	}
}

func TestTangentialShotCurvesTowardSource(t *testing.T) {
	r := newSlingRound(t, twoShooters(100, 100, 1400, 700), centralSource())
	start := dmath.Vec2{X: 750, Y: 290}
	launch(r, start, dmath.Vec2{X: r.VInitMax(), Y: 0})

	for i := 0; i < 10; i++ {
		r.Tick(0)
	}
	ps := r.Projectiles()
	if len(ps) != 1 {
		t.Fatalf("%d projectiles in flight, want 1", len(ps))
	}
	pos := components.Body.Get(ps[0]).Position
	if pos.Y-start.Y < 1 {
		t.Fatalf("lateral displacement %f, want a pull toward the source", pos.Y-start.Y)
	}
}

func TestSlowShotNearSourceCrashes(t *testing.T) {
	r := newSlingRound(t, twoShooters(100, 100, 1400, 700), centralSource())
	launch(r, dmath.Vec2{X: 750, Y: 340}, dmath.Vec2{X: 4, Y: 0})

	changes := runUntilIdle(t, r)
	if len(changes) != 1 || changes[0].To != config.StateCrashed {
		t.Fatalf("changes = %+v, want a single crash", changes)
	}
	if got := r.Archive(); len(got) != 1 {
		t.Fatalf("archive has %d traces, want 1", len(got))
	}
}

func TestInertSourceStillBlocks(t *testing.T) {
	r := newSlingRound(t, twoShooters(100, 100, 1400, 700), centralSource())
	src := r.Sources()[0]
	components.GravitySource.Get(src).Weight = 0
	r.rebuildGravity()

	if a := r.Field().Acceleration(dmath.Vec2{X: 750, Y: 300}); a.Magnitude() != 0 {
		t.Fatalf("inert source pulls with %f", a.Magnitude())
	}
	if !r.space.SourceAt(dmath.Vec2{X: 760, Y: 395}) {
		t.Fatal("inert source no longer collides")
	}
}

func TestEscalationAfterSixVolleys(t *testing.T) {
	sources := []SourceSpec{
		{Position: dmath.Vec2{X: 1000, Y: 600}, Radius: 40},
		{Position: dmath.Vec2{X: 1200, Y: 650}, Radius: 30},
		{Position: dmath.Vec2{X: 900, Y: 720}, Radius: 20},
		{Position: dmath.Vec2{X: 1300, Y: 400}, Radius: 30, Fixed: true},
	}
	r := newSlingRound(t, twoShooters(100, 100, 100, 600), sources)
	cfg := r.Config()

	for shot := 1; shot <= 6; shot++ {
		if _, err := r.Fire(0, dmath.Vec2{X: 100, Y: 0}); err != nil {
			t.Fatalf("Fire %d: %v", shot, err)
		}
		runUntilIdle(t, r)

		if shot < 6 && r.Escalations() != 0 {
			t.Fatalf("escalated after %d shots", shot)
		}
	}

	if r.Escalations() != 1 {
		t.Fatalf("escalations = %d, want 1", r.Escalations())
	}
	for i, e := range r.Sources() {
		src := components.GravitySource.Get(e)
		body := components.Body.Get(e)
		if i == 0 {
			if src.Weight != 0 || body.Color != cfg.InertColor {
				t.Fatalf("first source weight %f colour %v, want inert", src.Weight, body.Color)
			}
			continue
		}
		if !src.Active() {
			t.Fatalf("source %d went inert too", i)
		}
	}

	archive := r.Archive()
	if len(archive) != 6*FanSize {
		t.Fatalf("archive has %d traces, want %d", len(archive), 6*FanSize)
	}
	for _, e := range archive {
		if f := components.Archived.Get(e).Fade; f != 0.5 {
			t.Fatalf("fade = %f, want 0.5", f)
		}
	}
}

func TestEscalationKeepsFadingWithoutMovableSources(t *testing.T) {
	sources := []SourceSpec{
		{Position: dmath.Vec2{X: 1000, Y: 600}, Radius: 40},
		{Position: dmath.Vec2{X: 1300, Y: 400}, Radius: 30, Fixed: true},
	}
	r := newSlingRound(t, twoShooters(100, 100, 100, 600), sources)

	for shot := 1; shot <= 12; shot++ {
		if _, err := r.Fire(0, dmath.Vec2{X: 100, Y: 0}); err != nil {
			t.Fatalf("Fire %d: %v", shot, err)
		}
		runUntilIdle(t, r)
	}

	if r.Escalations() != 2 {
		t.Fatalf("escalations = %d, want 2", r.Escalations())
	}
	if !components.GravitySource.Get(r.Sources()[1]).Active() {
		t.Fatal("fixed source went inert")
	}

	faded := map[float64]int{}
	for _, e := range r.Archive() {
		faded[components.Archived.Get(e).Fade]++
	}
	if faded[0.25] != 6*FanSize || faded[0.5] != 6*FanSize {
		t.Fatalf("fades = %v, want %d at 0.25 and %d at 0.5", faded, 6*FanSize, 6*FanSize)
	}
}

func TestNewRoundPlacesSources(t *testing.T) {
	r, err := NewRound(config.Variant(config.VariantSlingshot), Options{Seed: 3})
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	if n := len(r.Sources()); n != 10 {
		t.Fatalf("%d sources, want 10", n)
	}
	if r.Space() == nil {
		t.Fatal("round has no collision space")
	}
}

func TestNewGolfRoundGeneratesTerrain(t *testing.T) {
	cfg := config.Variant(config.VariantGolf)
	r, err := NewRound(cfg, Options{Seed: 3})
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	f := r.Terrain()
	if f == nil || f.Width != cfg.Width || f.Height != cfg.Height {
		t.Fatalf("terrain = %+v, want %dx%d", f, cfg.Width, cfg.Height)
	}
}

func TestScoreBanner(t *testing.T) {
	tests := []struct {
		scores []int
		want   string
	}{
		{[]int{0, 0}, "0 | 0"},
		{[]int{3, 12}, "3 | 12"},
		{[]int{1}, "1"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := ScoreBanner(tt.scores); got != tt.want {
			t.Errorf("ScoreBanner(%v) = %q, want %q", tt.scores, got, tt.want)
		}
	}
}
