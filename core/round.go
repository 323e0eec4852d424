package core

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/automoto/trajectory/archetypes"
	"github.com/automoto/trajectory/components"
	"github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/shared/arena"
	"github.com/automoto/trajectory/shared/noise"
	"github.com/automoto/trajectory/tags"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrUnknownShooter = errors.New("core: unknown shooter")
	ErrVolleyInFlight = errors.New("core: previous volley still in flight")
)

const projectileRadius = 3

// Options customises a round. The zero value picks a time-based seed,
// places shooters from the variant's spawn fractions and regenerates the
// field on every reset.
type Options struct {
	Seed   int64
	World  donburi.World
	Layout *arena.Layout

	// Sources, when set, replaces random placement on every reset.
	Sources []SourceSpec
	// Terrain, when set, replaces noise generation on every reset.
	Terrain *noise.Field
}

// StateChange reports a projectile leaving the Flying state.
type StateChange struct {
	Entity   donburi.Entity
	Owner    int
	Volley   int
	From     config.ProjectileState
	To       config.ProjectileState
	Position dmath.Vec2
	Shooter  int // hit shooter, -1 unless To is StateHit
}

// ResetEvent is raised when a hit ends a round.
type ResetEvent struct {
	PreviousID string
	RoundID    string
	Hit        []int // shooters hit in the final tick
	Scores     []int
	Next       int
}

// Round owns the state of one match: shooters, the force field and every
// projectile and archived trace. It is not safe for concurrent use.
type Round struct {
	id     string
	cfg    config.VariantConfig
	opts   Options
	rng    *rand.Rand
	world  donburi.World
	space  *collisionSpace
	bounds Bounds

	terrain *donburi.Entry
	field   ForceField
	gravity *GravityField
	policy  TerminationPolicy

	shooters []*donburi.Entry
	sources  []*donburi.Entry
	active   []*donburi.Entry
	archived []*donburi.Entry

	turn        int
	shots       int
	volleys     int
	escalations int
	vInitMax    float64

	reset *ResetEvent
}

// NewRound builds the world, places shooters and generates the first field.
func NewRound(cfg config.VariantConfig, opts Options) (*Round, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("new %s round: invalid size %dx%d", cfg.ID, cfg.Width, cfg.Height)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := opts.World
	if w == nil {
		w = donburi.NewWorld()
	}

	r := &Round{
		id:       uuid.NewString(),
		cfg:      cfg,
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
		world:    w,
		bounds:   Bounds{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		vInitMax: cfg.VInitMax,
	}
	r.policy = TerminationPolicy{Config: cfg.Termination, Bounds: r.bounds}

	spaceEntry := archetypes.Space.Spawn(w)
	space := resolv.NewSpace(spaceSpan(cfg.Width), spaceSpan(cfg.Height), collisionCellSize, collisionCellSize)
	components.Space.Set(spaceEntry, space)
	r.space = newCollisionSpace(space, r.bounds)

	r.terrain = archetypes.Terrain.Spawn(w)
	r.spawnShooters()

	if err := r.populate(); err != nil {
		return nil, err
	}
	log.Printf("Round %s started (%s, seed %d)", r.id, cfg.ID, seed)
	return r, nil
}

func (r *Round) spawnShooters() {
	var points []dmath.Vec2
	if r.opts.Layout != nil {
		for _, sp := range r.opts.Layout.Spawns {
			points = append(points, dmath.Vec2{X: sp.X, Y: sp.Y})
		}
	} else {
		for _, f := range r.cfg.ShooterSpawns {
			points = append(points, dmath.Vec2{
				X: float64(int(float64(r.cfg.Width) * f[0])),
				Y: float64(int(float64(r.cfg.Height) * f[1])),
			})
		}
	}

	for i, p := range points {
		e := archetypes.Shooter.Spawn(r.world)
		body := components.Body.Get(e)
		body.Position = p
		body.Radius = r.cfg.ShooterRadius
		body.Color = r.shooterColor(i)
		components.Shooter.Get(e).Index = i
		r.space.addDisc(e, tags.ResolvShooter)
		r.shooters = append(r.shooters, e)
	}
}

func (r *Round) shooterColor(i int) color.RGBA {
	if len(r.cfg.ShooterColors) == 0 {
		return config.White
	}
	return r.cfg.ShooterColors[i%len(r.cfg.ShooterColors)]
}

// populate generates the force field for the current round.
func (r *Round) populate() error {
	switch r.cfg.ID {
	case config.VariantGolf:
		f := r.opts.Terrain
		if f == nil {
			var err error
			f, err = r.generateTerrain()
			if err != nil {
				return err
			}
		}
		td := components.Terrain.Get(r.terrain)
		td.Field = f
		td.Version++
		r.field = &TerrainField{Field: f, G: r.cfg.Terrain.G}

	case config.VariantSlingshot:
		specs := r.opts.Sources
		if specs == nil {
			var fixed *dmath.Vec2
			if r.opts.Layout != nil && r.opts.Layout.FixedSource != nil {
				fixed = &dmath.Vec2{X: r.opts.Layout.FixedSource.X, Y: r.opts.Layout.FixedSource.Y}
			}
			var err error
			specs, err = PlaceSources(r.rng, r.cfg, r.shooterSpecs(), fixed)
			if err != nil {
				return fmt.Errorf("populate round %s: %w", r.id, err)
			}
		}
		r.spawnSources(specs)

	default:
		return fmt.Errorf("populate round %s: unsupported variant %s", r.id, r.cfg.ID)
	}
	return nil
}

func (r *Round) generateTerrain() (*noise.Field, error) {
	t := r.cfg.Terrain
	zoom := t.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w, h := r.cfg.Width/zoom, r.cfg.Height/zoom
	opts := noise.DefaultOptions()
	opts.Rand = r.rng
	coarse, err := noise.Generate(w, h, t.Scale, opts)
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}
	f, err := noise.Zoom(coarse, zoom)
	if err != nil {
		return nil, fmt.Errorf("upsample terrain: %w", err)
	}
	return f, nil
}

func (r *Round) shooterSpecs() []ShooterSpec {
	specs := make([]ShooterSpec, len(r.shooters))
	for i, e := range r.shooters {
		body := components.Body.Get(e)
		specs[i] = ShooterSpec{Position: body.Position, Radius: body.Radius}
	}
	return specs
}

func (r *Round) spawnSources(specs []SourceSpec) {
	for i, s := range specs {
		e := archetypes.GravitySource.Spawn(r.world)
		body := components.Body.Get(e)
		body.Position = s.Position
		body.Radius = s.Radius
		body.Color = s.Color
		src := components.GravitySource.Get(e)
		src.Weight = s.Weight()
		src.Fixed = s.Fixed
		src.Order = i
		r.space.addDisc(e, tags.ResolvSource)
		r.sources = append(r.sources, e)
	}
	r.rebuildGravity()
}

// rebuildGravity refreshes the field after sources change.
func (r *Round) rebuildGravity() {
	g := r.cfg.Gravity
	masses := make([]PointMass, 0, len(r.sources))
	for _, e := range r.sources {
		masses = append(masses, PointMass{
			Position: components.Body.Get(e).Position,
			Weight:   components.GravitySource.Get(e).Weight,
		})
	}
	r.gravity = &GravityField{G: g.G, Coeff: g.Coeff, AMax: g.AMax, Sources: masses}
	r.field = r.gravity
}

// Fire launches a fan from shooter towards target and hands the turn to the
// next shooter.
func (r *Round) Fire(shooter int, target dmath.Vec2) ([]*donburi.Entry, error) {
	if shooter < 0 || shooter >= len(r.shooters) {
		return nil, fmt.Errorf("fire from %d: %w", shooter, ErrUnknownShooter)
	}
	if r.cfg.SingleVolley && len(r.active) > 0 {
		return nil, ErrVolleyInFlight
	}

	vInitMax := r.vInitMax
	if g := r.cfg.Terrain.VInitGrowth; g > 0 {
		vInitMax *= g
	}
	body := components.Body.Get(r.shooters[shooter])
	shots, err := ExpandFan(body.Position, body.Radius, target, r.cfg.Fan, vInitMax)
	if err != nil {
		return nil, err
	}

	r.vInitMax = vInitMax
	if f := r.cfg.Terrain.FadePerShot; f > 0 {
		r.fadeArchive(f)
	}

	r.volleys++
	entries := make([]*donburi.Entry, 0, len(shots))
	for _, s := range shots {
		entries = append(entries, r.spawnProjectile(shooter, target, s, body.Color))
	}
	r.active = append(r.active, entries...)
	r.shots++
	r.turn = (shooter + 1) % len(r.shooters)
	return entries, nil
}

func (r *Round) spawnProjectile(owner int, origin dmath.Vec2, s Shot, c color.RGBA) *donburi.Entry {
	e := archetypes.Projectile.Spawn(r.world)
	body := components.Body.Get(e)
	body.Position = s.Position
	body.Radius = projectileRadius
	body.Color = c

	trail := components.NewTrail(r.cfg.Termination.MaxTrailPoints)
	trail.Append(s.Position)
	p := components.Projectile.Get(e)
	p.Velocity = s.Velocity
	p.Owner = owner
	p.Origin = origin
	p.Volley = r.volleys
	p.Trail = trail
	p.State = config.StateFlying
	return e
}

// Tick advances every projectile once, archives the ones that stopped and
// applies scoring, resets and escalation. A non-positive dt uses the
// variant's step.
func (r *Round) Tick(dt float64) []StateChange {
	if dt <= 0 {
		dt = r.cfg.Dt
	}
	integrator := NewIntegrator(r.field, r.cfg, dt)

	var changes []StateChange
	var hits []hitRecord
	var finished []int

	for i, e := range r.active {
		body := components.Body.Get(e)
		p := components.Projectile.Get(e)

		state, hit := config.StateOutOfBounds, -1
		if r.bounds.Contains(body.Position) {
			body.Position = integrator.Step(body.Position, p)
			state, hit = r.policy.Evaluate(p, body.Position, r.space)
		}
		if !state.Terminal() {
			continue
		}

		changes = append(changes, StateChange{
			Entity:   e.Entity(),
			Owner:    p.Owner,
			Volley:   p.Volley,
			From:     p.State,
			To:       state,
			Position: body.Position,
			Shooter:  hit,
		})
		p.State = state
		if state == config.StateHit {
			hits = append(hits, hitRecord{shooter: hit, owner: p.Owner})
		}
		finished = append(finished, i)
	}

	// Archiving recycles entity ids, so the active list is compacted by
	// position before any projectile leaves the world.
	for _, e := range r.compactActive(finished) {
		r.archive(e)
	}

	if len(hits) > 0 {
		r.resolveHits(hits)
	} else {
		r.escalate()
	}
	return changes
}

// compactActive removes the entries at the given ascending indices from the
// active list, keeping launch order, and returns them.
func (r *Round) compactActive(finished []int) []*donburi.Entry {
	if len(finished) == 0 {
		return nil
	}
	done := make([]*donburi.Entry, 0, len(finished))
	kept := make([]*donburi.Entry, 0, len(r.active)-len(finished))
	next := 0
	for i, e := range r.active {
		if next < len(finished) && finished[next] == i {
			done = append(done, e)
			next++
			continue
		}
		kept = append(kept, e)
	}
	r.active = kept
	return done
}

// Reset clears the board and regenerates the field. Scores survive.
func (r *Round) Reset() error {
	for _, e := range r.active {
		if e.Valid() {
			r.world.Remove(e.Entity())
		}
	}
	r.active = r.active[:0]
	r.clearArchive()

	for _, e := range r.sources {
		r.space.remove(e)
		r.world.Remove(e.Entity())
	}
	r.sources = nil

	r.shots = 0
	r.volleys = 0
	r.escalations = 0
	r.vInitMax = r.cfg.VInitMax
	r.id = uuid.NewString()
	return r.populate()
}

// ConsumeReset returns the pending reset event, if any, and clears it.
func (r *Round) ConsumeReset() (ResetEvent, bool) {
	if r.reset == nil {
		return ResetEvent{}, false
	}
	ev := *r.reset
	r.reset = nil
	return ev, true
}

func (r *Round) ID() string                    { return r.id }
func (r *Round) Config() config.VariantConfig  { return r.cfg }
func (r *Round) World() donburi.World          { return r.world }
func (r *Round) Space() *resolv.Space          { return r.space.space }
func (r *Round) Bounds() Bounds                { return r.bounds }
func (r *Round) Turn() int                     { return r.turn }
func (r *Round) VInitMax() float64             { return r.vInitMax }
func (r *Round) Shots() int                    { return r.shots }
func (r *Round) Escalations() int              { return r.escalations }
func (r *Round) Field() ForceField             { return r.field }
func (r *Round) Projectiles() []*donburi.Entry { return append([]*donburi.Entry(nil), r.active...) }
func (r *Round) Shooters() []*donburi.Entry    { return append([]*donburi.Entry(nil), r.shooters...) }
func (r *Round) Sources() []*donburi.Entry     { return append([]*donburi.Entry(nil), r.sources...) }

// Terrain returns the altitude map of a golf round, or nil.
func (r *Round) Terrain() *noise.Field {
	return components.Terrain.Get(r.terrain).Field
}

// Archive returns the archived traces, oldest first.
func (r *Round) Archive() []*donburi.Entry {
	return append([]*donburi.Entry(nil), r.archived...)
}

// Scores returns each shooter's score by index.
func (r *Round) Scores() []int {
	scores := make([]int, len(r.shooters))
	for i, e := range r.shooters {
		scores[i] = components.Shooter.Get(e).Score
	}
	return scores
}

// ScoreBanner formats scores as "s0 | s1 | ...".
func ScoreBanner(scores []int) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, " | ")
}
