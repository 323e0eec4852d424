package core

import (
	"github.com/automoto/trajectory/components"
	"github.com/automoto/trajectory/shared/gamemath"
	"github.com/automoto/trajectory/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const collisionCellSize = 20

// spaceSpan rounds n up to whole cells. resolv only builds complete cells,
// so a partial last row or column would otherwise be unreachable.
func spaceSpan(n int) int {
	return (n + collisionCellSize - 1) / collisionCellSize * collisionCellSize
}

// collisionSpace wraps the resolv space used as the broad phase for
// projectile hits. Every disc is registered by its bounding box and the
// exact test runs against the disc itself.
type collisionSpace struct {
	space  *resolv.Space
	probe  *resolv.Object
	bounds Bounds
}

func newCollisionSpace(space *resolv.Space, bounds Bounds) *collisionSpace {
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	return &collisionSpace{space: space, probe: probe, bounds: bounds}
}

// addDisc registers e's body under tag and stores the object on e.
func (cs *collisionSpace) addDisc(e *donburi.Entry, tag string) {
	body := components.Body.Get(e)
	obj := resolv.NewObject(
		body.Position.X-body.Radius,
		body.Position.Y-body.Radius,
		2*body.Radius,
		2*body.Radius,
		tag,
	)
	obj.Data = e
	cs.space.Add(obj)
	components.Object.Set(e, &components.ObjectData{Object: obj})
}

func (cs *collisionSpace) remove(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	if obj := components.Object.Get(e); obj.Object != nil {
		cs.space.Remove(obj.Object)
	}
}

// candidates returns the entries whose boxes share a cell with pos.
func (cs *collisionSpace) candidates(pos dmath.Vec2, tag string) []*donburi.Entry {
	if !cs.bounds.Contains(pos) {
		return nil
	}
	cs.probe.X, cs.probe.Y = pos.X, pos.Y
	cs.probe.Update()
	check := cs.probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, obj := range check.Objects {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

func (cs *collisionSpace) ShooterAt(pos dmath.Vec2) (int, bool) {
	best := -1
	for _, e := range cs.candidates(pos, tags.ResolvShooter) {
		body := components.Body.Get(e)
		if !gamemath.WithinCircle(body.Position, body.Radius, pos) {
			continue
		}
		idx := components.Shooter.Get(e).Index
		if best < 0 || idx < best {
			best = idx
		}
	}
	return best, best >= 0
}

func (cs *collisionSpace) SourceAt(pos dmath.Vec2) bool {
	for _, e := range cs.candidates(pos, tags.ResolvSource) {
		body := components.Body.Get(e)
		if gamemath.WithinCircle(body.Position, body.Radius, pos) {
			return true
		}
	}
	return false
}
