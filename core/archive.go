package core

import (
	"github.com/automoto/trajectory/archetypes"
	"github.com/automoto/trajectory/components"
	"github.com/yohamta/donburi"
)

// archive freezes a finished projectile into an archived trace and removes
// the projectile from the world.
func (r *Round) archive(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	body := components.Body.Get(e)

	a := archetypes.Archived.Spawn(r.world)
	components.Archived.SetValue(a, components.ArchivedData{
		Points:  p.Trail.Points(),
		Origin:  p.Origin,
		Owner:   p.Owner,
		Outcome: p.State,
		Color:   body.Color,
		Fade:    1,
	})
	r.archived = append(r.archived, a)
	r.world.Remove(e.Entity())
}

// fadeArchive scales the fade of every archived trace.
func (r *Round) fadeArchive(factor float64) {
	for _, e := range r.archived {
		components.Archived.Get(e).Fade *= factor
	}
}

func (r *Round) clearArchive() {
	for _, e := range r.archived {
		r.world.Remove(e.Entity())
	}
	r.archived = r.archived[:0]
}
