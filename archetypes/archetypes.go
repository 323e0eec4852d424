package archetypes

import (
	"github.com/automoto/trajectory/components"
	"github.com/automoto/trajectory/tags"
	"github.com/yohamta/donburi"
)

var (
	Shooter = newArchetype(
		tags.Shooter,
		components.Shooter,
		components.Body,
		components.Object,
	)
	GravitySource = newArchetype(
		tags.GravitySource,
		components.GravitySource,
		components.Body,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
	)
	Archived = newArchetype(
		tags.Archived,
		components.Archived,
	)
	Space = newArchetype(
		components.Space,
	)
	Terrain = newArchetype(
		components.Terrain,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
// It works on a bare world so the engine never needs an ecs.ECS.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
