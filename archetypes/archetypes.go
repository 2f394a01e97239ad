package archetypes

import (
	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Servant = newArchetype(
		tags.Servant,
		components.Fighter,
		components.FighterInput,
	)
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
	)
	Menu = newArchetype(
		tags.Menu,
		components.Menu,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
