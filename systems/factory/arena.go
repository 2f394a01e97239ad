package factory

import (
	"fmt"
	"log"

	"github.com/automoto/grailduel/archetypes"
	"github.com/automoto/grailduel/arena"
	"github.com/automoto/grailduel/assets"
	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena loads the named level and adds it to the world.
func CreateArena(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	arenas, names, err := assets.LoadArenas()
	if err != nil {
		return nil, err
	}

	a, ok := arenas[name]
	if !ok {
		if len(names) == 0 {
			return nil, fmt.Errorf("no arenas bundled")
		}
		log.Printf("Warning: arena %q not found, using %q", name, names[0])
		a = arenas[names[0]]
	}

	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: a})
	return entry, nil
}

// SpawnPoint returns where a player slot enters the arena: the level's
// spawn object if it has one, otherwise the configured default.
func SpawnPoint(a *arena.Arena, slot int) arena.Spawn {
	if s, ok := a.Spawn(slot); ok {
		return s
	}
	d := cfg.Duel.Spawns[slot]
	return arena.Spawn{X: d.X, Y: d.Y, Index: slot}
}
