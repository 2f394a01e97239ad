package systems

import (
	"log"

	"github.com/automoto/grailduel/roster"
	"github.com/automoto/grailduel/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// RosterSource reports roster file changes without blocking.
type RosterSource interface {
	Poll() (changed bool, err error)
}

// NewUpdateRosterReload reloads the roster file whenever src reports a
// change. A broken file is logged and the previous roster stays in use.
func NewUpdateRosterReload(src RosterSource, path string) ecs.System {
	return func(e *ecs.ECS) {
		ReloadRoster(src, path)
	}
}

// ReloadRoster applies a pending roster change and reports whether the
// roster was replaced.
func ReloadRoster(src RosterSource, path string) bool {
	if src == nil {
		return false
	}
	changed, err := src.Poll()
	if err != nil {
		log.Printf("Warning: roster watcher: %v", err)
	}
	if !changed {
		return false
	}

	r, err := roster.LoadFile(path)
	if err != nil {
		log.Printf("Warning: keeping previous roster: %v", err)
		return false
	}
	factory.UseRoster(r)
	log.Printf("Reloaded roster from %s", path)
	return true
}
