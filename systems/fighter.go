package systems

import (
	"errors"
	"log"

	"github.com/automoto/grailduel/components"
	"github.com/automoto/grailduel/fighter"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateFighters advances every servant one tick against the arena.
// Animation timing reads clock.
func NewUpdateFighters(clock fighter.Clock) ecs.System {
	return func(ecs *ecs.ECS) {
		arenaEntry, ok := components.Arena.First(ecs.World)
		if !ok {
			return
		}
		obstacles := components.Arena.Get(arenaEntry).Arena
		now := clock()

		components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
			f := components.Fighter.Get(e)
			err := f.Update(now, obstacles)
			if err != nil && !errors.Is(f.LastError, fighter.ErrUnresolvedOverlap) {
				log.Printf("Warning: player %d (%s): %v", f.Slot+1, f.Selection, err)
			}
			f.LastError = err
		})
	}
}
