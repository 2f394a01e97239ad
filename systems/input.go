package systems

import (
	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fighter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// keyPressed reads the keyboard. Tests replace it.
var keyPressed = ebiten.IsKeyPressed

// UpdateInput polls the keyboard and updates the menu/scene actions.
// Must run before any system reading actions.
// Keys already held when a scene starts do not count as presses.
func UpdateInput(ecs *ecs.ECS) {
	input, created := findOrCreateInput(ecs)
	if created {
		pollActions(input)
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	pollActions(input)
}

func pollActions(input *components.InputData) {
	input.Current = [cfg.ActionCount]bool{}
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if keyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	input, _ := findOrCreateInput(ecs)
	return input
}

func findOrCreateInput(ecs *ecs.ECS) (*components.InputData, bool) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry), !ok
}

// GetAction returns the temporal state of an action
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateFighterInput turns key edges into servant key events. Releases are
// delivered before presses so a quick direction swap lands on the new key.
func UpdateFighterInput(ecs *ecs.ECS) {
	components.FighterInput.Each(ecs.World, func(e *donburi.Entry) {
		input := components.FighterInput.Get(e)
		f := components.Fighter.Get(e)

		input.Previous = input.Current
		keys := input.Bindings.Keys()
		for i, key := range keys {
			input.Current[i] = keyPressed(key)
		}

		for i, key := range keys {
			if input.Previous[i] && !input.Current[i] {
				f.HandleKeyUp(fighter.Key(key))
			}
		}
		for i, key := range keys {
			if input.Current[i] && !input.Previous[i] {
				f.HandleKeyDown(fighter.Key(key))
			}
		}
	})
}
