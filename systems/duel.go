package systems

import (
	cfg "github.com/automoto/grailduel/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateDuel handles scene-level duel input: Escape returns to the menu
// and F3 toggles the shape overlay.
func NewUpdateDuel(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionToggleShapes).JustPressed {
			cfg.Debug.ShowShapes = !cfg.Debug.ShowShapes
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			UpdateAudio(e)
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}
