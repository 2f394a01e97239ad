package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/roster"
	"github.com/automoto/grailduel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

var (
	rosterSource systems.RosterSource
	rosterPath   string
)

// WatchRoster makes the menu reload the roster at path whenever src reports
// a change.
func WatchRoster(src systems.RosterSource, path string) {
	rosterSource = src
	rosterPath = path
}

// MenuScene displays the character-select menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createDuelScene := func(selections [2]roster.Selection, mute bool) interface{} {
		return NewDuelScene(ms.sceneChanger, selections, mute)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	if rosterSource != nil {
		ms.ecs.AddSystem(systems.NewUpdateRosterReload(rosterSource, rosterPath))
	}
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createDuelScene, ms.sceneChanger.Quit))
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	// Menu reset: fresh state with the remembered choices and mute flag
	prefs := systems.CurrentPreferences()
	systems.ResetMenu(ms.ecs, prefs.Selections, prefs.Muted)
	systems.SetMuted(ms.ecs, prefs.Muted)
}
