package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fighter"
	"github.com/automoto/grailduel/roster"
	"github.com/automoto/grailduel/systems"
	"github.com/automoto/grailduel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DuelScene is the two-player arena
type DuelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	selections   [2]roster.Selection
	mute         bool
	once         sync.Once
}

// NewDuelScene creates a duel between the chosen classes
func NewDuelScene(sc SceneChanger, selections [2]roster.Selection, mute bool) *DuelScene {
	return &DuelScene{
		sceneChanger: sc,
		selections:   selections,
		mute:         mute,
	}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	ds.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ds.sceneChanger)
	}

	ds.ecs.AddSystem(systems.UpdateInput)
	ds.ecs.AddSystem(systems.NewUpdateDuel(ds.sceneChanger, createMenuScene))
	ds.ecs.AddSystem(systems.UpdateFighterInput)
	ds.ecs.AddSystem(systems.NewUpdateFighters(fighter.SinceStart()))
	ds.ecs.AddSystem(systems.UpdateAudio)

	ds.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	arenaEntry, err := factory.CreateArena(ds.ecs, cfg.Duel.Level)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	a := components.Arena.Get(arenaEntry).Arena

	for slot, sel := range ds.selections {
		spawn := factory.SpawnPoint(a, slot)
		factory.CreateServant(ds.ecs, slot, sel, spawn, systems.NewCues(ds.ecs, ds.mute))
	}
	factory.MarkMirrorMatch(ds.ecs)
}
