package factory

import (
	"fmt"
	"sync"

	"github.com/automoto/grailduel/archetypes"
	"github.com/automoto/grailduel/arena"
	"github.com/automoto/grailduel/assets"
	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fighter"
	"github.com/automoto/grailduel/roster"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	rosterMu sync.RWMutex
	servants = roster.Default()
)

// UseRoster replaces the classes new servants are built from. Servants
// already in a duel keep their stats.
func UseRoster(r *roster.Roster) {
	rosterMu.Lock()
	servants = r
	rosterMu.Unlock()
	assets.ForgetFrames()
}

// ClassOf returns the current class of a selection.
func ClassOf(sel roster.Selection) roster.Class {
	rosterMu.RLock()
	defer rosterMu.RUnlock()
	return servants.Class(sel)
}

// ServantParams builds the movement parameters of a class standing with its
// body's top-left corner at spawn.
func ServantParams(class roster.Class, spawn arena.Spawn, keys fighter.KeyBindings, cues fighter.Cues) fighter.Params {
	body, left, right := class.Shapes(spawn.X, spawn.Y)

	jump := class.JumpImpulse
	if jump == 0 {
		jump = cfg.Physics.JumpImpulse
	}

	return fighter.Params{
		Speed:              class.Speed,
		JumpImpulse:        jump,
		Gravity:            cfg.Physics.Gravity,
		Body:               body,
		AttackLeft:         left,
		AttackRight:        right,
		Frames:             class.Frames.Counts(),
		AnimateFPS:         cfg.Animation.FPS,
		LandingFrame:       cfg.Animation.LandingFrame,
		Keys:               keys,
		Cues:               cues,
		MinCorrectionSteps: cfg.Physics.MinCorrectionSteps,
	}
}

// CreateServant spawns the servant of one player slot. Slot 0 is player 1.
func CreateServant(ecs *ecs.ECS, slot int, sel roster.Selection, spawn arena.Spawn, cues fighter.Cues) *donburi.Entry {
	if slot < 0 || slot >= len(cfg.Input.Players) {
		panic(fmt.Sprintf("factory: no bindings for player slot %d", slot))
	}
	bindings := cfg.Input.Players[slot]
	class := ClassOf(sel)

	servant := archetypes.Servant.Spawn(ecs)
	components.Fighter.SetValue(servant, components.FighterData{
		Player:    fighter.NewPlayer(ServantParams(class, spawn, bindings.Fighter(), cues)),
		Slot:      slot,
		Selection: sel,
		Class:     class,
		Frames:    assets.Frames(class),
	})
	components.FighterInput.SetValue(servant, components.FighterInputData{
		Bindings: bindings,
	})
	return servant
}

// MarkMirrorMatch flags the second servant when both players chose the
// same class so it can be drawn apart from the first.
func MarkMirrorMatch(ecs *ecs.ECS) {
	var seen [2]*components.FighterData
	components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		if f.Slot >= 0 && f.Slot < len(seen) {
			seen[f.Slot] = f
		}
	})
	if seen[0] != nil && seen[1] != nil && seen[0].Selection == seen[1].Selection {
		seen[1].Mirror = true
	}
}
