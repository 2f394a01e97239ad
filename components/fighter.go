package components

import (
	"github.com/automoto/grailduel/assets"
	"github.com/automoto/grailduel/fighter"
	"github.com/automoto/grailduel/roster"
	"github.com/yohamta/donburi"
)

// FighterData wraps a servant's movement core with what the ECS needs to
// draw it.
type FighterData struct {
	*fighter.Player
	Slot      int
	Selection roster.Selection
	Class     roster.Class
	Frames    assets.ServantFrames
	Mirror    bool // same class as the other slot, drawn tinted
	LastError error
}

var Fighter = donburi.NewComponentType[FighterData]()
