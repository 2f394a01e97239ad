package components

import (
	cfg "github.com/automoto/grailduel/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// menu and scene actions. JustPressed/JustReleased are computed on demand.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// FighterInputData stores the pressed state of one servant's four keys, in
// Up, Down, Left, Right order.
type FighterInputData struct {
	Bindings cfg.PlayerBindings
	Current  [4]bool
	Previous [4]bool
}

var FighterInput = donburi.NewComponentType[FighterInputData]()
