package config

import (
	"github.com/automoto/grailduel/fighter"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical menu or scene action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionMute
	ActionToggleShapes
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// PlayerBindings are the four servant keys of one player slot
type PlayerBindings struct {
	Up, Down, Left, Right ebiten.Key
}

// Fighter converts the bindings to the servant's key codes.
func (b PlayerBindings) Fighter() fighter.KeyBindings {
	return fighter.KeyBindings{
		Up:    fighter.Key(b.Up),
		Down:  fighter.Key(b.Down),
		Left:  fighter.Key(b.Left),
		Right: fighter.Key(b.Right),
	}
}

// Keys lists the bound keys.
func (b PlayerBindings) Keys() []ebiten.Key {
	return []ebiten.Key{b.Up, b.Down, b.Left, b.Right}
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	Players  [2]PlayerBindings
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp:       {Keys: []ebiten.Key{ebiten.KeyUp}},
			ActionMenuDown:     {Keys: []ebiten.Key{ebiten.KeyDown}},
			ActionMenuLeft:     {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionMenuRight:    {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionMenuSelect:   {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
			ActionMenuBack:     {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionMute:         {Keys: []ebiten.Key{ebiten.KeyM}},
			ActionToggleShapes: {Keys: []ebiten.Key{ebiten.KeyF3}},
		},
		Players: [2]PlayerBindings{
			{Up: ebiten.KeyUp, Down: ebiten.KeyDown, Left: ebiten.KeyLeft, Right: ebiten.KeyRight},
			{Up: ebiten.KeyW, Down: ebiten.KeyS, Left: ebiten.KeyA, Right: ebiten.KeyD},
		},
	}
}
