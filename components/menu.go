package components

import (
	"github.com/automoto/grailduel/roster"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuEntry is the focused line of the character-select menu
type MenuEntry int

const (
	MenuPlay MenuEntry = iota
	MenuPlayer1
	MenuPlayer2
	MenuBack
)

// MenuOutcome records how the menu was left
type MenuOutcome int

const (
	MenuOpen MenuOutcome = iota
	MenuStartDuel
	MenuLeave
	MenuQuit
)

// MenuData stores the current state of the character-select menu
type MenuData struct {
	Entry      MenuEntry
	Selections [2]roster.Selection
	Mute       bool
	Outcome    MenuOutcome

	// Highlight pulse on the focused entry
	Pulse       *gween.Tween
	PulseAlpha  float32
	PulseRising bool
}

// Slot returns the player slot the focused entry edits.
func (m *MenuData) Slot() (int, bool) {
	switch m.Entry {
	case MenuPlayer1:
		return 0, true
	case MenuPlayer2:
		return 1, true
	}
	return 0, false
}

var Menu = donburi.NewComponentType[MenuData]()
