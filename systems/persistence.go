package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/grailduel/roster"
	"github.com/quasilyte/gdata"
)

// SavedPreferences represents the preferences stored on disk
type SavedPreferences struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Muted   bool   `json:"muted"`
}

// Preferences are the remembered menu choices
type Preferences struct {
	Selections [2]roster.Selection
	Muted      bool
}

const preferencesKey = "preferences"

// itemStore is the part of gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var (
	store       itemStore
	currentPref = Preferences{Selections: DefaultSelections}
)

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "grailduel",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// CurrentPreferences returns the preferences in effect
func CurrentPreferences() Preferences {
	return currentPref
}

// SetPreferences overrides the preferences in effect without saving them
func SetPreferences(p Preferences) {
	currentPref = p
}

// LoadPreferences reads saved preferences and makes them current. Missing or
// unreadable data leaves the defaults in place.
func LoadPreferences() Preferences {
	if store == nil {
		return currentPref
	}

	data, err := store.LoadItem(preferencesKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return currentPref
	}
	if len(data) == 0 {
		return currentPref
	}

	var saved SavedPreferences
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return currentPref
	}

	prefs := Preferences{Selections: DefaultSelections, Muted: saved.Muted}
	for i, name := range []string{saved.Player1, saved.Player2} {
		if sel, err := roster.ParseSelection(name); err == nil {
			prefs.Selections[i] = sel
		}
	}
	currentPref = prefs
	return prefs
}

// SavePreferences remembers the given choices and writes them to disk
func SavePreferences(selections [2]roster.Selection, muted bool) {
	currentPref = Preferences{Selections: selections, Muted: muted}
	if store == nil {
		return
	}

	data, err := json.Marshal(SavedPreferences{
		Player1: selections[0].String(),
		Player2: selections[1].String(),
		Muted:   muted,
	})
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return
	}
	if err := store.SaveItem(preferencesKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
	}
}
