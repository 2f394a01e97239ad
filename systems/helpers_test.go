package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeKeyboard replaces the keyboard for the duration of a test.
type fakeKeyboard map[ebiten.Key]bool

func useKeyboard(t *testing.T) fakeKeyboard {
	t.Helper()
	kb := fakeKeyboard{}
	prev := keyPressed
	keyPressed = func(k ebiten.Key) bool { return kb[k] }
	t.Cleanup(func() { keyPressed = prev })
	return kb
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// memStore is an in-memory gdata stand-in.
type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func useStore(t *testing.T, s itemStore) {
	t.Helper()
	prevStore, prevPref := store, currentPref
	store = s
	t.Cleanup(func() {
		store = prevStore
		currentPref = prevPref
	})
}
