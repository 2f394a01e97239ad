package systems

import (
	"testing"
	"time"

	"github.com/automoto/grailduel/archetypes"
	"github.com/automoto/grailduel/arena"
	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fighter"
	"github.com/automoto/grailduel/roster"
	"github.com/automoto/grailduel/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spawnServant adds a servant without sprites.
func spawnServant(e *ecs.ECS, slot int, sel roster.Selection, x, y float64, cues fighter.Cues) *donburi.Entry {
	class := factory.ClassOf(sel)
	bindings := cfg.Input.Players[slot]

	entry := archetypes.Servant.Spawn(e)
	components.Fighter.SetValue(entry, components.FighterData{
		Player:    fighter.NewPlayer(factory.ServantParams(class, arena.Spawn{X: x, Y: y}, bindings.Fighter(), cues)),
		Slot:      slot,
		Selection: sel,
		Class:     class,
	})
	components.FighterInput.SetValue(entry, components.FighterInputData{Bindings: bindings})
	return entry
}

func addFloor(e *ecs.ECS) *arena.Arena {
	a := arena.New("test", 960, 544, []fighter.Shape{{X: 0, Y: 480, W: 960, H: 64}}, nil)
	entry := archetypes.Arena.Spawn(e)
	components.Arena.SetValue(entry, components.ArenaData{Arena: a})
	return a
}

func fixedClock(d *time.Duration) fighter.Clock {
	return func() time.Duration { return *d }
}

func TestUpdateFightersLandsOnFloor(t *testing.T) {
	e := newTestECS()
	addFloor(e)
	entry := spawnServant(e, 0, roster.Saber, 400, 200, nil)
	f := components.Fighter.Get(entry)

	var now time.Duration
	update := NewUpdateFighters(fixedClock(&now))
	for i := 0; i < 200; i++ {
		now += time.Second / 60
		update(e)
	}

	assert.False(t, f.Physics.Falling)
	assert.LessOrEqual(t, f.Body().Bottom(), 480.0)
	assert.InDelta(t, 480.0, f.Body().Bottom(), 1)
	assert.NoError(t, f.LastError)
}

func TestUpdateFightersWithoutArenaDoesNothing(t *testing.T) {
	e := newTestECS()
	entry := spawnServant(e, 0, roster.Saber, 400, 200, nil)
	before := components.Fighter.Get(entry).Body()

	var now time.Duration
	NewUpdateFighters(fixedClock(&now))(e)
	assert.Equal(t, before, components.Fighter.Get(entry).Body())
}

func TestUpdateFightersRecordsUnresolvedOverlap(t *testing.T) {
	e := newTestECS()
	a := arena.New("box", 960, 544, []fighter.Shape{{X: 0, Y: 0, W: 960, H: 544}}, nil)
	components.Arena.SetValue(archetypes.Arena.Spawn(e), components.ArenaData{Arena: a})
	entry := spawnServant(e, 0, roster.Saber, 400, 200, nil)
	components.Fighter.Get(entry).HandleKeyDown(fighter.Key(cfg.Input.Players[0].Left))

	var now time.Duration
	NewUpdateFighters(fixedClock(&now))(e)

	assert.ErrorIs(t, components.Fighter.Get(entry).LastError, fighter.ErrUnresolvedOverlap)
}

func TestUpdateFighterInputDeliversEdges(t *testing.T) {
	kb := useKeyboard(t)
	e := newTestECS()
	addFloor(e)
	p1 := spawnServant(e, 0, roster.Saber, 400, 420, nil)
	p2 := spawnServant(e, 1, roster.Archer, 100, 418, nil)
	f1 := components.Fighter.Get(p1)
	f2 := components.Fighter.Get(p2)

	kb[cfg.Input.Players[0].Left] = true
	UpdateFighterInput(e)
	assert.Equal(t, []fighter.Direction{fighter.Left}, f1.Held())
	assert.Empty(t, f2.Held(), "player 2 does not react to arrows")

	// holding is not a second press
	UpdateFighterInput(e)
	assert.Equal(t, []fighter.Direction{fighter.Left}, f1.Held())

	kb[cfg.Input.Players[0].Right] = true
	UpdateFighterInput(e)
	assert.Equal(t, []fighter.Direction{fighter.Left, fighter.Right}, f1.Held())

	kb[cfg.Input.Players[0].Right] = false
	UpdateFighterInput(e)
	assert.Equal(t, []fighter.Direction{fighter.Left}, f1.Held())
	assert.Equal(t, fighter.Left, f1.Direction())

	kb[cfg.Input.Players[1].Right] = true
	UpdateFighterInput(e)
	assert.Equal(t, []fighter.Direction{fighter.Right}, f2.Held())
}

func TestUpdateFighterInputJumpAndAttack(t *testing.T) {
	kb := useKeyboard(t)
	e := newTestECS()
	entry := spawnServant(e, 1, roster.Archer, 100, 100, nil)
	f := components.Fighter.Get(entry)
	f.Physics.Falling = false

	kb[cfg.Input.Players[1].Down] = true
	UpdateFighterInput(e)
	assert.True(t, f.Attacking())

	kb[cfg.Input.Players[1].Up] = true
	UpdateFighterInput(e)
	assert.True(t, f.Physics.Falling)
	assert.Equal(t, factory.ClassOf(roster.Archer).JumpImpulse, f.Physics.VerticalVelocity)
}

func TestMarkMirrorMatch(t *testing.T) {
	e := newTestECS()
	a := spawnServant(e, 0, roster.Caster, 0, 0, nil)
	b := spawnServant(e, 1, roster.Caster, 100, 0, nil)

	factory.MarkMirrorMatch(e)
	assert.False(t, components.Fighter.Get(a).Mirror)
	assert.True(t, components.Fighter.Get(b).Mirror)

	e = newTestECS()
	spawnServant(e, 0, roster.Caster, 0, 0, nil)
	c := spawnServant(e, 1, roster.Saber, 100, 0, nil)
	factory.MarkMirrorMatch(e)
	assert.False(t, components.Fighter.Get(c).Mirror)
}

func TestServantParamsUsesClassAndConfig(t *testing.T) {
	class := factory.ClassOf(roster.Assassin)
	p := factory.ServantParams(class, arena.Spawn{X: 10, Y: 20}, cfg.Input.Players[0].Fighter(), nil)

	require.Equal(t, class.Speed, p.Speed)
	assert.Equal(t, cfg.Physics.Gravity, p.Gravity)
	assert.Equal(t, 10.0, p.Body.X)
	assert.Equal(t, 20.0, p.Body.Y)
	assert.Equal(t, float64(class.Body.W), p.Body.W)
	assert.Equal(t, len(class.Frames.Walk.Cells), p.Frames[fighter.Walk])
	assert.Equal(t, cfg.Animation.FPS, p.AnimateFPS)
}
