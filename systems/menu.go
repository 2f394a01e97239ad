package systems

import (
	"image/color"

	"github.com/automoto/grailduel/archetypes"
	"github.com/automoto/grailduel/assets"
	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fonts"
	"github.com/automoto/grailduel/roster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// DuelSceneCreator builds the duel for the chosen classes
type DuelSceneCreator func(selections [2]roster.Selection, mute bool) interface{}

// DefaultSelections are the classes the menu starts on before any choice
// has been remembered.
var DefaultSelections = [2]roster.Selection{roster.Saber, roster.Archer}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// quit is called when the player leaves the menu without starting a duel.
func NewUpdateMenu(sceneChanger SceneChanger, createDuelScene DuelSceneCreator, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		for _, sound := range StepMenu(menu, input) {
			PlaySFX(e, sound)
		}
		if GetAction(input, cfg.ActionMute).JustPressed {
			menu.Mute = !menu.Mute
			SetMuted(e, menu.Mute)
			SavePreferences(menu.Selections, menu.Mute)
		}
		if !menu.Mute {
			PlayMusic(e, cfg.Sound.MenuMusic)
		}
		updatePulse(menu)

		switch menu.Outcome {
		case components.MenuStartDuel:
			SavePreferences(menu.Selections, menu.Mute)
			UpdateAudio(e)
			sceneChanger.ChangeScene(createDuelScene(menu.Selections, menu.Mute))
		case components.MenuLeave, components.MenuQuit:
			UpdateAudio(e)
			quit()
		}
	}
}

// StepMenu applies one tick of menu input and returns the sounds it
// triggers. Only the first matching action counts, in the order Escape,
// Up, Down, Enter, Right, Left. Sounds are dropped when the menu is muted.
func StepMenu(menu *components.MenuData, input *components.InputData) []cfg.SoundID {
	if menu.Outcome != components.MenuOpen {
		return nil
	}

	var sounds []cfg.SoundID
	play := func(ids ...cfg.SoundID) {
		if !menu.Mute {
			sounds = append(sounds, ids...)
		}
	}

	switch {
	case GetAction(input, cfg.ActionMenuBack).JustPressed:
		menu.Outcome = components.MenuQuit

	case GetAction(input, cfg.ActionMenuUp).JustPressed:
		if menu.Entry != components.MenuPlay {
			menu.Entry--
			play(cfg.SoundMenuSwitch)
		}

	case GetAction(input, cfg.ActionMenuDown).JustPressed:
		if menu.Entry != components.MenuBack {
			menu.Entry++
			play(cfg.SoundMenuSwitch)
		}

	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		switch menu.Entry {
		case components.MenuPlay:
			menu.Outcome = components.MenuStartDuel
			play(cfg.SoundMenuSwitch, cfg.SoundMenuSelect)
		case components.MenuBack:
			menu.Outcome = components.MenuLeave
			play(cfg.SoundMenuSwitch)
		}

	case GetAction(input, cfg.ActionMenuRight).JustPressed:
		if slot, ok := menu.Slot(); ok {
			if next := menu.Selections[slot].Next(); next != menu.Selections[slot] {
				menu.Selections[slot] = next
				play(cfg.SoundMenuSwitch)
			}
		}

	case GetAction(input, cfg.ActionMenuLeft).JustPressed:
		if slot, ok := menu.Slot(); ok {
			if prev := menu.Selections[slot].Prev(); prev != menu.Selections[slot] {
				menu.Selections[slot] = prev
				play(cfg.SoundMenuSwitch)
			}
		}
	}
	return sounds
}

// ResetMenu puts a fresh menu into the world, keeping the mute flag.
func ResetMenu(e *ecs.ECS, selections [2]roster.Selection, mute bool) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = archetypes.Menu.Spawn(e)
	}
	components.Menu.SetValue(entry, components.MenuData{
		Entry:       components.MenuPlay,
		Selections:  selections,
		Mute:        mute,
		Outcome:     components.MenuOpen,
		Pulse:       newPulse(true),
		PulseAlpha:  cfg.Menu.PulseMinAlpha,
		PulseRising: true,
	})
	return components.Menu.Get(entry)
}

// GetOrCreateMenu returns the menu state, creating it from the remembered
// preferences if needed.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}
	prefs := CurrentPreferences()
	return ResetMenu(e, prefs.Selections, prefs.Muted)
}

func newPulse(rising bool) *gween.Tween {
	from, to := cfg.Menu.PulseMinAlpha, float32(1)
	if !rising {
		from, to = to, from
	}
	return gween.New(from, to, cfg.Menu.PulseSeconds, ease.InOutSine)
}

// updatePulse ping-pongs the highlight alpha of the focused entry.
func updatePulse(menu *components.MenuData) {
	if menu.Pulse == nil {
		menu.Pulse = newPulse(true)
		menu.PulseRising = true
	}
	alpha, done := menu.Pulse.Update(1 / float32(cfg.C.TPS))
	menu.PulseAlpha = alpha
	if done {
		menu.PulseRising = !menu.PulseRising
		menu.Pulse = newPulse(menu.PulseRising)
	}
}

// DrawMenu renders the character-select screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	centerX, centerY := width/2, height/2

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)
	if bg, ok := assets.Image(cfg.Menu.BackgroundImage); ok {
		screen.DrawImage(bg, nil)
	}
	if deco, ok := assets.Image(cfg.Menu.DecorationImage); ok {
		screen.DrawImage(deco, nil)
	}

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), centerX, centerY+cfg.Menu.TitleOffsetY, cfg.Menu.TitleColor)

	itemFont := fonts.Item.Get()
	for i, label := range MenuLabels(menu) {
		entry := components.MenuEntry(i)
		y := centerY + cfg.Menu.ItemStartOffsetY + float64(i)*cfg.Menu.ItemGap
		clr := entryColor(menu, entry)

		switch entry {
		case components.MenuPlayer1, components.MenuPlayer2:
			drawMiddleLeft(screen, label, itemFont, cfg.Menu.SelectionX, y, clr)
		default:
			drawCentered(screen, label, itemFont, centerX, y, clr)
		}
	}

	hintFont := fonts.Hint.Get()
	b := text.BoundString(hintFont, cfg.Menu.Hint)
	text.Draw(screen, cfg.Menu.Hint, hintFont, int(width)-b.Max.X-4, int(height)-b.Max.Y-4, cfg.Menu.HintColor)
}

// MenuLabels returns the text of every entry in display order.
func MenuLabels(menu *components.MenuData) []string {
	return []string{
		"Play",
		"Player 1 selection: " + menu.Selections[0].String(),
		"Player 2 selection: " + menu.Selections[1].String(),
		"Back",
	}
}

func entryColor(menu *components.MenuData, entry components.MenuEntry) color.Color {
	if entry != menu.Entry {
		return cfg.Menu.TextColorNormal
	}
	c := cfg.Menu.TextColorSelected
	a := menu.PulseAlpha
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
