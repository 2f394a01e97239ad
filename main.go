package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/grailduel/assets"
	"github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fonts"
	"github.com/automoto/grailduel/roster"
	"github.com/automoto/grailduel/scenes"
	"github.com/automoto/grailduel/systems"
	"github.com/automoto/grailduel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current tick
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.Menu.TitleFontSize, config.Menu.ItemFontSize, config.Menu.HintFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		prefs := systems.CurrentPreferences()
		g.scene = scenes.NewDuelScene(g, prefs.Selections, prefs.Muted)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	mute := flag.Bool("mute", false, "Start with sound switched off")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "Skip the menu and start a duel with the remembered choices")
	flag.BoolVar(&config.Debug.ShowShapes, "debug", false, "Outline collision shapes (F3 toggles in a duel)")
	flag.StringVar(&config.Paths.Roster, "roster", "", "Roster YAML file overriding the built-in classes")
	flag.BoolVar(&config.Paths.WatchRoster, "watch", false, "Reload the -roster file when it changes")
	flag.StringVar(&config.Paths.Assets, "assets", "", "Directory with sprites, soundfx and music")
	flag.Parse()

	if config.Paths.Assets != "" {
		assets.SetSource(os.DirFS(config.Paths.Assets))
	}

	if config.Paths.Roster != "" {
		r, err := roster.LoadFile(config.Paths.Roster)
		if err != nil {
			log.Fatalf("Failed to load roster: %v", err)
		}
		factory.UseRoster(r)
		log.Printf("Loaded roster from %s", config.Paths.Roster)

		if config.Paths.WatchRoster {
			w, err := roster.NewWatcher(config.Paths.Roster)
			if err != nil {
				log.Printf("Warning: Could not watch roster: %v", err)
			} else {
				defer w.Close()
				scenes.WatchRoster(w, config.Paths.Roster)
			}
		}
	} else if config.Paths.WatchRoster {
		log.Printf("Warning: -watch needs -roster")
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	prefs := systems.LoadPreferences()
	if *mute {
		prefs.Muted = true
		systems.SetPreferences(prefs)
	}
	if !prefs.Muted {
		systems.PreloadAllSFX()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
