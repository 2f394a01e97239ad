package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PhysicsConfig contains the shared servant physics values
type PhysicsConfig struct {
	Gravity     float64
	JumpImpulse float64 // default when a roster entry leaves it unset

	// Lower bound on pixel-step corrections per axis per tick. The actual
	// limit grows with the velocity and the body size.
	MinCorrectionSteps int
}

// AnimationConfig contains servant animation timing
type AnimationConfig struct {
	FPS          float64
	LandingFrame int // walk frame shown on the tick a jump ends
}

// MenuConfig contains character-select menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	HintColor         color.RGBA
	Title             string
	Hint              string
	TitleFontSize     float64
	ItemFontSize      float64
	HintFontSize      float64
	TitleOffsetY      float64 // from screen centre
	ItemStartOffsetY  float64 // first entry, from screen centre
	ItemGap           float64
	SelectionX        float64 // left edge of the player selection entries
	BackgroundImage   string
	DecorationImage   string
	PulseSeconds      float32
	PulseMinAlpha     float32
}

// SpawnConfig is the default spawn point and bindings of one player slot
type SpawnConfig struct {
	X, Y float64
}

// DuelConfig contains the two-player arena scene configuration
type DuelConfig struct {
	Level           string
	ArenaColor      color.RGBA
	BackgroundColor color.RGBA
	Spawns          [2]SpawnConfig
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to the duel
	ShowShapes  bool // Outline body and attack shapes
	BodyColor   color.RGBA
	AttackLeft  color.RGBA
	AttackRight color.RGBA
}

// PathsConfig locates optional on-disk data
type PathsConfig struct {
	Assets      string // sprites and sound; empty uses generated placeholders
	Roster      string // roster override; empty uses the built-in roster
	WatchRoster bool
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Animation AnimationConfig
var Menu MenuConfig
var Duel DuelConfig
var Debug DebugConfig
var Paths PathsConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGrey  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Magenta    = color.RGBA{R: 200, G: 0, B: 200, A: 255}
	Periwinkle = color.RGBA{R: 150, G: 150, B: 250, A: 255}
	NightBlue  = color.RGBA{R: 12, G: 16, B: 40, A: 255}
	Stone      = color.RGBA{R: 70, G: 66, B: 80, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Fate/Stay Night Game",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:            0.5,
		JumpImpulse:        -13,
		MinCorrectionSteps: 64,
	}

	Animation = AnimationConfig{
		FPS:          10,
		LandingFrame: 2,
	}

	Menu = MenuConfig{
		BackgroundColor:   Grey,
		TitleColor:        Periwinkle,
		TextColorNormal:   LightGrey,
		TextColorSelected: Magenta,
		HintColor:         LightGrey,
		Title:             "Fate/Stay Night Game",
		Hint:              "Arrow keys to navigate, ENTER to toggle",
		TitleFontSize:     50,
		ItemFontSize:      24,
		HintFontSize:      16,
		TitleOffsetY:      -30,
		ItemStartOffsetY:  30,
		ItemGap:           30,
		SelectionX:        250,
		BackgroundImage:   "sprites/night.png",
		DecorationImage:   "sprites/excalibur.png",
		PulseSeconds:      0.6,
		PulseMinAlpha:     0.45,
	}

	Duel = DuelConfig{
		Level:           "moonlit_courtyard",
		ArenaColor:      Stone,
		BackgroundColor: NightBlue,
		Spawns: [2]SpawnConfig{
			{X: 800, Y: 200},
			{X: 200, Y: 200},
		},
	}

	Debug = DebugConfig{
		SkipMenu:    false,
		ShowShapes:  false,
		BodyColor:   Green,
		AttackLeft:  Red,
		AttackRight: Blue,
	}
}
