package systems

import (
	"errors"
	"log"
	"sync"

	"github.com/automoto/grailduel/assets"
	"github.com/automoto/grailduel/components"
	cfg "github.com/automoto/grailduel/config"
	"github.com/automoto/grailduel/fighter"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	missingAudio       = map[string]bool{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			warnMissingAudio(path, err)
		}
	}
}

// warnMissingAudio logs an unplayable sound once. Without an assets
// directory the game is silent by choice and nothing is logged.
func warnMissingAudio(path string, err error) {
	if errors.Is(err, assets.ErrNoSource) || missingAudio[path] {
		return
	}
	missingAudio[path] = true
	log.Printf("Warning: %v", err)
}

// UpdateAudio plays the sound effects queued this tick
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		warnMissingAudio(path, err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts looping the given track unless it is already playing
func PlayMusic(e *ecs.ECS, musicPath string) {
	if globalMuted || globalMusicKey == musicPath {
		return
	}
	initGlobalAudio()

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		warnMissingAudio(musicPath, err)
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
}

// SetMuted silences or restores every sound. Muting also stops the music
// and swaps the cue sink of every servant in e.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	if muted {
		StopMusic(e)
	}
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		components.Fighter.Get(entry).SetCues(NewCues(e, muted))
	})
}

// Muted reports whether sound is switched off.
func Muted() bool {
	return globalMuted
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// CueSink turns servant cues into queued sound effects.
type CueSink struct {
	ecs *ecs.ECS
}

var _ fighter.Cues = (*CueSink)(nil)

// NewCues returns the cue sink for a servant. A muted servant gets
// fighter.NoCues.
func NewCues(e *ecs.ECS, mute bool) fighter.Cues {
	if mute {
		return fighter.NoCues{}
	}
	return &CueSink{ecs: e}
}

var cueSounds = map[fighter.CueID]cfg.SoundID{
	fighter.CueLanded: cfg.SoundLand,
	fighter.CueSwoosh: cfg.SoundSwoosh,
}

func (c *CueSink) Cue(id fighter.CueID) {
	if sound, ok := cueSounds[id]; ok {
		PlaySFX(c.ecs, sound)
	}
}
