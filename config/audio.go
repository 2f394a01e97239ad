package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundLand
	SoundSwoosh
	SoundMenuSwitch
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	Mute            bool
}

// SoundConfig maps sound IDs to file paths inside the assets directory
type SoundConfig struct {
	MenuMusic         string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		MenuMusic: "music/theme.ogg",
		SFXPaths: map[SoundID]string{
			SoundLand:       "soundfx/land.wav",
			SoundSwoosh:     "soundfx/swoosh.wav",
			SoundMenuSwitch: "soundfx/menu_switch.wav",
			SoundMenuSelect: "soundfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundLand: 0.7,
		},
	}
}
