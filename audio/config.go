package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/termsnake/constant"
)

// Environment overrides
const (
	EnvAudioEnabled  = "SNAKE_AUDIO_ENABLED"
	EnvMasterVolume  = "SNAKE_MASTER_VOLUME"
	EnvEffectVolumes = "SNAKE_SFX_VOLUMES"
	EnvSampleRate    = "SNAKE_SAMPLE_RATE"
)

// effectNames maps SNAKE_SFX_VOLUMES keys to sound types
var effectNames = map[string]SoundType{
	"eat":     SoundEat,
	"speedup": SoundSpeedUp,
	"crash":   SoundCrash,
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEat:     1.0,
			SoundSpeedUp: 0.6,
			SoundCrash:   0.8,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if effectVols := os.Getenv(EnvEffectVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, vol := range volumes {
				if st, ok := effectNames[name]; ok {
					cfg.EffectVolumes[st] = vol
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
