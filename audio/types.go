package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat     SoundType = iota // Food eaten
	SoundSpeedUp                  // Speed level gained
	SoundCrash                    // Wall or self collision
	soundTypeCount
)

// Player plays one-shot sound cues without blocking the caller
type Player interface {
	Play(sound SoundType)
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}
