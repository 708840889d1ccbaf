package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound (bell)
const (
	EatSoundDuration           = 180 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 170 * time.Millisecond
	EatSoundOvertoneRelease    = 90 * time.Millisecond
	EatSoundFundamentalFreq    = 880.0
	EatSoundOvertoneFreq       = 1760.0
	EatSoundFundamentalLevel   = 0.7
	EatSoundOvertoneLevel      = 0.3
)

// Speed-Up Sound (two-note chime)
const (
	SpeedUpSoundNote1Duration = 80 * time.Millisecond
	SpeedUpSoundNote2Duration = 160 * time.Millisecond
	SpeedUpSoundAttack        = 3 * time.Millisecond
	SpeedUpSoundNote1Release  = 60 * time.Millisecond
	SpeedUpSoundNote2Release  = 140 * time.Millisecond
	SpeedUpSoundNote1Freq     = 987.77
	SpeedUpSoundNote2Freq     = 1318.51
)

// Crash Sound (harsh buzz)
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
	CrashSoundFreq     = 90.0
)
