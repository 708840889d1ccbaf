package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/termsnake/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator emits a fixed-length mono tone duplicated on both channels
type oscillator struct {
	step      float64 // phase increment per sample, in cycles
	phase     float64
	remaining int
	sample    func(phase float64) float64
}

// NewOscillator creates a tone of the given shape lasting duration
// freq is ignored for WaveNoise
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		step:      freq / float64(rate),
		remaining: rate.N(duration),
		sample:    waveform(wave),
	}
}

// waveform returns the sample function for one cycle with phase in [0, 1)
func waveform(wave WaveType) func(float64) float64 {
	switch wave {
	case WaveSquare:
		return func(p float64) float64 {
			if p < 0.5 {
				return 1
			}
			return -1
		}
	case WaveSaw:
		return func(p float64) float64 { return 2*p - 1 }
	case WaveNoise:
		return func(float64) float64 { return rand.Float64()*2 - 1 }
	default:
		return func(p float64) float64 { return math.Sin(2 * math.Pi * p) }
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), o.remaining)
	for i := 0; i < n; i++ {
		v := o.sample(o.phase)
		samples[i] = [2]float64{v, v}
		_, o.phase = math.Modf(o.phase + o.step)
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope scales a stream by a linear attack ramp, flat sustain and linear release
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int // first sample of the release ramp
	total    int
}

// NewEnvelope shapes s over duration; the stream is cut at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := max(total-rate.N(release), att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

// gain returns the envelope level at sample pos
func (e *envelope) gain(pos int) float64 {
	switch {
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	case pos >= e.release:
		return float64(e.total-pos) / float64(e.total-e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	left := e.total - e.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; math.Log2(0) is -Inf so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateEatSound generates a short bell for eating food
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(constant.EatSoundFundamentalFreq, constant.EatSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constant.EatSoundDuration, constant.EatSoundAttack, constant.EatSoundFundamentalRelease, rate)

	over := NewOscillator(constant.EatSoundOvertoneFreq, constant.EatSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constant.EatSoundDuration, constant.EatSoundAttack, constant.EatSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, constant.EatSoundFundamentalLevel),
		newVolume(overShaped, constant.EatSoundOvertoneLevel),
	)
	return newVolume(mixed, effectVolume(cfg, SoundEat))
}

// CreateSpeedUpSound generates a rising two-note chime for a speed level gain
func CreateSpeedUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constant.SpeedUpSoundNote1Freq, constant.SpeedUpSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constant.SpeedUpSoundNote1Duration, constant.SpeedUpSoundAttack, constant.SpeedUpSoundNote1Release, rate)

	n2 := NewOscillator(constant.SpeedUpSoundNote2Freq, constant.SpeedUpSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constant.SpeedUpSoundNote2Duration, constant.SpeedUpSoundAttack, constant.SpeedUpSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundSpeedUp))
}

// CreateCrashSound generates a low harsh buzz for game over
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.CrashSoundFreq, constant.CrashSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constant.CrashSoundDuration, constant.CrashSoundAttack, constant.CrashSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundCrash))
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundSpeedUp:
		return CreateSpeedUpSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	default:
		return nil
	}
}
