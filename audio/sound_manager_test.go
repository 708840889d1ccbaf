package audio

import "testing"

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != ErrAudioDisabled {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}

	// Uninitialized manager must accept calls without touching the speaker
	sm.Play(SoundEat)
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.IsMuted() {
		t.Error("Expected new manager to be unmuted")
	}
	sm.SetMuted(true)
	if !sm.IsMuted() {
		t.Error("Expected manager to be muted")
	}
	sm.Play(SoundCrash)
}

func TestSoundManagerSatisfiesPlayer(t *testing.T) {
	var _ Player = NewSoundManager(nil)
}
