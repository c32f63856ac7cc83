package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-tetris/constant"
)

const sampleRate = beep.SampleRate(constant.SampleRate)

// SoundManager plays game sound effects through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.SpeakerBuffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Lock plays the piece merge thud
func (sm *SoundManager) Lock() {
	sm.play(SoundLock, 0)
}

// LineClear plays the row clear chime for n rows
func (sm *SoundManager) LineClear(n int) {
	if n <= 0 {
		return
	}
	sm.play(SoundClear, n)
}

// GameOver plays the game over sweep
func (sm *SoundManager) GameOver() {
	sm.play(SoundGameOver, 0)
}

// ToggleMute flips the mute state and returns true when now muted
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(soundType SoundType, lines int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := GetSoundEffect(soundType, sampleRate, lines, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Silent is a sound sink that plays nothing, used for muted or headless runs
type Silent struct{}

func (Silent) Lock() {}
func (Silent) LineClear(int) {}
func (Silent) GameOver() {}

// ToggleMute always reports muted
func (Silent) ToggleMute() bool { return true }
