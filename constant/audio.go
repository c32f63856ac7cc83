package constant

import "time"

// Audio
const (
	// SampleRate is the speaker sample rate in Hz
	SampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// DefaultVolume is the master volume in [0, 1]
	DefaultVolume = 0.6
)

// Sound effect shapes
const (
	LockSoundDuration = 60 * time.Millisecond
	LockSoundAttack   = 2 * time.Millisecond
	LockSoundRelease  = 40 * time.Millisecond
	LockSoundFreq     = 110.0

	ClearSoundDuration = 120 * time.Millisecond
	ClearSoundAttack   = 5 * time.Millisecond
	ClearSoundRelease  = 80 * time.Millisecond
	ClearSoundBaseFreq = 660.0

	GameOverSoundDuration = 600 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 400 * time.Millisecond
)
