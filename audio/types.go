package audio

import "errors"

// SoundType identifies a game sound effect
type SoundType int

const (
	SoundLock     SoundType = iota // Piece merged into the board
	SoundClear                     // One or more rows removed
	SoundGameOver                  // Spawn collision
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"lock", "clear", "game_over"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ErrAudioUnavailable is returned when the speaker cannot be opened
var ErrAudioUnavailable = errors.New("audio output unavailable")
