package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-tetris/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release, cutting it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.attackSamples + e.sustainSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateLockSound generates a short low thud for a piece merging
func CreateLockSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(constant.LockSoundFreq, constant.LockSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constant.LockSoundDuration, constant.LockSoundAttack, constant.LockSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateClearSound generates a rising chime, one note per cleared row
func CreateClearSound(rate beep.SampleRate, lines int, vol float64) beep.Streamer {
	lines = min(max(lines, 1), 4)

	notes := make([]beep.Streamer, 0, lines)
	for i := 0; i < lines; i++ {
		// Major third steps: 2^(4/12)
		freq := constant.ClearSoundBaseFreq * math.Pow(2, float64(4*i)/12)
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			continue
		}
		notes = append(notes, NewEnvelope(tone, constant.ClearSoundDuration, constant.ClearSoundAttack, constant.ClearSoundRelease, rate))
	}
	if len(notes) == 0 {
		return nil
	}

	return newVolume(beep.Seq(notes...), vol)
}

// CreateGameOverSound generates a falling saw sweep mixed with a noise tail
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	third := constant.GameOverSoundDuration / 3

	steps := make([]beep.Streamer, 0, 3)
	for _, freq := range []float64{330, 262, 196} {
		osc := NewOscillator(freq, third, WaveSaw, rate)
		steps = append(steps, NewEnvelope(osc, third, constant.GameOverSoundAttack, third/2, rate))
	}
	melody := beep.Seq(steps...)

	noise := NewOscillator(0, constant.GameOverSoundDuration, WaveNoise, rate)
	tail := NewEnvelope(noise, constant.GameOverSoundDuration, constant.GameOverSoundAttack, constant.GameOverSoundRelease, rate)

	return newVolume(beep.Mix(newVolume(melody, 0.6), newVolume(tail, 0.15)), vol)
}

// GetSoundEffect returns a streamer for the given sound; lines only applies to SoundClear
func GetSoundEffect(soundType SoundType, rate beep.SampleRate, lines int, vol float64) beep.Streamer {
	switch soundType {
	case SoundLock:
		return CreateLockSound(rate, vol)
	case SoundClear:
		return CreateClearSound(rate, lines, vol)
	case SoundGameOver:
		return CreateGameOverSound(rate, vol)
	default:
		return nil
	}
}
