// Package audio synthesizes the game's sound effects as in-memory WAV files.
//
// All sounds are 16-bit signed mono PCM. They are generated once at startup
// and handed to Ebitengine's audio/wav decoder, so no audio assets ship with
// the game.
package audio

import (
	"encoding/binary"
	"math"
)

// DefaultSampleRate is the sample rate used when none is configured.
const DefaultSampleRate = 44100

// Sound durations in seconds
const (
	paddleHitDuration = 0.1
	wallHitDuration   = 0.08
	scoreDuration     = 0.4
)

// scoreChord is a C major triad (C5, E5, G5).
var scoreChord = [3]float64{523.25, 659.25, 783.99}

// PaddleHitSound returns a short high blip with a falling pitch.
func PaddleHitSound(sampleRate int) []byte {
	return tone(sampleRate, paddleHitDuration, func(t float64) float64 {
		freq := 800 + 400*math.Exp(-t*10)
		amp := 0.3 * math.Exp(-t*8)
		return amp * math.Sin(2*math.Pi*freq*t)
	})
}

// WallHitSound returns a lower, shorter thud.
func WallHitSound(sampleRate int) []byte {
	return tone(sampleRate, wallHitDuration, func(t float64) float64 {
		freq := 300 + 200*math.Exp(-t*15)
		amp := 0.25 * math.Exp(-t*12)
		return amp * math.Sin(2*math.Pi*freq*t)
	})
}

// ScoreSound returns a decaying major chord.
func ScoreSound(sampleRate int) []byte {
	return tone(sampleRate, scoreDuration, func(t float64) float64 {
		v := 0.0
		for _, freq := range scoreChord {
			v += 0.15 * math.Sin(2*math.Pi*freq*t)
		}
		return v * math.Exp(-t*2)
	})
}

// tone synthesizes wave and wraps it in a WAV container.
// A non-positive sampleRate falls back to DefaultSampleRate.
func tone(sampleRate int, duration float64, wave func(t float64) float64) []byte {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return EncodeWAV(synthesize(sampleRate, duration, wave), uint32(sampleRate))
}

// synthesize samples wave over [0, duration) and returns little-endian
// 16-bit PCM. wave returns values in roughly [-1, 1]; out-of-range values
// are clamped to ±32767.
func synthesize(sampleRate int, duration float64, wave func(t float64) float64) []byte {

	samples := int(float64(sampleRate) * duration)
	pcm := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		s := math.Max(-32767, math.Min(32767, wave(t)*32767))
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(s)))
	}
	return pcm
}
