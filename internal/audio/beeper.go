// Package audio plays a short tone for every simulation step.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 40 * time.Millisecond
	baseFreq     = 220.0
	freqPerCell  = 8.0
	maxFreq      = 1760.0
)

// Beeper owns the speaker while the game runs.
type Beeper struct {
	rate beep.SampleRate
}

// NewBeeper initialises the speaker. Callers continue silently on error.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Beeper{rate: sampleRate}, nil
}

// Step plays a tone whose pitch follows the live population. It matches the
// Driver.OnStep signature.
func (b *Beeper) Step(generation, alive int) {
	tone, err := Tone(b.rate, Pitch(alive), toneDuration)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (b *Beeper) Close() {
	speaker.Close()
}

// Pitch maps a population to a frequency in Hz, capped at maxFreq.
func Pitch(alive int) float64 {
	if alive < 0 {
		alive = 0
	}
	f := baseFreq + float64(alive)*freqPerCell
	if f > maxFreq {
		return maxFreq
	}
	return f
}

// Tone returns a quiet sine of freq Hz lasting d.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   -3,
	}, nil
}
