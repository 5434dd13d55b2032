// Package audio plays short tones for the primary and secondary actions.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	primaryFreq   = 880.0
	secondaryFreq = 440.0
	cueDuration   = 60 * time.Millisecond
)

// Cues owns the speaker and mixes action tones into it. The zero value is
// silent until Init succeeds; every method is safe on a nil *Cues.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewCues creates silent cues at volume (0..1).
func NewCues(volume float64) *Cues {
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. A machine without audio returns an error and the
// cues stay silent.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Primary plays the high tone.
func (c *Cues) Primary() {
	c.play(primaryFreq)
}

// Secondary plays the low tone.
func (c *Cues) Secondary() {
	c.play(secondaryFreq)
}

func (c *Cues) play(freq float64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	tone, err := Tone(sampleRate, freq, cueDuration, c.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (c *Cues) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// Tone returns a sine wave of freq lasting d at volume (0..1).
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Take(sr.N(d), sine), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
