// Package audio plays the optional hourly chime
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Chime owns the speaker and a persistent mixer; tones are mixed in as
// they are struck
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure is non-fatal to the clock;
// callers log and carry on silent
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close stops the speaker
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.initialized = false
	speaker.Close()
}

// Strike plays a short low-then-high two-tone mark on the hour
func (c *Chime) Strike() {
	c.mu.Lock()
	initialized := c.initialized
	c.mu.Unlock()
	if !initialized {
		return
	}

	low, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}

	tone := sampleRate.N(150 * time.Millisecond)
	gap := sampleRate.N(80 * time.Millisecond)

	seq := beep.Seq(
		beep.Take(tone, low),
		beep.Silence(gap),
		beep.Take(tone, high),
	)

	speaker.Lock()
	c.mixer.Add(seq)
	speaker.Unlock()
}
