package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	chimeFreq     = 880.0
	chimeDuration = 120 * time.Millisecond
	chimeVolume   = -1.5 // log2 gain, quieter than full scale
)

// Chime plays a short tone, used to mark each completed revolution
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues one tone; no-op before Initialize
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	c.mixer.Add(newChimeStreamer())
	speaker.Unlock()
}

// Cleanup stops queued tones
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// newChimeStreamer builds the attenuated revolution tone
func newChimeStreamer() beep.Streamer {
	return &effects.Volume{
		Streamer: NewTone(chimeFreq, chimeDuration, sampleRate),
		Base:     2,
		Volume:   chimeVolume,
	}
}
