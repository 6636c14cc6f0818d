package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator with a linear decay envelope
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewTone creates a decaying sine streamer that ends after duration
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		env := 1 - float64(o.position)/float64(o.duration)
		val := math.Sin(2*math.Pi*o.phase) * env

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }
