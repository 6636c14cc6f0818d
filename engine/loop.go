package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/ascii-cube/render"
	"github.com/lixenwraith/ascii-cube/vmath"
)

// statsEvery is the number of frames between debug log summaries
const statsEvery = 120

// Presenter receives one finished frame of text
type Presenter interface {
	Present(frame []byte) error
}

// Scene draws one frame into a cleared buffer
type Scene interface {
	Draw(buf *render.FrameBuffer, a vmath.Angles)
}

// LoopParams configures rotation speed and pacing
type LoopParams struct {
	RateA, RateB, RateC float64
	Interval            time.Duration
	MaxFrames           int // 0 runs until cancelled
}

// Loop owns the rotation state and drives frame generation
// Single goroutine; the buffer pair is reused and cleared every frame
type Loop struct {
	display Presenter
	scene   Scene
	buf     *render.FrameBuffer
	frame   []byte
	params  LoopParams
	clock   Clock

	angles      vmath.Angles
	frameCount  int
	revolutions int

	// OnRevolution is called each time angle A completes another full turn
	OnRevolution func(count int)

	windowStart time.Time
}

// NewLoop creates a loop rendering scene into buf and presenting on display
func NewLoop(display Presenter, scene Scene, buf *render.FrameBuffer, params LoopParams) *Loop {
	return &Loop{
		display: display,
		scene:   scene,
		buf:     buf,
		frame:   make([]byte, 0, buf.Len()),
		params:  params,
		clock:   SystemClock{},
	}
}

// SetClock replaces the clock used for frame-rate accounting
func (l *Loop) SetClock(c Clock) {
	l.clock = c
}

// Angles returns the current rotation state
func (l *Loop) Angles() vmath.Angles {
	return l.angles
}

// SetAngles replaces the rotation state
func (l *Loop) SetAngles(a vmath.Angles) {
	l.angles = a
	l.revolutions = revolutionsOf(a.A)
}

// FrameCount returns the number of frames presented
func (l *Loop) FrameCount() int {
	return l.frameCount
}

// Frame returns the most recently emitted frame text
// Valid until the next Step
func (l *Loop) Frame() []byte {
	return l.frame
}

// Step renders, presents and advances exactly one frame without pacing
func (l *Loop) Step() error {
	if l.frameCount == 0 {
		l.windowStart = l.clock.Now()
	}

	l.buf.Clear()
	l.scene.Draw(l.buf, l.angles)
	l.frame = l.buf.AppendFrame(l.frame[:0])

	if err := l.display.Present(l.frame); err != nil {
		return fmt.Errorf("present frame %d: %w", l.frameCount, err)
	}

	l.angles = l.angles.Advance(l.params.RateA, l.params.RateB, l.params.RateC)
	l.frameCount++

	if r := revolutionsOf(l.angles.A); r > l.revolutions {
		l.revolutions = r
		if l.OnRevolution != nil {
			l.OnRevolution(r)
		}
	}

	if l.frameCount%statsEvery == 0 {
		now := l.clock.Now()
		log.Printf("frame %d: %.1f fps, angles A=%.3f B=%.3f C=%.3f",
			l.frameCount, FrameRate(statsEvery, now.Sub(l.windowStart)), l.angles.A, l.angles.B, l.angles.C)
		l.windowStart = now
	}
	return nil
}

// Run steps once per interval until ctx is cancelled, MaxFrames is reached
// or presenting fails. Cancellation is a clean exit and returns nil
func (l *Loop) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return nil
	}

	ticker := time.NewTicker(l.params.Interval)
	defer ticker.Stop()

	for {
		if err := l.Step(); err != nil {
			return err
		}
		if l.params.MaxFrames > 0 && l.frameCount >= l.params.MaxFrames {
			return nil
		}

		select {
		case <-ctx.Done():
			log.Printf("render loop stopped after %d frames", l.frameCount)
			return nil
		case <-ticker.C:
		}
	}
}

// FrameRate converts a frame count over an elapsed duration to frames per second
func FrameRate(frames int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(frames) / elapsed.Seconds()
}

// revolutionsOf counts completed positive turns of an angle
func revolutionsOf(angle float64) int {
	return int(math.Floor(angle / (2 * math.Pi)))
}
