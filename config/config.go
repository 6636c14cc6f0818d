// Package config holds the renderer tunables and loads them from a TOML
// file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Render modes
const (
	ModeSolid  = "solid"
	ModeVertex = "vertex"
)

// Config is the full set of startup tunables
type Config struct {
	// Screen grid
	Width   int
	Height  int
	OffsetX int
	OffsetY int
	Backend string
	Fit     bool // size the grid to the terminal at startup

	// Camera
	Distance float64
	Scale    float64 // depth-scale constant K

	// Cube
	HalfWidth float64
	Step      float64 // sweep increment across each face

	// Rotation rates in radians per frame
	RateA float64
	RateB float64
	RateC float64

	FrameInterval time.Duration
	Frames        int // stop after this many frames, 0 runs forever

	Mode  string
	Chime bool
	Debug bool
}

// Default returns the built-in tunables
func Default() Config {
	return Config{
		Width:         90,
		Height:        60,
		Backend:       "ansi",
		Distance:      50,
		Scale:         20,
		HalfWidth:     15,
		Step:          0.6,
		RateA:         0.05,
		RateB:         0.05,
		RateC:         0.01,
		FrameInterval: 16 * time.Millisecond,
		Mode:          ModeSolid,
	}
}

// Validate rejects values the renderer cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("%w: screen %dx%d, both dimensions must be at least 2", ErrInvalid, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalid, c.Scale)
	case c.HalfWidth <= 0:
		return fmt.Errorf("%w: half-width %v must be positive", ErrInvalid, c.HalfWidth)
	case c.Step <= 0:
		return fmt.Errorf("%w: step %v must be positive", ErrInvalid, c.Step)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame interval %v must be positive", ErrInvalid, c.FrameInterval)
	case c.Frames < 0:
		return fmt.Errorf("%w: frame count %d must not be negative", ErrInvalid, c.Frames)
	case c.Backend != "ansi" && c.Backend != "tcell":
		return fmt.Errorf("%w: backend %q", ErrInvalid, c.Backend)
	case c.Mode != ModeSolid && c.Mode != ModeVertex:
		return fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
	return nil
}

// String summarizes the config for the debug log
func (c Config) String() string {
	return fmt.Sprintf("screen=%dx%d offset=(%d,%d) backend=%s distance=%g scale=%g half-width=%g step=%g rates=(%g,%g,%g) frame=%v mode=%s",
		c.Width, c.Height, c.OffsetX, c.OffsetY, c.Backend, c.Distance, c.Scale, c.HalfWidth, c.Step,
		c.RateA, c.RateB, c.RateC, c.FrameInterval, c.Mode)
}
