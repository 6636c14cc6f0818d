package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/ascii-cube/audio"
	"github.com/lixenwraith/ascii-cube/config"
	"github.com/lixenwraith/ascii-cube/engine"
	"github.com/lixenwraith/ascii-cube/render"
	"github.com/lixenwraith/ascii-cube/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the renderer crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mASCII-CUBE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "ascii-cube: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.ParseArgs("ascii-cube", args, os.Stderr)
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	backend, err := terminal.ParseBackend(cfg.Backend)
	if err != nil {
		return err
	}
	display, err := terminal.New(backend)
	if err != nil {
		return err
	}
	if err := display.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer display.Fini()

	if cfg.Fit {
		cfg = fitToTerminal(cfg, display)
	}
	log.Printf("starting: %s", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Quit keys from the display cancel the same context as signals
	if done := display.Done(); done != nil {
		go func() {
			select {
			case <-done:
				stop()
			case <-ctx.Done():
			}
		}()
	}

	loop := engine.NewLoop(display, newScene(cfg), render.NewFrameBuffer(cfg.Width, cfg.Height), engine.LoopParams{
		RateA:     cfg.RateA,
		RateB:     cfg.RateB,
		RateC:     cfg.RateC,
		Interval:  cfg.FrameInterval,
		MaxFrames: cfg.Frames,
	})

	if cfg.Chime {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			// Non-fatal, renderer runs without sound
			log.Printf("chime disabled: %v", err)
		} else {
			defer chime.Cleanup()
			loop.OnRevolution = func(n int) {
				log.Printf("revolution %d", n)
				chime.Play()
			}
		}
	}

	return loop.Run(ctx)
}

// newScene selects the rasterizer for the configured mode
func newScene(cfg config.Config) engine.Scene {
	if cfg.Mode == config.ModeVertex {
		return render.NewVertexPipeline(cfg.RateA)
	}
	return &render.Sampler{
		Projector: render.Projector{
			Width:    cfg.Width,
			Height:   cfg.Height,
			OffsetX:  cfg.OffsetX,
			OffsetY:  cfg.OffsetY,
			Distance: cfg.Distance,
			Scale:    cfg.Scale,
		},
		HalfWidth: cfg.HalfWidth,
		Step:      cfg.Step,
	}
}

// sizer reports the terminal dimensions
type sizer interface {
	Size() (width, height int)
}

// fitToTerminal resizes the grid to the terminal, keeping the configured size if unknown
// One row is reserved because the separator before the first row moves the cursor down
func fitToTerminal(cfg config.Config, s sizer) config.Config {
	w, h := s.Size()
	if w < 2 || h < 3 {
		return cfg
	}
	cfg.Width, cfg.Height = w, h-1
	return cfg
}
