package config

import (
	"flag"
	"io"
)

// ParseArgs builds the config from defaults, an optional -config file, then flags
// Flags given on the command line override values from the file
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	c := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	path := fs.String("config", "", "TOML config file")

	fs.IntVar(&c.Width, "width", c.Width, "Screen width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "Screen height in cells")
	fs.IntVar(&c.OffsetX, "offset-x", c.OffsetX, "Horizontal margin added to projected x")
	fs.IntVar(&c.OffsetY, "offset-y", c.OffsetY, "Vertical margin added to projected y")
	fs.StringVar(&c.Backend, "backend", c.Backend, "Terminal backend: ansi, tcell")
	fs.BoolVar(&c.Fit, "fit", c.Fit, "Size the screen grid to the terminal")
	fs.Float64Var(&c.Distance, "distance", c.Distance, "Camera distance from the cube centre")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "Projection scale constant")
	fs.Float64Var(&c.HalfWidth, "half-width", c.HalfWidth, "Cube half-width")
	fs.Float64Var(&c.Step, "step", c.Step, "Face sampling step")
	fs.Float64Var(&c.RateA, "rate-a", c.RateA, "Rotation about X per frame (radians)")
	fs.Float64Var(&c.RateB, "rate-b", c.RateB, "Rotation about Y per frame (radians)")
	fs.Float64Var(&c.RateC, "rate-c", c.RateC, "Rotation about Z per frame (radians)")
	fs.DurationVar(&c.FrameInterval, "frame", c.FrameInterval, "Frame interval")
	fs.IntVar(&c.Frames, "frames", c.Frames, "Stop after N frames, 0 runs forever")
	fs.StringVar(&c.Mode, "mode", c.Mode, "Render mode: solid, vertex")
	fs.BoolVar(&c.Chime, "chime", c.Chime, "Play a tone on every full X revolution")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write debug log to logs/")

	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if *path != "" {
		if err := LoadFile(*path, &c); err != nil {
			return c, err
		}
		// Second pass re-applies only the flags present on the command line
		if err := fs.Parse(args); err != nil {
			return c, err
		}
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
