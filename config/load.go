package config

import (
	"fmt"
	"os"
	"sort"
	"time"
)

// fieldDef binds one TOML key to a Config field
type fieldDef struct {
	section string
	key     string
	set     func(c *Config, v any) error
}

var fieldDefs = []fieldDef{
	{"screen", "width", intField(func(c *Config) *int { return &c.Width })},
	{"screen", "height", intField(func(c *Config) *int { return &c.Height })},
	{"screen", "offset_x", intField(func(c *Config) *int { return &c.OffsetX })},
	{"screen", "offset_y", intField(func(c *Config) *int { return &c.OffsetY })},
	{"screen", "backend", stringField(func(c *Config) *string { return &c.Backend })},
	{"screen", "fit", boolField(func(c *Config) *bool { return &c.Fit })},
	{"camera", "distance", floatField(func(c *Config) *float64 { return &c.Distance })},
	{"camera", "scale", floatField(func(c *Config) *float64 { return &c.Scale })},
	{"cube", "half_width", floatField(func(c *Config) *float64 { return &c.HalfWidth })},
	{"cube", "step", floatField(func(c *Config) *float64 { return &c.Step })},
	{"rotation", "rate_a", floatField(func(c *Config) *float64 { return &c.RateA })},
	{"rotation", "rate_b", floatField(func(c *Config) *float64 { return &c.RateB })},
	{"rotation", "rate_c", floatField(func(c *Config) *float64 { return &c.RateC })},
	{"render", "mode", stringField(func(c *Config) *string { return &c.Mode })},
	{"timing", "frame_ms", func(c *Config, v any) error {
		ms, ok := toFloat(v)
		if !ok {
			return fmt.Errorf("expected number, got %T", v)
		}
		c.FrameInterval = time.Duration(ms * float64(time.Millisecond))
		return nil
	}},
	{"timing", "frames", intField(func(c *Config) *int { return &c.Frames })},
	{"audio", "chime", boolField(func(c *Config) *bool { return &c.Chime })},
}

// Parse applies TOML data on top of c
// Unknown tables and keys are errors so typos do not pass silently
func Parse(data []byte, c *Config) error {
	raw, err := parseTOML(data)
	if err != nil {
		return fmt.Errorf("config parse: %w", err)
	}

	known := make(map[string]map[string]fieldDef)
	for _, def := range fieldDefs {
		if known[def.section] == nil {
			known[def.section] = make(map[string]fieldDef)
		}
		known[def.section][def.key] = def
	}

	// Sorted for deterministic error reporting
	sections := make([]string, 0, len(raw))
	for name := range raw {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	for _, name := range sections {
		table := raw[name]
		defs, ok := known[name]
		if !ok {
			if name == "" && len(table) == 0 {
				continue
			}
			if name == "" {
				return fmt.Errorf("config: keys outside a table are not supported")
			}
			return fmt.Errorf("config: unknown table [%s]", name)
		}

		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			def, ok := defs[k]
			if !ok {
				return fmt.Errorf("config: [%s] unknown key %q", name, k)
			}
			if err := def.set(c, table[k]); err != nil {
				return fmt.Errorf("config: [%s] %s: %w", name, k, err)
			}
		}
	}
	return nil
}

// LoadFile reads path and applies it on top of c
func LoadFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config read: %w", err)
	}
	return Parse(data, c)
}

func intField(field func(*Config) *int) func(*Config, any) error {
	return func(c *Config, v any) error {
		i, ok := v.(int64)
		if !ok {
			return fmt.Errorf("expected integer, got %T", v)
		}
		*field(c) = int(i)
		return nil
	}
}

func floatField(field func(*Config) *float64) func(*Config, any) error {
	return func(c *Config, v any) error {
		f, ok := toFloat(v)
		if !ok {
			return fmt.Errorf("expected number, got %T", v)
		}
		*field(c) = f
		return nil
	}
}

func boolField(field func(*Config) *bool) func(*Config, any) error {
	return func(c *Config, v any) error {
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("expected boolean, got %T", v)
		}
		*field(c) = b
		return nil
	}
}

func stringField(field func(*Config) *string) func(*Config, any) error {
	return func(c *Config, v any) error {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
		*field(c) = s
		return nil
	}
}

// toFloat accepts both integer and float literals
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
