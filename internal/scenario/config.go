package scenario

import "strconv"

// Config holds the options shared by every scenario.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Density float64

	// Layout is the HCL layout path used by the file scenario.
	Layout string
}

// DefaultConfig returns the standard configuration: the 140x85 board the
// showcase layout was designed for.
func DefaultConfig() Config {
	return Config{
		Width:   140,
		Height:  85,
		Seed:    42,
		Density: 0.25,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out of range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["layout"]; ok {
		c.Layout = v
	}
	return c
}
