package app

import (
	"flag"
	"strconv"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters shared by the presenters.
type Config struct {
	Scenario string
	Layout   string
	Width    int
	Height   int
	Seed     int64
	Density  float64

	Scale       int
	Rate        int
	HUDWidth    int
	Generations int
	Verbose     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scenario: "showcase",
		Width:    140,
		Height:   85,
		Seed:     42,
		Density:  0.25,
		Scale:    8,
		Rate:     10,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "scenario to run (showcase, gliders, soup, file)")
	fs.StringVar(&c.Layout, "layout", c.Layout, "HCL layout file; implies -scenario file")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the soup scenario")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density for the soup scenario")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "stats panel width in pixels, 0 to hide")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations, 0 runs until quit")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Validate checks the values a presenter cannot work around.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale %d must be positive", c.Scale)
	}
	if c.Rate <= 0 {
		return errors.Errorf("rate %d must be positive", c.Rate)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density %v must be within [0, 1]", c.Density)
	}
	if c.Generations < 0 {
		return errors.Errorf("generations %d must not be negative", c.Generations)
	}
	if c.ScenarioName() == "file" && c.Layout == "" {
		return errors.New("scenario file needs -layout")
	}
	return nil
}

// ScenarioName resolves which scenario to build; a layout file wins over the
// scenario flag.
func (c *Config) ScenarioName() string {
	if c.Layout != "" {
		return "file"
	}
	return c.Scenario
}

// Options converts the configuration into scenario options.
func (c *Config) Options() map[string]string {
	opts := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
	if c.Layout != "" {
		opts["layout"] = c.Layout
	}
	return opts
}
