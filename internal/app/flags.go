package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim       string
	Scale     int
	TPS       int
	Seed      int64
	Width     int
	Height    int
	Radius    int
	SettleTPS int
	HUDWidth  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "city", Scale: 3, TPS: 150, Seed: 1337, Width: 256, Height: 256, Radius: 1, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for terrain generation")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Radius, "radius", c.Radius, "half-width of the window re-evaluated after each edit")
	fs.IntVar(&c.SettleTPS, "settle-tps", c.SettleTPS, "full-grid passes per second while settling (0 disables)")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the control panel in pixels (0 hides it)")
}

// SimOptions converts the flags into the key/value map handed to sim factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"radius": strconv.Itoa(c.Radius),
	}
}
