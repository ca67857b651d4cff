package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/smeesters/conway-life/internal/life"
)

// Seeding selects how the initial grid pattern is generated.
type Seeding int

const (
	// SeedRandom scatters live cells uniformly per the sparseness threshold.
	SeedRandom Seeding = iota
	// SeedNoise grows clustered colonies from a Perlin noise field.
	SeedNoise
)

// noiseThreshold is the cutoff above which a noise sample produces a live cell.
const noiseThreshold = 0.2

// Defaults for every startup parameter. Any argument that is missing or fails
// to parse keeps its default; configuration problems are never fatal.
const (
	DefaultWindowW    = 800
	DefaultWindowH    = 600
	DefaultGridW      = 80
	DefaultGridH      = 60
	DefaultSparseness = 2
	DefaultFPS        = 30
)

// Config holds the startup parameters taken from the command line.
type Config struct {
	WindowW    int
	WindowH    int
	GridW      int
	GridH      int
	Sparseness int
	FPS        int
	Seeding    Seeding
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() Config {
	return Config{
		WindowW:    DefaultWindowW,
		WindowH:    DefaultWindowH,
		GridW:      DefaultGridW,
		GridH:      DefaultGridH,
		Sparseness: DefaultSparseness,
		FPS:        DefaultFPS,
	}
}

// ParseArgs fills the config from positional arguments:
//
//	conway [window width] [window height] [grid width] [grid height] [sparseness] [fps] [noise]
//
// Arguments are optional but positional, so the window size must be present
// before the grid size, and so on. With fewer than two arguments the usage
// text is printed to w and the defaults apply; the run proceeds either way.
// A trailing "noise" token selects Perlin seeding.
func (c *Config) ParseArgs(args []string, w io.Writer) {
	if n := len(args); n > 0 && args[n-1] == "noise" {
		c.Seeding = SeedNoise
		args = args[:n-1]
	}

	if len(args) < 2 {
		fmt.Fprintln(w, "usage: conway [window width] [window height] [grid width] [grid height] [sparseness] [fps]")
		fmt.Fprintf(w, "e.g.: conway %d %d %d %d %d %d\n",
			DefaultWindowW, DefaultWindowH, DefaultGridW, DefaultGridH, DefaultSparseness, DefaultFPS)
		return
	}

	c.WindowW = intArg(args, 0, c.WindowW)
	c.WindowH = intArg(args, 1, c.WindowH)
	if len(args) >= 4 {
		// the grid size is only taken when both components are present
		c.GridW = intArg(args, 2, c.GridW)
		c.GridH = intArg(args, 3, c.GridH)
	}
	c.Sparseness = intArg(args, 4, c.Sparseness)
	if len(args) == 6 {
		c.FPS = intArg(args, 5, c.FPS)
	}
	c.sanitize()
}

// sanitize clamps values the simulation cannot run with back to their
// defaults. A zero grid dimension in particular would break the pixel scale
// mapping before the engine ever sees it.
func (c *Config) sanitize() {
	if c.WindowW < 1 {
		c.WindowW = DefaultWindowW
	}
	if c.WindowH < 1 {
		c.WindowH = DefaultWindowH
	}
	if c.GridW < 1 {
		c.GridW = DefaultGridW
	}
	if c.GridH < 1 {
		c.GridH = DefaultGridH
	}
	if c.Sparseness < 0 {
		c.Sparseness = DefaultSparseness
	}
	if c.FPS < 1 {
		c.FPS = DefaultFPS
	}
}

// Seed applies the configured initial pattern to the engine. It is also the
// reset path: pressing R reseeds with the same configuration.
func (c Config) Seed(e *life.Engine) {
	switch c.Seeding {
	case SeedNoise:
		e.SeedNoise(noiseThreshold)
	default:
		e.Randomize(c.Sparseness)
	}
}

func intArg(args []string, i, fallback int) int {
	if i >= len(args) {
		return fallback
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return fallback
	}
	return v
}
