package app

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"turing/internal/core"
	"turing/internal/engine"
	"turing/internal/machine"
	"turing/internal/render"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

// Config represents the command-line parameters shared by the generator and
// the viewer. Defaults match the original screensaver deployment.
type Config struct {
	Width  int
	Height int

	States  int
	Symbols int

	StepsPerFrame int
	StepLimit     uint64

	Table   string
	Heads   string
	Palette string
	Seed    int64
	Out     string

	EmitHalted  bool
	Reseed      bool
	ReseedAfter uint64

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{
		Width:         512,
		Height:        512,
		States:        4,
		Symbols:       6,
		StepsPerFrame: 10000,
		Palette:       "builtin",
		Out:           "-",
		Reseed:        true,
		ReseedAfter:   2500000,
		Scale:         1,
		TPS:           60,
	}
}

// Bind attaches the simulation configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid and frame width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid and frame height in cells")
	fs.IntVar(&c.States, "states", c.States, "head state count for random tables")
	fs.IntVar(&c.Symbols, "symbols", c.Symbols, "symbol count for random tables")
	fs.IntVar(&c.StepsPerFrame, "steps-per-frame", c.StepsPerFrame, "machine steps between emitted frames")
	fs.Uint64Var(&c.StepLimit, "step-limit", c.StepLimit, "stop after this many steps (0 = run forever)")
	fs.StringVar(&c.Table, "table", c.Table, "transition table file (random when empty)")
	fs.StringVar(&c.Heads, "heads", c.Heads, "head list as x:y:state[:facing],... (one head at 0,0 when empty)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette: builtin or hsluv")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "rng seed (0 = from current time)")
	fs.StringVar(&c.Out, "out", c.Out, "frame output file (- = stdout)")
	fs.BoolVar(&c.EmitHalted, "emit-halted", c.EmitHalted, "keep emitting frames after all heads halt")
	fs.BoolVar(&c.Reseed, "reseed", c.Reseed, "randomize a stagnant machine at frame boundaries")
	fs.Uint64Var(&c.ReseedAfter, "reseed-after", c.ReseedAfter, "randomize the machine after this many steps (0 = never)")
}

// BindView attaches the viewer-only parameters.
func (c *Config) BindView(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
}

// Validate checks the parts of the configuration that component
// constructors do not see themselves.
func (c *Config) Validate() error {
	if c.StepsPerFrame < 1 {
		return fmt.Errorf("steps-per-frame must be at least 1, got %d", c.StepsPerFrame)
	}
	if c.Table == "" {
		if c.States < 1 || c.States > 256 {
			return fmt.Errorf("states must be in 1..256, got %d", c.States)
		}
		if c.Symbols < 1 || c.Symbols > 256 {
			return fmt.Errorf("symbols must be in 1..256, got %d", c.Symbols)
		}
	}
	if c.Palette != "builtin" && c.Palette != "hsluv" {
		return fmt.Errorf("unknown palette %q", c.Palette)
	}
	return nil
}

// Options derives the engine options. Reseeding is forced off when an
// explicit table file is given; reseeding would discard it.
func (c *Config) Options() engine.Options {
	opts := engine.Options{
		StepsPerFrame:  c.StepsPerFrame,
		StepLimit:      c.StepLimit,
		EmitWhenHalted: c.EmitHalted,
		ReseedOnStall:  c.Reseed,
		ReseedAfter:    c.ReseedAfter,
	}
	if c.Table != "" {
		opts.ReseedOnStall = false
		opts.ReseedAfter = 0
	}
	return opts
}

// Build assembles the machine and renderer described by the configuration.
// Table files are resolved against fsys so tests can supply an in-memory
// filesystem.
func (c *Config) Build(fsys billy.Filesystem) (*machine.Machine, *render.Renderer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	grid, err := core.NewGrid(c.Width, c.Height)
	if err != nil {
		return nil, nil, err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := core.NewRNG(seed)

	var table *machine.Table
	if c.Table != "" {
		table, err = machine.Load(fsys, c.Table)
	} else {
		table, err = machine.Random(rng, c.States, c.Symbols)
	}
	if err != nil {
		return nil, nil, err
	}

	heads := []machine.Head{machine.NewHead(0, 0, machine.East, 0)}
	if c.Heads != "" {
		heads, err = machine.ParseHeads(c.Heads)
		if err != nil {
			return nil, nil, err
		}
	}

	palette := render.Builtin()
	if c.Palette == "hsluv" {
		palette = render.Generate(table.Symbols())
	}
	renderer, err := render.NewRenderer(c.Width, c.Height, table.Symbols(), palette)
	if err != nil {
		return nil, nil, err
	}

	m, err := machine.New(grid, table, heads, rng)
	if err != nil {
		return nil, nil, err
	}
	return m, renderer, nil
}

// OSFS maps a table path onto a filesystem rooted at the file's directory
// and the path relative to that root, so absolute and relative -table
// arguments both resolve.
func OSFS(table string) (billy.Filesystem, string) {
	if table == "" {
		return osfs.New("."), ""
	}
	dir, file := filepath.Split(table)
	if dir == "" {
		dir = "."
	}
	return osfs.New(dir), file
}
