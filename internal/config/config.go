package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"torus-life/internal/core"
	pcore "torus-life/pkg/core"
	"torus-life/pkg/life"
)

// Config holds everything the drivers need to build and pace a board.
type Config struct {
	Dimensions    string `yaml:"dimensions"`
	File          string `yaml:"file"`
	Seed          int64  `yaml:"seed"`
	CellSize      int    `yaml:"cell_size"`
	Framerate     int    `yaml:"framerate"`
	StepsPerFrame int    `yaml:"steps_per_frame"`
	Generations   int    `yaml:"generations"`
	Clear         bool   `yaml:"clear"`
}

// DefaultConfig returns the standard configuration. Dimensions have no default.
func DefaultConfig() Config {
	return Config{
		CellSize:      5,
		Framerate:     core.DefaultFramerate,
		StepsPerFrame: core.DefaultStepsPerFrame,
		Generations:   10,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides returns c with the recognised keys of cfg applied. Values that
// do not parse or are out of range leave the field unchanged.
func (c Config) WithOverrides(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["dimensions"]; ok {
		if _, err := core.ParseSize(v); err == nil {
			c.Dimensions = v
		}
	}
	if v, ok := cfg["file"]; ok {
		c.File = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Framerate = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= core.MaxStepsPerFrame {
			c.StepsPerFrame = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["clear"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Clear = parsed
		}
	}
	return c
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	if err := c.decodeFile(path); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// boundFlags names the flags the Bind methods register.
var boundFlags = map[string]bool{
	"dimensions":  true,
	"file":        true,
	"seed":        true,
	"cell":        true,
	"generations": true,
	"clear":       true,
	"fps":         true,
	"steps":       true,
}

// ApplyFile loads a YAML file into c while keeping the values of bound flags
// in fs that were set explicitly on the command line.
func (c *Config) ApplyFile(path string, fs *pflag.FlagSet) error {
	explicit := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		if boundFlags[f.Name] {
			explicit[f.Name] = f.Value.String()
		}
	})

	if err := c.decodeFile(path); err != nil {
		return err
	}
	for name, v := range explicit {
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("restore flag --%s: %w", name, err)
		}
	}
	return nil
}

// BindBoard attaches the board-selection flags to fs.
func (c *Config) BindBoard(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Dimensions, "dimensions", "d", c.Dimensions, "board size in cells as ROWSxCOLS")
	fs.StringVarP(&c.File, "file", "f", c.File, "pattern file to start from; omit for a random board")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board (0 picks one)")
}

// BindPlay attaches the GUI flags to fs.
func (c *Config) BindPlay(fs *pflag.FlagSet) {
	fs.IntVarP(&c.CellSize, "cell", "c", c.CellSize, "display size of each cell in pixels")
	c.bindPacing(fs)
}

// BindRun attaches the terminal runner flags to fs.
func (c *Config) BindRun(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Generations, "generations", "n", c.Generations, "frames to print after the initial board")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "clear the terminal before each frame")
	c.bindPacing(fs)
}

func (c *Config) bindPacing(fs *pflag.FlagSet) {
	fs.IntVar(&c.Framerate, "fps", c.Framerate, "frames per second (0 for unthrottled)")
	fs.IntVarP(&c.StepsPerFrame, "steps", "s", c.StepsPerFrame, "generations advanced per frame")
}

// Size parses the configured dimensions.
func (c Config) Size() (core.Size, error) {
	if c.Dimensions == "" {
		return core.Size{}, errors.New("dimensions are required (--dimensions ROWSxCOLS)")
	}
	return core.ParseSize(c.Dimensions)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.Size(); err != nil {
		return err
	}
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Framerate < 0:
		return fmt.Errorf("framerate must not be negative, got %d", c.Framerate)
	case c.StepsPerFrame < 1 || c.StepsPerFrame > core.MaxStepsPerFrame:
		return fmt.Errorf("steps per frame must be in 1..%d, got %d", core.MaxStepsPerFrame, c.StepsPerFrame)
	case c.Generations < 0:
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	return nil
}

// Pacing returns pacing controls for the configured framerate and steps.
func (c Config) Pacing() *core.Pacing {
	return core.NewPacing(c.Framerate, c.StepsPerFrame)
}

// Loader returns a core.Loader for the configured board: the pattern file when
// one is set, otherwise a random board. A nonzero seed makes every load identical.
func (c Config) Loader() (core.Loader, error) {
	size, err := c.Size()
	if err != nil {
		return nil, err
	}
	if path := c.File; path != "" {
		return func() (*life.Board, error) {
			return life.FromFile(path, size.Rows, size.Cols)
		}, nil
	}
	seed := c.Seed
	return func() (*life.Board, error) {
		return life.NewRandom(size.Rows, size.Cols, pcore.ForSeed(seed))
	}, nil
}
