package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torus-life/internal/core"
	"torus-life/pkg/life"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"dimensions":  "30x40",
		"seed":        "12",
		"cell":        "3",
		"fps":         "0",
		"steps":       "7",
		"generations": "4",
		"clear":       "true",
	})
	assert.Equal(t, Config{
		Dimensions:    "30x40",
		Seed:          12,
		CellSize:      3,
		Framerate:     0,
		StepsPerFrame: 7,
		Generations:   4,
		Clear:         true,
	}, c)
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"dimensions": "30 by 40",
		"cell":       "-1",
		"fps":        "fast",
		"steps":      "500",
	})
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "life.yaml", "dimensions: 60x80\nframerate: 30\nsteps_per_frame: 2\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "60x80", c.Dimensions)
	assert.Equal(t, 30, c.Framerate)
	assert.Equal(t, 2, c.StepsPerFrame)
	assert.Equal(t, 5, c.CellSize)
}

func TestLoadEmptyFile(t *testing.T) {
	c, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "bad.yaml", "dimension: 10x10\n"))
	require.Error(t, err)
}

func TestApplyFileKeepsExplicitFlags(t *testing.T) {
	c := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindBoard(fs)
	c.BindRun(fs)
	require.NoError(t, fs.Parse([]string{"--fps", "5", "-d", "8x8"}))

	path := writeFile(t, "life.yaml", "dimensions: 60x80\nframerate: 30\ngenerations: 3\n")
	require.NoError(t, c.ApplyFile(path, fs))

	assert.Equal(t, "8x8", c.Dimensions)
	assert.Equal(t, 5, c.Framerate)
	assert.Equal(t, 3, c.Generations)
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Dimensions = "10x10"
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing dimensions", mutate: func(c *Config) { c.Dimensions = "" }},
		{name: "bad dimensions", mutate: func(c *Config) { c.Dimensions = "0x4" }},
		{name: "cell size", mutate: func(c *Config) { c.CellSize = 0 }},
		{name: "framerate", mutate: func(c *Config) { c.Framerate = -1 }},
		{name: "steps", mutate: func(c *Config) { c.StepsPerFrame = core.MaxStepsPerFrame + 1 }},
		{name: "generations", mutate: func(c *Config) { c.Generations = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoaderRandomSeeded(t *testing.T) {
	c := DefaultConfig()
	c.Dimensions = "20x30"
	c.Seed = 99

	load, err := c.Loader()
	require.NoError(t, err)
	a, err := load()
	require.NoError(t, err)
	b, err := load()
	require.NoError(t, err)

	rows, cols := a.Dimensions()
	assert.Equal(t, 20, rows)
	assert.Equal(t, 30, cols)
	assert.ElementsMatch(t, a.LiveCells(), b.LiveCells())
}

func TestLoaderFile(t *testing.T) {
	c := DefaultConfig()
	c.Dimensions = "10x10"
	c.File = writeFile(t, "blinker.txt", "chars\n{.O}\nOOO\n")

	load, err := c.Loader()
	require.NoError(t, err)
	b, err := load()
	require.NoError(t, err)
	assert.ElementsMatch(t, []life.Cell{{Row: 5, Col: 4}, {Row: 5, Col: 5}, {Row: 5, Col: 6}}, b.LiveCells())
}

func TestLoaderNeedsDimensions(t *testing.T) {
	_, err := DefaultConfig().Loader()
	require.Error(t, err)
}

func TestPacing(t *testing.T) {
	c := DefaultConfig()
	c.Framerate = 0
	c.StepsPerFrame = 4
	p := c.Pacing()
	assert.True(t, p.Unthrottled())
	assert.Equal(t, 4, p.StepsPerFrame())
}
