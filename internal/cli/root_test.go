package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torus-life/pkg/life"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writePattern(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pattern.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "life", cmd.Use)
	assert.Contains(t, cmd.Long, "toroidal")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"play", "run", "stat"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	dims := cmd.PersistentFlags().Lookup("dimensions")
	require.NotNil(t, dims)
	assert.Equal(t, "d", dims.Shorthand)

	file := cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, file)
	assert.Equal(t, "f", file.Shorthand)
}

func TestPlayFlags(t *testing.T) {
	cmd := NewRootCommand()
	play, _, err := cmd.Find([]string{"play"})
	require.NoError(t, err)

	cell := play.Flags().Lookup("cell")
	require.NotNil(t, cell)
	assert.Equal(t, "c", cell.Shorthand)
	assert.Equal(t, "5", cell.DefValue)
	assert.Equal(t, "24", play.Flags().Lookup("fps").DefValue)
}

func TestStatPattern(t *testing.T) {
	path := writePattern(t, "coords\n0,1 1,2 2,0 2,1 2,2\n")
	out, _, err := execute(t, "stat", "-d", "12x12", "-f", path, "--after", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "dimensions: 12x12\n")
	assert.Contains(t, out, "generation: 4\n")
	assert.Contains(t, out, "population: 5\n")
}

func TestStatRandomWithSeed(t *testing.T) {
	first, _, err := execute(t, "stat", "-d", "40x40", "--seed", "3")
	require.NoError(t, err)
	second, _, err := execute(t, "stat", "-d", "40x40", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "source:     random\n")
}

func TestRunPrintsFrames(t *testing.T) {
	path := writePattern(t, "chars\n{.#}\n###\n")
	out, errOut, err := execute(t, "run", "-d", "5x5", "-f", path, "-n", "2", "--fps", "0")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "GoL | "))
	assert.Contains(t, out, "GoL | 2 | FPS: max | Evolutions Per Frame: 1")
	assert.Contains(t, errOut, "board loaded")
}

func TestSetOverridesFlags(t *testing.T) {
	path := writePattern(t, "coords 0,0 0,1 0,2")
	out, _, err := execute(t, "run", "-d", "5x5", "-f", path, "-n", "1", "--fps", "0", "--set", "steps=2")
	require.NoError(t, err)
	assert.Contains(t, out, "GoL | 2 | FPS: max | Evolutions Per Frame: 2")
}

func TestConfigFile(t *testing.T) {
	pattern := writePattern(t, "coords 0,0 0,1 0,2")
	cfgPath := filepath.Join(t.TempDir(), "life.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dimensions: 7x7\nfile: "+pattern+"\nframerate: 0\ngenerations: 1\n"), 0o644))

	out, _, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "GoL | "))

	// An explicit flag beats the file.
	out, _, err = execute(t, "stat", "--config", cfgPath, "-d", "9x9")
	require.NoError(t, err)
	assert.Contains(t, out, "dimensions: 9x9\n")
}

func TestCommandErrors(t *testing.T) {
	tooBig := writePattern(t, "coords 0,30")
	unknown := writePattern(t, "#Life 1.06\n0 0\n")

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{name: "missing dimensions", args: []string{"stat"}},
		{name: "bad dimensions", args: []string{"stat", "-d", "10by10"}},
		{name: "unknown flag", args: []string{"stat", "--nope"}},
		{name: "missing file", args: []string{"stat", "-d", "10x10", "-f", filepath.Join(t.TempDir(), "none.txt")}, is: os.ErrNotExist},
		{name: "pattern too large", args: []string{"stat", "-d", "10x10", "-f", tooBig}, is: life.ErrPatternTooLarge},
		{name: "unknown format", args: []string{"run", "-d", "10x10", "-f", unknown}, is: life.ErrUnknownFormat},
		{name: "negative after", args: []string{"stat", "-d", "10x10", "--after=-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", nil)))
	assert.Equal(t, "bad", WrapExitError(ExitCommandError, "bad", nil).Error())
}
