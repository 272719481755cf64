package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"torus-life/internal/config"
	"torus-life/internal/core"
)

// RootOptions holds global flags and the resolved configuration for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
	Set        map[string]string
	Config     config.Config
}

// NewRootCommand creates the root command for the life CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: config.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life on a torus",
		Long: `Simulate Conway's Game of Life on a fixed-size toroidal grid (edges wrap).

The starting board is either random (about one cell in ten alive) or a
pattern file centered on the board. Pattern files start with "chars"
(a picture drawn with the two glyphs declared in a {dead alive} token)
or "coords" (row,col pairs).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	pf.StringToStringVar(&opts.Set, "set", nil, "override config keys, e.g. --set fps=10,steps=2")
	opts.Config.BindBoard(pf)

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewStatCommand(opts))

	return cmd
}

// prepare configures logging and resolves the configuration:
// defaults, then the config file, then explicit flags, then --set.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	if o.ConfigPath != "" {
		slog.Debug("loading config", "path", o.ConfigPath)
		if err := o.Config.ApplyFile(o.ConfigPath, cmd.Flags()); err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
	}
	o.Config = o.Config.WithOverrides(o.Set)
	if err := o.Config.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	return nil
}

// newSession builds the configured board and wraps it in a paused session.
func (o *RootOptions) newSession() (*core.Session, error) {
	load, err := o.Config.Loader()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	s, err := core.NewSession(load, o.Config.Pacing())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load board", err)
	}

	source := o.Config.File
	if source == "" {
		source = "random"
	}
	rows, cols := s.Board().Dimensions()
	slog.Info("board loaded", "source", source, "rows", rows, "cols", cols, "population", s.Board().Population())
	return s, nil
}
