package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"torus-life/internal/app"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print generations to the terminal",
		Long: `Run the simulation headless and print each frame as text, one block
character per live cell.

Example:
  life run -d 20x40 -f glider.txt -n 50 --fps 10 --clear
  life run -d 30x30 --seed 7 -n 100 --fps 0 --steps 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerminal(cmd, rootOpts)
		},
	}
	rootOpts.Config.BindRun(cmd.Flags())
	return cmd
}

func runTerminal(cmd *cobra.Command, opts *RootOptions) error {
	s, err := opts.newSession()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.RunTerminal(ctx, s, cmd.OutOrStdout(), app.TerminalOptions{
		Frames: opts.Config.Generations,
		Clear:  opts.Config.Clear,
	})
	switch {
	case errors.Is(err, context.Canceled):
		slog.Info("interrupted", "generation", s.Generation())
		return nil
	case err != nil:
		return WrapExitError(ExitFailure, "failed to write frame", err)
	}
	slog.Debug("run finished", "generation", s.Generation(), "population", s.Board().Population())
	return nil
}
