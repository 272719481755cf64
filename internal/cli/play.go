package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"torus-life/internal/app"
	"torus-life/internal/ui"
)

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open a window and run the simulation",
		Long: fmt.Sprintf(`Open a window showing the board. The simulation starts paused.

Keys:
  %s

Requires a build with the ebiten tag:
  go build -tags ebiten ./cmd/life`, strings.Join(ui.HelpLines(), "\n  ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(rootOpts)
		},
	}
	rootOpts.Config.BindPlay(cmd.Flags())
	return cmd
}

func runPlay(opts *RootOptions) error {
	s, err := opts.newSession()
	if err != nil {
		return err
	}
	slog.Debug("opening window", "cell_size", opts.Config.CellSize, "fps", s.Pacing().FramerateLabel())
	if err := app.Run(s, opts.Config.CellSize); err != nil {
		if errors.Is(err, app.ErrNoGUI) {
			return WrapExitError(ExitCommandError, "play is unavailable", err)
		}
		return WrapExitError(ExitFailure, "window failed", err)
	}
	slog.Info("window closed", "generation", s.Generation())
	return nil
}
