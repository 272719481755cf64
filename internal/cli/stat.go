package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// StatOptions holds flags for the stat command.
type StatOptions struct {
	*RootOptions
	After int
}

// NewStatCommand creates the stat command.
func NewStatCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Load a board and report its size and population",
		Long: `Load the configured board, optionally advance it, and print its
dimensions and population. Useful for checking that a pattern file parses
and fits the requested dimensions.

Example:
  life stat -d 64x64 -f gosper.txt --after 120`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.After, "after", "a", 0, "generations to advance before reporting")
	return cmd
}

func runStat(cmd *cobra.Command, opts *StatOptions) error {
	if opts.After < 0 {
		return WrapExitError(ExitCommandError, "invalid flags", fmt.Errorf("--after must not be negative, got %d", opts.After))
	}
	s, err := opts.newSession()
	if err != nil {
		return err
	}
	s.Step(opts.After)

	rows, cols := s.Board().Dimensions()
	source := opts.Config.File
	if source == "" {
		source = "random"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source:     %s\n", source)
	fmt.Fprintf(out, "dimensions: %dx%d\n", rows, cols)
	fmt.Fprintf(out, "generation: %d\n", s.Generation())
	fmt.Fprintf(out, "population: %d\n", s.Board().Population())
	return nil
}
