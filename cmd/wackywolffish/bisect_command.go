package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gkwa/wackywolffish/internal/bisect"
	"github.com/gkwa/wackywolffish/internal/frameset"
)

func newBisectCommand(ctx *commandContext) *cobra.Command {
	var sortBy string
	var viewerOverride string

	cmd := &cobra.Command{
		Use:   "bisect",
		Short: "Interactively bisect a frame sequence to find a moment of interest",
		Long: `Bisect reads image paths from stdin, sorts them by capture timestamp, and
walks a binary search over the sequence. Each step opens the midpoint frame in
an external viewer; answer whether the moment of interest is earlier or later
until the window closes in on it. Moves can be undone in bulk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			mode, err := frameset.ParseSortMode(sortBy)
			if err != nil {
				return err
			}

			paths, err := frameset.ReadPaths(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.New("no valid image paths provided")
			}

			frames := frameset.FromPaths(paths, mode)
			if len(frames) == 0 {
				return errors.New("no images with valid capture names found")
			}

			session, err := bisect.NewSession(frames)
			if err != nil {
				return err
			}

			viewerCommand := cfg.Viewer.Command
			if viewerOverride != "" {
				viewerCommand = viewerOverride
			}
			viewer := bisect.CommandViewer{Command: viewerCommand}

			in, closer := commandInput(cmd)
			if closer != nil {
				defer closer.Close()
			}

			loop := bisect.NewLoop(session, viewer, cmd.OutOrStdout(), cmd.ErrOrStderr(), ctx.newLogger(cmd))
			return loop.Run(in)
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort-by", "s", string(frameset.SortByTimestamp), "Sort frames by timestamp or sequence")
	cmd.Flags().StringVar(&viewerOverride, "viewer", "", "Viewer command (overrides configuration)")
	return cmd
}

// commandInput returns the stream interactive commands are read from. Frame
// paths arrive on stdin, so when stdin is a pipe the loop reopens the
// controlling terminal; tests and odd environments fall back to whatever is
// left on stdin.
func commandInput(cmd *cobra.Command) (io.Reader, io.Closer) {
	if stdin, ok := cmd.InOrStdin().(*os.File); !ok || stdin != os.Stdin {
		return cmd.InOrStdin(), nil
	}
	tty, err := os.Open("/dev/tty")
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: no controlling terminal; reading commands from stdin")
		return cmd.InOrStdin(), nil
	}
	return tty, tty
}
