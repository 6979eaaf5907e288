package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gkwa/wackywolffish/internal/frameset"
	"github.com/gkwa/wackywolffish/internal/scriptgen"
)

func newScriptCommand(ctx *commandContext) *cobra.Command {
	var output string
	var sortBy string

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Generate a dockerized ffmpeg encode script from frame paths on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			mode, err := frameset.ParseSortMode(sortBy)
			if err != nil {
				return err
			}

			paths, err := frameset.ReadLines(cmd.InOrStdin())
			if err != nil {
				return err
			}
			frames := frameset.FromPaths(paths, mode)
			if len(frames) == 0 {
				return fmt.Errorf("no matching image files found in input")
			}

			params := scriptgen.Params{
				Frames:        frames,
				FPS:           cfg.Encode.FPS,
				Scale:         cfg.Encode.Scale,
				Preset:        cfg.Encode.Preset,
				CRF:           cfg.Encode.CRF,
				Output:        cfg.Encode.Output,
				DockerImage:   cfg.Encode.DockerImage,
				ContainerName: cfg.Encode.ContainerName,
			}
			if err := scriptgen.Write(output, params); err != nil {
				return err
			}

			// Summaries go to stderr so stdout stays free for pipelines.
			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "Generated %s with %s files sorted by %s\n",
				output, humanize.Comma(int64(len(frames))), describeSortMode(mode))
			fmt.Fprintf(errOut, "Files sorted from %s to %s\n",
				frames[0].Name(), frames[len(frames)-1].Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "run_ffmpeg.sh", "Output bash script")
	cmd.Flags().StringVarP(&sortBy, "sort-by", "s", string(frameset.SortBySequence), "Sort frames by sequence or timestamp")
	return cmd
}
