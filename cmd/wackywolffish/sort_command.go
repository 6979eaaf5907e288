package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gkwa/wackywolffish/internal/fileutil"
	"github.com/gkwa/wackywolffish/internal/frameset"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	var output string
	var sortBy string

	cmd := &cobra.Command{
		Use:   "sort <directory>",
		Short: "Sort captured frames and write an ffmpeg concat list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := frameset.ParseSortMode(sortBy)
			if err != nil {
				return err
			}

			frames, err := frameset.ScanDir(args[0], mode)
			if err != nil {
				return err
			}
			if len(frames) == 0 {
				return fmt.Errorf("no matching image files found in %q", args[0])
			}

			list := frameset.ConcatList(frames, "/input")
			if err := fileutil.WriteFileAtomic(output, []byte(list), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated %s with %s files sorted by %s\n",
				output, humanize.Comma(int64(len(frames))), describeSortMode(mode))
			fmt.Fprintf(out, "Files sorted from %s to %s\n",
				frames[0].Name(), frames[len(frames)-1].Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "ffmpeg_list.txt", "Output file")
	cmd.Flags().StringVarP(&sortBy, "sort-by", "s", string(frameset.SortBySequence), "Sort frames by sequence or timestamp")
	return cmd
}

func describeSortMode(mode frameset.SortMode) string {
	if mode == frameset.SortBySequence {
		return "sequence number"
	}
	return "timestamp"
}
