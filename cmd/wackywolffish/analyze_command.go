package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gkwa/wackywolffish/internal/analyze"
	"github.com/gkwa/wackywolffish/internal/manifest"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "analyze <manifest>",
		Short: "Summarize starter peak times by feed ratio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(m.Videos) == 0 {
				fmt.Fprintln(out, "No videos found in the manifest file")
				return nil
			}

			groups := analyze.Groups(m)
			if len(groups) == 0 {
				fmt.Fprintln(out, "No valid duration data found")
				return nil
			}

			fmt.Fprintf(out, "Analyzing %d video records from %s\n\n", len(m.Videos), args[0])
			fmt.Fprintln(out, renderSummaryTable(groups))

			if detailed {
				for _, group := range groups {
					fmt.Fprintf(out, "\nRatio %s:\n", group.Ratio)
					fmt.Fprintln(out, renderDetailTable(group))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Show every record for each ratio")
	return cmd
}

func renderSummaryTable(groups []analyze.Group) string {
	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		rangeHuman := "0m"
		if group.RangeSeconds() > 0 {
			rangeHuman = manifest.FormatDurationRounded(group.RangeSeconds())
		}
		rows = append(rows, []string{
			group.Ratio,
			strconv.Itoa(group.Count()),
			manifest.FormatDurationRounded(int(group.AvgSeconds)),
			manifest.FormatDurationRounded(group.MinSeconds),
			manifest.FormatDurationRounded(group.MaxSeconds),
			rangeHuman,
		})
	}
	return renderTable(
		"Sourdough Starter Peak Times by Ratio",
		[]string{"Ratio", "Count", "Avg Peak Time", "Min Peak Time", "Max Peak Time", "Range"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
	)
}

func renderDetailTable(group analyze.Group) string {
	rows := make([][]string, 0, len(group.Videos))
	for _, video := range group.Videos {
		rows = append(rows, []string{
			strconv.Itoa(video.Sequence),
			orNA(video.StartTime),
			orNA(video.EndTime),
			manifest.FormatDurationRounded(video.DurationSeconds),
			truncateNotes(video.Notes, 50),
		})
	}
	return renderTable(
		"",
		[]string{"Sequence", "Start Time", "Peak Time", "Duration", "Notes"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func truncateNotes(notes string, limit int) string {
	if len(notes) <= limit {
		return notes
	}
	return notes[:limit] + "..."
}
