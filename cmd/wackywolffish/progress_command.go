package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gkwa/wackywolffish/internal/config"
	"github.com/gkwa/wackywolffish/internal/progress"
)

func newProgressCommand(ctx *commandContext) *cobra.Command {
	var logPath string
	var totalFrames int

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Monitor a running ffmpeg encode and estimate completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.Paths.ProgressLog
			if trimmed := strings.TrimSpace(logPath); trimmed != "" {
				if path, err = config.ExpandPath(trimmed); err != nil {
					return err
				}
			}
			total := cfg.Progress.TotalFrames
			if totalFrames > 0 {
				total = totalFrames
			}
			if total <= 0 {
				return errors.New("total frame count required: pass --total-frames or set progress.total_frames")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "FFmpeg Progress Monitor")
			fmt.Fprintln(out, "======================")
			fmt.Fprintf(out, "Total frames to process: %d\n", total)
			fmt.Fprintln(out, "Press Ctrl+C to stop monitoring")
			fmt.Fprintln(out)

			bar := progressbar.NewOptions(total,
				progressbar.OptionSetWriter(out),
				progressbar.OptionSetDescription("waiting for progress data"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(30),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer: "=", SaucerHead: ">", SaucerPadding: " ", BarStart: "[", BarEnd: "]",
				}),
			)

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			monitor := progress.Monitor{
				LogPath:     path,
				TotalFrames: total,
				Interval:    time.Duration(cfg.Progress.IntervalSeconds) * time.Second,
			}
			err = monitor.Run(runCtx, func(snapshot progress.Snapshot, ok bool) {
				if !ok {
					bar.Describe("waiting for progress data")
					return
				}
				_ = bar.Set(snapshot.Frame)
				if remaining, known := snapshot.Remaining(); known {
					eta, _ := snapshot.ETA(time.Now())
					bar.Describe(fmt.Sprintf("%.1f fps | remaining %s | ETA %s",
						snapshot.FPS, formatRemaining(remaining), eta.Format("15:04:05")))
				} else {
					bar.Describe(fmt.Sprintf("frame %d | calculating...", snapshot.Frame))
				}
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Monitoring stopped.")
			return nil
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "ffmpeg progress log to poll (defaults to configuration)")
	cmd.Flags().IntVar(&totalFrames, "total-frames", 0, "Expected frame count")
	return cmd
}

func formatRemaining(d time.Duration) string {
	seconds := int(d.Seconds())
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	default:
		return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
	}
}
