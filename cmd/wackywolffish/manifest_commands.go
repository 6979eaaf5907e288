package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gkwa/wackywolffish/internal/config"
	"github.com/gkwa/wackywolffish/internal/manifest"
)

func newManifestCommand(ctx *commandContext) *cobra.Command {
	manifestCmd := &cobra.Command{
		Use:   "manifest",
		Short: "Maintain the recorded segment manifest",
	}

	manifestCmd.AddCommand(newManifestFixCommand(ctx))
	manifestCmd.AddCommand(newManifestDurationsCommand(ctx))
	manifestCmd.AddCommand(newManifestAddCommand(ctx))

	return manifestCmd
}

func resolveManifestPath(ctx *commandContext, override string) (string, error) {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return config.ExpandPath(trimmed)
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Paths.Manifest, nil
}

func newManifestFixCommand(ctx *commandContext) *cobra.Command {
	var manifestPath string
	var directory string

	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Backfill missing manifest keys and report drift against disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveManifestPath(ctx, manifestPath)
			if err != nil {
				return err
			}
			dir, err := config.ExpandPath(directory)
			if err != nil {
				return err
			}
			if _, err := os.Stat(dir); err != nil {
				return fmt.Errorf("directory %s does not exist", dir)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("manifest file %s does not exist", path)
				}
				return fmt.Errorf("read manifest: %w", err)
			}
			missingKeys := manifest.CountMissingActiveTimes(raw)

			store := manifest.NewStore(path)
			var report manifest.DriftReport
			err = store.Update(func(m *manifest.Manifest) error {
				// Saving through the typed manifest backfills the
				// active time keys and canonicalizes formatting.
				report, err = manifest.Reconcile(m, dir)
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if missingKeys > 0 {
				fmt.Fprintln(out, "Updated manifest with missing timestamp keys")
			}
			if len(report.MissingFromDisk) > 0 {
				fmt.Fprintln(out, "MP4 files in manifest but missing from disk:")
				for _, name := range report.MissingFromDisk {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}
			if len(report.MissingFromManifest) > 0 {
				fmt.Fprintln(out, "MP4 files on disk but missing from manifest:")
				for _, name := range report.MissingFromManifest {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to manifest file (defaults to configuration)")
	cmd.Flags().StringVar(&directory, "directory", ".", "Directory to scan for MP4 files")
	return cmd
}

func newManifestDurationsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "durations [manifest]",
		Short: "Recompute duration fields from start/end timestamps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override := ""
			if len(args) == 1 {
				override = args[0]
			}
			path, err := resolveManifestPath(ctx, override)
			if err != nil {
				return err
			}

			store := manifest.NewStore(path)
			var updates []manifest.DurationUpdate
			err = store.Update(func(m *manifest.Manifest) error {
				updates, err = manifest.UpdateDurations(m)
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, update := range updates {
				name := update.Filename
				if name == "" {
					name = "unknown"
				}
				fmt.Fprintf(out, "Updated %s: %s (%ds)\n", name, update.Duration, update.DurationSeconds)
			}
			fmt.Fprintf(out, "\nUpdated %d video entries in %s\n", len(updates), path)
			return nil
		},
	}
}

func newManifestAddCommand(ctx *commandContext) *cobra.Command {
	var record manifest.NewRecord
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new segment record to the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveManifestPath(ctx, manifestPath)
			if err != nil {
				return err
			}

			store := manifest.NewStore(path)
			var added manifest.Video
			err = store.Update(func(m *manifest.Manifest) error {
				added, err = m.Append(record)
				return err
			})
			if errors.Is(err, manifest.ErrNotFound) {
				// First record: start a fresh manifest.
				fresh := &manifest.Manifest{}
				if added, err = fresh.Append(record); err != nil {
					return err
				}
				if err := store.Create(fresh); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s as sequence %d (id %s)\n", added.Filename, added.Sequence, added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to manifest file (defaults to configuration)")
	cmd.Flags().StringVar(&record.Filename, "filename", "", "Rendered video filename (required)")
	cmd.Flags().StringVar(&record.Ratio, "ratio", "", "Starter feed ratio, e.g. 1:5:5")
	cmd.Flags().StringVar(&record.StartTime, "start", "", "Segment start timestamp")
	cmd.Flags().StringVar(&record.EndTime, "end", "", "Segment end timestamp")
	cmd.Flags().StringVar(&record.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("filename")
	return cmd
}
