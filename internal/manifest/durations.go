package manifest

import (
	"fmt"
	"time"
)

// timestampLayouts are the accepted manifest timestamp forms, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a manifest timestamp string.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// DurationSeconds computes the whole-second span between two timestamp
// strings.
func DurationSeconds(start, end string) (int, error) {
	startTS, err := ParseTimestamp(start)
	if err != nil {
		return 0, fmt.Errorf("start_time: %w", err)
	}
	endTS, err := ParseTimestamp(end)
	if err != nil {
		return 0, fmt.Errorf("end_time: %w", err)
	}
	return int(endTS.Sub(startTS).Seconds()), nil
}

// FormatDuration renders seconds as the manifest's human form: "7h45m", "7h",
// "45m", or "12s". Minutes and hours truncate; sub-minute spans show seconds.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds%60)
	}
}

// FormatDurationRounded is the display variant used by analysis output: spans
// with more than 30 leftover seconds round the minute up, rolling into the
// next hour when needed.
func FormatDurationRounded(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	leftover := seconds % 60

	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}
	if minutes > 0 {
		if leftover > 30 {
			minutes++
			if minutes == 60 {
				return "1h"
			}
		}
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%ds", leftover)
}

// DurationUpdate describes one recomputed record.
type DurationUpdate struct {
	Filename        string
	Duration        string
	DurationSeconds int
}

// UpdateDurations recomputes duration fields for every record carrying both
// start and end timestamps. Records missing either timestamp are left alone.
// Unparseable timestamps abort the pass so a half-updated manifest is never
// written.
func UpdateDurations(m *Manifest) ([]DurationUpdate, error) {
	var updates []DurationUpdate
	for i := range m.Videos {
		video := &m.Videos[i]
		if video.StartTime == "" || video.EndTime == "" {
			continue
		}
		seconds, err := DurationSeconds(video.StartTime, video.EndTime)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", video.Filename, err)
		}
		video.DurationSeconds = seconds
		video.Duration = FormatDuration(seconds)
		updates = append(updates, DurationUpdate{
			Filename:        video.Filename,
			Duration:        video.Duration,
			DurationSeconds: seconds,
		})
	}
	return updates, nil
}
