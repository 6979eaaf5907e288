package progress

import (
	"context"
	"time"
)

// Monitor periodically re-reads an encode log and reports the latest
// snapshot.
type Monitor struct {
	LogPath     string
	TotalFrames int
	Interval    time.Duration
}

// Run polls until ctx is cancelled, invoking report after every poll. The
// boolean passed to report is false while the log has no usable data yet.
// Cancellation is a clean stop, not an error.
func (m Monitor) Run(ctx context.Context, report func(Snapshot, bool)) error {
	interval := m.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Report immediately rather than waiting a full interval.
	snapshot, ok := ParseFile(m.LogPath, m.TotalFrames)
	report(snapshot, ok)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snapshot, ok := ParseFile(m.LogPath, m.TotalFrames)
			report(snapshot, ok)
		}
	}
}
