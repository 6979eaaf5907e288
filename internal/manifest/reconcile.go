package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CountMissingActiveTimes inspects raw manifest JSON and reports how many
// records lack the active_start_time or active_end_time keys. Records created
// before those fields existed omit them entirely; re-saving through the typed
// Manifest backfills both as empty strings.
func CountMissingActiveTimes(data []byte) int {
	var raw struct {
		Videos []map[string]json.RawMessage `json:"videos"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0
	}
	missing := 0
	for _, record := range raw.Videos {
		_, hasStart := record["active_start_time"]
		_, hasEnd := record["active_end_time"]
		if !hasStart || !hasEnd {
			missing++
		}
	}
	return missing
}

// DriftReport lists disagreements between the manifest and a directory of
// rendered videos.
type DriftReport struct {
	// MissingFromDisk are manifest filenames with no matching file.
	MissingFromDisk []string
	// MissingFromManifest are on-disk .mp4 files the manifest does not know.
	MissingFromManifest []string
}

// Empty reports whether manifest and disk agree.
func (r DriftReport) Empty() bool {
	return len(r.MissingFromDisk) == 0 && len(r.MissingFromManifest) == 0
}

// Reconcile compares the manifest against the .mp4 files in dir. Both result
// lists come back sorted.
func Reconcile(m *Manifest, dir string) (DriftReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return DriftReport{}, fmt.Errorf("read directory %s: %w", dir, err)
	}

	onDisk := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			onDisk[entry.Name()] = struct{}{}
		}
	}

	var report DriftReport
	inManifest := make(map[string]struct{}, len(m.Videos))
	for _, video := range m.Videos {
		if video.Filename == "" {
			continue
		}
		inManifest[video.Filename] = struct{}{}
		if _, ok := onDisk[video.Filename]; !ok {
			report.MissingFromDisk = append(report.MissingFromDisk, video.Filename)
		}
	}
	for name := range onDisk {
		if _, ok := inManifest[name]; !ok {
			report.MissingFromManifest = append(report.MissingFromManifest, name)
		}
	}

	sort.Strings(report.MissingFromDisk)
	sort.Strings(report.MissingFromManifest)
	return report, nil
}
