package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkwa/wackywolffish/internal/manifest"
	"github.com/gkwa/wackywolffish/internal/testsupport"
)

const legacyManifest = `{
  "videos": [
    {
      "filename": "sequence-001.mp4",
      "sequence": 1,
      "ratio": "1:1:1",
      "start_time": "2025-07-28T08:00:00",
      "end_time": "2025-07-28T15:45:00"
    },
    {
      "filename": "sequence-002.mp4",
      "sequence": 2,
      "active_start_time": "",
      "active_end_time": ""
    }
  ]
}
`

func TestManifestFixBackfillsKeysAndReportsDrift(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	path := testsupport.WriteManifest(t, filepath.Join(dir, "manifest.json"), legacyManifest)
	testsupport.WriteFile(t, filepath.Join(dir, "sequence-001.mp4"), 1)
	testsupport.WriteFile(t, filepath.Join(dir, "stray.mp4"), 1)

	out, _, err := execute(t, nil, "manifest", "fix", "--manifest", path, "--directory", dir)
	if err != nil {
		t.Fatalf("fix failed: %v", err)
	}
	if !strings.Contains(out, "Updated manifest with missing timestamp keys") {
		t.Fatalf("missing backfill notice: %q", out)
	}
	if !strings.Contains(out, "MP4 files in manifest but missing from disk:") ||
		!strings.Contains(out, "  sequence-002.mp4") {
		t.Fatalf("missing drift report: %q", out)
	}
	if !strings.Contains(out, "MP4 files on disk but missing from manifest:") ||
		!strings.Contains(out, "  stray.mp4") {
		t.Fatalf("missing stray report: %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if manifest.CountMissingActiveTimes(data) != 0 {
		t.Fatalf("keys not backfilled:\n%s", data)
	}
}

func TestManifestFixMissingManifest(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	_, _, err := execute(t, nil, "manifest", "fix", "--manifest", filepath.Join(dir, "absent.json"), "--directory", dir)
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestManifestDurationsUpdatesRecords(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := testsupport.WriteManifest(t, filepath.Join(t.TempDir(), "manifest.json"), legacyManifest)

	out, _, err := execute(t, nil, "manifest", "durations", path)
	if err != nil {
		t.Fatalf("durations failed: %v", err)
	}
	if !strings.Contains(out, "Updated sequence-001.mp4: 7h45m (27900s)") {
		t.Fatalf("missing per-record line: %q", out)
	}
	if !strings.Contains(out, "Updated 1 video entries in "+path) {
		t.Fatalf("missing summary: %q", out)
	}

	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if m.Videos[0].DurationSeconds != 27900 || m.Videos[0].Duration != "7h45m" {
		t.Fatalf("durations not persisted: %+v", m.Videos[0])
	}
	if m.Videos[1].DurationSeconds != 0 {
		t.Fatal("record without timestamps should stay untouched")
	}
}

func TestManifestAddAppendsRecord(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := testsupport.WriteManifest(t, filepath.Join(t.TempDir(), "manifest.json"), legacyManifest)

	out, _, err := execute(t, nil, "manifest", "add",
		"--manifest", path,
		"--filename", "sequence-003.mp4",
		"--ratio", "1:5:5",
		"--start", "2025-07-29T08:00:00",
		"--end", "2025-07-29T11:30:00",
	)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Added sequence-003.mp4 as sequence 3") {
		t.Fatalf("unexpected output: %q", out)
	}

	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(m.Videos) != 3 {
		t.Fatalf("expected 3 records, got %d", len(m.Videos))
	}
	added := m.Videos[2]
	if added.ID == "" || added.Duration != "3h30m" {
		t.Fatalf("unexpected record: %+v", added)
	}
}

func TestManifestAddCreatesFreshManifest(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "manifest.json")
	_, _, err := execute(t, nil, "manifest", "add", "--manifest", path, "--filename", "first.mp4")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("load created manifest: %v", err)
	}
	if len(m.Videos) != 1 || m.Videos[0].Sequence != 1 {
		t.Fatalf("unexpected manifest: %+v", m)
	}
}

func TestManifestAddRejectsDuplicate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := testsupport.WriteManifest(t, filepath.Join(t.TempDir(), "manifest.json"), legacyManifest)
	_, _, err := execute(t, nil, "manifest", "add", "--manifest", path, "--filename", "sequence-001.mp4")
	if err == nil {
		t.Fatal("expected duplicate rejection")
	}
}
