package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkwa/wackywolffish/internal/testsupport"
)

// Command-level bisect tests feed paths through the test stdin; with no
// controlling terminal involved the loop then sees end-of-input, which exits
// cleanly after the opening report. Interactive narrowing is covered by the
// internal/bisect loop tests.
func TestBisectCommandStartsSessionFromStdin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	paths := testsupport.WriteFrames(t, dir,
		"IMG_20250728_115806_AATP1401.jpg",
		"IMG_20250728_115856_AATP1402.jpg",
		"IMG_20250728_115906_AATP1403.jpg",
	)
	input := strings.Join(paths, "\n") + "\n"

	out, errOut, err := execute(t, strings.NewReader(input), "bisect", "--viewer", "true")
	if err != nil {
		t.Fatalf("bisect failed: %v (stderr: %q)", err, errOut)
	}
	if !strings.Contains(out, "Loaded 3 images") {
		t.Fatalf("missing banner: %q", out)
	}
	if !strings.Contains(out, "Range: [0, 2], Current: 1") {
		t.Fatalf("missing initial range: %q", out)
	}
	if !strings.Contains(out, "[2/3] "+paths[1]) {
		t.Fatalf("missing position line: %q", out)
	}
}

func TestBisectCommandNoValidPaths(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	input := filepath.Join(t.TempDir(), "missing.jpg") + "\n"
	_, _, err := execute(t, strings.NewReader(input), "bisect")
	if err == nil {
		t.Fatal("expected error with no usable paths")
	}
	if !strings.Contains(err.Error(), "no valid image paths") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBisectCommandNoParseableNames(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "vacation.jpg")
	testsupport.WriteFile(t, path, 1)

	_, _, err := execute(t, strings.NewReader(path+"\n"), "bisect")
	if err == nil {
		t.Fatal("expected error when nothing parses")
	}
	if !strings.Contains(err.Error(), "valid capture names") {
		t.Fatalf("unexpected error: %v", err)
	}
}
