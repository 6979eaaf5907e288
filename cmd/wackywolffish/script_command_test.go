package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScriptCommandGeneratesExecutable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	input := strings.Join([]string{
		"/shots/IMG_20250728_115906_AATP1402.jpg",
		"",
		"/shots/IMG_20250728_115856_AATP1401.jpg",
		"/shots/vacation.png",
	}, "\n")
	output := filepath.Join(t.TempDir(), "run_ffmpeg.sh")

	out, errOut, err := execute(t, strings.NewReader(input), "script", "-o", output)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if out != "" {
		t.Fatalf("stdout should stay empty for pipelines, got %q", out)
	}
	if !strings.Contains(errOut, "with 2 files sorted by sequence number") {
		t.Fatalf("unexpected summary: %q", errOut)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("stat script: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("script not executable: %v", info.Mode().Perm())
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read script: %v", err)
	}
	body := string(data)
	for _, want := range []string{
		"file /input/IMG_20250728_115856_AATP1401.jpg",
		"file /input/IMG_20250728_115906_AATP1402.jpg",
		"docker run --rm --name wackywolffish",
		"-v /shots:/input",
		"-crf 28",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("script missing %q:\n%s", want, body)
		}
	}
}

func TestScriptCommandNoUsableInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, _, err := execute(t, strings.NewReader("/shots/vacation.png\n"), "script", "-o", filepath.Join(t.TempDir(), "x.sh")); err == nil {
		t.Fatal("expected error when nothing parses")
	}
}
