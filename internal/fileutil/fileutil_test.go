package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkwa/wackywolffish/internal/fileutil"
)

func TestWriteFileAtomicReplacesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("new contents\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "new contents\n" {
		t.Fatalf("unexpected contents: %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no temp file leftovers, found %d entries", len(entries))
	}
}

func TestWriteExecutableSetsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.sh")
	if err := fileutil.WriteExecutable(path, []byte("#!/bin/bash\n")); err != nil {
		t.Fatalf("WriteExecutable: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("unexpected mode: %v", info.Mode().Perm())
	}
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	if fileutil.IsRegularFile(dir) {
		t.Fatal("directory reported as regular file")
	}
	if fileutil.IsRegularFile(filepath.Join(dir, "missing")) {
		t.Fatal("missing path reported as regular file")
	}
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !fileutil.IsRegularFile(path) {
		t.Fatal("regular file not detected")
	}
}
