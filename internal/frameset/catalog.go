package frameset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gkwa/wackywolffish/internal/fileutil"
)

// SortMode selects the ordering applied to a frame collection.
type SortMode string

const (
	// SortBySequence orders frames by shot counter alone.
	SortBySequence SortMode = "sequence"
	// SortByTimestamp orders frames by capture time, sequence as tie-break.
	SortByTimestamp SortMode = "timestamp"
)

// ParseSortMode validates a user-supplied sort mode string.
func ParseSortMode(value string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(value))) {
	case SortBySequence:
		return SortBySequence, nil
	case SortByTimestamp:
		return SortByTimestamp, nil
	default:
		return "", fmt.Errorf("sort mode must be %q or %q, got %q", SortBySequence, SortByTimestamp, value)
	}
}

// Sort orders frames in place according to mode. The sort is stable, so input
// order breaks remaining ties.
func Sort(frames []Frame, mode SortMode) {
	sort.SliceStable(frames, func(i, j int) bool {
		if mode == SortBySequence {
			return frames[i].Sequence < frames[j].Sequence
		}
		if frames[i].Timestamp() != frames[j].Timestamp() {
			return frames[i].Timestamp() < frames[j].Timestamp()
		}
		return frames[i].Sequence < frames[j].Sequence
	})
}

// ScanDir collects frames from .jpg files directly inside dir (no recursion)
// and returns them sorted by mode. Files that do not parse are skipped.
func ScanDir(dir string, mode SortMode) ([]Frame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	frames := make([]Frame, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "IMG_") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".jpg") {
			continue
		}
		if frame, ok := Parse(filepath.Join(dir, name)); ok {
			frames = append(frames, frame)
		}
	}

	Sort(frames, mode)
	return frames, nil
}

// ReadLines collects non-blank lines from a line-oriented stream.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return lines, nil
}

// ReadPaths collects candidate paths from a line-oriented stream, skipping
// blank lines and anything that is not an existing regular file.
func ReadPaths(r io.Reader) ([]string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	paths := lines[:0]
	for _, line := range lines {
		if fileutil.IsRegularFile(line) {
			paths = append(paths, line)
		}
	}
	if len(paths) == 0 {
		return nil, nil
	}
	return paths, nil
}

// FromPaths parses each path and returns the surviving frames sorted by mode.
func FromPaths(paths []string, mode SortMode) []Frame {
	frames := make([]Frame, 0, len(paths))
	for _, path := range paths {
		if frame, ok := Parse(path); ok {
			frames = append(frames, frame)
		}
	}
	Sort(frames, mode)
	return frames
}

// ConcatList renders frames as an ffmpeg concat demuxer list, with each entry
// rewritten under mountPrefix (the in-container mount point).
func ConcatList(frames []Frame, mountPrefix string) string {
	var b strings.Builder
	for _, frame := range frames {
		b.WriteString("file ")
		b.WriteString(mountPrefix + "/" + frame.Name())
		b.WriteByte('\n')
	}
	return b.String()
}

// MountDirs returns the sorted set of parent directories covering frames.
func MountDirs(frames []Frame) []string {
	seen := make(map[string]struct{}, len(frames))
	var dirs []string
	for _, frame := range frames {
		dir := filepath.Dir(frame.Path)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
