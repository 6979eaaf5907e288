package frameset

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// framePattern matches IMG_YYYYMMDD_HHMMSS_AATPNNNN.<ext> basenames. The
// extension is deliberately unchecked; directory scans filter extensions
// before parsing.
var framePattern = regexp.MustCompile(`IMG_(\d{8})_(\d{6})_AATP(\d+)\.`)

// Frame is one parsed still image. Immutable once constructed.
type Frame struct {
	// Path is the original filesystem path the frame was parsed from.
	Path string
	// Date and Time are the raw YYYYMMDD and HHMMSS capture components.
	Date string
	Time string
	// Sequence is the shot counter with the AATP prefix stripped.
	Sequence int
}

// Timestamp returns the combined sortable capture timestamp, e.g.
// "20250728_115906". Lexicographic order equals chronological order.
func (f Frame) Timestamp() string {
	return f.Date + "_" + f.Time
}

// Name returns the frame's basename.
func (f Frame) Name() string {
	return filepath.Base(f.Path)
}

// Parse extracts a Frame from path's basename. The second return value is
// false when the name does not follow the capture convention.
func Parse(path string) (Frame, bool) {
	match := framePattern.FindStringSubmatch(filepath.Base(path))
	if match == nil {
		return Frame{}, false
	}
	sequence, err := strconv.Atoi(match[3])
	if err != nil {
		return Frame{}, false
	}
	return Frame{
		Path:     path,
		Date:     match[1],
		Time:     match[2],
		Sequence: sequence,
	}, true
}
