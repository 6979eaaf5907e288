// Package progress estimates completion time for a running ffmpeg encode by
// polling the log file it writes. ffmpeg appends stats lines of the form
// "frame= 1234 fps=12.3 ... speed=1.02x"; the latest values plus an expected
// total frame count give percent complete, remaining time, and a wall-clock
// ETA.
package progress

import (
	"os"
	"regexp"
	"strconv"
	"time"
)

var (
	framePattern = regexp.MustCompile(`frame=\s*(\d+)`)
	fpsPattern   = regexp.MustCompile(`fps=\s*([\d.]+)`)
	speedPattern = regexp.MustCompile(`speed=\s*([\d.]+)x`)
)

// Snapshot is the most recent state scraped from the encode log.
type Snapshot struct {
	Frame       int
	FPS         float64
	Speed       float64
	HasSpeed    bool
	TotalFrames int
}

// Percent is the completion percentage, 0 when the total is unknown.
func (s Snapshot) Percent() float64 {
	if s.TotalFrames <= 0 {
		return 0
	}
	return float64(s.Frame) / float64(s.TotalFrames) * 100
}

// Remaining estimates time left at the current encode rate. The second return
// value is false when the rate is zero or the total is unknown.
func (s Snapshot) Remaining() (time.Duration, bool) {
	if s.FPS <= 0 || s.TotalFrames <= 0 {
		return 0, false
	}
	frames := s.TotalFrames - s.Frame
	if frames < 0 {
		frames = 0
	}
	seconds := float64(frames) / s.FPS
	return time.Duration(seconds * float64(time.Second)), true
}

// ETA is the projected wall-clock completion time relative to now.
func (s Snapshot) ETA(now time.Time) (time.Time, bool) {
	remaining, ok := s.Remaining()
	if !ok {
		return time.Time{}, false
	}
	return now.Add(remaining), true
}

// Parse scrapes the last frame/fps/speed values out of log content. The
// second return value is false when no usable stats exist yet.
func Parse(content []byte, totalFrames int) (Snapshot, bool) {
	frameMatches := framePattern.FindAllSubmatch(content, -1)
	if len(frameMatches) == 0 {
		return Snapshot{}, false
	}
	fpsMatches := fpsPattern.FindAllSubmatch(content, -1)
	if len(fpsMatches) == 0 {
		return Snapshot{}, false
	}

	frame, err := strconv.Atoi(string(frameMatches[len(frameMatches)-1][1]))
	if err != nil {
		return Snapshot{}, false
	}
	fps, err := strconv.ParseFloat(string(fpsMatches[len(fpsMatches)-1][1]), 64)
	if err != nil {
		return Snapshot{}, false
	}

	snapshot := Snapshot{Frame: frame, FPS: fps, TotalFrames: totalFrames}
	if speedMatches := speedPattern.FindAllSubmatch(content, -1); len(speedMatches) > 0 {
		if speed, err := strconv.ParseFloat(string(speedMatches[len(speedMatches)-1][1]), 64); err == nil {
			snapshot.Speed = speed
			snapshot.HasSpeed = true
		}
	}
	return snapshot, true
}

// ParseFile reads and parses the encode log. A missing or empty file is not
// an error; the boolean is simply false.
func ParseFile(path string, totalFrames int) (Snapshot, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, false
	}
	return Parse(content, totalFrames)
}
