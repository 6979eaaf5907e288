package manifest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewRecord describes the user-supplied fields for a fresh segment entry.
type NewRecord struct {
	Filename  string
	Ratio     string
	StartTime string
	EndTime   string
	Notes     string
}

// Append validates fields, assigns an ID and the next sequence number, and
// adds the record to the manifest. Durations are computed when both
// timestamps are present.
func (m *Manifest) Append(record NewRecord) (Video, error) {
	filename := strings.TrimSpace(record.Filename)
	if filename == "" {
		return Video{}, fmt.Errorf("filename is required")
	}
	for _, existing := range m.Videos {
		if existing.Filename == filename {
			return Video{}, fmt.Errorf("manifest already contains %s", filename)
		}
	}

	video := Video{
		ID:        uuid.NewString(),
		Filename:  filename,
		Sequence:  m.NextSequence(),
		Ratio:     strings.TrimSpace(record.Ratio),
		StartTime: strings.TrimSpace(record.StartTime),
		EndTime:   strings.TrimSpace(record.EndTime),
		Notes:     strings.TrimSpace(record.Notes),
	}
	if video.StartTime != "" && video.EndTime != "" {
		seconds, err := DurationSeconds(video.StartTime, video.EndTime)
		if err != nil {
			return Video{}, err
		}
		video.DurationSeconds = seconds
		video.Duration = FormatDuration(seconds)
	}

	m.Videos = append(m.Videos, video)
	return video, nil
}
