// Package analyze summarizes manifest records by fermentation ratio: how long
// each starter mix took to peak, aggregated across recorded segments.
package analyze

import (
	"sort"

	"github.com/gkwa/wackywolffish/internal/manifest"
)

// UnknownRatio labels records with no ratio field.
const UnknownRatio = "unknown"

// Group aggregates the records sharing one ratio.
type Group struct {
	Ratio      string
	Videos     []manifest.Video
	AvgSeconds float64
	MinSeconds int
	MaxSeconds int
}

// Count returns how many records the group holds, including ones without
// duration data.
func (g Group) Count() int {
	return len(g.Videos)
}

// RangeSeconds is the spread between the slowest and fastest peak.
func (g Group) RangeSeconds() int {
	return g.MaxSeconds - g.MinSeconds
}

// Groups buckets records by ratio and computes duration statistics. Groups
// with no duration data at all are dropped, matching records are kept inside
// surviving groups. The result is sorted by ratio with UnknownRatio last.
func Groups(m *manifest.Manifest) []Group {
	buckets := make(map[string][]manifest.Video)
	for _, video := range m.Videos {
		ratio := video.Ratio
		if ratio == "" {
			ratio = UnknownRatio
		}
		buckets[ratio] = append(buckets[ratio], video)
	}

	groups := make([]Group, 0, len(buckets))
	for ratio, videos := range buckets {
		group := Group{Ratio: ratio, Videos: videos}
		total := 0
		counted := 0
		for _, video := range videos {
			if video.DurationSeconds <= 0 {
				continue
			}
			if counted == 0 || video.DurationSeconds < group.MinSeconds {
				group.MinSeconds = video.DurationSeconds
			}
			if video.DurationSeconds > group.MaxSeconds {
				group.MaxSeconds = video.DurationSeconds
			}
			total += video.DurationSeconds
			counted++
		}
		if counted == 0 {
			continue
		}
		group.AvgSeconds = float64(total) / float64(counted)
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return sortKey(groups[i].Ratio) < sortKey(groups[j].Ratio)
	})
	return groups
}

// sortKey pushes the unknown bucket past every real ratio.
func sortKey(ratio string) string {
	if ratio == UnknownRatio {
		return "\xff"
	}
	return ratio
}
