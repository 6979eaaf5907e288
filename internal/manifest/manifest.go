package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Video is one recorded segment. ActiveStartTime and ActiveEndTime are always
// serialized, even when empty, so external tooling can rely on the keys being
// present.
type Video struct {
	ID              string `json:"id,omitempty" yaml:"id,omitempty"`
	Filename        string `json:"filename" yaml:"filename"`
	Sequence        int    `json:"sequence" yaml:"sequence"`
	Ratio           string `json:"ratio,omitempty" yaml:"ratio,omitempty"`
	StartTime       string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	ActiveStartTime string `json:"active_start_time" yaml:"active_start_time"`
	ActiveEndTime   string `json:"active_end_time" yaml:"active_end_time"`
	Duration        string `json:"duration,omitempty" yaml:"duration,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty" yaml:"duration_seconds,omitempty"`
	Notes           string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Manifest is the full segment record set.
type Manifest struct {
	Videos []Video `json:"videos" yaml:"videos"`
}

// Load reads a manifest from path. Files ending in .yml or .yaml parse as
// YAML; anything else parses as JSON first with a YAML fallback, so pipes and
// extensionless files still work.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses manifest bytes. ext (with leading dot, case-insensitive)
// guides format selection; pass "" to sniff.
func Decode(data []byte, ext string) (*Manifest, error) {
	var m Manifest
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse yaml manifest: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse json manifest: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &m); err != nil {
			if yamlErr := yaml.Unmarshal(data, &m); yamlErr != nil {
				return nil, fmt.Errorf("manifest is neither json (%v) nor yaml (%v)", err, yamlErr)
			}
		}
	}
	return &m, nil
}

// Encode renders the manifest in canonical on-disk form: two-space indented
// JSON with a trailing newline.
func Encode(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// NextSequence returns one past the highest sequence number in use, starting
// at 1 for an empty manifest.
func (m *Manifest) NextSequence() int {
	next := 1
	for _, video := range m.Videos {
		if video.Sequence >= next {
			next = video.Sequence + 1
		}
	}
	return next
}
