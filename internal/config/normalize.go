package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeViewer()
	c.normalizeEncode()
	c.normalizeProgress()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.Manifest = strings.TrimSpace(c.Paths.Manifest)
	if c.Paths.Manifest == "" {
		c.Paths.Manifest = defaultManifestPath
	}
	if c.Paths.Manifest, err = ExpandPath(c.Paths.Manifest); err != nil {
		return fmt.Errorf("paths.manifest: %w", err)
	}
	c.Paths.ProgressLog = strings.TrimSpace(c.Paths.ProgressLog)
	if c.Paths.ProgressLog == "" {
		c.Paths.ProgressLog = defaultProgressLog
	}
	if c.Paths.ProgressLog, err = ExpandPath(c.Paths.ProgressLog); err != nil {
		return fmt.Errorf("paths.progress_log: %w", err)
	}
	return nil
}

func (c *Config) normalizeViewer() {
	c.Viewer.Command = strings.TrimSpace(c.Viewer.Command)
	if value, ok := os.LookupEnv("WACKYWOLFFISH_VIEWER"); ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			c.Viewer.Command = trimmed
		}
	}
	if c.Viewer.Command == "" {
		c.Viewer.Command = defaultViewerCommand
	}
}

func (c *Config) normalizeEncode() {
	if c.Encode.FPS <= 0 {
		c.Encode.FPS = defaultEncodeFPS
	}
	c.Encode.Scale = strings.TrimSpace(c.Encode.Scale)
	if c.Encode.Scale == "" {
		c.Encode.Scale = defaultEncodeScale
	}
	c.Encode.Preset = strings.TrimSpace(c.Encode.Preset)
	if c.Encode.Preset == "" {
		c.Encode.Preset = defaultEncodePreset
	}
	if c.Encode.CRF <= 0 {
		c.Encode.CRF = defaultEncodeCRF
	}
	c.Encode.Output = strings.TrimSpace(c.Encode.Output)
	if c.Encode.Output == "" {
		c.Encode.Output = defaultEncodeOutput
	}
	c.Encode.DockerImage = strings.TrimSpace(c.Encode.DockerImage)
	if c.Encode.DockerImage == "" {
		c.Encode.DockerImage = defaultDockerImage
	}
	c.Encode.ContainerName = strings.TrimSpace(c.Encode.ContainerName)
	if c.Encode.ContainerName == "" {
		c.Encode.ContainerName = defaultContainerName
	}
}

func (c *Config) normalizeProgress() {
	if c.Progress.IntervalSeconds <= 0 {
		c.Progress.IntervalSeconds = defaultProgressInterval
	}
	if c.Progress.TotalFrames < 0 {
		c.Progress.TotalFrames = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
