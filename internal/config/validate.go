package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncode(); err != nil {
		return err
	}
	if err := c.validateProgress(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEncode() error {
	if c.Encode.CRF < 0 || c.Encode.CRF > 51 {
		return fmt.Errorf("encode.crf must be between 0 and 51, got %d", c.Encode.CRF)
	}
	switch c.Encode.Preset {
	case "ultrafast", "superfast", "veryfast", "faster", "fast", "medium", "slow", "slower", "veryslow":
	default:
		return fmt.Errorf("encode.preset %q is not a valid libx264 preset", c.Encode.Preset)
	}
	if c.Encode.FPS > 240 {
		return fmt.Errorf("encode.fps %d is out of range", c.Encode.FPS)
	}
	return nil
}

func (c *Config) validateProgress() error {
	if c.Progress.TotalFrames < 0 {
		return errors.New("progress.total_frames must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
