// Package config loads, normalizes, and validates wackywolffish configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// WACKYWOLFFISH_VIEWER. The Config type centralizes every knob the commands
// need: manifest location, viewer invocation, encode parameters for generated
// ffmpeg scripts, and progress monitor settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical values, and clear validation errors.
package config
