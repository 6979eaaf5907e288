// Package manifest maintains the JSON document tracking recorded time-lapse
// video segments: filenames, capture windows, fermentation ratios, and
// computed durations.
//
// The manifest is shared with external tooling, so the on-disk format stays a
// flat JSON document with stable field order and two-space indentation. YAML
// input is accepted read-only for analysis. Read-modify-write passes go
// through Store, which holds a sidecar flock and saves atomically so
// concurrent invocations never corrupt the file.
package manifest
