// Package frameset parses and orders time-lapse still frames.
//
// Camera files follow the IMG_YYYYMMDD_HHMMSS_AATPNNNN naming convention: a
// capture timestamp plus a monotonically assigned shot sequence number. The
// package extracts both into Frame values and sorts collections either by
// sequence number alone or by timestamp with the sequence as tie-break. Names
// that do not match the convention are dropped, never errors; the caller
// decides whether an empty result is fatal.
package frameset
