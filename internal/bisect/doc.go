// Package bisect implements an interactive binary search over a sorted frame
// catalog, used to pinpoint the moment of interest in a long time-lapse run
// by eye.
//
// A Session holds the search window plus a history stack of prior windows.
// Each narrowing command pushes the outgoing state, so any number of moves can
// be undone atomically. Surfacing the current frame to the user goes through
// the Viewer interface; the production viewer shells out to a configurable
// image viewer, and tests substitute a recorder.
package bisect
