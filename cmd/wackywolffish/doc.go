// Package main hosts the wackywolffish CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the time-lapse workflow end to end:
// sorting captured frames, generating the dockerized ffmpeg encode script,
// bisecting a frame sequence by eye, maintaining the segment manifest, and
// monitoring encode progress. It centralizes configuration resolution and
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
