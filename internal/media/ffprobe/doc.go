// Package ffprobe wraps the ffprobe JSON report for the few facts caption
// compilation needs from a video: its display dimensions and its duration.
//
// Inspect runs the binary; Parse decodes a payload that was captured some
// other way. Rotation metadata is honored, so phone footage recorded in
// portrait reports portrait dimensions.
package ffprobe
