// Package main hosts the captionkit CLI entrypoint and command graph.
//
// The Cobra command tree loads a transcript, resolves the caption settings
// from configuration and flags, and writes an animated .ass subtitle file.
// Supporting commands list the position zones and style presets, check the
// optional ffprobe/ffmpeg binaries, and scaffold or inspect configuration.
//
// Errors carry the services markers so the process exits with a sysexits(3)
// status that scripts can branch on.
package main
