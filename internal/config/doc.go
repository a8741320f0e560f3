// Package config loads, normalizes, and validates captionkit configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CAPTIONKIT_FFPROBE. The Config type centralizes caption styling, the
// fallback canvas, external tool names, and logging so the CLI can resolve
// every knob in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
