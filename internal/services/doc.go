// Package services defines shared utilities consumed by the compiler, the
// transcript loaders, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp stage names and correlation identifiers for
//     logging.
//   - Structured error markers plus the Wrap helper that classify failures so
//     the CLI can map them onto distinct exit codes.
package services
