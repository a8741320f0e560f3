// Package logging assembles structured slog loggers for captionkit.
//
// New and NewFromConfig pick between the console and JSON handlers and wire
// the configured outputs. WithContext tags a logger with the stage and
// correlation ID carried on a context, so every line from one compile run
// can be grouped. NewNop serves tests and library callers that do not want
// diagnostics.
package logging
