// Package transcript loads timed transcripts from disk into caption phrases.
//
// Supported inputs:
//   - WhisperX JSON (`segments[].words[]`), as written by `whisperx --output_format json`
//   - captionkit JSON or YAML with a top-level `phrases` or `words` list
//   - plain text, one phrase per line, timed evenly across a caller-supplied duration
//
// The format is chosen from the file extension unless Options.Format says
// otherwise. JSON payloads carrying `segments` are read as WhisperX.
package transcript
