package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WhisperXSample is a two-segment WhisperX transcript with word timings.
const WhisperXSample = `{
  "segments": [
    {
      "text": " Hello world.",
      "start": 0.0,
      "end": 1.0,
      "words": [
        {"word": "Hello", "start": 0.0, "end": 0.5, "score": 0.99},
        {"word": "world.", "start": 0.5, "end": 1.0, "score": 0.97}
      ]
    },
    {
      "text": " Captions that bounce",
      "start": 1.4,
      "end": 2.6,
      "words": [
        {"word": "Captions", "start": 1.4, "end": 1.9},
        {"word": "that", "start": 1.9, "end": 2.1},
        {"word": "bounce", "start": 2.1, "end": 2.6}
      ]
    }
  ]
}`

// WriteTranscript writes body to name inside a fresh temp directory.
func WriteTranscript(t testing.TB, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	WriteFile(t, path, body)
	return path
}
