package fileutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestWriteFileLockedCreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "captions.ass")

	if err := WriteFileLocked(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileLocked: %v", err)
	}
	if err := WriteFileLocked(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("WriteFileLocked overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("unexpected content %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("unexpected mode %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, entry := range entries {
		switch entry.Name() {
		case "captions.ass", "captions.ass.lock":
		default:
			t.Fatalf("unexpected leftover file %q", entry.Name())
		}
	}
}

func TestWriteFileLockedConcurrentWritersNeverInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captions.ass")
	payloads := []string{"aaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbb", "cccccccccccccccc", "dddddddddddddddd"}

	var wg sync.WaitGroup
	for _, payload := range payloads {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			if err := WriteFileLocked(path, []byte(p), 0o644); err != nil {
				t.Errorf("WriteFileLocked: %v", err)
			}
		}(payload)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	found := false
	for _, payload := range payloads {
		if string(data) == payload {
			found = true
		}
	}
	if !found {
		t.Fatalf("final content %q is not one of the payloads", data)
	}
}
