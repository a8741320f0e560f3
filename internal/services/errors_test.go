package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"captionkit/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "probe", "ffprobe", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"probe", "ffprobe", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{services.Wrap(services.ErrValidation, "captions", "compile", "", nil), services.ExitDataErr},
		{services.Wrap(services.ErrConfiguration, "captions", "zone", "", nil), services.ExitConfig},
		{fmt.Errorf("outer: %w", services.Wrap(services.ErrNotFound, "transcript", "open", "", nil)), services.ExitNoInput},
		{services.Wrap(services.ErrExternalTool, "probe", "", "", nil), services.ExitUnavailable},
		{errors.New("plain"), services.ExitFailure},
	}
	for _, tt := range tests {
		if got := services.ExitCode(tt.err); got != tt.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
