package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"captionkit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log directory lives under a
// per-test temp directory, then applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPreset selects a style preset on the test config.
func WithPreset(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Captions.Preset = name
	}
}

// WithCanvas overrides the fallback canvas size.
func WithCanvas(width, height int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Canvas.Width = width
		b.cfg.Canvas.Height = height
	}
}

// WithFFprobeScript installs an executable shell script as the configured
// ffprobe binary. The script body runs under /bin/sh.
func WithFFprobeScript(body string) ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		target := filepath.Join(binDir, "ffprobe")
		if err := os.WriteFile(target, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
			b.t.Fatalf("write ffprobe stub: %v", err)
		}
		b.cfg.Tools.FFprobeBinary = target
	}
}

// WriteConfig encodes cfg as TOML into the test's base directory and returns
// the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "captionkit.toml")
	WriteFile(t, path, string(data))
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}
