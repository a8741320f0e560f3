package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"captionkit/internal/config"
)

func TestLoadDefaultConfigWhenAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "captionkit", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}

	defaults := config.Default()
	if cfg.Captions.Preset != "default" {
		t.Fatalf("unexpected preset: %q", cfg.Captions.Preset)
	}
	if cfg.Captions.Zone != defaults.Captions.Zone {
		t.Fatalf("unexpected zone: %q", cfg.Captions.Zone)
	}
	if !cfg.Captions.BounceEnabled {
		t.Fatal("expected bounce enabled by default")
	}
	if cfg.Captions.BackAlpha != -1 {
		t.Fatalf("expected back_alpha to defer to preset, got %d", cfg.Captions.BackAlpha)
	}
	if cfg.Canvas.Width != 1080 || cfg.Canvas.Height != 1920 {
		t.Fatalf("unexpected canvas: %+v", cfg.Canvas)
	}
	if cfg.FFprobeBinary() != "ffprobe" {
		t.Fatalf("unexpected ffprobe binary: %q", cfg.FFprobeBinary())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "captionkit.toml")

	type payload struct {
		Captions struct {
			Preset          string  `toml:"preset"`
			Zone            string  `toml:"zone"`
			ActiveColor     string  `toml:"active_color"`
			MaxCharsPerLine int     `toml:"max_chars_per_line"`
			PhrasePause     float64 `toml:"phrase_pause"`
		} `toml:"captions"`
		Canvas struct {
			Width  int `toml:"width"`
			Height int `toml:"height"`
		} `toml:"canvas"`
		Logging struct {
			Format string `toml:"format"`
			Dir    string `toml:"dir"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Captions.Preset = " Bold "
	custom.Captions.Zone = "Upper-Middle"
	custom.Captions.ActiveColor = " #00FF00 "
	custom.Captions.MaxCharsPerLine = 14
	custom.Captions.PhrasePause = -2
	custom.Canvas.Width = 1920
	custom.Canvas.Height = 1080
	custom.Logging.Format = "JSON"
	custom.Logging.Dir = filepath.Join(tempDir, "logs")

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Captions.Preset != "bold" {
		t.Fatalf("expected normalized preset, got %q", cfg.Captions.Preset)
	}
	if cfg.Captions.Zone != "upper-middle" {
		t.Fatalf("expected normalized zone, got %q", cfg.Captions.Zone)
	}
	if cfg.Captions.ActiveColor != "#00FF00" {
		t.Fatalf("expected trimmed color, got %q", cfg.Captions.ActiveColor)
	}
	if cfg.Captions.MaxCharsPerLine != 14 {
		t.Fatalf("unexpected max chars: %d", cfg.Captions.MaxCharsPerLine)
	}
	if cfg.Captions.PhrasePause != 0 {
		t.Fatalf("expected negative pause clamped to 0, got %v", cfg.Captions.PhrasePause)
	}
	if cfg.Canvas.Width != 1920 || cfg.Canvas.Height != 1080 {
		t.Fatalf("unexpected canvas: %+v", cfg.Canvas)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Logging.Format)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Logging.Dir); err != nil || !info.IsDir() {
		t.Fatalf("expected log dir %q to exist: %v", cfg.Logging.Dir, err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"back alpha", "[captions]\nback_alpha = 300\n", "captions.back_alpha"},
		{"bounce scale", "[captions]\nbounce_scale = 20\n", "captions.bounce_scale"},
		{"wrap style", "[captions]\nwrap_style = 9\n", "captions.wrap_style"},
		{"max chars", "[captions]\nmax_chars_per_line = -1\n", "captions.max_chars_per_line"},
		{"font size", "[captions]\nfont_size = -4\n", "captions.font_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "captionkit.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFFprobeEnvOverride(t *testing.T) {
	t.Setenv("CAPTIONKIT_FFPROBE", "/opt/ffmpeg/bin/ffprobe")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FFprobeBinary() != "/opt/ffmpeg/bin/ffprobe" {
		t.Fatalf("expected env override, got %q", cfg.FFprobeBinary())
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Captions.StyleName != "Active" {
		t.Fatalf("unexpected style name from sample: %q", cfg.Captions.StyleName)
	}
	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(encoded), "[captions]") {
		t.Fatalf("encoded config missing captions table: %s", encoded)
	}
}
