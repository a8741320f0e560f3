package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Captions contains caption styling and timing configuration. Zero or empty
// appearance fields fall back to the selected preset.
type Captions struct {
	Preset            string  `toml:"preset"`
	Title             string  `toml:"title"`
	StyleName         string  `toml:"style_name"`
	FontName          string  `toml:"font_name"`
	FontSize          int     `toml:"font_size"`
	ActiveColor       string  `toml:"active_color"`
	InactiveColor     string  `toml:"inactive_color"`
	OutlineColor      string  `toml:"outline_color"`
	BackColor         string  `toml:"back_color"`
	BackAlpha         int     `toml:"back_alpha"`
	OutlineWidth      int     `toml:"outline_width"`
	ShadowDepth       int     `toml:"shadow_depth"`
	Uppercase         bool    `toml:"uppercase"`
	BounceEnabled     bool    `toml:"bounce_enabled"`
	BounceScale       int     `toml:"bounce_scale"`
	BounceDurationMs  int     `toml:"bounce_duration_ms"`
	FadeDurationMs    int     `toml:"fade_duration_ms"`
	PhrasePause       float64 `toml:"phrase_pause"`
	MaxCharsPerLine   int     `toml:"max_chars_per_line"`
	MaxWordsPerPhrase int     `toml:"max_words_per_phrase"`
	Zone              string  `toml:"zone"`
	WrapStyle         int     `toml:"wrap_style"`
}

// Canvas is the output size used when no video is probed.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Tools names the external binaries captionkit may call.
type Tools struct {
	FFprobeBinary string `toml:"ffprobe_binary"`
	FFmpegBinary  string `toml:"ffmpeg_binary"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for captionkit.
//
// Configuration sections:
//   - Captions: style preset, overrides, animation timing, and layout
//   - Canvas: fallback output resolution
//   - Tools: ffprobe/ffmpeg executables
//   - Logging: log format, level, and optional log directory
type Config struct {
	Captions Captions `toml:"captions"`
	Canvas   Canvas   `toml:"canvas"`
	Tools    Tools    `toml:"tools"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned
// config has all fields normalized. The string result is the resolved path
// and the bool reports whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("captionkit.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log directory when one is configured.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Logging.Dir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Logging.Dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Logging.Dir, err)
	}
	return nil
}

// FFprobeBinary returns the ffprobe executable used to probe canvas size.
func (c *Config) FFprobeBinary() string {
	if bin := strings.TrimSpace(c.Tools.FFprobeBinary); bin != "" {
		return bin
	}
	return defaultFFprobeBinary
}

// FFmpegBinary returns the ffmpeg executable that renders the captions.
func (c *Config) FFmpegBinary() string {
	if bin := strings.TrimSpace(c.Tools.FFmpegBinary); bin != "" {
		return bin
	}
	return defaultFFmpegBinary
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
