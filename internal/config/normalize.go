package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeCaptions()
	c.normalizeCanvas()
	c.normalizeTools()
	return c.normalizeLogging()
}

func (c *Config) normalizeCaptions() {
	c.Captions.Preset = strings.ToLower(strings.TrimSpace(c.Captions.Preset))
	if c.Captions.Preset == "" {
		c.Captions.Preset = defaultPreset
	}
	c.Captions.Title = strings.TrimSpace(c.Captions.Title)
	c.Captions.StyleName = strings.TrimSpace(c.Captions.StyleName)
	if c.Captions.StyleName == "" {
		c.Captions.StyleName = defaultStyleName
	}
	c.Captions.FontName = strings.TrimSpace(c.Captions.FontName)
	c.Captions.ActiveColor = strings.TrimSpace(c.Captions.ActiveColor)
	c.Captions.InactiveColor = strings.TrimSpace(c.Captions.InactiveColor)
	c.Captions.OutlineColor = strings.TrimSpace(c.Captions.OutlineColor)
	c.Captions.BackColor = strings.TrimSpace(c.Captions.BackColor)
	c.Captions.Zone = strings.ToLower(strings.TrimSpace(c.Captions.Zone))
	if c.Captions.Zone == "" {
		c.Captions.Zone = defaultZone
	}
	if c.Captions.BounceDurationMs < 0 {
		c.Captions.BounceDurationMs = 0
	}
	if c.Captions.FadeDurationMs < 0 {
		c.Captions.FadeDurationMs = 0
	}
	if c.Captions.PhrasePause < 0 {
		c.Captions.PhrasePause = 0
	}
}

func (c *Config) normalizeCanvas() {
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = defaultCanvasWidth
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = defaultCanvasHeight
	}
}

func (c *Config) normalizeTools() {
	c.Tools.FFprobeBinary = strings.TrimSpace(c.Tools.FFprobeBinary)
	if value, ok := os.LookupEnv("CAPTIONKIT_FFPROBE"); ok && strings.TrimSpace(value) != "" {
		c.Tools.FFprobeBinary = strings.TrimSpace(value)
	}
	if c.Tools.FFprobeBinary == "" {
		c.Tools.FFprobeBinary = defaultFFprobeBinary
	}
	c.Tools.FFmpegBinary = strings.TrimSpace(c.Tools.FFmpegBinary)
	if c.Tools.FFmpegBinary == "" {
		c.Tools.FFmpegBinary = defaultFFmpegBinary
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		dir, err := expandPath(strings.TrimSpace(c.Logging.Dir))
		if err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
		c.Logging.Dir = dir
	}
	return nil
}
