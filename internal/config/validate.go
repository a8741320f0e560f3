package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCaptions(); err != nil {
		return err
	}
	if err := c.validateCanvas(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCaptions() error {
	cfg := c.Captions
	if cfg.FontSize < 0 {
		return errors.New("captions.font_size must be >= 0 (0 uses the preset size)")
	}
	if cfg.OutlineWidth < 0 {
		return errors.New("captions.outline_width must be >= 0")
	}
	if cfg.ShadowDepth < 0 {
		return errors.New("captions.shadow_depth must be >= 0")
	}
	if cfg.BackAlpha < -1 || cfg.BackAlpha > 255 {
		return errors.New("captions.back_alpha must be between 0 and 255 (or -1 for the preset value)")
	}
	if cfg.BounceScale != 0 && (cfg.BounceScale < 50 || cfg.BounceScale > 300) {
		return fmt.Errorf("captions.bounce_scale must be between 50 and 300 percent, got %d", cfg.BounceScale)
	}
	if cfg.MaxCharsPerLine < 0 {
		return errors.New("captions.max_chars_per_line must be >= 0 (0 disables line packing)")
	}
	if cfg.MaxWordsPerPhrase < 0 {
		return errors.New("captions.max_words_per_phrase must be >= 0 (0 disables the word bound)")
	}
	if cfg.WrapStyle < 0 || cfg.WrapStyle > 3 {
		return errors.New("captions.wrap_style must be between 0 and 3")
	}
	return nil
}

func (c *Config) validateCanvas() error {
	return ensurePositiveMap(map[string]int{
		"canvas.width":  c.Canvas.Width,
		"canvas.height": c.Canvas.Height,
	})
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
