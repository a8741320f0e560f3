package config

const (
	defaultConfigPath        = "~/.config/captionkit/config.toml"
	defaultPreset            = "default"
	defaultStyleName         = "Active"
	defaultBackAlpha         = -1
	defaultBounceScale       = 0
	defaultBounceDurationMs  = 100
	defaultFadeDurationMs    = 150
	defaultPhrasePause       = 0.1
	defaultMaxCharsPerLine   = 20
	defaultMaxWordsPerPhrase = 6
	defaultZone              = "bottom"
	defaultWrapStyle         = 2
	defaultCanvasWidth       = 1080
	defaultCanvasHeight      = 1920
	defaultFFprobeBinary     = "ffprobe"
	defaultFFmpegBinary      = "ffmpeg"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Captions: Captions{
			Preset:            defaultPreset,
			StyleName:         defaultStyleName,
			BackAlpha:         defaultBackAlpha,
			BounceEnabled:     true,
			BounceScale:       defaultBounceScale,
			BounceDurationMs:  defaultBounceDurationMs,
			FadeDurationMs:    defaultFadeDurationMs,
			PhrasePause:       defaultPhrasePause,
			MaxCharsPerLine:   defaultMaxCharsPerLine,
			MaxWordsPerPhrase: defaultMaxWordsPerPhrase,
			Zone:              defaultZone,
			WrapStyle:         defaultWrapStyle,
		},
		Canvas: Canvas{
			Width:  defaultCanvasWidth,
			Height: defaultCanvasHeight,
		},
		Tools: Tools{
			FFprobeBinary: defaultFFprobeBinary,
			FFmpegBinary:  defaultFFmpegBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
