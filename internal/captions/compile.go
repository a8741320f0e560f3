package captions

import (
	"fmt"
	"log/slog"
	"strings"

	"captionkit/internal/ass"
	"captionkit/internal/config"
	"captionkit/internal/fileutil"
	"captionkit/internal/logging"
	"captionkit/internal/services"
)

// Settings is a preset merged with caller overrides and timing options.
type Settings struct {
	Title             string
	StyleName         string
	Style             Preset
	BounceEnabled     bool
	BounceDurationMs  int
	FadeDurationMs    int
	PhrasePause       float64
	MaxCharsPerLine   int
	MaxWordsPerPhrase int
	Zone              string
	WrapStyle         int
}

// NewSettings resolves the configured preset and applies non-zero overrides.
func NewSettings(cfg config.Captions) (Settings, error) {
	style, err := LookupPreset(cfg.Preset)
	if err != nil {
		return Settings{}, err
	}
	if cfg.FontName != "" {
		style.FontName = cfg.FontName
	}
	if cfg.FontSize > 0 {
		style.FontSize = cfg.FontSize
	}
	if cfg.ActiveColor != "" {
		style.ActiveColor = cfg.ActiveColor
	}
	if cfg.InactiveColor != "" {
		style.InactiveColor = cfg.InactiveColor
	}
	if cfg.OutlineColor != "" {
		style.OutlineColor = cfg.OutlineColor
	}
	if cfg.BackColor != "" {
		style.BackColor = cfg.BackColor
	}
	if cfg.BackAlpha >= 0 && cfg.BackAlpha <= 0xFF {
		style.BackAlpha = uint8(cfg.BackAlpha)
	}
	if cfg.OutlineWidth > 0 {
		style.Outline = cfg.OutlineWidth
	}
	if cfg.ShadowDepth > 0 {
		style.Shadow = cfg.ShadowDepth
	}
	if cfg.BounceScale > 0 {
		style.BounceScale = cfg.BounceScale
	}
	style.Uppercase = style.Uppercase || cfg.Uppercase

	styleName := strings.TrimSpace(cfg.StyleName)
	if styleName == "" {
		styleName = "Active"
	}
	return Settings{
		Title:             cfg.Title,
		StyleName:         styleName,
		Style:             style,
		BounceEnabled:     cfg.BounceEnabled,
		BounceDurationMs:  cfg.BounceDurationMs,
		FadeDurationMs:    cfg.FadeDurationMs,
		PhrasePause:       cfg.PhrasePause,
		MaxCharsPerLine:   cfg.MaxCharsPerLine,
		MaxWordsPerPhrase: cfg.MaxWordsPerPhrase,
		Zone:              cfg.Zone,
		WrapStyle:         cfg.WrapStyle,
	}, nil
}

// Compile turns phrases into a complete document for canvas. It fails when
// there is nothing to caption or the zone is unknown; bad colors and empty
// phrases are logged and tolerated.
func Compile(phrases []Phrase, settings Settings, canvas Canvas, logger *slog.Logger) (*ass.Document, error) {
	logger = logging.NewComponentLogger(logger, "captions")
	if len(phrases) == 0 {
		return nil, services.Wrap(services.ErrValidation, "captions", "compile", "", ErrNoPhrases)
	}
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = Canvas{Width: ReferenceWidth, Height: ReferenceHeight}
	}

	geometry, err := ResolveGeometry(settings.Zone, canvas, Layout{
		FontSize: settings.Style.FontSize,
		Outline:  settings.Style.Outline,
		MarginL:  settings.Style.MarginL,
		MarginR:  settings.Style.MarginR,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "captions", "resolve geometry", "", err)
	}

	active := ass.ResolveRGB(ass.ParseColor(settings.Style.ActiveColor), logger)
	inactive := ass.ResolveRGB(ass.ParseColor(settings.Style.InactiveColor), logger)
	outline := ass.ResolveRGB(ass.ParseColor(settings.Style.OutlineColor), logger)
	back := ass.ResolveRGB(ass.ParseColor(settings.Style.BackColor), logger)

	style := ass.Style{
		Name:            settings.StyleName,
		FontName:        settings.Style.FontName,
		FontSize:        geometry.FontSize,
		PrimaryColour:   ass.EncodeColorAlpha(inactive, 0),
		SecondaryColour: ass.EncodeColorAlpha(active, 0),
		OutlineColour:   ass.EncodeColorAlpha(outline, 0),
		BackColour:      ass.EncodeColorAlpha(back, settings.Style.BackAlpha),
		Bold:            settings.Style.Bold,
		ScaleX:          100,
		ScaleY:          100,
		BorderStyle:     1,
		Outline:         geometry.Outline,
		Shadow:          settings.Style.Shadow,
		Alignment:       geometry.Alignment,
		MarginL:         geometry.MarginL,
		MarginR:         geometry.MarginR,
		MarginV:         geometry.MarginV,
		Encoding:        1,
	}

	events, err := Synthesize(phrases, SynthOptions{
		StyleName:        settings.StyleName,
		ActiveColor:      ass.EncodeColor(active),
		InactiveColor:    ass.EncodeColor(inactive),
		BounceEnabled:    settings.BounceEnabled,
		BounceScale:      settings.Style.BounceScale,
		BounceDurationMs: settings.BounceDurationMs,
		FadeDurationMs:   settings.FadeDurationMs,
		PhrasePause:      settings.PhrasePause,
		MaxCharsPerLine:  settings.MaxCharsPerLine,
		Uppercase:        settings.Style.Uppercase,
	}, logger)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "captions", "synthesize", "", err)
	}

	doc := &ass.Document{
		Title:     settings.Title,
		Width:     canvas.Width,
		Height:    canvas.Height,
		WrapStyle: settings.WrapStyle,
		Styles:    []ass.Style{style},
		Events:    events,
	}
	logger.Debug("caption document compiled",
		logging.Int("phrases", len(phrases)),
		logging.Int("events", len(events)),
		logging.String("zone", settings.Zone),
		logging.String("preset", settings.Style.Name),
		logging.Int("canvas_width", canvas.Width),
		logging.Int("canvas_height", canvas.Height),
	)
	return doc, nil
}

// CompileWords segments a flat word stream into phrases and compiles them.
func CompileWords(words []Word, settings Settings, canvas Canvas, logger *slog.Logger) (*ass.Document, error) {
	return Compile(SegmentPhrases(words, settings.MaxWordsPerPhrase), settings, canvas, logger)
}

// WriteFile serializes doc to path.
func WriteFile(doc *ass.Document, path string) error {
	if doc == nil {
		return fmt.Errorf("write captions: nil document")
	}
	if err := fileutil.WriteFileLocked(path, []byte(doc.String()), 0o644); err != nil {
		return fmt.Errorf("write captions: %w", err)
	}
	return nil
}
