package captions_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"captionkit/internal/captions"
	"captionkit/internal/config"
	"captionkit/internal/services"
)

func defaultSettings(t *testing.T) captions.Settings {
	t.Helper()
	settings, err := captions.NewSettings(config.Default().Captions)
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}
	return settings
}

func samplePhrases() []captions.Phrase {
	return []captions.Phrase{
		{
			Text:  "Hello world",
			Start: 0,
			End:   1,
			Words: []captions.Word{{Text: "Hello", Start: 0, End: 0.5}, {Text: "world", Start: 0.5, End: 1}},
		},
		{Text: "second phrase here", Start: 1.5, End: 3},
	}
}

func TestCompileBuildsDocument(t *testing.T) {
	doc, err := captions.Compile(samplePhrases(), defaultSettings(t), captions.Canvas{Width: 1080, Height: 1920}, nil)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if doc.Width != 1080 || doc.Height != 1920 || doc.WrapStyle != 2 {
		t.Fatalf("unexpected document header: %+v", doc)
	}
	if len(doc.Styles) != 1 {
		t.Fatalf("expected a single style, got %d", len(doc.Styles))
	}
	style := doc.Styles[0]
	if style.Name != "Active" || style.FontName != "Arial" || style.FontSize != 80 {
		t.Fatalf("unexpected style identity: %+v", style)
	}
	if style.PrimaryColour != "&H00FFFFFF" || style.SecondaryColour != "&H0000FFFF" {
		t.Fatalf("unexpected fill colors: %s %s", style.PrimaryColour, style.SecondaryColour)
	}
	if style.BackColour != "&H80000000" {
		t.Fatalf("expected preset back alpha, got %s", style.BackColour)
	}
	if style.Alignment != 2 || style.MarginV != 300 {
		t.Fatalf("expected bottom zone placement, got alignment %d margin %d", style.Alignment, style.MarginV)
	}
	if len(doc.Events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(doc.Events))
	}

	text := doc.String()
	for _, want := range []string{
		"[Script Info]",
		"PlayResX: 1080",
		"[V4+ Styles]",
		"Style: Active,Arial,80,&H00FFFFFF,&H0000FFFF,",
		"[Events]",
		`Dialogue: 0,0:00:00.00,0:00:00.50,Active,,0,0,0,,{\c&H00FFFF&}{\fad(150,0)}`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("document missing %q:\n%s", want, text)
		}
	}
}

func TestCompileZeroCanvasUsesReference(t *testing.T) {
	doc, err := captions.Compile(samplePhrases(), defaultSettings(t), captions.Canvas{}, nil)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if doc.Width != captions.ReferenceWidth || doc.Height != captions.ReferenceHeight {
		t.Fatalf("expected reference canvas, got %dx%d", doc.Width, doc.Height)
	}
}

func TestCompileOverrides(t *testing.T) {
	cfg := config.Default().Captions
	cfg.Preset = "bold"
	cfg.ActiveColor = "#FF0000"
	cfg.BackAlpha = 0x40
	cfg.Zone = "top"
	cfg.Title = "Launch clip"
	settings, err := captions.NewSettings(cfg)
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}

	doc, err := captions.Compile(samplePhrases(), settings, captions.Canvas{Width: 540, Height: 960}, nil)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	style := doc.Styles[0]
	if style.SecondaryColour != "&H000000FF" {
		t.Fatalf("expected red active color override, got %s", style.SecondaryColour)
	}
	if style.BackColour != "&H40000000" {
		t.Fatalf("expected back alpha override, got %s", style.BackColour)
	}
	if style.FontSize != 48 || style.Alignment != 8 || style.MarginV != 70 {
		t.Fatalf("unexpected scaled geometry: %+v", style)
	}
	if !strings.Contains(doc.String(), "Title: Launch clip") {
		t.Fatal("expected title line")
	}
	if !strings.Contains(doc.Events[0].Text, "HELLO") {
		t.Fatalf("bold preset upper-cases words, got %s", doc.Events[0].Text)
	}
}

func TestCompileInvalidColorFallsBackToWhite(t *testing.T) {
	settings := defaultSettings(t)
	settings.Style.ActiveColor = "not-a-color"
	doc, err := captions.Compile(samplePhrases(), settings, captions.Canvas{}, nil)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if doc.Styles[0].SecondaryColour != "&H00FFFFFF" {
		t.Fatalf("expected white fallback, got %s", doc.Styles[0].SecondaryColour)
	}
}

func TestCompileErrors(t *testing.T) {
	settings := defaultSettings(t)

	_, err := captions.Compile(nil, settings, captions.Canvas{}, nil)
	if !errors.Is(err, captions.ErrNoPhrases) || !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation ErrNoPhrases, got %v", err)
	}

	_, err = captions.Compile([]captions.Phrase{{Text: " "}}, settings, captions.Canvas{}, nil)
	if !errors.Is(err, captions.ErrNoWords) || services.ExitCode(err) != services.ExitDataErr {
		t.Fatalf("expected validation ErrNoWords, got %v", err)
	}

	settings.Zone = "nowhere"
	_, err = captions.Compile(samplePhrases(), settings, captions.Canvas{}, nil)
	if !errors.Is(err, captions.ErrUnknownZone) || !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration ErrUnknownZone, got %v", err)
	}
}

func TestCompileWordsSegments(t *testing.T) {
	settings := defaultSettings(t)
	settings.MaxWordsPerPhrase = 2
	words := []captions.Word{
		{Text: "one", Start: 0, End: 0.4},
		{Text: "two", Start: 0.4, End: 0.8},
		{Text: "three", Start: 0.8, End: 1.2},
	}
	doc, err := captions.CompileWords(words, settings, captions.Canvas{}, nil)
	if err != nil {
		t.Fatalf("CompileWords returned error: %v", err)
	}
	if len(doc.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(doc.Events))
	}
}

func TestWriteFile(t *testing.T) {
	doc, err := captions.Compile(samplePhrases(), defaultSettings(t), captions.Canvas{}, nil)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out", "captions.ass")
	if err := captions.WriteFile(doc, path); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != doc.String() {
		t.Fatal("written file differs from serialized document")
	}
	if err := captions.WriteFile(nil, path); err == nil {
		t.Fatal("expected error for nil document")
	}
}
