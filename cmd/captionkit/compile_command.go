package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"captionkit/internal/captions"
	"captionkit/internal/config"
	"captionkit/internal/logging"
	"captionkit/internal/media/ffprobe"
	"captionkit/internal/services"
	"captionkit/internal/transcript"
)

type compileOptions struct {
	output    string
	video     string
	format    string
	duration  float64
	width     int
	height    int
	preset    string
	zone      string
	title     string
	maxChars  int
	maxWords  int
	uppercase bool
	noBounce  bool
	resegment bool
	jsonOut   bool
}

type compileReport struct {
	Output        string  `json:"output"`
	Transcript    string  `json:"transcript"`
	Format        string  `json:"format"`
	Preset        string  `json:"preset"`
	Zone          string  `json:"zone"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	CorrelationID string  `json:"correlation_id"`
	Phrases       int     `json:"phrases"`
	Lines         int     `json:"lines"`
	Events        int     `json:"events"`
	Duration      float64 `json:"duration_seconds"`
}

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var opts compileOptions

	cmd := &cobra.Command{
		Use:   "compile <transcript>",
		Short: "Compile a transcript into an animated .ass caption file",
		Long: `Compile a word-timed transcript into an Advanced SubStation Alpha file.

Accepted transcripts are WhisperX JSON, captionkit JSON/YAML (phrases or
words), and plain text with one phrase per line. Plain text needs --duration
or --video so its words can be timed. Use "-" to read the transcript from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, ctx, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output .ass path (default: transcript path with .ass extension)")
	flags.StringVar(&opts.video, "video", "", "Video to probe for canvas size and duration")
	flags.StringVar(&opts.format, "format", "", "Transcript format: whisperx, json, yaml, text (default: from extension)")
	flags.Float64Var(&opts.duration, "duration", 0, "Total duration in seconds for plain text transcripts")
	flags.IntVar(&opts.width, "width", 0, "Canvas width in pixels")
	flags.IntVar(&opts.height, "height", 0, "Canvas height in pixels")
	flags.StringVar(&opts.preset, "preset", "", "Style preset name (list with: captionkit presets)")
	flags.StringVar(&opts.zone, "zone", "", "Caption position zone (list with: captionkit zones)")
	flags.StringVar(&opts.title, "title", "", "Script title written to [Script Info]")
	flags.IntVar(&opts.maxChars, "max-chars", 0, "Maximum characters per caption line")
	flags.IntVar(&opts.maxWords, "max-words", 0, "Maximum words per phrase when segmenting")
	flags.BoolVar(&opts.uppercase, "uppercase", false, "Upper-case all caption words")
	flags.BoolVar(&opts.noBounce, "no-bounce", false, "Disable the active word bounce")
	flags.BoolVar(&opts.resegment, "resegment", false, "Ignore transcript phrase boundaries and segment words again")
	flags.BoolVar(&opts.jsonOut, "json", false, "Print the compile summary as JSON")
	return cmd
}

func runCompile(cmd *cobra.Command, ctx *commandContext, source string, opts compileOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	runCtx, logger, err := ctx.runContext(cmd.Context(), "compile")
	if err != nil {
		return err
	}
	correlationID, _ := services.RequestIDFromContext(runCtx)

	captionCfg := applyCompileFlags(cmd, cfg.Captions, opts)
	settings, err := captions.NewSettings(captionCfg)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "compile", "resolve preset", "", err)
	}

	canvas := captions.Canvas{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
	duration := opts.duration
	if strings.TrimSpace(opts.video) != "" {
		probed, probedDuration, err := probeVideo(runCtx, cfg, opts.video, logger)
		if err != nil {
			return err
		}
		canvas = probed
		if duration <= 0 {
			duration = probedDuration
		}
	}
	if opts.width > 0 {
		canvas.Width = opts.width
	}
	if opts.height > 0 {
		canvas.Height = opts.height
	}

	format, err := transcript.ParseFormat(opts.format)
	if err != nil {
		return services.Wrap(services.ErrValidation, "compile", "transcript format", "", err)
	}
	loaded, err := transcript.Load(source, transcript.Options{Format: format, Duration: duration})
	if err != nil {
		if errors.Is(err, transcript.ErrNoDuration) {
			logging.ErrorWithContext(logger, "plain text transcript needs timing", "transcript_duration_missing",
				logging.String("transcript", source),
				logging.String(logging.FieldErrorHint, "pass --duration or --video"),
			)
		}
		return err
	}

	phrases := loaded.Phrases
	if !loaded.Grouped() || opts.resegment {
		phrases = captions.SegmentPhrases(loaded.Words, settings.MaxWordsPerPhrase)
	}
	logger.Info("transcript loaded",
		logging.String("transcript", source),
		logging.String("format", string(loaded.Format)),
		logging.Int("phrases", len(phrases)),
		logging.Int("words", len(loaded.Words)),
	)

	doc, err := captions.Compile(phrases, settings, canvas, logger)
	if err != nil {
		return err
	}

	output := resolveOutputPath(source, opts.output)
	if err := captions.WriteFile(doc, output); err != nil {
		return services.Wrap(services.ErrExternalTool, "compile", "write output", output, err)
	}

	summary := captions.Summarize(phrases, doc)
	logger.Info("captions written",
		logging.String("output", output),
		logging.Int("events", summary.Events),
		logging.Int("lines", summary.Lines),
		logging.Float64("duration_seconds", summary.Duration),
	)

	report := compileReport{
		Output:        output,
		Transcript:    source,
		Format:        string(loaded.Format),
		Preset:        settings.Style.Name,
		Zone:          settings.Zone,
		Width:         doc.Width,
		Height:        doc.Height,
		CorrelationID: correlationID,
		Phrases:       summary.Phrases,
		Lines:         summary.Lines,
		Events:        summary.Events,
		Duration:      summary.Duration,
	}
	return printCompileReport(cmd, report, opts.jsonOut)
}

func applyCompileFlags(cmd *cobra.Command, cfg config.Captions, opts compileOptions) config.Captions {
	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Preset = opts.preset
	}
	if flags.Changed("zone") {
		cfg.Zone = opts.zone
	}
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if flags.Changed("max-chars") {
		cfg.MaxCharsPerLine = opts.maxChars
	}
	if flags.Changed("max-words") {
		cfg.MaxWordsPerPhrase = opts.maxWords
	}
	if opts.uppercase {
		cfg.Uppercase = true
	}
	if opts.noBounce {
		cfg.BounceEnabled = false
	}
	return cfg
}

func probeVideo(ctx context.Context, cfg *config.Config, video string, logger *slog.Logger) (captions.Canvas, float64, error) {
	result, err := ffprobe.Inspect(ctx, cfg.FFprobeBinary(), video)
	if err != nil {
		return captions.Canvas{}, 0, services.Wrap(services.ErrExternalTool, "compile", "probe video", video, err)
	}
	width, height, ok := result.VideoDimensions()
	if !ok {
		return captions.Canvas{}, 0, services.Wrap(services.ErrValidation, "compile", "probe video", video+" has no video stream", nil)
	}
	logger.Debug("video probed",
		logging.String("video", video),
		logging.Int("width", width),
		logging.Int("height", height),
		logging.Float64("duration_seconds", result.DurationSeconds()),
	)
	return captions.Canvas{Width: width, Height: height}, result.DurationSeconds(), nil
}

func resolveOutputPath(source, output string) string {
	if output = strings.TrimSpace(output); output != "" {
		return output
	}
	if source == "-" {
		return "captions.ass"
	}
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".ass"
}

func printCompileReport(cmd *cobra.Command, report compileReport, jsonOut bool) error {
	if jsonOut {
		return writeJSON(cmd, report)
	}
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		fmt.Fprintf(out, "Wrote %d events (%d lines, %d phrases) to %s\n", report.Events, report.Lines, report.Phrases, report.Output)
		return nil
	}
	rows := [][]string{
		{"Output", report.Output},
		{"Canvas", fmt.Sprintf("%dx%d", report.Width, report.Height)},
		{"Preset", report.Preset},
		{"Zone", report.Zone},
		{"Phrases", strconv.Itoa(report.Phrases)},
		{"Lines", strconv.Itoa(report.Lines)},
		{"Events", strconv.Itoa(report.Events)},
		{"Duration", fmt.Sprintf("%.2fs", report.Duration)},
	}
	fmt.Fprintln(out, renderTable("Captions compiled", []string{"Field", "Value"}, rows, nil))
	return nil
}
