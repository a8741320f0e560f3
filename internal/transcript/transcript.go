package transcript

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"captionkit/internal/captions"
	"captionkit/internal/services"
)

// Format names a transcript encoding.
type Format string

const (
	FormatAuto     Format = ""
	FormatWhisperX Format = "whisperx"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatText     Format = "text"
)

// ErrNoDuration reports a plain-text transcript loaded without a duration to
// spread its words over.
var ErrNoDuration = errors.New("plain text transcripts need a duration")

// Options tunes loading.
type Options struct {
	Format Format
	// Duration is the total running time in seconds for plain-text input.
	Duration float64
}

// Transcript is a loaded transcript. Phrases keep the source's own grouping
// when it has one; Words is the flat, timed word stream.
type Transcript struct {
	Format  Format
	Phrases []captions.Phrase
	Words   []captions.Word
}

// Grouped reports whether the source carried its own phrase boundaries.
func (t Transcript) Grouped() bool {
	return len(t.Phrases) > 0
}

// document is the captionkit-native JSON/YAML shape.
type document struct {
	Phrases []captions.Phrase `json:"phrases" yaml:"phrases"`
	Words   []captions.Word   `json:"words" yaml:"words"`
}

// Load reads path, or stdin when path is "-".
func Load(path string, opts Options) (Transcript, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Transcript{}, services.Wrap(services.ErrValidation, "transcript", "load", "empty path", nil)
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Transcript{}, services.Wrap(services.ErrNotFound, "transcript", "open", path, err)
		}
		return Transcript{}, services.Wrap(services.ErrExternalTool, "transcript", "read", path, err)
	}

	format := opts.Format
	if format == FormatAuto {
		format = detectFormat(path)
	}
	transcript, err := Parse(data, format, opts.Duration)
	if err != nil {
		return Transcript{}, services.Wrap(services.ErrValidation, "transcript", "parse", path, err)
	}
	return transcript, nil
}

// ParseFormat maps a user-supplied format name onto a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return FormatAuto, nil
	case "whisperx":
		return FormatWhisperX, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown transcript format %q", value)
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt", ".text":
		return FormatText
	default:
		return FormatJSON
	}
}

// Parse decodes data in the given format. FormatAuto and FormatJSON sniff
// for WhisperX segments.
func Parse(data []byte, format Format, duration float64) (Transcript, error) {
	switch format {
	case FormatWhisperX:
		return parseWhisperX(data)
	case FormatAuto, FormatJSON:
		if looksLikeWhisperX(data) {
			return parseWhisperX(data)
		}
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return Transcript{}, fmt.Errorf("decode json: %w", err)
		}
		return fromDocument(FormatJSON, doc)
	case FormatYAML:
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Transcript{}, fmt.Errorf("decode yaml: %w", err)
		}
		return fromDocument(FormatYAML, doc)
	case FormatText:
		return parseText(data, duration)
	default:
		return Transcript{}, fmt.Errorf("unsupported transcript format %q", format)
	}
}

func fromDocument(format Format, doc document) (Transcript, error) {
	switch {
	case len(doc.Phrases) > 0:
		return Transcript{
			Format:  format,
			Phrases: doc.Phrases,
			Words:   captions.FlattenWords(doc.Phrases),
		}, nil
	case len(doc.Words) > 0:
		return Transcript{Format: format, Words: doc.Words}, nil
	default:
		return Transcript{}, errors.New("transcript has no phrases or words")
	}
}

// parseText makes one phrase per non-blank line. Phrase windows are
// proportional to their word counts and together fill [0, duration].
func parseText(data []byte, duration float64) (Transcript, error) {
	if duration <= 0 {
		return Transcript{}, ErrNoDuration
	}
	var lines []string
	total := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
		total += len(strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return Transcript{}, fmt.Errorf("read text: %w", err)
	}
	if total == 0 {
		return Transcript{}, errors.New("transcript has no words")
	}

	perWord := duration / float64(total)
	phrases := make([]captions.Phrase, 0, len(lines))
	var cursor float64
	for i, line := range lines {
		end := cursor + perWord*float64(len(strings.Fields(line)))
		if i == len(lines)-1 {
			end = duration
		}
		phrases = append(phrases, captions.Phrase{Text: line, Start: cursor, End: end})
		cursor = end
	}
	return Transcript{
		Format:  FormatText,
		Phrases: phrases,
		Words:   captions.FlattenWords(phrases),
	}, nil
}
