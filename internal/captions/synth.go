package captions

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"captionkit/internal/ass"
	"captionkit/internal/logging"
)

// SynthOptions controls event synthesis. Colors are &HBBGGRR values.
type SynthOptions struct {
	StyleName        string
	ActiveColor      string
	InactiveColor    string
	BounceEnabled    bool
	BounceScale      int
	BounceDurationMs int
	FadeDurationMs   int
	PhrasePause      float64
	MaxCharsPerLine  int
	Uppercase        bool
}

// Synthesize emits one Dialogue event per word. Each event shows its line
// revealed up to the current word: earlier words in the inactive color, the
// current word in the active color (bounced when enabled). The first event of
// a line fades in; the last fades out and lingers for the fade duration.
//
// Phrases that start sooner than PhrasePause after the previous phrase's last
// word are delayed to that boundary; their end is left alone. Phrases with no
// words are skipped.
func Synthesize(phrases []Phrase, opts SynthOptions, logger *slog.Logger) ([]ass.Event, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	events := make([]ass.Event, 0, WordCount(phrases))
	var prevEnd float64
	havePrev := false
	for idx, phrase := range phrases {
		start := phrase.Start
		if havePrev && start < prevEnd+opts.PhrasePause {
			logger.Debug("delaying phrase onset",
				logging.Int("phrase_index", idx),
				logging.Float64("requested_start", phrase.Start),
				logging.Float64("resolved_start", prevEnd+opts.PhrasePause),
			)
			start = prevEnd + opts.PhrasePause
		}

		words := resolveWords(phrase, start, opts.Uppercase)
		if len(words) == 0 {
			logging.WarnWithContext(logger, "caption phrase has no words; skipping", "caption_phrase_empty",
				logging.Int("phrase_index", idx),
				logging.String("text", phrase.Text),
				logging.String(logging.FieldErrorHint, "check the transcript for blank segments"),
				logging.String(logging.FieldImpact, "phrase is not captioned"),
			)
			continue
		}

		for _, line := range PackLines(words, opts.MaxCharsPerLine) {
			for i := range line {
				events = append(events, buildEvent(line, i, opts))
			}
			prevEnd = line[len(line)-1].End
		}
		havePrev = true
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("%w: all %d phrases were empty", ErrNoWords, len(phrases))
	}
	return events, nil
}

// resolveWords returns the phrase's words with sanitized text, clamped so no
// word starts before start. Text-only phrases are split evenly over
// [start, phrase.End].
func resolveWords(phrase Phrase, start float64, uppercase bool) []Word {
	var words []Word
	if len(phrase.Words) == 0 {
		words = deriveWords(phrase.Text, start, phrase.End)
	} else {
		words = make([]Word, 0, len(phrase.Words))
		for _, word := range phrase.Words {
			text := sanitizeWord(word.Text)
			if text == "" {
				continue
			}
			word.Text = text
			word.Start = math.Max(word.Start, start)
			word.End = math.Max(word.End, word.Start)
			words = append(words, word)
		}
	}
	if uppercase {
		for i := range words {
			words[i].Text = upper(words[i].Text)
		}
	}
	return words
}

func buildEvent(line []Word, current int, opts SynthOptions) ass.Event {
	word := line[current]
	last := current == len(line)-1

	parts := make([]string, 0, current+1)
	for j := 0; j <= current; j++ {
		if j == current {
			tags := ass.ColorTag(opts.ActiveColor)
			if opts.BounceEnabled {
				tags += ass.BounceTag(millis(word.End-word.Start), opts.BounceScale, opts.BounceDurationMs)
			}
			parts = append(parts, tags+line[j].Text+ass.ResetTag())
			continue
		}
		parts = append(parts, ass.ColorTag(opts.InactiveColor)+line[j].Text+ass.ResetTag())
	}

	fade := max(opts.FadeDurationMs, 0)
	end := word.End
	var prefix string
	switch {
	case current == 0 && last:
		prefix = ass.ColorTag(opts.ActiveColor) + ass.FadeTag(fade, fade)
		end += float64(fade) / 1000
	case current == 0:
		prefix = ass.ColorTag(opts.ActiveColor) + ass.FadeTag(fade, 0)
	case last:
		prefix = ass.ColorTag(opts.ActiveColor) + ass.FadeTag(0, fade)
		end += float64(fade) / 1000
	}

	return ass.Event{
		Start: word.Start,
		End:   end,
		Style: opts.StyleName,
		Text:  prefix + strings.Join(parts, " "),
	}
}

func millis(seconds float64) int {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return int(math.Round(seconds * 1000))
}
