package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"captionkit/internal/captions"
)

type whisperXPayload struct {
	Segments []whisperXSegment `json:"segments"`
}

type whisperXSegment struct {
	Text  string         `json:"text"`
	Start float64        `json:"start"`
	End   float64        `json:"end"`
	Words []whisperXWord `json:"words"`
}

// whisperXWord timings are pointers because the aligner leaves tokens it
// could not place (digits, symbols) without start or end.
type whisperXWord struct {
	Word  string   `json:"word"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
	Score *float64 `json:"score"`
}

func looksLikeWhisperX(data []byte) bool {
	var probe struct {
		Segments json.RawMessage `json:"segments"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return len(probe.Segments) > 0 && string(probe.Segments) != "null"
}

func parseWhisperX(data []byte) (Transcript, error) {
	var payload whisperXPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Transcript{}, fmt.Errorf("decode whisperx json: %w", err)
	}
	if len(payload.Segments) == 0 {
		return Transcript{}, errors.New("whisperx transcript has no segments")
	}

	phrases := make([]captions.Phrase, 0, len(payload.Segments))
	for _, segment := range payload.Segments {
		phrase := captions.Phrase{
			Text:  strings.TrimSpace(segment.Text),
			Start: segment.Start,
			End:   segment.End,
			Words: alignWords(segment),
		}
		if phrase.Text == "" && len(phrase.Words) == 0 {
			continue
		}
		phrases = append(phrases, phrase)
	}
	if len(phrases) == 0 {
		return Transcript{}, errors.New("whisperx transcript has no text")
	}
	return Transcript{
		Format:  FormatWhisperX,
		Phrases: phrases,
		Words:   captions.FlattenWords(phrases),
	}, nil
}

// alignWords fills missing timings: an unplaced start follows the previous
// word, an unplaced end runs to the next placed start or the segment end.
func alignWords(segment whisperXSegment) []captions.Word {
	if len(segment.Words) == 0 {
		return nil
	}
	words := make([]captions.Word, 0, len(segment.Words))
	cursor := segment.Start
	for i, raw := range segment.Words {
		text := strings.TrimSpace(raw.Word)
		if text == "" {
			continue
		}
		start := cursor
		if raw.Start != nil {
			start = *raw.Start
		}
		end := nextStart(segment, i+1)
		if raw.End != nil {
			end = *raw.End
		}
		if end < start {
			end = start
		}
		words = append(words, captions.Word{Text: text, Start: start, End: end})
		cursor = end
	}
	return words
}

func nextStart(segment whisperXSegment, from int) float64 {
	for _, word := range segment.Words[from:] {
		if word.Start != nil {
			return *word.Start
		}
	}
	return segment.End
}
