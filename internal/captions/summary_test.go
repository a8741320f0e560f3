package captions

import (
	"testing"

	"captionkit/internal/ass"
)

func TestSummarizeCountsLines(t *testing.T) {
	opts := SynthOptions{StyleName: "Active", ActiveColor: "&H00FFFF", InactiveColor: "&HFFFFFF", MaxCharsPerLine: 12}
	phrases := []Phrase{
		{Words: wordsFrom("The", "quick", "brown", "fox", "jumps")},
	}
	events, err := Synthesize(phrases, opts, nil)
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	summary := Summarize(phrases, &ass.Document{Events: events})
	if summary.Phrases != 1 || summary.Events != 5 || summary.Lines != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Duration != 5 {
		t.Fatalf("expected duration 5, got %v", summary.Duration)
	}
	if empty := Summarize(phrases, nil); empty.Events != 0 || empty.Phrases != 1 {
		t.Fatalf("unexpected summary for nil document: %+v", empty)
	}
}

func TestFlattenWords(t *testing.T) {
	phrases := []Phrase{
		{Words: []Word{{Text: "a", Start: 0, End: 1}, {Text: " ", Start: 1, End: 2}}},
		{Text: "b c", Start: 2, End: 4},
	}
	words := FlattenWords(phrases)
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %+v", words)
	}
	if words[2].Text != "c" || words[2].Start != 3 || words[2].End != 4 {
		t.Fatalf("unexpected derived word %+v", words[2])
	}
}
