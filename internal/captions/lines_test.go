package captions

import (
	"strings"
	"testing"
)

func wordsFrom(texts ...string) []Word {
	words := make([]Word, len(texts))
	for i, text := range texts {
		words[i] = Word{Text: text, Start: float64(i), End: float64(i + 1)}
	}
	return words
}

func lineTexts(lines [][]Word) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = joinWords(line)
	}
	return out
}

func TestPackLines(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		maxChars int
		want     []string
	}{
		{
			name:     "greedy fill",
			words:    []string{"The", "quick", "brown", "fox", "jumps"},
			maxChars: 12,
			want:     []string{"The quick", "brown fox", "jumps"},
		},
		{
			name:     "exact fit counts separators",
			words:    []string{"abcde", "fghij"},
			maxChars: 11,
			want:     []string{"abcde fghij"},
		},
		{
			name:     "overlong word gets its own line",
			words:    []string{"a", "extraordinarily", "b"},
			maxChars: 5,
			want:     []string{"a", "extraordinarily", "b"},
		},
		{
			name:     "runes not bytes",
			words:    []string{"héllo", "wörld"},
			maxChars: 11,
			want:     []string{"héllo wörld"},
		},
		{
			name:     "zero budget keeps one line",
			words:    []string{"one", "two", "three"},
			maxChars: 0,
			want:     []string{"one two three"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineTexts(PackLines(wordsFrom(tt.words...), tt.maxChars))
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("PackLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPackLinesPreservesEveryWord(t *testing.T) {
	words := wordsFrom(strings.Fields("it was the best of times it was the worst of times")...)
	lines := PackLines(words, 9)

	var flattened []Word
	for _, line := range lines {
		if len(line) == 0 {
			t.Fatal("unexpected empty line")
		}
		flattened = append(flattened, line...)
	}
	if len(flattened) != len(words) {
		t.Fatalf("expected %d words after packing, got %d", len(words), len(flattened))
	}
	for i := range words {
		if flattened[i] != words[i] {
			t.Fatalf("word %d changed: got %+v want %+v", i, flattened[i], words[i])
		}
	}
}

func TestPackLinesEmpty(t *testing.T) {
	if lines := PackLines(nil, 10); lines != nil {
		t.Fatalf("expected nil for no words, got %v", lines)
	}
}
