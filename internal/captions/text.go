package captions

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// braceReplacer keeps transcript text from opening or closing override blocks.
var braceReplacer = strings.NewReplacer("{", "(", "}", ")")

// sanitizeWord collapses internal whitespace and neutralizes override braces.
func sanitizeWord(text string) string {
	return braceReplacer.Replace(strings.Join(strings.Fields(text), " "))
}

func splitTokens(text string) []string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, field := range fields {
		if cleaned := sanitizeWord(field); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// upperCaser is language-neutral so transcripts in any language upper-case
// predictably.
var upperCaser = cases.Upper(language.Und)

func upper(text string) string {
	return upperCaser.String(text)
}

// joinWords renders the plain text of a word run.
func joinWords(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, word := range words {
		parts = append(parts, word.Text)
	}
	return strings.Join(parts, " ")
}
