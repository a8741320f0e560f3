package captions

import (
	"strings"

	"captionkit/internal/ass"
)

// Summary describes a compiled document.
type Summary struct {
	Phrases  int     `json:"phrases"`
	Lines    int     `json:"lines"`
	Events   int     `json:"events"`
	Duration float64 `json:"duration_seconds"`
}

// Summarize counts what Compile produced. A line opener is the only event of
// its line that shows a single word, so it carries exactly one reset tag.
func Summarize(phrases []Phrase, doc *ass.Document) Summary {
	summary := Summary{Phrases: len(phrases)}
	if doc == nil {
		return summary
	}
	summary.Events = len(doc.Events)
	summary.Duration = doc.Duration()
	reset := ass.ResetTag()
	for _, event := range doc.Events {
		if strings.Count(event.Text, reset) == 1 {
			summary.Lines++
		}
	}
	return summary
}
