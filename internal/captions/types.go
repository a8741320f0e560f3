package captions

// Word is a single transcribed word with its timing in seconds.
type Word struct {
	Text  string  `json:"text" yaml:"text"`
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Phrase is a caption unit. Words is optional; when empty the phrase text is
// split on whitespace and timed evenly across [Start, End].
type Phrase struct {
	Text  string  `json:"text" yaml:"text"`
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Words []Word  `json:"words,omitempty" yaml:"words,omitempty"`
}

// Canvas is the pixel size of the video the captions are burned into.
type Canvas struct {
	Width  int
	Height int
}

// WordCount returns the number of non-blank words across all phrases,
// deriving words for phrases that only carry text. It equals the number of
// events Synthesize emits for the same input.
func WordCount(phrases []Phrase) int {
	total := 0
	for _, phrase := range phrases {
		if len(phrase.Words) > 0 {
			for _, word := range phrase.Words {
				if sanitizeWord(word.Text) != "" {
					total++
				}
			}
			continue
		}
		total += len(splitTokens(phrase.Text))
	}
	return total
}
