package captions

import "strings"

// closingPunctuation may trail a sentence terminator, as in `done."` or `(why?)`.
const closingPunctuation = `"')]”’»`

// SegmentPhrases groups a flat word stream into phrases. A phrase closes once
// it holds maxWords words (maxWords <= 0 means no bound) or when a word ends
// a sentence with '.', '!' or '?'. The trailing partial phrase is kept.
func SegmentPhrases(words []Word, maxWords int) []Phrase {
	var phrases []Phrase
	var current []Word
	flush := func() {
		if len(current) == 0 {
			return
		}
		phrases = append(phrases, Phrase{
			Text:  joinWords(current),
			Start: current[0].Start,
			End:   current[len(current)-1].End,
			Words: current,
		})
		current = nil
	}
	for _, word := range words {
		current = append(current, word)
		if (maxWords > 0 && len(current) >= maxWords) || endsSentence(word.Text) {
			flush()
		}
	}
	flush()
	return phrases
}

func endsSentence(text string) bool {
	trimmed := strings.TrimRight(strings.TrimSpace(text), closingPunctuation)
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// deriveWords splits text on whitespace and spreads the tokens evenly over
// [start, end]. An inverted range yields zero-length words pinned to start.
func deriveWords(text string, start, end float64) []Word {
	tokens := splitTokens(text)
	if len(tokens) == 0 {
		return nil
	}
	if end < start {
		end = start
	}
	step := (end - start) / float64(len(tokens))
	words := make([]Word, len(tokens))
	for i, token := range tokens {
		words[i] = Word{
			Text:  token,
			Start: start + float64(i)*step,
			End:   start + float64(i+1)*step,
		}
	}
	words[len(words)-1].End = end
	return words
}

// FlattenWords returns every word across phrases in order. Text-only phrases
// contribute evenly timed words, the same ones Synthesize would caption.
func FlattenWords(phrases []Phrase) []Word {
	var words []Word
	for _, phrase := range phrases {
		if len(phrase.Words) == 0 {
			words = append(words, deriveWords(phrase.Text, phrase.Start, phrase.End)...)
			continue
		}
		for _, word := range phrase.Words {
			if text := sanitizeWord(word.Text); text != "" {
				word.Text = text
				words = append(words, word)
			}
		}
	}
	return words
}
