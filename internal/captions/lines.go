package captions

import "unicode/utf8"

// PackLines groups words into display lines of at most maxChars characters,
// counting one separating space between words. A word longer than the budget
// is never split; it gets a line of its own. Every input word appears exactly
// once, in order. maxChars <= 0 disables packing and yields a single line.
func PackLines(words []Word, maxChars int) [][]Word {
	if len(words) == 0 {
		return nil
	}
	if maxChars <= 0 {
		return [][]Word{append([]Word(nil), words...)}
	}

	var lines [][]Word
	var current []Word
	length := 0
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word.Text)
		next := wordLen
		if len(current) > 0 {
			next = length + 1 + wordLen
		}
		if len(current) > 0 && next > maxChars {
			lines = append(lines, current)
			current = nil
			next = wordLen
		}
		current = append(current, word)
		length = next
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
