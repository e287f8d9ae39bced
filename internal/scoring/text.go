package scoring

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into words. Apostrophes stay part
// of the word so "don't" is one token.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// WordCounts builds a frequency map from tokenized words.
func WordCounts(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}

// CountOccurrences sums how often any of the keywords appear.
func CountOccurrences(counts map[string]int, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		total += counts[strings.ToLower(kw)]
	}
	return total
}

// CountPresent counts how many of the keywords appear at least once.
func CountPresent(counts map[string]int, keywords []string) int {
	present := 0
	for _, kw := range keywords {
		if counts[strings.ToLower(kw)] > 0 {
			present++
		}
	}
	return present
}

// FirstSentence returns the text through the first sentence terminator, or
// the whole text when no terminator exists.
func FirstSentence(text string) string {
	trimmed := strings.TrimSpace(text)
	for i, r := range trimmed {
		if r == '.' || r == '!' || r == '?' {
			return trimmed[:i+len(string(r))]
		}
	}
	return trimmed
}

// splitSentences breaks text on sentence terminators, dropping empties.
func splitSentences(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := fields[:0]
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			out = append(out, f)
		}
	}
	return out
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
