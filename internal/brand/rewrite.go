package brand

import (
	"strings"

	"creator-backend/internal/scoring"
)

// Rewrite mechanically substitutes avoided words with the first preferred
// word and appends the first key message when none is present. This is a
// best-effort transform, not guaranteed to preserve meaning; callers who
// need semantic rewriting should route the content through a generation
// provider instead.
func (c *Checker) Rewrite(content string, g Guidelines) string {
	out := content
	if len(g.Voice.PreferredWords) > 0 {
		replacement := g.Voice.PreferredWords[0]
		for _, avoided := range g.Voice.AvoidWords {
			out = replaceWordFold(out, avoided, replacement)
		}
	}

	counts := scoring.WordCounts(scoring.Tokenize(out))
	for _, message := range g.Messaging.KeyMessages {
		if overlapFraction(counts, message) >= 1 {
			return out
		}
	}
	if len(g.Messaging.KeyMessages) > 0 {
		out = strings.TrimRight(out, " \n") + " " + g.Messaging.KeyMessages[0]
	}
	return out
}

// replaceWordFold replaces whole-word, case-insensitive occurrences.
func replaceWordFold(text, word, replacement string) string {
	if strings.TrimSpace(word) == "" {
		return text
	}
	var sb strings.Builder
	lower := strings.ToLower(text)
	target := strings.ToLower(word)
	i := 0
	for i < len(text) {
		j := strings.Index(lower[i:], target)
		if j < 0 {
			sb.WriteString(text[i:])
			break
		}
		start := i + j
		end := start + len(target)
		if isWordBoundary(lower, start-1) && isWordBoundary(lower, end) {
			sb.WriteString(text[i:start])
			sb.WriteString(replacement)
		} else {
			sb.WriteString(text[i:end])
		}
		i = end
	}
	return sb.String()
}

func isWordBoundary(lower string, idx int) bool {
	if idx < 0 || idx >= len(lower) {
		return true
	}
	ch := lower[idx]
	isWord := ch == '\'' || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
	return !isWord
}
