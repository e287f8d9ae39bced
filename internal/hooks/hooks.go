// Package hooks generates and ranks attention-grabbing opening lines.
// Candidate text comes from a generation provider; classification, scoring,
// and ranking are pure and deterministic given the same candidates.
package hooks

import (
	"errors"
	"sort"
	"strings"

	"creator-backend/internal/scoring"
)

// ErrNoCandidates indicates the provider returned zero usable lines.
var ErrNoCandidates = errors.New("no usable hook candidates generated")

// Type tags the rhetorical device a hook leans on.
type Type string

const (
	TypeQuestion    Type = "question"
	TypeStatement   Type = "statement"
	TypeStatistic   Type = "statistic"
	TypeStory       Type = "story"
	TypeControversy Type = "controversy"
)

// Hook is one ranked candidate.
type Hook struct {
	Text       string `json:"text"`
	Type       Type   `json:"type"`
	ViralScore int    `json:"viralScore"`
}

// ParseCandidates splits provider output into usable candidate lines,
// stripping blank lines and list markers.
func ParseCandidates(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned := trimListMarker(line)
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}
	return out
}

// Rank classifies and scores candidates, sorts them by descending viral
// score with generation order breaking ties, and truncates to count.
func Rank(candidates []string, scorer *scoring.Scorer, count int) []Hook {
	ranked := make([]Hook, 0, len(candidates))
	for _, text := range candidates {
		ranked = append(ranked, Hook{
			Text:       text,
			Type:       Classify(text),
			ViralScore: scorer.HookStrength(text),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViralScore > ranked[j].ViralScore
	})
	if count > 0 && len(ranked) > count {
		ranked = ranked[:count]
	}
	return ranked
}

var questionStarters = []string{
	"what", "why", "how", "who", "when", "where",
	"do", "does", "did", "is", "are", "can", "could", "would", "will", "have",
}

var controversyWords = []string{
	"stop", "never", "wrong", "truth", "nobody", "everyone",
	"unpopular", "myth", "lie", "overrated",
}

// Classify tags a candidate with its dominant rhetorical type. Checks run
// from most to least specific: question, statistic, controversy, story.
func Classify(text string) Type {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	words := scoring.Tokenize(trimmed)
	counts := scoring.WordCounts(words)

	if strings.HasSuffix(trimmed, "?") || startsWithAny(lower, questionStarters) {
		return TypeQuestion
	}
	if strings.ContainsAny(trimmed, "0123456789") || strings.Contains(trimmed, "%") {
		return TypeStatistic
	}
	if scoring.CountPresent(counts, controversyWords) > 0 {
		return TypeControversy
	}
	if scoring.CountPresent(counts, []string{"story", "happened", "experience", "journey", "i", "my"}) > 0 {
		return TypeStory
	}
	return TypeStatement
}

func startsWithAny(lower string, starters []string) bool {
	first := lower
	if idx := strings.IndexAny(lower, " \t"); idx >= 0 {
		first = lower[:idx]
	}
	for _, starter := range starters {
		if first == starter {
			return true
		}
	}
	return false
}

func trimListMarker(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-*•")
	line = strings.TrimSpace(line)
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		line = strings.TrimSpace(line[i+1:])
	}
	return line
}
