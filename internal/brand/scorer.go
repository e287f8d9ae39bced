package brand

import (
	"fmt"
	"math"
	"strings"

	"creator-backend/internal/scoring"
)

// DefaultToneWords maps each declared tone to words that signal it.
func DefaultToneWords() map[Tone][]string {
	return map[Tone][]string{
		ToneProfessional:  {"expertise", "solution", "results", "quality", "reliable", "proven"},
		ToneCasual:        {"hey", "awesome", "cool", "fun", "easy", "honestly"},
		ToneHumorous:      {"funny", "hilarious", "joke", "laugh", "ridiculous"},
		ToneInspirational: {"dream", "believe", "achieve", "grow", "transform", "journey"},
		ToneEducational:   {"learn", "understand", "explain", "guide", "step", "how"},
	}
}

// Checker scores content alignment against brand guidelines.
type Checker struct {
	toneWords map[Tone][]string
}

// NewChecker constructs a Checker. Nil tone tables fall back to defaults.
func NewChecker(toneWords map[Tone][]string) *Checker {
	if toneWords == nil {
		toneWords = DefaultToneWords()
	}
	return &Checker{toneWords: toneWords}
}

// CheckAlignment scores content against the guidelines and collects issues
// in a stable order: voice first, then messaging, then compliance.
func (c *Checker) CheckAlignment(content string, g Guidelines) CheckResult {
	lower := strings.ToLower(content)
	counts := scoring.WordCounts(scoring.Tokenize(content))

	var issues []Issue
	voice := c.voiceScore(counts, g.Voice, &issues)
	messaging := c.messagingScore(counts, g.Messaging, &issues)
	compliance := c.complianceScore(lower, counts, g.Rules, &issues)

	overall := int(math.Round(float64(voice+messaging+compliance) / 3.0))
	if issues == nil {
		issues = []Issue{}
	}
	return CheckResult{
		VoiceScore:      voice,
		MessagingScore:  messaging,
		ComplianceScore: compliance,
		Overall:         overall,
		Issues:          issues,
	}
}

// voiceScore: base 50; +5 per preferred word present, -10 per avoided word
// present, +3 per tone-appropriate word present.
func (c *Checker) voiceScore(counts map[string]int, v Voice, issues *[]Issue) int {
	score := 50
	score += 5 * scoring.CountPresent(counts, v.PreferredWords)

	for _, avoided := range v.AvoidWords {
		if counts[strings.ToLower(avoided)] == 0 {
			continue
		}
		score -= 10
		fix := fmt.Sprintf("Remove %q from the copy", avoided)
		if len(v.PreferredWords) > 0 {
			fix = fmt.Sprintf("Replace %q with %q", avoided, v.PreferredWords[0])
		}
		*issues = append(*issues, Issue{
			Category:    CategoryVoice,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Content uses the avoided word %q", avoided),
			Fix:         fix,
		})
	}

	score += 3 * scoring.CountPresent(counts, c.toneWords[v.Tone])
	return clamp(score)
}

// messagingScore: base 50; up to +10 per key message and +15 for the value
// proposition, proportional to word overlap with the content.
func (c *Checker) messagingScore(counts map[string]int, m Messaging, issues *[]Issue) int {
	score := 50

	anyMessagePresent := false
	for _, message := range m.KeyMessages {
		frac := overlapFraction(counts, message)
		score += int(math.Round(frac * 10))
		if frac >= 1 {
			anyMessagePresent = true
		}
	}
	if len(m.KeyMessages) > 0 && !anyMessagePresent {
		*issues = append(*issues, Issue{
			Category:    CategoryMessaging,
			Severity:    SeverityMedium,
			Description: "No key message appears in the content",
			Fix:         fmt.Sprintf("Weave in a key message, e.g. %q", m.KeyMessages[0]),
		})
	}

	score += int(math.Round(overlapFraction(counts, m.ValueProposition) * 15))
	return clamp(score)
}

// complianceScore: base 50; +10 per required element present, -15 per
// forbidden topic present, +8 per content-pillar keyword present.
func (c *Checker) complianceScore(lowerContent string, counts map[string]int, r Rules, issues *[]Issue) int {
	score := 50

	for _, required := range r.RequiredElements {
		if containsPhrase(lowerContent, counts, required) {
			score += 10
		}
	}

	for _, forbidden := range r.ForbiddenTopics {
		if !containsPhrase(lowerContent, counts, forbidden) {
			continue
		}
		score -= 15
		*issues = append(*issues, Issue{
			Category:    CategoryCompliance,
			Severity:    SeverityHigh,
			Description: fmt.Sprintf("Content touches the forbidden topic %q", forbidden),
			Fix:         fmt.Sprintf("Remove all references to %q", forbidden),
		})
	}

	for _, pillar := range r.Pillars {
		if containsPhrase(lowerContent, counts, pillar) {
			score += 8
		}
	}
	return clamp(score)
}

// overlapFraction reports the share of the phrase's words present in the
// content. Empty phrases contribute nothing.
func overlapFraction(counts map[string]int, phrase string) float64 {
	words := scoring.Tokenize(phrase)
	if len(words) == 0 {
		return 0
	}
	matched := 0
	for _, w := range words {
		if counts[w] > 0 {
			matched++
		}
	}
	return float64(matched) / float64(len(words))
}

// containsPhrase matches single words against the token counts and longer
// phrases as case-insensitive substrings.
func containsPhrase(lowerContent string, counts map[string]int, phrase string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(phrase))
	if trimmed == "" {
		return false
	}
	if !strings.ContainsAny(trimmed, " \t") {
		return counts[trimmed] > 0
	}
	return strings.Contains(lowerContent, trimmed)
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
