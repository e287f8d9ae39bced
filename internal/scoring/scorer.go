// Package scoring computes heuristic quality scores for scripts, titles,
// and hooks. Every function here is pure: identical input and lexicon
// configuration produce byte-identical results.
package scoring

import (
	"math"
	"strings"
)

// ScoreBreakdown is the result of analyzing one piece of text. Sub-scores
// are clamped to [0,100]; Overall is the rounded mean of the five.
type ScoreBreakdown struct {
	HookStrength        int       `json:"hookStrength"`
	EngagementPotential int       `json:"engagementPotential"`
	Clarity             int       `json:"clarity"`
	EmotionalImpact     int       `json:"emotionalImpact"`
	CTAStrength         int       `json:"ctaStrength"`
	Overall             int       `json:"overall"`
	LengthFit           LengthFit `json:"lengthFit"`
}

// LengthFit reports how the text's word count sits against the platform's
// recommended band.
type LengthFit struct {
	Words      int  `json:"words"`
	Min        int  `json:"recommendedMin"`
	Max        int  `json:"recommendedMax"`
	Optimal    int  `json:"optimal"`
	WithinBand bool `json:"withinBand"`
}

// Scorer evaluates text against an injected lexicon and band table.
type Scorer struct {
	lex   Lexicon
	bands Bands
}

// NewScorer constructs a scorer. Nil bands fall back to defaults.
func NewScorer(lex Lexicon, bands Bands) *Scorer {
	if bands == nil {
		bands = DefaultBands()
	}
	return &Scorer{lex: lex, bands: bands}
}

// Analyze scores text for a target platform.
func (s *Scorer) Analyze(text string, platform Platform) ScoreBreakdown {
	words := Tokenize(text)
	counts := WordCounts(words)

	hook := s.HookStrength(FirstSentence(text))
	engagement := s.engagement(text, counts)
	clarity := s.clarity(text, words)
	emotional := s.emotionalImpact(counts)
	cta := s.ctaStrength(counts)

	overall := int(math.Round(float64(hook+engagement+clarity+emotional+cta) / 5.0))

	band := s.bands.Band(platform)
	return ScoreBreakdown{
		HookStrength:        hook,
		EngagementPotential: engagement,
		Clarity:             clarity,
		EmotionalImpact:     emotional,
		CTAStrength:         cta,
		Overall:             overall,
		LengthFit: LengthFit{
			Words:      len(words),
			Min:        band.Min,
			Max:        band.Max,
			Optimal:    band.Optimal,
			WithinBand: len(words) >= band.Min && len(words) <= band.Max,
		},
	}
}

// HookStrength scores a single opening line. Base 50; +15 for a question
// mark, +10 for a digit, +5 per power word, +5 per urgency word. This is
// also the viral-score primitive used for hook candidates.
func (s *Scorer) HookStrength(line string) int {
	score := 50
	if strings.ContainsRune(line, '?') {
		score += 15
	}
	if strings.ContainsAny(line, "0123456789") {
		score += 10
	}
	counts := WordCounts(Tokenize(line))
	score += 5 * CountOccurrences(counts, s.lex.PowerWords)
	score += 5 * CountOccurrences(counts, s.lex.UrgencyWords)
	return clamp(score)
}

// engagement scores the whole text. Base 50; +5 per question mark capped at
// +20, +2 per emotional word, +1 per personal pronoun capped at +10 per
// pronoun type.
func (s *Scorer) engagement(text string, counts map[string]int) int {
	score := 50
	score += min(20, 5*strings.Count(text, "?"))
	score += 2 * CountOccurrences(counts, s.lex.EmotionalWords)
	for _, pronoun := range s.lex.Pronouns {
		score += min(10, counts[strings.ToLower(pronoun)])
	}
	return clamp(score)
}

// clarity starts at 100 and penalizes long sentences and a high share of
// long words.
func (s *Scorer) clarity(text string, words []string) int {
	score := 100
	sentences := splitSentences(text)
	if len(sentences) > 0 && len(words) > 0 {
		avg := float64(len(words)) / float64(len(sentences))
		if avg > 20 {
			score -= 20
		}
		if avg > 30 {
			score -= 20
		}
		long := 0
		for _, w := range words {
			if len(w) > 10 {
				long++
			}
		}
		if float64(long)/float64(len(words)) > 0.10 {
			score -= 15
		}
	}
	return clamp(score)
}

// emotionalImpact rewards both positive and negative emotional language.
// Negative language is also engaging.
func (s *Scorer) emotionalImpact(counts map[string]int) int {
	score := 30
	score += 5 * CountPresent(counts, s.lex.PositiveWords)
	score += 5 * CountPresent(counts, s.lex.NegativeWords)
	score += 8 * CountPresent(counts, s.lex.StoryWords)
	return clamp(score)
}

// ctaStrength rewards explicit calls to action over generic action verbs.
func (s *Scorer) ctaStrength(counts map[string]int) int {
	score := 20
	score += 10 * CountPresent(counts, s.lex.CTAVerbs)
	score += 5 * CountPresent(counts, s.lex.ActionVerbs)
	return clamp(score)
}
