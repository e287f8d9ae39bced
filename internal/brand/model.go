// Package brand scores content against caller-supplied brand guidelines.
package brand

import "strings"

// Tone is the declared brand voice tone.
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneInspirational Tone = "inspirational"
	ToneEducational   Tone = "educational"
)

// ParseTone normalizes a raw tone name; unknown values map to casual.
func ParseTone(raw string) Tone {
	switch Tone(strings.ToLower(strings.TrimSpace(raw))) {
	case ToneProfessional:
		return ToneProfessional
	case ToneHumorous:
		return ToneHumorous
	case ToneInspirational:
		return ToneInspirational
	case ToneEducational:
		return ToneEducational
	default:
		return ToneCasual
	}
}

// Voice describes how the brand sounds.
type Voice struct {
	Tone           Tone     `json:"tone"`
	Personality    []string `json:"personality"`
	AvoidWords     []string `json:"avoidWords"`
	PreferredWords []string `json:"preferredWords"`
}

// Messaging describes what the brand says.
type Messaging struct {
	Tagline          string   `json:"tagline"`
	KeyMessages      []string `json:"keyMessages"`
	ValueProposition string   `json:"valueProposition"`
	Audience         string   `json:"audience"`
}

// Rules constrain what content may cover.
type Rules struct {
	Pillars          []string `json:"pillars"`
	ForbiddenTopics  []string `json:"forbiddenTopics"`
	RequiredElements []string `json:"requiredElements"`
}

// Guidelines is the full caller-supplied brand specification. Read-only to
// the scorer.
type Guidelines struct {
	Voice     Voice     `json:"voice"`
	Messaging Messaging `json:"messaging"`
	Rules     Rules     `json:"rules"`
}

// Severity grades an issue.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Category tags which guideline area an issue belongs to.
type Category string

const (
	CategoryVoice      Category = "voice"
	CategoryMessaging  Category = "messaging"
	CategoryCompliance Category = "compliance"
)

// Issue is one concrete misalignment with a suggested fix.
type Issue struct {
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Fix         string   `json:"fix"`
}

// CheckResult is the outcome of one alignment check.
type CheckResult struct {
	VoiceScore      int     `json:"voiceScore"`
	MessagingScore  int     `json:"messagingScore"`
	ComplianceScore int     `json:"complianceScore"`
	Overall         int     `json:"overall"`
	Issues          []Issue `json:"issues"`
	Rewritten       string  `json:"rewritten,omitempty"`
}
