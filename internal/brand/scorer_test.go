package brand

import (
	"testing"
)

func TestCheckAlignmentAvoidedWordFlagged(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Voice: Voice{Tone: ToneCasual, AvoidWords: []string{"cheap"}},
	}

	result := checker.CheckAlignment("Our cheap tripods work great outdoors.", guidelines)

	if len(result.Issues) != 1 {
		t.Fatalf("expected exactly one issue, got %d: %+v", len(result.Issues), result.Issues)
	}
	issue := result.Issues[0]
	if issue.Category != CategoryVoice {
		t.Fatalf("Category = %s, want voice", issue.Category)
	}
	if issue.Severity != SeverityMedium {
		t.Fatalf("Severity = %s, want medium", issue.Severity)
	}
	if result.VoiceScore != 40 {
		t.Fatalf("VoiceScore = %d, want 40", result.VoiceScore)
	}
}

func TestCheckAlignmentCleanContentHasNoIssues(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Voice: Voice{Tone: ToneCasual, AvoidWords: []string{"cheap"}},
	}

	result := checker.CheckAlignment("Our affordable tripods work great outdoors.", guidelines)

	if result.Issues == nil {
		t.Fatalf("Issues must be an empty slice, not nil")
	}
	if len(result.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", result.Issues)
	}
	if result.VoiceScore != 50 {
		t.Fatalf("VoiceScore = %d, want base 50", result.VoiceScore)
	}
}

func TestCheckAlignmentOverallIsMeanOfThree(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Voice:     Voice{Tone: ToneProfessional, PreferredWords: []string{"proven"}},
		Messaging: Messaging{KeyMessages: []string{"save time"}},
		Rules:     Rules{RequiredElements: []string{"disclaimer"}},
	}

	result := checker.CheckAlignment("Our proven workflow will save time. Disclaimer: terms apply.", guidelines)

	// Voice: 50 +5 preferred +3 tone word ("proven" signals professional).
	if result.VoiceScore != 58 {
		t.Fatalf("VoiceScore = %d, want 58", result.VoiceScore)
	}
	// Messaging: 50 +10 full key-message overlap.
	if result.MessagingScore != 60 {
		t.Fatalf("MessagingScore = %d, want 60", result.MessagingScore)
	}
	// Compliance: 50 +10 required element.
	if result.ComplianceScore != 60 {
		t.Fatalf("ComplianceScore = %d, want 60", result.ComplianceScore)
	}
	if result.Overall != 59 {
		t.Fatalf("Overall = %d, want 59", result.Overall)
	}
}

func TestCheckAlignmentMissingKeyMessage(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Messaging: Messaging{KeyMessages: []string{"creators come first"}},
	}

	result := checker.CheckAlignment("A video about lighting setups.", guidelines)

	if len(result.Issues) != 1 {
		t.Fatalf("expected one issue, got %+v", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Category != CategoryMessaging || issue.Severity != SeverityMedium {
		t.Fatalf("unexpected issue: %+v", issue)
	}
}

func TestCheckAlignmentForbiddenTopic(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Rules: Rules{ForbiddenTopics: []string{"gambling", "crypto trading"}},
	}

	result := checker.CheckAlignment("Why crypto trading beats gambling for passive income.", guidelines)

	if len(result.Issues) != 2 {
		t.Fatalf("expected two issues, got %+v", result.Issues)
	}
	for _, issue := range result.Issues {
		if issue.Category != CategoryCompliance || issue.Severity != SeverityHigh {
			t.Fatalf("unexpected issue: %+v", issue)
		}
	}
	if result.ComplianceScore != 20 {
		t.Fatalf("ComplianceScore = %d, want 20", result.ComplianceScore)
	}
}

func TestCheckAlignmentIssueOrderIsStable(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Voice:     Voice{AvoidWords: []string{"cheap"}},
		Messaging: Messaging{KeyMessages: []string{"built for creators"}},
		Rules:     Rules{ForbiddenTopics: []string{"gambling"}},
	}

	result := checker.CheckAlignment("Cheap gear for gambling streams.", guidelines)

	want := []Category{CategoryVoice, CategoryMessaging, CategoryCompliance}
	if len(result.Issues) != len(want) {
		t.Fatalf("expected %d issues, got %+v", len(want), result.Issues)
	}
	for i, issue := range result.Issues {
		if issue.Category != want[i] {
			t.Fatalf("issue %d category = %s, want %s", i, issue.Category, want[i])
		}
	}
}

func TestCheckAlignmentScoresClamped(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Voice: Voice{AvoidWords: []string{"bad", "worse", "worst", "awful", "dreadful", "rotten"}},
	}

	result := checker.CheckAlignment("bad worse worst awful dreadful rotten", guidelines)

	if result.VoiceScore != 0 {
		t.Fatalf("VoiceScore = %d, want clamped 0", result.VoiceScore)
	}
}

func TestRewriteSubstitutesAvoidedWords(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Voice: Voice{
			AvoidWords:     []string{"cheap"},
			PreferredWords: []string{"affordable"},
		},
	}

	got := checker.Rewrite("Cheap gear. Really cheap. Cheapest around.", guidelines)
	want := "affordable gear. Really affordable. Cheapest around."
	if got != want {
		t.Fatalf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteAppendsMissingKeyMessage(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Messaging: Messaging{KeyMessages: []string{"built for creators"}},
	}

	got := checker.Rewrite("A review of three microphones.", guidelines)
	want := "A review of three microphones. built for creators"
	if got != want {
		t.Fatalf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteLeavesAlignedContentAlone(t *testing.T) {
	checker := NewChecker(nil)
	guidelines := Guidelines{
		Messaging: Messaging{KeyMessages: []string{"built for creators"}},
	}

	content := "This rig is built for creators on the move."
	if got := checker.Rewrite(content, guidelines); got != content {
		t.Fatalf("Rewrite modified aligned content: %q", got)
	}
}

func TestParseToneDefaultsToCasual(t *testing.T) {
	if got := ParseTone("sarcastic"); got != ToneCasual {
		t.Fatalf("ParseTone(sarcastic) = %s, want casual", got)
	}
	if got := ParseTone(" Professional "); got != ToneProfessional {
		t.Fatalf("ParseTone(Professional) = %s, want professional", got)
	}
}
