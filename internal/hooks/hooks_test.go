package hooks

import (
	"reflect"
	"testing"

	"creator-backend/internal/scoring"
)

func TestParseCandidatesStripsMarkers(t *testing.T) {
	raw := "1. First hook\n2) Second hook\n- Third hook\n* Fourth hook\n\n  • Fifth hook  \n"
	got := ParseCandidates(raw)
	want := []string{"First hook", "Second hook", "Third hook", "Fourth hook", "Fifth hook"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseCandidates = %v, want %v", got, want)
	}
}

func TestParseCandidatesKeepsLeadingNumbers(t *testing.T) {
	got := ParseCandidates("5 mistakes that kill your videos")
	want := []string{"5 mistakes that kill your videos"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseCandidates = %v, want %v", got, want)
	}
}

func TestParseCandidatesEmptyInput(t *testing.T) {
	if got := ParseCandidates("\n\n   \n"); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Type
	}{
		{name: "question mark", text: "Tired of slow growth?", want: TypeQuestion},
		{name: "question starter", text: "What nobody tells you about lighting", want: TypeQuestion},
		{name: "statistic digit", text: "3 habits of top creators", want: TypeStatistic},
		{name: "statistic percent", text: "Ninety% of channels stall here", want: TypeStatistic},
		{name: "controversy", text: "Everyone is wrong about thumbnails", want: TypeControversy},
		{name: "story first person", text: "My channel died and came back", want: TypeStory},
		{name: "story word", text: "The journey from zero subscribers", want: TypeStory},
		{name: "plain statement", text: "A better way to plan content", want: TypeStatement},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.text); got != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassifyQuestionBeatsStatistic(t *testing.T) {
	if got := Classify("Did 90% of creators really quit?"); got != TypeQuestion {
		t.Fatalf("Classify = %s, want question", got)
	}
}

func TestRankSortsByViralScoreDescending(t *testing.T) {
	scorer := scoring.NewScorer(scoring.DefaultLexicon(), nil)
	candidates := []string{
		"A plain statement about cameras",
		"Want the secret behind 1 million views?",
		"5 editing tricks the pros use",
	}

	ranked := Rank(candidates, scorer, 0)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 hooks, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].ViralScore < ranked[i].ViralScore {
			t.Fatalf("ranking not descending: %+v", ranked)
		}
	}
	if ranked[0].Text != "Want the secret behind 1 million views?" {
		t.Fatalf("strongest hook not first: %+v", ranked[0])
	}
}

func TestRankTiesPreserveGenerationOrder(t *testing.T) {
	scorer := scoring.NewScorer(scoring.DefaultLexicon(), nil)
	candidates := []string{
		"A plain statement about cameras",
		"Another plain statement about lenses",
		"One more plain statement about audio",
	}

	ranked := Rank(candidates, scorer, 0)
	for i, text := range candidates {
		if ranked[i].Text != text {
			t.Fatalf("tie order broken at %d: %+v", i, ranked)
		}
	}
}

func TestRankTruncatesToCount(t *testing.T) {
	scorer := scoring.NewScorer(scoring.DefaultLexicon(), nil)
	candidates := []string{"one", "two", "three", "four", "five"}

	ranked := Rank(candidates, scorer, 2)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 hooks, got %d", len(ranked))
	}
}
