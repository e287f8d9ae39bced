package scoring

// Lexicon configures the word lists the scoring rules match against.
// Constants here are tuning knobs, not ground truth; override them via the
// tunables file when calibrating.
type Lexicon struct {
	PowerWords     []string `yaml:"powerWords"`
	UrgencyWords   []string `yaml:"urgencyWords"`
	EmotionalWords []string `yaml:"emotionalWords"`
	PositiveWords  []string `yaml:"positiveWords"`
	NegativeWords  []string `yaml:"negativeWords"`
	StoryWords     []string `yaml:"storyWords"`
	CTAVerbs       []string `yaml:"ctaVerbs"`
	ActionVerbs    []string `yaml:"actionVerbs"`
	Pronouns       []string `yaml:"pronouns"`
}

// DefaultLexicon returns the built-in word lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		PowerWords: []string{
			"secret", "proven", "ultimate", "exclusive", "guaranteed",
			"powerful", "instantly", "free", "shocking", "unbelievable",
		},
		UrgencyWords: []string{
			"now", "today", "limited", "hurry", "fast", "immediately",
		},
		EmotionalWords: []string{
			"love", "hate", "amazing", "incredible", "shocking", "unbelievable",
			"heartbreaking", "inspiring", "terrifying", "hilarious",
		},
		PositiveWords: []string{
			"amazing", "love", "beautiful", "brilliant", "success",
			"win", "happy", "inspiring", "incredible",
		},
		NegativeWords: []string{
			"hate", "fail", "terrible", "worst", "mistake",
			"broken", "wrong", "scary", "painful",
		},
		StoryWords: []string{
			"story", "happened", "experience", "journey",
		},
		CTAVerbs: []string{
			"subscribe", "like", "comment", "share", "follow",
			"click", "visit", "download",
		},
		ActionVerbs: []string{
			"try", "start", "join", "discover", "learn", "get",
		},
		Pronouns: []string{
			"you", "your", "we", "us", "our",
		},
	}
}
