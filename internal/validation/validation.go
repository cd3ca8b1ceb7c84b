// Package validation implements the post-generation quality and safety gate.
// Checks are computed independently and combined through fixed score
// penalties; the result carries a publish/review/reject recommendation.
package validation

// Recommendation routes validated content downstream.
type Recommendation string

// Valid recommendations.
const (
	RecommendPublish Recommendation = "publish"
	RecommendReview  Recommendation = "review"
	RecommendReject  Recommendation = "reject"
)

// PurityCheck reports the fraction of Telugu-script characters over
// non-whitespace characters.
type PurityCheck struct {
	Passed bool    `json:"passed"`
	Ratio  float64 `json:"ratio"`
}

// ToxicityCheck reports harmful-pattern matches. Any hit fails.
type ToxicityCheck struct {
	Passed  bool     `json:"passed"`
	Matches []string `json:"matches,omitempty"`
}

// SensitiveCheck reports which sensitive pattern categories matched.
// Hits reduce the score but do not fail the check on their own.
type SensitiveCheck struct {
	Passed     bool     `json:"passed"`
	Categories []string `json:"categories,omitempty"`
}

// DuplicateCheck reports whether the normalized content hash collides with a
// previously registered hash under a different content id.
type DuplicateCheck struct {
	Passed bool   `json:"passed"`
	Hash   string `json:"hash"`
}

// ClickbaitCheck reports the accumulated clickbait score. Fails at or above
// the configured threshold.
type ClickbaitCheck struct {
	Passed bool `json:"passed"`
	Score  int  `json:"score"`
}

// WordCountCheck reports the body length against the category minimum.
type WordCountCheck struct {
	Passed  bool `json:"passed"`
	Words   int  `json:"words"`
	Minimum int  `json:"minimum"`
}

// Checks holds every independent validation check.
type Checks struct {
	TeluguQuality    PurityCheck    `json:"telugu_quality"`
	Toxicity         ToxicityCheck  `json:"toxicity"`
	SensitiveContent SensitiveCheck `json:"sensitive_content"`
	DuplicateCheck   DuplicateCheck `json:"duplicate_check"`
	Clickbait        ClickbaitCheck `json:"clickbait"`
	WordCount        WordCountCheck `json:"word_count"`
}

// ValidationResult is the gate's combined output.
type ValidationResult struct {
	Score          int            `json:"score"`
	Checks         Checks         `json:"checks"`
	Recommendation Recommendation `json:"recommendation"`
	Reasons        []string       `json:"reasons"`
}

// IsValid reports whether the content cleared the rejection threshold.
func (r *ValidationResult) IsValid() bool {
	return r.Score >= rejectThreshold
}

// Score thresholds fixing the recommendation mapping:
// publish at or above 80, reject below 50, review between.
const (
	publishThreshold = 80
	rejectThreshold  = 50
)

func recommend(score int) Recommendation {
	switch {
	case score >= publishThreshold:
		return RecommendPublish
	case score < rejectThreshold:
		return RecommendReject
	default:
		return RecommendReview
	}
}
