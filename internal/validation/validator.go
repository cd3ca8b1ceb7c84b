package validation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/rules"
)

// Penalties holds the score deductions applied per failed check.
// Defaults are the canonical policy values; configuration may override them.
type Penalties struct {
	Language  int
	Toxicity  int
	Sensitive int
	Duplicate int
	Clickbait int
	Length    int
}

// DefaultPenalties returns the canonical penalty policy.
func DefaultPenalties() Penalties {
	return Penalties{
		Language:  20,
		Toxicity:  40,
		Sensitive: 15,
		Duplicate: 30,
		Clickbait: 10,
		Length:    15,
	}
}

// ClickbaitWeights holds the per-signal clickbait increments and the failure
// threshold.
type ClickbaitWeights struct {
	Phrase         int
	Capitals       int
	Punctuation    int
	LeadingNumeral int
	FailThreshold  int
}

// DefaultClickbaitWeights returns the canonical clickbait scoring policy.
func DefaultClickbaitWeights() ClickbaitWeights {
	return ClickbaitWeights{
		Phrase:         25,
		Capitals:       20,
		Punctuation:    15,
		LeadingNumeral: 10,
		FailThreshold:  50,
	}
}

// Quality bars for the Telugu purity check: the full gate requires 50%,
// the quick variant relaxes to 30%.
const (
	purityBar      = 0.5
	quickPurityBar = 0.3
)

// Validator scores generated content against the quality and safety checks.
type Validator struct {
	penalties Penalties
	clickbait ClickbaitWeights
	registry  DuplicateRegistry
	logger    *slog.Logger
}

// New creates a Validator with the given policies and duplicate registry.
func New(penalties Penalties, clickbait ClickbaitWeights, registry DuplicateRegistry, logger *slog.Logger) *Validator {
	return &Validator{
		penalties: penalties,
		clickbait: clickbait,
		registry:  registry,
		logger:    logger.With("system", "validation"),
	}
}

// Validate scores content against every check. Deterministic given its inputs
// and the state of the duplicate registry. Scores are clamped to [0, 100].
func (v *Validator) Validate(ctx context.Context, contentID, title, body string, category analysis.Category, minWords int) *ValidationResult {
	if minWords <= 0 {
		minWords = rules.Rules(category).MinWords
	}

	score := 100
	var reasons []string
	var checks Checks

	ratio := TeluguPurity(body)
	checks.TeluguQuality = PurityCheck{Passed: ratio >= purityBar, Ratio: ratio}
	if !checks.TeluguQuality.Passed {
		score -= v.penalties.Language
		reasons = append(reasons, fmt.Sprintf("telugu purity %.0f%% below %.0f%%", ratio*100, purityBar*100))
	}

	toxic := scanToxicity(title + " " + body)
	checks.Toxicity = ToxicityCheck{Passed: len(toxic) == 0, Matches: toxic}
	if !checks.Toxicity.Passed {
		score -= v.penalties.Toxicity
		reasons = append(reasons, "harmful language detected")
	}

	sensitive := scanSensitive(title + " " + body)
	checks.SensitiveContent = SensitiveCheck{Passed: len(sensitive) == 0, Categories: sensitive}
	if !checks.SensitiveContent.Passed {
		score -= v.penalties.Sensitive
		reasons = append(reasons, fmt.Sprintf("sensitive content: %v", sensitive))
	}

	hash := ContentHash(body)
	duplicate, err := v.registry.Register(ctx, contentID, hash)
	if err != nil {
		// registry failures must not fail validation; treat as non-duplicate
		v.logger.InfoContext(ctx, "duplicate registry unavailable", "error", err)
		duplicate = false
	}
	checks.DuplicateCheck = DuplicateCheck{Passed: !duplicate, Hash: hash}
	if duplicate {
		score -= v.penalties.Duplicate
		reasons = append(reasons, "duplicate content")
	}

	cb := clickbaitScore(title, v.clickbait)
	checks.Clickbait = ClickbaitCheck{Passed: cb < v.clickbait.FailThreshold, Score: cb}
	if !checks.Clickbait.Passed {
		score -= v.penalties.Clickbait
		reasons = append(reasons, fmt.Sprintf("clickbait score %d", cb))
	}

	words := countWords(body)
	checks.WordCount = WordCountCheck{Passed: words >= minWords, Words: words, Minimum: minWords}
	if !checks.WordCount.Passed {
		score -= v.penalties.Length
		reasons = append(reasons, fmt.Sprintf("%d words below minimum %d", words, minWords))
	}

	if score < 0 {
		score = 0
	}

	return &ValidationResult{
		Score:          score,
		Checks:         checks,
		Recommendation: recommend(score),
		Reasons:        reasons,
	}
}

// QuickValidate is the relaxed boolean gate for bulk, low-stakes imports:
// minimum word count, a 30% purity bar, and the toxicity scan only.
func (v *Validator) QuickValidate(title, body string, category analysis.Category, minWords int) bool {
	if minWords <= 0 {
		minWords = rules.Rules(category).MinWords
	}

	if countWords(body) < minWords {
		return false
	}
	if TeluguPurity(body) < quickPurityBar {
		return false
	}
	return len(scanToxicity(title+" "+body)) == 0
}
