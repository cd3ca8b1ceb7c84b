package validation_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/validation"
)

func newValidator(registry validation.DuplicateRegistry) *validation.Validator {
	if registry == nil {
		registry = validation.NewMemoryRegistry()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return validation.New(validation.DefaultPenalties(), validation.DefaultClickbaitWeights(), registry, logger)
}

// teluguBody produces a clean Telugu body of roughly n words.
func teluguBody(n int) string {
	words := []string{
		"సినిమా", "ప్రేక్షకులు", "అభిమానులు", "సంతోషం", "వేడుక",
		"విజయం", "కథ", "నటన", "పాటలు", "ప్రశంసలు",
	}

	var b strings.Builder
	for i := range n {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(words[i%len(words)])
	}
	return b.String()
}

func TestValidateCleanContentPublishes(t *testing.T) {
	v := newValidator(nil)

	result := v.Validate(context.Background(), "id-1", "విజయం సాధించిన చిత్రం", teluguBody(250), analysis.CategoryEntertainment, 0)

	require.NotNil(t, result)
	assert.GreaterOrEqual(t, result.Score, 80)
	assert.Equal(t, validation.RecommendPublish, result.Recommendation)
	assert.True(t, result.IsValid())
	assert.Empty(t, result.Reasons)
}

func TestValidateScoreBounds(t *testing.T) {
	v := newValidator(nil)

	// worst case: toxic, non-Telugu, clickbait, short, sensitive
	body := "allegedly a miracle cure, sources say. kill yourself."
	first := v.Validate(context.Background(), "a", "plain", body, analysis.CategoryHealth, 0)
	second := v.Validate(context.Background(), "b", "SHOCKING!! you won't believe", body, analysis.CategoryHealth, 0)

	for _, r := range []*validation.ValidationResult{first, second} {
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
	}
	assert.Equal(t, validation.RecommendReject, second.Recommendation)
	assert.False(t, second.IsValid())
}

func TestRecommendationThresholds(t *testing.T) {
	v := newValidator(nil)

	tests := []struct {
		name  string
		title string
		body  string
	}{
		{"clean long telugu", "మంచి కథ", teluguBody(300)},
		{"short body", "మంచి కథ", teluguBody(40)},
		{"short and sensitive", "మంచి కథ", teluguBody(40) + " allegedly court case"},
		{"toxic and short", "మంచి కథ", teluguBody(40) + " kill yourself"},
		{"everything wrong", "SHOCKING!! you won't believe", "short english kill yourself allegedly miracle cure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(context.Background(), tt.name, tt.title, tt.body, analysis.CategoryGeneral, 0)
			if got.Score >= 80 {
				assert.Equal(t, validation.RecommendPublish, got.Recommendation)
			} else if got.Score < 50 {
				assert.Equal(t, validation.RecommendReject, got.Recommendation)
			} else {
				assert.Equal(t, validation.RecommendReview, got.Recommendation)
			}
		})
	}
}

func TestDuplicateIdempotence(t *testing.T) {
	registry := validation.NewMemoryRegistry()
	v := newValidator(registry)

	body := teluguBody(200)

	first := v.Validate(context.Background(), "content-1", "శీర్షిక", body, analysis.CategoryGeneral, 0)
	require.True(t, first.Checks.DuplicateCheck.Passed)

	second := v.Validate(context.Background(), "content-2", "శీర్షిక", body, analysis.CategoryGeneral, 0)
	assert.False(t, second.Checks.DuplicateCheck.Passed)
	assert.LessOrEqual(t, second.Score, 70)
	assert.Equal(t, first.Checks.DuplicateCheck.Hash, second.Checks.DuplicateCheck.Hash)
}

func TestDuplicateSameIDPasses(t *testing.T) {
	registry := validation.NewMemoryRegistry()
	v := newValidator(registry)

	body := teluguBody(200)

	first := v.Validate(context.Background(), "content-1", "శీర్షిక", body, analysis.CategoryGeneral, 0)
	again := v.Validate(context.Background(), "content-1", "శీర్షిక", body, analysis.CategoryGeneral, 0)

	assert.True(t, first.Checks.DuplicateCheck.Passed)
	assert.True(t, again.Checks.DuplicateCheck.Passed)
}

func TestContentHashNormalization(t *testing.T) {
	a := validation.ContentHash("Hello   World\nfoo")
	b := validation.ContentHash("hello world FOO")
	assert.Equal(t, a, b)

	c := validation.ContentHash("different body")
	assert.NotEqual(t, a, c)
}

func TestToxicityFails(t *testing.T) {
	v := newValidator(nil)

	result := v.Validate(context.Background(), "id", "title", teluguBody(200)+" kill yourself", analysis.CategoryGeneral, 0)

	assert.False(t, result.Checks.Toxicity.Passed)
	assert.NotEmpty(t, result.Checks.Toxicity.Matches)
	assert.Less(t, result.Score, 80)
}

func TestSensitiveReducesWithoutFailing(t *testing.T) {
	v := newValidator(nil)

	clean := v.Validate(context.Background(), "id-a", "title", teluguBody(200), analysis.CategoryGeneral, 0)
	flagged := v.Validate(context.Background(), "id-b", "title", teluguBody(200)+" allegedly court case", analysis.CategoryGeneral, 0)

	assert.False(t, flagged.Checks.SensitiveContent.Passed)
	assert.Contains(t, flagged.Checks.SensitiveContent.Categories, "legal")
	assert.Contains(t, flagged.Checks.SensitiveContent.Categories, "rumor")
	assert.Less(t, flagged.Score, clean.Score)
}

func TestClickbaitScoring(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantPassed bool
	}{
		{"plain title passes", "కొత్త సినిమా విడుదల", true},
		{"phrase plus caps plus punctuation fails", "SHOCKING NEWS you won't believe!!", false},
		{"single phrase passes", "shocking twist in the story", true},
	}

	v := newValidator(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(context.Background(), tt.name, tt.title, teluguBody(200), analysis.CategoryGeneral, 0)
			assert.Equal(t, tt.wantPassed, got.Checks.Clickbait.Passed, "score %d", got.Checks.Clickbait.Score)
		})
	}
}

func TestQuickValidate(t *testing.T) {
	v := newValidator(nil)

	tests := []struct {
		name  string
		title string
		body  string
		want  bool
	}{
		{"clean telugu passes", "శీర్షిక", teluguBody(200), true},
		{"too short fails", "శీర్షిక", teluguBody(20), false},
		{"toxic fails", "శీర్షిక", teluguBody(200) + " kill yourself", false},
		{"mostly english fails purity", "title", strings.Repeat("english words only here ", 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.QuickValidate(tt.title, tt.body, analysis.CategoryGeneral, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}
