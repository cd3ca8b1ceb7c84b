package analysis

import (
	"context"
	"fmt"
	"slices"

	"github.com/sanchika-app/sanchika/pkg/completion"
	"github.com/sanchika-app/sanchika/pkg/formatting"
)

// refineResponse mirrors the JSON shape requested from the model.
// RecommendedSections and RelatedTopics are deliberately absent: the model is
// not trusted for those fields and the rule-based values are always kept.
type refineResponse struct {
	PrimaryEntity        *Entity  `json:"primary_entity"`
	Sentiment            string   `json:"sentiment"`
	ContentRisk          string   `json:"content_risk"`
	RiskReasons          []string `json:"risk_reasons"`
	WritingAngle         string   `json:"writing_angle"`
	RecommendedWordCount int      `json:"recommended_word_count"`
	Keywords             []string `json:"keywords"`
}

const refinePromptFormat = `Analyze this Telugu editorial content and respond with a single JSON object.

Title: %s
Category: %s
Body:
%s

Respond with exactly these fields:
{
  "primary_entity": {"name": string, "type": "celebrity|movie|politician|sports_person|brand|event|topic", "confidence": number},
  "sentiment": "positive|neutral|negative|sensitive",
  "content_risk": "low|medium|high",
  "risk_reasons": ["political_content"|"health_claim"|"sensitive_topic"|"unverified_rumor"],
  "writing_angle": "news|gossip|emotional|nostalgic|informative|inspirational",
  "recommended_word_count": number,
  "keywords": [string]
}`

// refine overlays model-provided fields onto the rule-based result.
// Any parse or network failure leaves the rule-based result unchanged.
func (c *Classifier) refine(ctx context.Context, title, body string, category Category, result *ContentAnalysis) {
	prompt := fmt.Sprintf(refinePromptFormat, title, category, body)

	text, err := c.client.Complete(ctx, prompt, completion.Options{Temperature: 0.2, MaxTokens: 500})
	if err != nil {
		c.logger.InfoContext(ctx, "refinement skipped", "error", err)
		return
	}

	parsed, err := formatting.Parse[refineResponse](text)
	if err != nil {
		c.logger.InfoContext(ctx, "refinement response unparseable, keeping rule-based result")
		return
	}

	overlay(result, parsed)
}

// overlay applies only valid enum values; unknown values from the model are ignored.
func overlay(result *ContentAnalysis, parsed refineResponse) {
	if parsed.PrimaryEntity != nil &&
		parsed.PrimaryEntity.Name != "" &&
		slices.Contains(entityTypes, parsed.PrimaryEntity.Type) {
		result.PrimaryEntity = *parsed.PrimaryEntity
	}

	if s := Sentiment(parsed.Sentiment); slices.Contains(sentiments, s) {
		result.Sentiment = s
	}

	if r := Risk(parsed.ContentRisk); slices.Contains(risks, r) {
		result.ContentRisk = r
	}

	if reasons := validReasons(parsed.RiskReasons); len(reasons) > 0 {
		result.RiskReasons = reasons
	}

	if a := Angle(parsed.WritingAngle); slices.Contains(angles, a) {
		result.WritingAngle = a
	}

	if parsed.RecommendedWordCount > 0 {
		result.RecommendedWordCount = parsed.RecommendedWordCount
	}

	if len(parsed.Keywords) > 0 {
		result.Keywords = parsed.Keywords
	}

	// flagged content is never low risk, even after the overlay
	if len(result.RiskReasons) > 0 && result.ContentRisk == RiskLow {
		result.ContentRisk = RiskMedium
	}
}

func validReasons(raw []string) []RiskReason {
	valid := []RiskReason{ReasonPolitical, ReasonHealth, ReasonSensitive, ReasonRumor}
	reasons := make([]RiskReason, 0, len(raw))

	for _, r := range raw {
		reason := RiskReason(r)
		if slices.Contains(valid, reason) && !slices.Contains(reasons, reason) {
			reasons = append(reasons, reason)
		}
	}

	return reasons
}
