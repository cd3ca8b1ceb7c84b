package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sanchika-app/sanchika/pkg/completion"
)

// Classifier derives a ContentAnalysis from raw editorial input.
// Classification never fails: the rule-based path always produces a result,
// and the optional completion refinement is discarded on any error.
type Classifier struct {
	policy Policy
	client completion.Client
	logger *slog.Logger
}

// New creates a Classifier with the given policy and optional completion client.
func New(policy Policy, client completion.Client, logger *slog.Logger) *Classifier {
	return &Classifier{
		policy: policy,
		client: client,
		logger: logger.With("system", "analysis"),
	}
}

// Classify runs rule-based classification, refined by the completion
// collaborator when one is configured.
func (c *Classifier) Classify(ctx context.Context, title, body string, category Category) *ContentAnalysis {
	result := c.ClassifyRules(title, body, category)

	if c.client != nil && c.client.Enabled() {
		c.refine(ctx, title, body, category, result)
	}

	return result
}

// ClassifyRules runs the deterministic rule-based classification only.
// Repeated calls with identical input return identical results.
func (c *Classifier) ClassifyRules(title, body string, category Category) *ContentAnalysis {
	category = NormalizeCategory(string(category))
	text := strings.ToLower(title + " " + body)

	entity := detectEntity(text)
	risk, reasons := c.scoreRisk(text)
	sentiment := detectSentiment(text)
	angle := resolveAngle(category, sentiment, risk)

	return &ContentAnalysis{
		Category:             category,
		PrimaryEntity:        entity,
		Sentiment:            sentiment,
		ContentRisk:          risk,
		RiskReasons:          reasons,
		WritingAngle:         angle,
		AudienceIntent:       categoryIntents[category],
		RecommendedWordCount: recommendWordCount(angle, risk),
		RecommendedSections:  recommendSections(category),
		Keywords:             c.extractKeywords(title, body),
		RelatedTopics:        relatedTopicsByCategory[category],
	}
}

func detectEntity(text string) Entity {
	for _, p := range entityPatterns {
		if strings.Contains(text, p.phrase) {
			return Entity{Name: p.name, Type: p.typ, Confidence: 0.8}
		}
	}
	return DefaultEntity
}

// scoreRisk accumulates fixed weights across the four pattern groups.
// A matched group contributes its weight once regardless of hit count.
func (c *Classifier) scoreRisk(text string) (Risk, []RiskReason) {
	score := 0
	reasons := make([]RiskReason, 0, len(riskReasonOrder))

	for _, reason := range riskReasonOrder {
		for _, pattern := range riskPatterns[reason] {
			if strings.Contains(text, pattern) {
				score += c.policy.weight(reason)
				reasons = append(reasons, reason)
				break
			}
		}
	}

	switch {
	case score >= c.policy.HighThreshold:
		return RiskHigh, reasons
	case score >= c.policy.MediumThreshold:
		return RiskMedium, reasons
	default:
		if len(reasons) > 0 {
			// flagged content is never low risk
			return RiskMedium, reasons
		}
		return RiskLow, reasons
	}
}

func detectSentiment(text string) Sentiment {
	for _, s := range []Sentiment{SentimentSensitive, SentimentNegative, SentimentPositive} {
		for _, pattern := range sentimentPatterns[s] {
			if strings.Contains(text, pattern) {
				return s
			}
		}
	}
	return SentimentNeutral
}

// resolveAngle applies the category lookup with sentiment adjustments for the
// two mood-driven categories. Any elevated risk forces the news angle:
// safety overrides style.
func resolveAngle(category Category, sentiment Sentiment, risk Risk) Angle {
	if risk != RiskLow {
		return AngleNews
	}

	angle, ok := categoryAngles[category]
	if !ok {
		angle = AngleInformative
	}

	switch category {
	case CategoryEntertainment:
		if sentiment == SentimentNegative || sentiment == SentimentSensitive {
			return AngleNews
		}
	case CategoryHumanInterest:
		if sentiment == SentimentPositive {
			return AngleInspirational
		}
	}

	return angle
}

func recommendWordCount(angle Angle, risk Risk) int {
	if wc, ok := wordCounts[wordCountKey{angle, risk}]; ok {
		return wc
	}
	return defaultWordCount
}

func recommendSections(category Category) []SectionType {
	sections, ok := categorySections[category]
	if !ok {
		sections = categorySections[CategoryGeneral]
	}

	out := make([]SectionType, len(sections))
	copy(out, sections)
	return out
}

var punctTrim = ".,!?;:\"'()[]{}«»‘’“”|/\\-–—"

func (c *Classifier) extractKeywords(title, body string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, c.policy.MaxKeywords)

	for _, token := range strings.Fields(strings.ToLower(title + " " + body)) {
		word := strings.Trim(token, punctTrim)
		if len([]rune(word)) < c.policy.MinKeywordLen {
			continue
		}
		if stopWords[word] || seen[word] {
			continue
		}

		seen[word] = true
		keywords = append(keywords, word)

		if len(keywords) >= c.policy.MaxKeywords {
			break
		}
	}

	return keywords
}
