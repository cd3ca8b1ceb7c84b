// Package analysis implements the content classifier for Sanchika.
// It derives entity, sentiment, risk, and structural recommendations from raw
// editorial input using curated rules, optionally refined by a completion call.
package analysis

import (
	"encoding/json"
	"slices"
)

// EntityType categorizes the primary subject of a piece of content.
type EntityType string

// Valid entity types.
const (
	EntityCelebrity   EntityType = "celebrity"
	EntityMovie       EntityType = "movie"
	EntityPolitician  EntityType = "politician"
	EntitySportPerson EntityType = "sports_person"
	EntityBrand       EntityType = "brand"
	EntityEvent       EntityType = "event"
	EntityTopic       EntityType = "topic"
)

var entityTypes = []EntityType{
	EntityCelebrity,
	EntityMovie,
	EntityPolitician,
	EntitySportPerson,
	EntityBrand,
	EntityEvent,
	EntityTopic,
}

// Sentiment is the detected emotional register of the content.
type Sentiment string

// Valid sentiments, in precedence order: sensitive outranks negative,
// which outranks positive.
const (
	SentimentPositive  Sentiment = "positive"
	SentimentNeutral   Sentiment = "neutral"
	SentimentNegative  Sentiment = "negative"
	SentimentSensitive Sentiment = "sensitive"
)

var sentiments = []Sentiment{
	SentimentPositive,
	SentimentNeutral,
	SentimentNegative,
	SentimentSensitive,
}

// Risk grades how carefully content must be handled downstream.
type Risk string

// Valid risk levels.
const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

var risks = []Risk{RiskLow, RiskMedium, RiskHigh}

// AtLeast reports whether r is at or above the given level.
func (r Risk) AtLeast(level Risk) bool {
	return slices.Index(risks, r) >= slices.Index(risks, level)
}

// RiskReason is a short code explaining why content was flagged.
type RiskReason string

// Valid risk reason codes, one per pattern group.
const (
	ReasonPolitical RiskReason = "political_content"
	ReasonHealth    RiskReason = "health_claim"
	ReasonSensitive RiskReason = "sensitive_topic"
	ReasonRumor     RiskReason = "unverified_rumor"
)

// Angle is the editorial voice recommended for the content.
type Angle string

// Valid writing angles.
const (
	AngleNews          Angle = "news"
	AngleGossip        Angle = "gossip"
	AngleEmotional     Angle = "emotional"
	AngleNostalgic     Angle = "nostalgic"
	AngleInformative   Angle = "informative"
	AngleInspirational Angle = "inspirational"
)

var angles = []Angle{
	AngleNews,
	AngleGossip,
	AngleEmotional,
	AngleNostalgic,
	AngleInformative,
	AngleInspirational,
}

// Intent is the audience need the content serves.
type Intent string

// Valid audience intents.
const (
	IntentEntertainment Intent = "entertainment"
	IntentInformation   Intent = "information"
	IntentEmotion       Intent = "emotion"
	IntentInspiration   Intent = "inspiration"
)

// SectionType identifies a structural unit of a generated article.
// The same vocabulary names atomic writing blocks.
type SectionType string

// Valid section types.
const (
	SectionHook    SectionType = "hook"
	SectionContext SectionType = "context"
	SectionDetail  SectionType = "detail"
	SectionEmotion SectionType = "emotion"
	SectionClosing SectionType = "closing"
)

var sectionTypes = []SectionType{
	SectionHook,
	SectionContext,
	SectionDetail,
	SectionEmotion,
	SectionClosing,
}

// SectionTypes returns the list of valid section types.
func SectionTypes() []SectionType {
	return sectionTypes
}

// ParseSectionType validates a string as a known section type.
func ParseSectionType(s string) (SectionType, error) {
	v := SectionType(s)
	if !slices.Contains(sectionTypes, v) {
		return "", ErrInvalidSectionType
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known section type.
func (t *SectionType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseSectionType(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Category is the editorial category supplied with raw content.
type Category string

// Valid content categories.
const (
	CategoryEntertainment Category = "entertainment"
	CategoryMovies        Category = "movies"
	CategoryPolitics      Category = "politics"
	CategorySports        Category = "sports"
	CategoryHealth        Category = "health"
	CategoryHumanInterest Category = "human_interest"
	CategoryGeneral       Category = "general"
)

var categories = []Category{
	CategoryEntertainment,
	CategoryMovies,
	CategoryPolitics,
	CategorySports,
	CategoryHealth,
	CategoryHumanInterest,
	CategoryGeneral,
}

// Categories returns the list of valid content categories.
func Categories() []Category {
	return categories
}

// NormalizeCategory maps a raw category string to a known Category,
// defaulting to CategoryGeneral for unmapped values.
func NormalizeCategory(s string) Category {
	v := Category(s)
	if slices.Contains(categories, v) {
		return v
	}
	return CategoryGeneral
}

// Entity is the primary subject detected in the content.
type Entity struct {
	Name       string     `json:"name"`
	Type       EntityType `json:"type"`
	Confidence float64    `json:"confidence"`
}

// ContentAnalysis is the classifier's output for one pipeline run.
// It is created once per run and immutable afterward; it is only persisted
// attached to a generated content record, never standalone.
type ContentAnalysis struct {
	Category             Category      `json:"category"`
	PrimaryEntity        Entity        `json:"primary_entity"`
	Sentiment            Sentiment     `json:"sentiment"`
	ContentRisk          Risk          `json:"content_risk"`
	RiskReasons          []RiskReason  `json:"risk_reasons"`
	WritingAngle         Angle         `json:"writing_angle"`
	AudienceIntent       Intent        `json:"audience_intent"`
	RecommendedWordCount int           `json:"recommended_word_count"`
	RecommendedSections  []SectionType `json:"recommended_sections"`
	Keywords             []string      `json:"keywords"`
	RelatedTopics        []string      `json:"related_topics"`
}
