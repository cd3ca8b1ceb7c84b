package blocks

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OpeningStyle categorizes how a piece of text begins.
type OpeningStyle string

const (
	OpeningQuestion    OpeningStyle = "question"
	OpeningExclamation OpeningStyle = "exclamation"
	OpeningStatement   OpeningStyle = "statement"
)

// ClosingStyle categorizes how a piece of text ends.
type ClosingStyle string

const (
	ClosingQuestion     ClosingStyle = "question"
	ClosingCallToAction ClosingStyle = "call_to_action"
	ClosingStatement    ClosingStyle = "statement"
)

// SentenceStats summarizes sentence lengths in words.
type SentenceStats struct {
	Count     int     `json:"count"`
	MeanWords float64 `json:"mean_words"`
	MinWords  int     `json:"min_words"`
	MaxWords  int     `json:"max_words"`
}

// Learning is a structural statistic extracted by comparing template output
// to model output. It carries only numeric and categorical fields so model
// text structurally cannot flow through it to the publish path.
type Learning struct {
	ID             uuid.UUID     `json:"id"`
	Sentences      SentenceStats `json:"sentences"`
	ParagraphCount int           `json:"paragraph_count"`
	Opening        OpeningStyle  `json:"opening"`
	Closing        ClosingStyle  `json:"closing"`
	Confidence     float64       `json:"confidence"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ExtractLearning measures the model text's structure against the template
// text's and returns only the extracted statistics. Neither input survives
// in the result.
func ExtractLearning(templateText, modelText string) Learning {
	modelSentences := splitSentences(modelText)

	l := Learning{
		ID:             uuid.New(),
		Sentences:      sentenceStats(modelSentences),
		ParagraphCount: countParagraphs(modelText),
		Opening:        openingStyle(modelSentences),
		Closing:        closingStyle(modelSentences),
		CreatedAt:      time.Now().UTC(),
	}

	l.Confidence = structuralSimilarity(templateText, modelText)
	return l
}

// structuralSimilarity compares paragraph counts and mean sentence lengths.
// Close structures score near 1; divergent ones approach 0.
func structuralSimilarity(templateText, modelText string) float64 {
	paraSim := ratioSimilarity(
		float64(countParagraphs(templateText)),
		float64(countParagraphs(modelText)),
	)

	templateStats := sentenceStats(splitSentences(templateText))
	modelStats := sentenceStats(splitSentences(modelText))
	lengthSim := ratioSimilarity(templateStats.MeanWords, modelStats.MeanWords)

	return (paraSim + lengthSim) / 2
}

// ratioSimilarity maps the smaller/larger ratio of two values into [0,1].
func ratioSimilarity(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	return a / b
}

func splitSentences(text string) []string {
	var sentences []string

	start := 0
	runes := []rune(text)
	for i, r := range runes {
		if r == '.' || r == '?' || r == '!' || r == '।' {
			s := strings.TrimSpace(string(runes[start : i+1]))
			if s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

func sentenceStats(sentences []string) SentenceStats {
	stats := SentenceStats{Count: len(sentences)}
	if stats.Count == 0 {
		return stats
	}

	total := 0
	for i, s := range sentences {
		words := len(strings.Fields(s))
		total += words

		if i == 0 || words < stats.MinWords {
			stats.MinWords = words
		}
		if words > stats.MaxWords {
			stats.MaxWords = words
		}
	}

	stats.MeanWords = float64(total) / float64(stats.Count)
	return stats
}

func countParagraphs(text string) int {
	count := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	return count
}

func openingStyle(sentences []string) OpeningStyle {
	if len(sentences) == 0 {
		return OpeningStatement
	}

	switch {
	case strings.HasSuffix(sentences[0], "?"):
		return OpeningQuestion
	case strings.HasSuffix(sentences[0], "!"):
		return OpeningExclamation
	default:
		return OpeningStatement
	}
}

// callToActionMarkers signal a reader-facing closing in Telugu editorial
// copy, like "let's wait and see".
var callToActionMarkers = []string{
	"చూద్దాం",
	"వేచి",
	"తెలియజేయండి",
	"ఫాలో",
}

func closingStyle(sentences []string) ClosingStyle {
	if len(sentences) == 0 {
		return ClosingStatement
	}

	last := sentences[len(sentences)-1]
	if strings.HasSuffix(last, "?") {
		return ClosingQuestion
	}

	for _, marker := range callToActionMarkers {
		if strings.Contains(last, marker) {
			return ClosingCallToAction
		}
	}

	return ClosingStatement
}
