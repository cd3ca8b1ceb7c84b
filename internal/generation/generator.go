package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/rules"
	"github.com/sanchika-app/sanchika/pkg/completion"
)

const (
	headlineTemperature = 0.8
	sectionTemperature  = 0.7
	minSectionBudget    = 40
)

// Generator runs the model path: classify, headline, then one completion
// per recommended section.
type Generator struct {
	classifier *analysis.Classifier
	client     completion.Client
	logger     *slog.Logger
}

// New creates a Generator.
func New(classifier *analysis.Classifier, client completion.Client, logger *slog.Logger) *Generator {
	return &Generator{
		classifier: classifier,
		client:     client,
		logger:     logger.With("system", "generation"),
	}
}

// Generate produces a structured article from source material. Single
// section failures are swallowed and the section omitted; ErrNoSections is
// returned only when every section fails.
func (g *Generator) Generate(
	ctx context.Context,
	title, body string,
	category analysis.Category,
) (*Article, error) {
	result := g.classifier.Classify(ctx, title, body, category)
	r := rules.Rules(result.Category)

	article := &Article{
		Headline: g.headline(ctx, title, body, result.Category),
		Source:   SourceModel,
		Analysis: result,
	}

	budget := sectionBudget(result.RecommendedWordCount, len(result.RecommendedSections))

	for _, sectionType := range result.RecommendedSections {
		content, err := g.section(ctx, title, body, sectionType, r.Tone, budget)
		if err != nil {
			g.logger.Warn("section generation failed",
				"section", sectionType,
				"error", err,
			)
			continue
		}

		article.Sections = append(article.Sections, Section{
			Type:      sectionType,
			Content:   content,
			WordCount: len(strings.Fields(content)),
		})
	}

	if len(article.Sections) == 0 {
		return nil, ErrNoSections
	}

	return article, nil
}

// headline asks for a localized headline, falling back to the original
// title on any failure.
func (g *Generator) headline(ctx context.Context, title, body string, category analysis.Category) string {
	prompt := fmt.Sprintf(headlinePromptFormat, category, title, excerpt(body, 600))

	text, err := g.client.Complete(ctx, prompt, completion.Options{
		Temperature: headlineTemperature,
		MaxTokens:   120,
	})
	if err != nil {
		g.logger.Warn("headline generation failed", "error", err)
		return title
	}

	headline := strings.TrimSpace(strings.Trim(strings.TrimSpace(text), `"'`))
	if headline == "" {
		return title
	}

	return headline
}

func (g *Generator) section(
	ctx context.Context,
	title, body string,
	sectionType analysis.SectionType,
	tone rules.Tone,
	budget int,
) (string, error) {
	instruction, ok := sectionInstructions[sectionType]
	if !ok {
		return "", fmt.Errorf("%w: %s", analysis.ErrInvalidSectionType, sectionType)
	}

	prompt := fmt.Sprintf(sectionPromptFormat,
		instruction,
		budget,
		tone,
		title,
		excerpt(body, 1200),
	)

	text, err := g.client.Complete(ctx, prompt, completion.Options{
		Temperature: sectionTemperature,
		MaxTokens:   budget * 4,
	})
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(text)
	if content == "" {
		return "", completion.ErrRejected
	}

	return content, nil
}

func sectionBudget(totalWords, sections int) int {
	if sections <= 0 {
		return minSectionBudget
	}

	budget := totalWords / sections
	if budget < minSectionBudget {
		return minSectionBudget
	}
	return budget
}

// excerpt truncates source material on a rune boundary for prompt inclusion.
func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
