// Package generation produces structured Telugu articles. Articles come from
// one of two paths that never mix inside a section: deterministic template
// composition, or per-section model completions.
package generation

import (
	"strings"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/blocks"
)

// Source identifies which path produced an article's sections.
type Source string

const (
	SourceModel    Source = "model"
	SourceTemplate Source = "template"
)

// Section is one generated article section.
type Section struct {
	Type      analysis.SectionType `json:"type"`
	Content   string               `json:"content"`
	WordCount int                  `json:"word_count"`
}

// Article is a structured generation result. Sections hold the order they
// were produced in; Body joins them deterministically.
type Article struct {
	Headline string                    `json:"headline"`
	Sections []Section                 `json:"sections"`
	Source   Source                    `json:"source"`
	Analysis *analysis.ContentAnalysis `json:"analysis"`
}

// sectionHeadings are the fixed Telugu headings prefixed to designated
// section types when assembling a body. The mapping is stable so assembled
// bodies round-trip byte-identically.
var sectionHeadings = map[analysis.SectionType]string{
	analysis.SectionContext: "నేపథ్యం",
	analysis.SectionDetail:  "పూర్తి వివరాలు",
	analysis.SectionEmotion: "ప్రజల స్పందన",
}

// Body joins sections in order, prefixing headed section types with their
// fixed heading line.
func (a *Article) Body() string {
	var b strings.Builder

	for i, s := range a.Sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if heading, ok := sectionHeadings[s.Type]; ok {
			b.WriteString(heading)
			b.WriteString(":\n")
		}
		b.WriteString(s.Content)
	}

	return b.String()
}

// TotalWordCount sums section word counts.
func (a *Article) TotalWordCount() int {
	total := 0
	for _, s := range a.Sections {
		total += s.WordCount
	}
	return total
}

// FromComposed wraps a block composition as a template-sourced article.
// No model output is involved on this path.
func FromComposed(headline string, composed *blocks.Composed, result *analysis.ContentAnalysis) *Article {
	article := &Article{
		Headline: headline,
		Source:   SourceTemplate,
		Analysis: result,
	}

	for _, s := range composed.Sections {
		article.Sections = append(article.Sections, Section{
			Type:      s.Type,
			Content:   s.Content,
			WordCount: len(strings.Fields(s.Content)),
		})
	}

	return article
}
