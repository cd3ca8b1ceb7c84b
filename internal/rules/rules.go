// Package rules provides per-category editorial rules consumed by the
// pipeline: section layout, minimum length, tone, disclaimer requirements,
// and image styling.
package rules

import "github.com/sanchika-app/sanchika/internal/analysis"

// Tone names the voice a category's content is written in.
type Tone string

// Valid tones.
const (
	ToneCasual   Tone = "casual"
	ToneFormal   Tone = "formal"
	ToneWarm     Tone = "warm"
	ToneFactual  Tone = "factual"
	ToneDramatic Tone = "dramatic"
)

// CategoryRules describes how content in a category is produced and presented.
type CategoryRules struct {
	Sections          []analysis.SectionType
	MinWords          int
	Tone              Tone
	RequireDisclaimer bool
	ImageStyle        string
}

var byCategory = map[analysis.Category]CategoryRules{
	analysis.CategoryEntertainment: {
		Sections:   []analysis.SectionType{analysis.SectionHook, analysis.SectionContext, analysis.SectionEmotion, analysis.SectionClosing},
		MinWords:   150,
		Tone:       ToneCasual,
		ImageStyle: "telugu cinema glamour",
	},
	analysis.CategoryMovies: {
		Sections:   []analysis.SectionType{analysis.SectionHook, analysis.SectionContext, analysis.SectionDetail, analysis.SectionClosing},
		MinWords:   150,
		Tone:       ToneDramatic,
		ImageStyle: "movie poster still",
	},
	analysis.CategoryPolitics: {
		Sections:          []analysis.SectionType{analysis.SectionContext, analysis.SectionDetail, analysis.SectionClosing},
		MinWords:          200,
		Tone:              ToneFormal,
		RequireDisclaimer: true,
		ImageStyle:        "press conference",
	},
	analysis.CategorySports: {
		Sections:   []analysis.SectionType{analysis.SectionHook, analysis.SectionDetail, analysis.SectionEmotion, analysis.SectionClosing},
		MinWords:   150,
		Tone:       ToneDramatic,
		ImageStyle: "stadium action",
	},
	analysis.CategoryHealth: {
		Sections:          []analysis.SectionType{analysis.SectionContext, analysis.SectionDetail, analysis.SectionClosing},
		MinWords:          250,
		Tone:              ToneFactual,
		RequireDisclaimer: true,
		ImageStyle:        "healthy lifestyle",
	},
	analysis.CategoryHumanInterest: {
		Sections:   []analysis.SectionType{analysis.SectionHook, analysis.SectionEmotion, analysis.SectionClosing},
		MinWords:   150,
		Tone:       ToneWarm,
		ImageStyle: "everyday life india",
	},
}

// Default returns the rules applied to unmapped categories.
func Default() CategoryRules {
	return CategoryRules{
		Sections:   []analysis.SectionType{analysis.SectionHook, analysis.SectionContext, analysis.SectionClosing},
		MinWords:   150,
		Tone:       ToneCasual,
		ImageStyle: "telugu news",
	}
}

// Rules returns the editorial rules for a category, falling back to Default
// for unmapped categories.
func Rules(category analysis.Category) CategoryRules {
	if r, ok := byCategory[category]; ok {
		return r
	}
	return Default()
}
