package generation

import "github.com/sanchika-app/sanchika/internal/analysis"

const headlinePromptFormat = `You are a Telugu digital news editor. Write one short, natural Telugu headline for the %s story below. Respond with the headline text only, no quotes or commentary. Keep proper nouns exactly as written.

Title: %s
Material: %s`

const sectionPromptFormat = `You are a Telugu digital news writer. %s

Write in Telugu only. Keep proper nouns exactly as written in the source. Target about %d words. Tone: %s. Respond with the section text only.

Title: %s
Material: %s`

// sectionInstructions carry the per-section writing brief inserted into the
// section prompt.
var sectionInstructions = map[analysis.SectionType]string{
	analysis.SectionHook:    "Write the opening hook: one or two sentences that pull the reader in without overpromising.",
	analysis.SectionContext: "Write the background section: what the reader needs to know to follow this story.",
	analysis.SectionDetail:  "Write the detail section: the concrete facts of what happened, attributed carefully.",
	analysis.SectionEmotion: "Write the public reaction section: how people are responding, without inventing quotes.",
	analysis.SectionClosing: "Write the closing: wrap up the story and note what to watch for next.",
}
