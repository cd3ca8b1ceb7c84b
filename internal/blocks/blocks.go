// Package blocks implements the reusable writing-block library, the
// deterministic composer, the confidence gate, and the pattern-learning loop.
// Composition never calls a model; the confidence gate decides whether the
// orchestrator may fall back to the model path at all.
package blocks

import (
	"time"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
)

// Style clusters group blocks by writing voice.
const (
	ClusterEmotionalSoft = "emotional_soft"
	ClusterPunchyMass    = "punchy_mass"
	ClusterInformative   = "neutral_informative"
)

// Clusters returns the known style clusters.
func Clusters() []string {
	return []string{ClusterEmotionalSoft, ClusterPunchyMass, ClusterInformative}
}

// Performance is a block's rolling outcome statistic. UsageCount and
// SuccessRate move together through RecordOutcome and are never reset except
// by explicit administrative action.
type Performance struct {
	UsageCount  int     `json:"usage_count"`
	SuccessRate float64 `json:"success_rate"`
}

// record folds one outcome into the running average.
func (p *Performance) record(success bool) {
	outcome := 0.0
	if success {
		outcome = 1.0
	}

	total := p.SuccessRate*float64(p.UsageCount) + outcome
	p.UsageCount++
	p.SuccessRate = total / float64(p.UsageCount)
}

// Block is the smallest reusable, parameterized unit of generated text.
// Templates carry {entity}, {topic}, and {category} placeholders.
type Block struct {
	ID          uuid.UUID            `json:"id"`
	Type        analysis.SectionType `json:"type"`
	Template    string               `json:"template"`
	ClusterID   string               `json:"cluster_id"`
	Performance Performance          `json:"performance"`
	Active      bool                 `json:"active"`
}

// Composition is a reusable recipe assembling block types into an article
// skeleton. It evolves through the same outcome feedback as blocks.
type Composition struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Category        analysis.Category      `json:"category"`
	BlockSequence   []analysis.SectionType `json:"block_sequence"`
	ClusterID       string                 `json:"cluster_id"`
	ConfidenceScore float64                `json:"confidence_score"`
	UsageCount      int                    `json:"usage_count"`
	SuccessRate     float64                `json:"success_rate"`
	IsActive        bool                   `json:"is_active"`
}

// Params carries placeholder substitutions for composition.
type Params struct {
	Entity   string
	Topic    string
	Category analysis.Category
}

// ComposedSection is one assembled section with the blocks that produced it.
type ComposedSection struct {
	Type     analysis.SectionType `json:"type"`
	Content  string               `json:"content"`
	BlockIDs []uuid.UUID          `json:"block_ids"`
}

// Composed is the result of one deterministic composition run.
type Composed struct {
	Sections  []ComposedSection `json:"sections"`
	ClusterID string            `json:"cluster_id"`
	CreatedAt time.Time         `json:"created_at"`
}

// Text joins the composed sections into a single candidate text.
func (c *Composed) Text() string {
	out := ""
	for i, s := range c.Sections {
		if i > 0 {
			out += "\n\n"
		}
		out += s.Content
	}
	return out
}

// BlockIDs returns every block used across all sections.
func (c *Composed) BlockIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, s := range c.Sections {
		ids = append(ids, s.BlockIDs...)
	}
	return ids
}
