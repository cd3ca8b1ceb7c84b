// Package contents implements the stored-content domain: every pipeline run
// persists its outcome here, and the editorial surface reads, approves, and
// rejects records. Approvals and rejections feed back into block performance.
package contents

import (
	"time"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/generation"
	"github.com/sanchika-app/sanchika/internal/pipeline"
	"github.com/sanchika-app/sanchika/internal/validation"
)

// Content is a persisted pipeline outcome. Analysis and Validation are
// stored as JSON documents; the flattened columns exist for filtering.
type Content struct {
	ID          uuid.UUID                    `json:"id"`
	Headline    string                       `json:"headline"`
	Body        string                       `json:"body"`
	Category    analysis.Category            `json:"category"`
	Status      pipeline.Status              `json:"status"`
	Source      generation.Source            `json:"source"`
	Risk        analysis.Risk                `json:"risk"`
	Score       int                          `json:"score"`
	Analysis    *analysis.ContentAnalysis    `json:"analysis,omitempty"`
	Validation  *validation.ValidationResult `json:"validation,omitempty"`
	ImageURL    string                       `json:"image_url"`
	ImageSource string                       `json:"image_source"`
	BlockIDs    []uuid.UUID                  `json:"block_ids,omitempty"`
	Errors      []string                     `json:"errors,omitempty"`
	ProcessedAt time.Time                    `json:"processed_at"`
	ReviewedBy  *string                      `json:"reviewed_by"`
	ReviewedAt  *time.Time                   `json:"reviewed_at"`
}

// ReviewCommand identifies the editor acting on a record.
type ReviewCommand struct {
	ReviewedBy string `json:"reviewed_by"`
}

// BatchRequest carries a batch submission.
type BatchRequest struct {
	Items []pipeline.Input `json:"items"`
	Quick bool             `json:"quick"`
}
