// Package pipeline orchestrates the editorial state machine: classify,
// generate, validate, resolve an image, then route to published, draft, or
// rejected. No error escapes Process; every outcome is structured output.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/blocks"
	"github.com/sanchika-app/sanchika/internal/generation"
	"github.com/sanchika-app/sanchika/internal/images"
	"github.com/sanchika-app/sanchika/internal/validation"
)

// Status is the terminal routing decision for one content item.
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
	StatusRejected  Status = "rejected"
)

// Input is one content item submitted to the pipeline.
type Input struct {
	ID          uuid.UUID         `json:"id,omitempty"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Category    analysis.Category `json:"category"`
	SourceImage string            `json:"source_image,omitempty"`
}

// Output is the structured result of one pipeline run. Success mirrors
// Status != rejected; Errors carries anything that went wrong on the way.
type Output struct {
	ContentID  uuid.UUID                    `json:"content_id"`
	Success    bool                         `json:"success"`
	Status     Status                       `json:"status"`
	Errors     []string                     `json:"errors,omitempty"`
	Category   analysis.Category            `json:"category"`
	Headline   string                       `json:"headline,omitempty"`
	Body       string                       `json:"body,omitempty"`
	Source     generation.Source            `json:"source,omitempty"`
	Analysis   *analysis.ContentAnalysis    `json:"analysis,omitempty"`
	Confidence *blocks.ConfidenceResult     `json:"confidence,omitempty"`
	Validation *validation.ValidationResult `json:"validation,omitempty"`
	Image      *images.ImageResult          `json:"image,omitempty"`
	BlockIDs   []uuid.UUID                  `json:"block_ids,omitempty"`
}

// Summary aggregates a batch run.
type Summary struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Results []Output `json:"results"`
}

// Recorder persists pipeline outputs. The orchestrator's only write path;
// a failed save rejects the item.
type Recorder interface {
	Save(ctx context.Context, out Output) error
}

// NopRecorder discards outputs, for standalone and test use.
type NopRecorder struct{}

func (NopRecorder) Save(context.Context, Output) error { return nil }
