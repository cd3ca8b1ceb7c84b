package contents

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/pipeline"
	"github.com/sanchika-app/sanchika/pkg/query"
	"github.com/sanchika-app/sanchika/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "contents", "c").
	Project("id", "ID").
	Project("headline", "Headline").
	Project("body", "Body").
	Project("category", "Category").
	Project("status", "Status").
	Project("source", "Source").
	Project("risk", "Risk").
	Project("score", "Score").
	Project("analysis", "Analysis").
	Project("validation", "Validation").
	Project("image_url", "ImageURL").
	Project("image_source", "ImageSource").
	Project("block_ids", "BlockIDs").
	Project("errors", "Errors").
	Project("processed_at", "ProcessedAt").
	Project("reviewed_by", "ReviewedBy").
	Project("reviewed_at", "ReviewedAt")

var defaultSort = query.SortField{
	Field:      "ProcessedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for content queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Status   *pipeline.Status   `json:"status,omitempty"`
	Category *analysis.Category `json:"category,omitempty"`
	Risk     *analysis.Risk     `json:"risk,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("Category", f.Category).
		WhereEquals("Risk", f.Risk)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		status := pipeline.Status(s)
		f.Status = &status
	}

	if c := values.Get("category"); c != "" {
		category := analysis.NormalizeCategory(c)
		f.Category = &category
	}

	if r := values.Get("risk"); r != "" {
		risk := analysis.Risk(r)
		f.Risk = &risk
	}

	return f
}

func scanContent(s repository.Scanner) (Content, error) {
	var c Content
	var analysisRaw, validationRaw, blockIDsRaw, errorsRaw []byte

	err := s.Scan(
		&c.ID,
		&c.Headline,
		&c.Body,
		&c.Category,
		&c.Status,
		&c.Source,
		&c.Risk,
		&c.Score,
		&analysisRaw,
		&validationRaw,
		&c.ImageURL,
		&c.ImageSource,
		&blockIDsRaw,
		&errorsRaw,
		&c.ProcessedAt,
		&c.ReviewedBy,
		&c.ReviewedAt,
	)
	if err != nil {
		return c, err
	}

	if len(analysisRaw) > 0 {
		if err := json.Unmarshal(analysisRaw, &c.Analysis); err != nil {
			return c, fmt.Errorf("unmarshal analysis: %w", err)
		}
	}
	if len(validationRaw) > 0 {
		if err := json.Unmarshal(validationRaw, &c.Validation); err != nil {
			return c, fmt.Errorf("unmarshal validation: %w", err)
		}
	}
	if len(blockIDsRaw) > 0 {
		if err := json.Unmarshal(blockIDsRaw, &c.BlockIDs); err != nil {
			return c, fmt.Errorf("unmarshal block ids: %w", err)
		}
	}
	if len(errorsRaw) > 0 {
		if err := json.Unmarshal(errorsRaw, &c.Errors); err != nil {
			return c, fmt.Errorf("unmarshal errors: %w", err)
		}
	}

	return c, nil
}
