package blocks

import (
	"net/url"
	"strconv"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/pkg/query"
	"github.com/sanchika-app/sanchika/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "blocks", "b").
	Project("id", "ID").
	Project("type", "Type").
	Project("template", "Template").
	Project("cluster_id", "ClusterID").
	Project("usage_count", "UsageCount").
	Project("success_rate", "SuccessRate").
	Project("active", "Active")

var defaultSort = query.SortField{
	Field: "cluster_id",
}

// Filters contains optional filtering criteria for block queries.
// Nil fields are ignored.
type Filters struct {
	Type      *analysis.SectionType `json:"type,omitempty"`
	ClusterID *string               `json:"cluster_id,omitempty"`
	Active    *bool                 `json:"active,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Type", f.Type).
		WhereEquals("ClusterID", f.ClusterID).
		WhereEquals("Active", f.Active)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("type"); t != "" {
		if st, err := analysis.ParseSectionType(t); err == nil {
			f.Type = &st
		}
	}

	if c := values.Get("cluster"); c != "" {
		f.ClusterID = &c
	}

	if a := values.Get("active"); a != "" {
		if v, err := strconv.ParseBool(a); err == nil {
			f.Active = &v
		}
	}

	return f
}

func scanBlock(s repository.Scanner) (Block, error) {
	var b Block
	err := s.Scan(
		&b.ID,
		&b.Type,
		&b.Template,
		&b.ClusterID,
		&b.Performance.UsageCount,
		&b.Performance.SuccessRate,
		&b.Active,
	)
	return b, err
}
