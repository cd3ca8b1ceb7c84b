package contents

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/pipeline"
	"github.com/sanchika-app/sanchika/pkg/pagination"
)

// System defines the public contract for content domain operations. It also
// serves as the pipeline's recorder: every run lands here through Save.
type System interface {
	Handler(maxBodySize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Content], error)

	Find(ctx context.Context, id uuid.UUID) (*Content, error)

	Process(ctx context.Context, input pipeline.Input) *pipeline.Output
	QuickProcess(ctx context.Context, input pipeline.Input) *pipeline.Output
	Batch(ctx context.Context, inputs []pipeline.Input, quick bool) pipeline.Summary

	Approve(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Content, error)
	Reject(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Content, error)

	Save(ctx context.Context, out pipeline.Output) error
}
