package blocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/pkg/pagination"
)

// System defines the public contract for block domain operations. It
// extends Store with the query surface the HTTP layer needs.
type System interface {
	Store

	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Block], error)

	Find(ctx context.Context, id uuid.UUID) (*Block, error)
}
