package contents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/blocks"
	"github.com/sanchika-app/sanchika/internal/pipeline"
	"github.com/sanchika-app/sanchika/pkg/pagination"
	"github.com/sanchika-app/sanchika/pkg/query"
	"github.com/sanchika-app/sanchika/pkg/repository"
)

type repo struct {
	db         *sql.DB
	pipeline   *pipeline.Pipeline
	blocks     blocks.Store
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a content repository implementing the System interface. It
// constructs the pipeline internally, installing itself as the recorder so
// every run persists here.
func New(
	db *sql.DB,
	deps pipeline.Deps,
	batchDelay time.Duration,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	r := &repo{
		db:         db,
		blocks:     deps.Blocks,
		logger:     logger.With("system", "contents"),
		pagination: pagination,
	}

	deps.Recorder = r
	r.pipeline = pipeline.New(deps, batchDelay, logger)

	return r
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, maxBodySize, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Content], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Headline", "Body")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count contents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanContent)
	if err != nil {
		return nil, fmt.Errorf("query contents: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Content, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanContent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Process(ctx context.Context, input pipeline.Input) *pipeline.Output {
	return r.pipeline.Process(ctx, input)
}

func (r *repo) QuickProcess(ctx context.Context, input pipeline.Input) *pipeline.Output {
	return r.pipeline.QuickProcess(ctx, input)
}

func (r *repo) Batch(ctx context.Context, inputs []pipeline.Input, quick bool) pipeline.Summary {
	return r.pipeline.Batch(ctx, inputs, quick)
}

// Save persists one pipeline output. Reprocessing an id overwrites the
// previous run.
func (r *repo) Save(ctx context.Context, out pipeline.Output) error {
	analysisJSON, err := json.Marshal(out.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	validationJSON, err := json.Marshal(out.Validation)
	if err != nil {
		return fmt.Errorf("marshal validation: %w", err)
	}
	blockIDsJSON, err := json.Marshal(out.BlockIDs)
	if err != nil {
		return fmt.Errorf("marshal block ids: %w", err)
	}
	errorsJSON, err := json.Marshal(out.Errors)
	if err != nil {
		return fmt.Errorf("marshal errors: %w", err)
	}

	risk := ""
	if out.Analysis != nil {
		risk = string(out.Analysis.ContentRisk)
	}
	score := 0
	if out.Validation != nil {
		score = out.Validation.Score
	}
	imageURL, imageSource := "", ""
	if out.Image != nil {
		imageURL, imageSource = out.Image.URL, out.Image.Source
	}

	q := `
		INSERT INTO contents(
			id, headline, body, category, status, source, risk, score,
			analysis, validation, image_url, image_source, block_ids,
			errors, processed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (id) DO UPDATE SET
			headline = EXCLUDED.headline,
			body = EXCLUDED.body,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			source = EXCLUDED.source,
			risk = EXCLUDED.risk,
			score = EXCLUDED.score,
			analysis = EXCLUDED.analysis,
			validation = EXCLUDED.validation,
			image_url = EXCLUDED.image_url,
			image_source = EXCLUDED.image_source,
			block_ids = EXCLUDED.block_ids,
			errors = EXCLUDED.errors,
			processed_at = EXCLUDED.processed_at`

	args := []any{
		out.ContentID, out.Headline, out.Body, out.Category, out.Status,
		out.Source, risk, score, analysisJSON, validationJSON,
		imageURL, imageSource, blockIDsJSON, errorsJSON,
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, execErr := tx.ExecContext(ctx, q, args...); execErr != nil {
			return struct{}{}, execErr
		}
		return struct{}{}, nil
	})

	if err != nil {
		return fmt.Errorf("save content %s: %w", out.ContentID, err)
	}

	return nil
}

func (r *repo) Approve(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Content, error) {
	return r.review(ctx, id, cmd, pipeline.StatusPublished, true)
}

func (r *repo) Reject(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Content, error) {
	return r.review(ctx, id, cmd, pipeline.StatusRejected, false)
}

// review closes a record with an editorial decision and feeds the outcome
// into the performance stats of every block the content used.
func (r *repo) review(
	ctx context.Context,
	id uuid.UUID,
	cmd ReviewCommand,
	status pipeline.Status,
	success bool,
) (*Content, error) {
	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Content, error) {
		findQ, findArgs := query.NewBuilder(projection).BuildSingle("ID", id)
		current, err := repository.QueryOne(ctx, tx, findQ, findArgs, scanContent)
		if err != nil {
			return Content{}, err
		}

		if current.ReviewedAt != nil {
			return Content{}, ErrAlreadyClosed
		}

		updateQ := `
			UPDATE contents
			SET status = $1, reviewed_by = $2, reviewed_at = NOW()
			WHERE id = $3
			RETURNING id, headline, body, category, status, source, risk, score,
					  analysis, validation, image_url, image_source, block_ids,
					  errors, processed_at, reviewed_by, reviewed_at`

		return repository.QueryOne(
			ctx, tx, updateQ, []any{status, cmd.ReviewedBy, id}, scanContent,
		)
	})

	if err != nil {
		if errors.Is(err, ErrAlreadyClosed) {
			return nil, ErrAlreadyClosed
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	for _, blockID := range c.BlockIDs {
		if err := r.blocks.RecordOutcome(ctx, blockID, success); err != nil {
			r.logger.Warn("editorial outcome not recorded", "block", blockID, "error", err)
		}
	}

	r.logger.Info("content reviewed",
		"id", id,
		"status", status,
		"reviewed_by", cmd.ReviewedBy,
	)

	return &c, nil
}
