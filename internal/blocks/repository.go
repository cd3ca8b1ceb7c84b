package blocks

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/pkg/pagination"
	"github.com/sanchika-app/sanchika/pkg/query"
	"github.com/sanchika-app/sanchika/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	gate       *Gate
}

// New creates a block repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	gate *Gate,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "blocks"),
		pagination: pagination,
		gate:       gate,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.gate, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Block], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Template")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count blocks: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanBlock)
	if err != nil {
		return nil, fmt.Errorf("query blocks: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Block, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	b, err := repository.QueryOne(ctx, r.db, q, args, scanBlock)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &b, nil
}

func (r *repo) Active(
	ctx context.Context,
	clusterID string,
	sectionType analysis.SectionType,
) ([]Block, error) {
	if !validCluster(clusterID) {
		return nil, ErrInvalidCluster
	}

	active := true
	q, args := query.
		NewBuilder(projection, query.SortField{Field: "id"}).
		WhereEquals("ClusterID", &clusterID).
		WhereEquals("Type", &sectionType).
		WhereEquals("Active", &active).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanBlock)
	if err != nil {
		return nil, fmt.Errorf("query active blocks: %w", err)
	}

	return items, nil
}

func (r *repo) RecordOutcome(ctx context.Context, id uuid.UUID, success bool) error {
	outcome := 0.0
	if success {
		outcome = 1.0
	}

	q := `
		UPDATE blocks
		SET success_rate = (success_rate * usage_count + $2) / (usage_count + 1),
			usage_count = usage_count + 1
		WHERE id = $1`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(ctx, tx, q, id, outcome); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("block outcome recorded", "id", id, "success", success)
	return nil
}

func (r *repo) SaveLearning(ctx context.Context, learning Learning) error {
	q := `
		INSERT INTO learnings(
			id, sentence_count, mean_words, min_words, max_words,
			paragraph_count, opening, closing, confidence, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	args := []any{
		learning.ID,
		learning.Sentences.Count,
		learning.Sentences.MeanWords,
		learning.Sentences.MinWords,
		learning.Sentences.MaxWords,
		learning.ParagraphCount,
		learning.Opening,
		learning.Closing,
		learning.Confidence,
		learning.CreatedAt,
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, execErr := tx.ExecContext(ctx, q, args...); execErr != nil {
			return struct{}{}, execErr
		}
		return struct{}{}, nil
	})

	if err != nil {
		return fmt.Errorf("save learning: %w", err)
	}

	r.logger.Info("learning saved",
		"id", learning.ID,
		"paragraphs", learning.ParagraphCount,
		"confidence", learning.Confidence,
	)
	return nil
}
