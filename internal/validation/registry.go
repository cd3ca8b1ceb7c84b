package validation

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/sanchika-app/sanchika/pkg/repository"
)

// DuplicateRegistry stores normalized content hashes keyed by content id.
// Implementations are injected so tests supply isolated instances and
// production supplies one backed by the database.
type DuplicateRegistry interface {
	// Register records hash under id and reports whether the same hash is
	// already registered under a different id.
	Register(ctx context.Context, id, hash string) (duplicate bool, err error)
}

// MemoryRegistry is an in-process DuplicateRegistry.
type MemoryRegistry struct {
	mu     sync.Mutex
	byHash map[string]string
}

// NewMemoryRegistry creates an empty in-process registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{byHash: make(map[string]string)}
}

func (r *MemoryRegistry) Register(_ context.Context, id, hash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.byHash[hash]; ok && owner != id {
		return true, nil
	}

	r.byHash[hash] = id
	return false, nil
}

type dbRegistry struct {
	db *sql.DB
}

// NewDBRegistry creates a DuplicateRegistry backed by the content_hashes table.
func NewDBRegistry(db *sql.DB) DuplicateRegistry {
	return &dbRegistry{db: db}
}

func (r *dbRegistry) Register(ctx context.Context, id, hash string) (bool, error) {
	return repository.WithTx(ctx, r.db, func(tx *sql.Tx) (bool, error) {
		var owner string
		err := tx.QueryRowContext(ctx,
			"SELECT content_id FROM content_hashes WHERE hash = $1",
			hash,
		).Scan(&owner)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			_, err = tx.ExecContext(ctx,
				"INSERT INTO content_hashes (hash, content_id) VALUES ($1, $2)",
				hash, id,
			)
			return false, err
		case err != nil:
			return false, err
		default:
			return owner != id, nil
		}
	})
}
