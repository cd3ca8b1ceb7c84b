package images

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"
)

// CacheEntry is a cached image resolution keyed by query hash.
type CacheEntry struct {
	Key      string
	Image    ImageResult
	LastUsed time.Time
}

// Cache stores resolved images. Implementations are injected so tests supply
// isolated instances and production supplies one backed by the database.
type Cache interface {
	// Get returns the entry for key and refreshes its last-used timestamp.
	Get(ctx context.Context, key string) (*CacheEntry, bool, error)
	// Put stores or replaces the entry for key.
	Put(ctx context.Context, key string, image ImageResult) error
	// Sweep evicts entries unused for longer than maxAge, returning the
	// number evicted.
	Sweep(ctx context.Context, maxAge time.Duration) (int, error)
}

// MemoryCache is an in-process Cache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*CacheEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*CacheEntry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}

	entry.LastUsed = c.now()
	copied := *entry
	return &copied, true, nil
}

func (c *MemoryCache) Put(_ context.Context, key string, image ImageResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &CacheEntry{Key: key, Image: image, LastUsed: c.now()}
	return nil
}

func (c *MemoryCache) Sweep(_ context.Context, maxAge time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-maxAge)
	evicted := 0

	for key, entry := range c.entries {
		if entry.LastUsed.Before(cutoff) {
			delete(c.entries, key)
			evicted++
		}
	}

	return evicted, nil
}

type dbCache struct {
	db *sql.DB
}

// NewDBCache creates a Cache backed by the image_cache table.
func NewDBCache(db *sql.DB) Cache {
	return &dbCache{db: db}
}

func (c *dbCache) Get(ctx context.Context, key string) (*CacheEntry, bool, error) {
	entry := CacheEntry{Key: key}

	err := c.db.QueryRowContext(ctx,
		`UPDATE image_cache SET last_used = NOW()
		 WHERE query_hash = $1
		 RETURNING url, source, width, height, last_used`,
		key,
	).Scan(&entry.Image.URL, &entry.Image.Source, &entry.Image.Width, &entry.Image.Height, &entry.LastUsed)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &entry, true, nil
}

func (c *dbCache) Put(ctx context.Context, key string, image ImageResult) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO image_cache (query_hash, url, source, width, height, last_used)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (query_hash) DO UPDATE SET
			url = EXCLUDED.url,
			source = EXCLUDED.source,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			last_used = NOW()`,
		key, image.URL, image.Source, image.Width, image.Height,
	)
	return err
}

func (c *dbCache) Sweep(ctx context.Context, maxAge time.Duration) (int, error) {
	result, err := c.db.ExecContext(ctx,
		"DELETE FROM image_cache WHERE last_used < NOW() - $1::interval",
		maxAge.String(),
	)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	return int(rows), err
}
