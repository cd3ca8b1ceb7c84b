package images

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/rules"
	"github.com/sanchika-app/sanchika/pkg/lifecycle"
)

// Fallback placeholder dimensions; they satisfy the validity invariant
// (1280/800 = 1.6).
const (
	fallbackWidth  = 1280
	fallbackHeight = 800
)

// categoryProviders maps each category to its provider priority order.
// Celebrity and movie content tries the metadata-rich wiki provider first.
var categoryProviders = map[analysis.Category][]string{
	analysis.CategoryEntertainment: {ProviderWiki, ProviderOpenverse},
	analysis.CategoryMovies:        {ProviderWiki, ProviderOpenverse},
	analysis.CategoryPolitics:      {ProviderWiki, ProviderOpenverse},
	analysis.CategorySports:        {ProviderOpenverse, ProviderWiki},
	analysis.CategoryHealth:        {ProviderOpenverse, ProviderWiki},
	analysis.CategoryHumanInterest: {ProviderOpenverse, ProviderWiki},
}

var defaultProviders = []string{ProviderOpenverse, ProviderWiki}

// Resolver resolves illustrative images through a cache and a per-category
// provider chain. Resolve never fails.
type Resolver struct {
	providers map[string]Provider
	cache     Cache
	group     singleflight.Group
	logger    *slog.Logger
}

// NewResolver creates a Resolver over the given providers and cache.
func NewResolver(providers []Provider, cache Cache, logger *slog.Logger) *Resolver {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &Resolver{
		providers: byName,
		cache:     cache,
		logger:    logger.With("system", "images"),
	}
}

// StartSweeper registers a startup sweep evicting cache entries unused for
// longer than maxAge. Sweep failures only log; the cache degrades to stale
// entries rather than blocking startup.
func (r *Resolver) StartSweeper(lc *lifecycle.Coordinator, maxAge time.Duration) {
	lc.OnStartup(func() {
		evicted, err := r.cache.Sweep(lc.Context(), maxAge)
		if err != nil {
			r.logger.Warn("image cache sweep failed", "error", err)
			return
		}
		if evicted > 0 {
			r.logger.Info("image cache swept", "evicted", evicted)
		}
	})
}

// Resolve returns an image for the query, preferring the cache, then the
// category's provider chain, then a deterministic placeholder. Concurrent
// calls for the same query collapse into a single provider lookup.
func (r *Resolver) Resolve(ctx context.Context, query string, category analysis.Category) ImageResult {
	enhanced := enhanceQuery(query, category)
	key := QueryHash(enhanced)

	if entry, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		return entry.Image
	} else if err != nil {
		r.logger.InfoContext(ctx, "image cache unavailable", "error", err)
	}

	result, _, _ := r.group.Do(key, func() (any, error) {
		return r.lookup(ctx, enhanced, key, category), nil
	})

	return result.(ImageResult)
}

func (r *Resolver) lookup(ctx context.Context, enhanced, key string, category analysis.Category) ImageResult {
	for _, name := range providerChain(category) {
		provider, ok := r.providers[name]
		if !ok {
			continue
		}

		candidate, err := provider.Search(ctx, enhanced)
		if err != nil {
			r.logger.InfoContext(ctx, "provider failed", "provider", name, "error", err)
			continue
		}
		if candidate == nil {
			continue
		}

		if v := ValidateDimensions(candidate.Width, candidate.Height); !v.IsValid {
			r.logger.InfoContext(ctx, "candidate rejected",
				"provider", name,
				"issues", v.Issues,
			)
			continue
		}

		image := ImageResult{
			URL:    candidate.URL,
			Source: name,
			Width:  candidate.Width,
			Height: candidate.Height,
		}
		r.store(ctx, key, image)
		return image
	}

	image := FallbackImage(key)
	r.store(ctx, key, image)
	return image
}

func (r *Resolver) store(ctx context.Context, key string, image ImageResult) {
	if err := r.cache.Put(ctx, key, image); err != nil {
		r.logger.InfoContext(ctx, "image cache write failed", "error", err)
	}
}

// FallbackImage synthesizes a deterministic placeholder seeded by the query
// hash. Identical queries always produce the identical URL.
func FallbackImage(key string) ImageResult {
	return ImageResult{
		URL:    fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", key, fallbackWidth, fallbackHeight),
		Source: SourceFallback,
		Width:  fallbackWidth,
		Height: fallbackHeight,
	}
}

func providerChain(category analysis.Category) []string {
	if chain, ok := categoryProviders[category]; ok {
		return chain
	}
	return defaultProviders
}

func enhanceQuery(query string, category analysis.Category) string {
	style := rules.Rules(category).ImageStyle
	if style == "" {
		return query
	}
	return query + " " + style
}

// QueryHash returns the FNV-64a hex digest of the normalized query.
func QueryHash(query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	h := fnv.New64a()
	h.Write([]byte(normalized))
	return fmt.Sprintf("%016x", h.Sum64())
}
