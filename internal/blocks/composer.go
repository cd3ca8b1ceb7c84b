package blocks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/rules"
)

// Composer assembles article skeletons from the block library. Composition
// is fully deterministic for a given store state and never calls a model.
type Composer struct {
	store  Store
	logger *slog.Logger
}

// NewComposer creates a Composer over the given store.
func NewComposer(store Store, logger *slog.Logger) *Composer {
	return &Composer{
		store:  store,
		logger: logger.With("system", "composer"),
	}
}

// ClusterFor picks the style cluster for a category and sentiment.
// Sensitive or negative material always gets the soft voice.
func ClusterFor(category analysis.Category, sentiment analysis.Sentiment) string {
	if sentiment == analysis.SentimentSensitive || sentiment == analysis.SentimentNegative {
		return ClusterEmotionalSoft
	}

	switch category {
	case analysis.CategoryEntertainment, analysis.CategoryMovies, analysis.CategorySports:
		return ClusterPunchyMass
	case analysis.CategoryHumanInterest:
		return ClusterEmotionalSoft
	default:
		return ClusterInformative
	}
}

// RecipeFor builds the default composition recipe for a category: its
// required sections in rule order, run in the given cluster.
func RecipeFor(category analysis.Category, clusterID string) Composition {
	return Composition{
		ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte("sanchika/recipes/"+string(category)+"/"+clusterID)),
		Name:          string(category) + "-default",
		Category:      category,
		BlockSequence: rules.Rules(category).Sections,
		ClusterID:     clusterID,
		IsActive:      true,
	}
}

// Compose assembles the category's default recipe in the given cluster.
func (c *Composer) Compose(
	ctx context.Context,
	category analysis.Category,
	clusterID string,
	params Params,
) (*Composed, error) {
	return c.ComposeWith(ctx, RecipeFor(category, clusterID), params)
}

// ComposeWith builds one section per block type in the recipe's sequence,
// selecting the highest success-rate active block in the cluster with ties
// broken by lowest usage count. Section types with no available block are
// skipped; the confidence gate accounts for the gap.
func (c *Composer) ComposeWith(
	ctx context.Context,
	recipe Composition,
	params Params,
) (*Composed, error) {
	if !validCluster(recipe.ClusterID) {
		return nil, ErrInvalidCluster
	}

	composed := &Composed{
		ClusterID: recipe.ClusterID,
		CreatedAt: time.Now().UTC(),
	}

	for _, sectionType := range recipe.BlockSequence {
		candidates, err := c.store.Active(ctx, recipe.ClusterID, sectionType)
		if err != nil {
			return nil, fmt.Errorf("load blocks for %s: %w", sectionType, err)
		}

		block, ok := pick(candidates)
		if !ok {
			c.logger.Warn("no block available",
				"section", sectionType,
				"cluster", recipe.ClusterID,
			)
			continue
		}

		composed.Sections = append(composed.Sections, ComposedSection{
			Type:     sectionType,
			Content:  substitute(block.Template, params),
			BlockIDs: []uuid.UUID{block.ID},
		})
	}

	if len(composed.Sections) == 0 {
		return nil, ErrNoBlocks
	}

	return composed, nil
}

// pick selects the best block from candidates already in stable ID order:
// highest success rate first, lowest usage count on ties. Ties beyond that
// resolve to the earliest ID, keeping selection deterministic.
func pick(candidates []Block) (Block, bool) {
	if len(candidates) == 0 {
		return Block{}, false
	}

	best := candidates[0]
	for _, b := range candidates[1:] {
		if b.Performance.SuccessRate > best.Performance.SuccessRate {
			best = b
			continue
		}
		if b.Performance.SuccessRate == best.Performance.SuccessRate &&
			b.Performance.UsageCount < best.Performance.UsageCount {
			best = b
		}
	}

	return best, true
}

func substitute(template string, params Params) string {
	entity := params.Entity
	if entity == "" {
		entity = params.Topic
	}

	return strings.NewReplacer(
		"{entity}", entity,
		"{topic}", params.Topic,
		"{category}", string(params.Category),
	).Replace(template)
}
