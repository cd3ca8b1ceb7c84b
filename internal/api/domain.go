package api

import (
	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/blocks"
	"github.com/sanchika-app/sanchika/internal/contents"
	"github.com/sanchika-app/sanchika/internal/generation"
	"github.com/sanchika-app/sanchika/internal/images"
	"github.com/sanchika-app/sanchika/internal/pipeline"
	"github.com/sanchika-app/sanchika/internal/validation"
	"github.com/sanchika-app/sanchika/pkg/throttle"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Blocks    blocks.System
	Contents  contents.System
	Resolver  *images.Resolver
	Validator *validation.Validator
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	gate := blocks.NewGate(blocks.Thresholds{
		Ready:      float64(runtime.Pipeline.Thresholds.Ready),
		Refinement: float64(runtime.Pipeline.Thresholds.Refinement),
		AIHelp:     float64(runtime.Pipeline.Thresholds.AIHelp),
	})

	blocksSystem := blocks.New(db, runtime.Logger, runtime.Pagination, gate)

	classifier := analysis.New(analysis.DefaultPolicy(), runtime.Completion, runtime.Logger)
	composer := blocks.NewComposer(blocksSystem, runtime.Logger)
	generator := generation.New(classifier, runtime.Completion, runtime.Logger)

	validator := validation.New(
		validation.DefaultPenalties(),
		validation.DefaultClickbaitWeights(),
		validation.NewDBRegistry(db),
		runtime.Logger,
	)

	limiter := throttle.New(&runtime.Images.Throttle)
	resolver := images.NewResolver(
		[]images.Provider{
			images.NewWikiProvider(runtime.Images.WikiBaseURL, limiter),
			images.NewOpenverseProvider(runtime.Images.OpenverseBaseURL, limiter),
		},
		images.NewDBCache(db),
		runtime.Logger,
	)
	resolver.StartSweeper(runtime.Lifecycle, runtime.Images.CacheSweepMaxAgeDuration())

	contentsSystem := contents.New(
		db,
		pipeline.Deps{
			Classifier: classifier,
			Composer:   composer,
			Gate:       gate,
			Generator:  generator,
			Validator:  validator,
			Resolver:   resolver,
			Blocks:     blocksSystem,
		},
		runtime.Pipeline.BatchDelayDuration(),
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Blocks:    blocksSystem,
		Contents:  contentsSystem,
		Resolver:  resolver,
		Validator: validator,
	}
}
