package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/blocks"
	"github.com/sanchika-app/sanchika/internal/generation"
	"github.com/sanchika-app/sanchika/internal/images"
	"github.com/sanchika-app/sanchika/internal/rules"
	"github.com/sanchika-app/sanchika/internal/validation"
)

// Pipeline wires the stage collaborators into one orchestrator.
type Pipeline struct {
	classifier *analysis.Classifier
	composer   *blocks.Composer
	gate       *blocks.Gate
	generator  *generation.Generator
	validator  *validation.Validator
	resolver   *images.Resolver
	blocks     blocks.Store
	recorder   Recorder
	batchDelay time.Duration
	logger     *slog.Logger
}

// Deps collects the pipeline's stage collaborators.
type Deps struct {
	Classifier *analysis.Classifier
	Composer   *blocks.Composer
	Gate       *blocks.Gate
	Generator  *generation.Generator
	Validator  *validation.Validator
	Resolver   *images.Resolver
	Blocks     blocks.Store
	Recorder   Recorder
}

// New creates a Pipeline. batchDelay paces sequential batch items.
func New(deps Deps, batchDelay time.Duration, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		classifier: deps.Classifier,
		composer:   deps.Composer,
		gate:       deps.Gate,
		generator:  deps.Generator,
		validator:  deps.Validator,
		resolver:   deps.Resolver,
		blocks:     deps.Blocks,
		recorder:   deps.Recorder,
		batchDelay: batchDelay,
		logger:     logger.With("system", "pipeline"),
	}
}

// Process runs the full state machine over one item. It never returns an
// error; failures surface in Output.Errors with a rejected status.
func (p *Pipeline) Process(ctx context.Context, input Input) *Output {
	out := newOutput(&input)

	result := p.classifier.Classify(ctx, input.Title, input.Body, input.Category)
	out.Analysis = result
	out.Category = result.Category

	article, composed := p.generate(ctx, input, result, out)
	if article == nil {
		out.Status = StatusRejected
		p.persist(ctx, out)
		return out
	}

	out.Headline = article.Headline
	out.Source = article.Source
	out.Body = applyDisclaimer(article.Body(), result)
	if composed != nil {
		out.BlockIDs = composed.BlockIDs()
	}

	out.Validation = p.validator.Validate(
		ctx, out.ContentID.String(), out.Headline, out.Body, result.Category, 0,
	)

	image := p.resolveImage(ctx, input, result)
	out.Image = &image

	out.Status = route(out.Validation.Recommendation, result.ContentRisk)
	out.Success = out.Status != StatusRejected

	p.persist(ctx, out)
	p.feedback(ctx, composed, article.Source, out.Status)

	p.logger.Info("content processed",
		"id", out.ContentID,
		"status", out.Status,
		"source", out.Source,
		"risk", result.ContentRisk,
	)

	return out
}

// QuickProcess is the bulk-ingestion variant: rule-based classification
// only, template composition only, QuickValidate instead of the full gate,
// and a draft ceiling. Quick items are never auto-published.
func (p *Pipeline) QuickProcess(ctx context.Context, input Input) *Output {
	out := newOutput(&input)

	result := p.classifier.ClassifyRules(input.Title, input.Body, input.Category)
	out.Analysis = result
	out.Category = result.Category

	body := input.Body
	cluster := blocks.ClusterFor(result.Category, result.Sentiment)

	composed, err := p.composer.Compose(ctx, result.Category, cluster, blocks.Params{
		Entity:   result.PrimaryEntity.Name,
		Topic:    input.Title,
		Category: result.Category,
	})
	if err == nil {
		body = composed.Text()
		out.Source = generation.SourceTemplate
		out.BlockIDs = composed.BlockIDs()
	} else {
		p.logger.Warn("quick composition failed, keeping source body", "error", err)
	}

	out.Headline = input.Title
	out.Body = applyDisclaimer(body, result)

	// Quick items get half the category minimum, matching the relaxed
	// purity bar QuickValidate already applies.
	quickMin := rules.Rules(result.Category).MinWords / 2

	if !p.validator.QuickValidate(out.Headline, out.Body, result.Category, quickMin) {
		out.Status = StatusRejected
		out.Errors = append(out.Errors, "quick validation failed")
		p.persist(ctx, out)
		return out
	}

	image := p.resolveImage(ctx, input, result)
	out.Image = &image

	out.Status = StatusDraft
	out.Success = true

	p.persist(ctx, out)
	return out
}

// Batch runs inputs sequentially with a fixed inter-item delay. One item's
// failure, panic included, becomes a rejected result and never aborts the
// rest.
func (p *Pipeline) Batch(ctx context.Context, inputs []Input, quick bool) Summary {
	var summary Summary

	for i, input := range inputs {
		if i > 0 && p.batchDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(p.batchDelay):
			}
		}

		out := p.runItem(ctx, input, quick)

		if out.Success {
			summary.Success++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, *out)
	}

	return summary
}

func (p *Pipeline) runItem(ctx context.Context, input Input, quick bool) (out *Output) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline item panicked", "title", input.Title, "panic", r)
			out = newOutput(&input)
			out.Status = StatusRejected
			out.Errors = append(out.Errors, fmt.Sprintf("internal failure: %v", r))
		}
	}()

	if quick {
		return p.QuickProcess(ctx, input)
	}
	return p.Process(ctx, input)
}

// generate runs the template-first generation stage. The confidence gate
// decides the path: publishable composition wins outright, ai_help permits
// the model path, anything lower rejects. A missing block library falls
// straight through to the model.
func (p *Pipeline) generate(
	ctx context.Context,
	input Input,
	result *analysis.ContentAnalysis,
	out *Output,
) (*generation.Article, *blocks.Composed) {
	cluster := blocks.ClusterFor(result.Category, result.Sentiment)

	composed, err := p.composer.Compose(ctx, result.Category, cluster, blocks.Params{
		Entity:   result.PrimaryEntity.Name,
		Topic:    input.Title,
		Category: result.Category,
	})

	if err != nil {
		p.logger.Warn("composition failed, trying model path", "error", err)
		return p.modelPath(ctx, input, result, out), nil
	}

	conf := p.gate.Score(composed.Text(), result.Category, cluster)
	out.Confidence = &conf

	switch {
	case conf.CanPublish:
		return generation.FromComposed(input.Title, composed, result), composed
	case conf.NeedsAI:
		article := p.modelPath(ctx, input, result, out)
		if article != nil {
			p.learn(ctx, composed, article)
		}
		return article, nil
	default:
		out.Errors = append(out.Errors,
			fmt.Sprintf("confidence %.0f below model-assist floor", conf.Score))
		return nil, nil
	}
}

func (p *Pipeline) modelPath(
	ctx context.Context,
	input Input,
	result *analysis.ContentAnalysis,
	out *Output,
) *generation.Article {
	article, err := p.generator.Generate(ctx, input.Title, input.Body, result.Category)
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("generation failed: %v", err))
		return nil
	}
	return article
}

// resolveImage resolves through the provider chain, preferring a
// caller-supplied source image only when the resolver itself fell back.
func (p *Pipeline) resolveImage(
	ctx context.Context,
	input Input,
	result *analysis.ContentAnalysis,
) images.ImageResult {
	query := result.PrimaryEntity.Name
	if query == "" || query == "general" {
		query = input.Title
	}

	resolved := p.resolver.Resolve(ctx, query, result.Category)

	if input.SourceImage != "" && resolved.Source == images.SourceFallback {
		return images.ImageResult{
			URL:    input.SourceImage,
			Source: "source",
		}
	}

	return resolved
}

// persist saves the output; a save failure is terminal for the item.
func (p *Pipeline) persist(ctx context.Context, out *Output) {
	if err := p.recorder.Save(ctx, *out); err != nil {
		p.logger.Error("persist failed", "id", out.ContentID, "error", err)
		out.Status = StatusRejected
		out.Success = false
		out.Errors = append(out.Errors, fmt.Sprintf("persist failed: %v", err))
	}
}

// learn records how model text that displaced a low-confidence template
// attempt deviates from it structurally. Failures only log.
func (p *Pipeline) learn(
	ctx context.Context,
	composed *blocks.Composed,
	article *generation.Article,
) {
	if article.Source != generation.SourceModel {
		return
	}

	learning := blocks.ExtractLearning(composed.Text(), article.Body())
	if err := p.blocks.SaveLearning(ctx, learning); err != nil {
		p.logger.Warn("learning not recorded", "error", err)
	}
}

// feedback records the publish outcome against every block a template-path
// article used. Feedback failures are logged, never fatal.
func (p *Pipeline) feedback(
	ctx context.Context,
	composed *blocks.Composed,
	source generation.Source,
	status Status,
) {
	if composed == nil || source != generation.SourceTemplate {
		return
	}

	success := status == StatusPublished
	for _, id := range composed.BlockIDs() {
		if err := p.blocks.RecordOutcome(ctx, id, success); err != nil {
			p.logger.Warn("block outcome not recorded", "block", id, "error", err)
		}
	}
}

func route(rec validation.Recommendation, risk analysis.Risk) Status {
	switch {
	case rec == validation.RecommendPublish && risk != analysis.RiskHigh:
		return StatusPublished
	case rec == validation.RecommendPublish || rec == validation.RecommendReview:
		return StatusDraft
	default:
		return StatusRejected
	}
}

func newOutput(input *Input) *Output {
	if input.ID == uuid.Nil {
		input.ID = uuid.New()
	}
	return &Output{ContentID: input.ID}
}
