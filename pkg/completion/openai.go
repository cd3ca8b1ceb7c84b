package completion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/sanchika-app/sanchika/pkg/throttle"
)

type openAIClient struct {
	llm     *openai.LLM
	limiter *throttle.Limiter
	logger  *slog.Logger
}

// New creates a completion client from the given configuration.
// Returns a disabled client when no token or base URL is configured.
func New(cfg *Config, limiter *throttle.Limiter, logger *slog.Logger) (Client, error) {
	if !cfg.Configured() {
		logger.Info("completion client disabled, no provider configured")
		return Disabled(), nil
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.token()),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create completion client: %w", err)
	}

	return &openAIClient{
		llm:     llm,
		limiter: limiter,
		logger:  logger.With("system", "completion"),
	}, nil
}

func (c *openAIClient) Enabled() bool {
	return true
}

func (c *openAIClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	callOpts := make([]llms.CallOption, 0, 2)
	if opts.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, callOpts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrRejected
	}

	return text, nil
}

type disabledClient struct{}

// Disabled returns a Client whose calls always return ErrDisabled.
func Disabled() Client {
	return disabledClient{}
}

func (disabledClient) Enabled() bool {
	return false
}

func (disabledClient) Complete(context.Context, string, Options) (string, error) {
	return "", ErrDisabled
}
