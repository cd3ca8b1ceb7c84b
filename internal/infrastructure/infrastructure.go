// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, model completion) that
// domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sanchika-app/sanchika/internal/config"
	"github.com/sanchika-app/sanchika/pkg/completion"
	"github.com/sanchika-app/sanchika/pkg/database"
	"github.com/sanchika-app/sanchika/pkg/lifecycle"
	"github.com/sanchika-app/sanchika/pkg/throttle"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, and model completion.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Database   database.System
	Completion completion.Client
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
// Without completion settings the service runs template-only: the pipeline
// still operates, routing model-dependent work to drafts or rejection.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	client := completion.Disabled()
	if cfg.Completion.Configured() {
		limiter := throttle.New(&cfg.Pipeline.Throttle)
		client, err = completion.New(&cfg.Completion, limiter, logger)
		if err != nil {
			return nil, fmt.Errorf("completion init failed: %w", err)
		}
	} else {
		logger.Warn("completion not configured, running template-only")
	}

	return &Infrastructure{
		Lifecycle:  lc,
		Logger:     logger,
		Database:   db,
		Completion: client,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
