package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sanchika-app/sanchika/pkg/throttle"
)

const (
	EnvPipelineBatchDelay          = "SANCHIKA_PIPELINE_BATCH_DELAY"
	EnvPipelineThresholdReady      = "SANCHIKA_PIPELINE_THRESHOLD_READY"
	EnvPipelineThresholdRefinement = "SANCHIKA_PIPELINE_THRESHOLD_REFINEMENT"
	EnvPipelineThresholdAIHelp     = "SANCHIKA_PIPELINE_THRESHOLD_AI_HELP"
)

var pipelineThrottleEnv = &throttle.Env{
	RequestsPerMinute: "SANCHIKA_PIPELINE_THROTTLE_RPM",
	Burst:             "SANCHIKA_PIPELINE_THROTTLE_BURST",
}

// ThresholdsConfig holds the confidence gate cut points on the 0-100 scale.
type ThresholdsConfig struct {
	Ready      int `toml:"ready"`
	Refinement int `toml:"refinement"`
	AIHelp     int `toml:"ai_help"`
}

// PipelineConfig holds processing pacing and confidence gate settings.
// The throttle section paces model completion calls.
type PipelineConfig struct {
	BatchDelay string           `toml:"batch_delay"`
	Thresholds ThresholdsConfig `toml:"thresholds"`
	Throttle   throttle.Config  `toml:"throttle"`
}

// BatchDelayDuration returns BatchDelay as a time.Duration.
func (c *PipelineConfig) BatchDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.BatchDelay)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Throttle.Finalize(pipelineThrottleEnv); err != nil {
		return fmt.Errorf("throttle: %w", err)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.BatchDelay != "" {
		c.BatchDelay = overlay.BatchDelay
	}
	if overlay.Thresholds.Ready != 0 {
		c.Thresholds.Ready = overlay.Thresholds.Ready
	}
	if overlay.Thresholds.Refinement != 0 {
		c.Thresholds.Refinement = overlay.Thresholds.Refinement
	}
	if overlay.Thresholds.AIHelp != 0 {
		c.Thresholds.AIHelp = overlay.Thresholds.AIHelp
	}
	c.Throttle.Merge(&overlay.Throttle)
}

func (c *PipelineConfig) loadDefaults() {
	if c.BatchDelay == "" {
		c.BatchDelay = "500ms"
	}
	if c.Thresholds.Ready == 0 {
		c.Thresholds.Ready = 85
	}
	if c.Thresholds.Refinement == 0 {
		c.Thresholds.Refinement = 70
	}
	if c.Thresholds.AIHelp == 0 {
		c.Thresholds.AIHelp = 50
	}
}

func (c *PipelineConfig) loadEnv() {
	if v := os.Getenv(EnvPipelineBatchDelay); v != "" {
		c.BatchDelay = v
	}

	setInt := func(envVar string, target *int) {
		if v := os.Getenv(envVar); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*target = n
			}
		}
	}

	setInt(EnvPipelineThresholdReady, &c.Thresholds.Ready)
	setInt(EnvPipelineThresholdRefinement, &c.Thresholds.Refinement)
	setInt(EnvPipelineThresholdAIHelp, &c.Thresholds.AIHelp)
}

func (c *PipelineConfig) validate() error {
	if _, err := time.ParseDuration(c.BatchDelay); err != nil {
		return fmt.Errorf("invalid batch_delay: %w", err)
	}

	t := c.Thresholds
	if t.Ready <= t.Refinement || t.Refinement <= t.AIHelp {
		return fmt.Errorf("thresholds must descend: ready %d > refinement %d > ai_help %d",
			t.Ready, t.Refinement, t.AIHelp)
	}
	if t.Ready > 100 || t.AIHelp < 0 {
		return fmt.Errorf("thresholds must stay within 0-100")
	}
	return nil
}
