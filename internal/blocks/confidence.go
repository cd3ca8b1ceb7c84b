package blocks

import (
	"strings"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/internal/rules"
	"github.com/sanchika-app/sanchika/internal/validation"
)

// Status classifies a confidence score into a publish decision.
type Status string

const (
	StatusReady      Status = "ready"
	StatusRefinement Status = "refinement"
	StatusAIHelp     Status = "ai_help"
	StatusRejected   Status = "rejected"
)

// ConfidenceResult is the gate's verdict on one candidate text. It is
// stateless and recomputed on every call.
type ConfidenceResult struct {
	Score      float64            `json:"score"`
	Status     Status             `json:"status"`
	CanPublish bool               `json:"can_publish"`
	NeedsAI    bool               `json:"needs_ai"`
	Components map[string]float64 `json:"components"`
}

// Thresholds are the score cut-offs between gate statuses.
type Thresholds struct {
	Ready      float64 `json:"ready" toml:"ready"`
	Refinement float64 `json:"refinement" toml:"refinement"`
	AIHelp     float64 `json:"ai_help" toml:"ai_help"`
}

// DefaultThresholds returns the standard gate cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Ready:      85,
		Refinement: 70,
		AIHelp:     50,
	}
}

// Component weights sum to 1. Structure carries the most because a
// candidate missing required sections is not salvageable by editing.
const (
	weightStructure = 0.30
	weightResonance = 0.25
	weightPurity    = 0.25
	weightLength    = 0.20
)

// resonanceWords are Telugu emotional-register markers. Density against
// these drives the resonance component.
var resonanceWords = []string{
	"మనసు",
	"హృదయ",
	"భావోద్వేగ",
	"ప్రేమ",
	"అభిమాన",
	"సంతోష",
	"బాధ",
	"కన్నీ",
	"ఆనంద",
	"గర్వ",
	"ఆశ్చర్య",
	"మద్దతు",
	"స్పంద",
	"ఆసక్తి",
}

// resonanceTarget is the hit count that earns a full resonance component.
const resonanceTarget = 3

// Gate scores candidate text against the structural and linguistic bar
// template output must clear before it may skip the model path.
type Gate struct {
	thresholds Thresholds
}

// NewGate creates a Gate with the given thresholds.
func NewGate(thresholds Thresholds) *Gate {
	return &Gate{thresholds: thresholds}
}

// Score computes the weighted confidence for a candidate text composed for
// the given category and cluster.
func (g *Gate) Score(content string, category analysis.Category, clusterID string) ConfidenceResult {
	r := rules.Rules(category)

	components := map[string]float64{
		"structure": structureFit(content, len(r.Sections)),
		"resonance": resonance(content),
		"purity":    validation.TeluguPurity(content),
		"length":    lengthFit(content, r.MinWords),
	}

	score := 100 * (weightStructure*components["structure"] +
		weightResonance*components["resonance"] +
		weightPurity*components["purity"] +
		weightLength*components["length"])

	status := g.status(score)

	return ConfidenceResult{
		Score:      score,
		Status:     status,
		CanPublish: status == StatusReady || status == StatusRefinement,
		NeedsAI:    status == StatusAIHelp,
		Components: components,
	}
}

func (g *Gate) status(score float64) Status {
	switch {
	case score >= g.thresholds.Ready:
		return StatusReady
	case score >= g.thresholds.Refinement:
		return StatusRefinement
	case score >= g.thresholds.AIHelp:
		return StatusAIHelp
	default:
		return StatusRejected
	}
}

// structureFit compares paragraph count against the number of required
// section types. Composed candidates carry one paragraph per section.
func structureFit(content string, required int) float64 {
	if required <= 0 {
		return 1
	}

	paragraphs := 0
	for _, p := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	fit := float64(paragraphs) / float64(required)
	if fit > 1 {
		fit = 1
	}
	return fit
}

// resonance measures emotional-register keyword hits, saturating at the
// target count.
func resonance(content string) float64 {
	lower := strings.ToLower(content)

	hits := 0
	for _, w := range resonanceWords {
		hits += strings.Count(lower, w)
	}

	fit := float64(hits) / float64(resonanceTarget)
	if fit > 1 {
		fit = 1
	}
	return fit
}

// lengthFit scores word count against the category minimum. Short text
// scales linearly; anything at or above the minimum is a full fit.
func lengthFit(content string, minWords int) float64 {
	if minWords <= 0 {
		return 1
	}

	words := len(strings.Fields(content))
	fit := float64(words) / float64(minWords)
	if fit > 1 {
		fit = 1
	}
	return fit
}
