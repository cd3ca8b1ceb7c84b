// Package images implements category-aware image resolution with provider
// fallback and a persistent cache. Resolution never fails: when every
// provider is exhausted a deterministic placeholder is synthesized.
package images

import "fmt"

// Dimension requirements every returned image satisfies.
const (
	MinWidth       = 800
	MinAspectRatio = 1.2
	MaxAspectRatio = 2.5
)

// ImageResult is a resolved illustrative image.
type ImageResult struct {
	URL    string `json:"url"`
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ImageValidation reports whether an image candidate meets the dimension
// requirements. IsValid holds exactly when Issues is empty.
type ImageValidation struct {
	IsValid     bool     `json:"is_valid"`
	AspectRatio float64  `json:"aspect_ratio"`
	Issues      []string `json:"issues,omitempty"`
}

// ValidateDimensions checks a candidate against the width and aspect-ratio
// requirements.
func ValidateDimensions(width, height int) ImageValidation {
	var issues []string

	if height <= 0 {
		return ImageValidation{Issues: []string{"missing dimensions"}}
	}

	ratio := float64(width) / float64(height)

	if width < MinWidth {
		issues = append(issues, fmt.Sprintf("width %d below %d", width, MinWidth))
	}
	if ratio < MinAspectRatio || ratio > MaxAspectRatio {
		issues = append(issues, fmt.Sprintf("aspect ratio %.2f outside [%.1f, %.1f]", ratio, MinAspectRatio, MaxAspectRatio))
	}

	return ImageValidation{
		IsValid:     len(issues) == 0,
		AspectRatio: ratio,
		Issues:      issues,
	}
}
