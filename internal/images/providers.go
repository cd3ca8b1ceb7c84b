package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sanchika-app/sanchika/pkg/throttle"
)

// Candidate is a single provider search hit with dimensions.
type Candidate struct {
	URL    string
	Width  int
	Height int
}

// Provider searches an upstream image source. Each call returns at most one
// candidate; an empty result is not an error.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) (*Candidate, error)
}

// Provider names used in category priority chains.
const (
	ProviderWiki      = "wiki"
	ProviderOpenverse = "openverse"
	SourceFallback    = "fallback"
)

const wikiAPIBase = "https://commons.wikimedia.org/w/api.php"

// wikiProvider queries the Wikimedia Commons API, the metadata-rich source
// preferred for celebrity and movie lookups.
type wikiProvider struct {
	baseURL string
	client  *http.Client
	limiter *throttle.Limiter
}

// NewWikiProvider creates the Commons-backed provider.
// An empty baseURL selects the public API endpoint.
func NewWikiProvider(baseURL string, limiter *throttle.Limiter) Provider {
	if baseURL == "" {
		baseURL = wikiAPIBase
	}
	return &wikiProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: limiter,
	}
}

func (p *wikiProvider) Name() string {
	return ProviderWiki
}

type wikiResponse struct {
	Query struct {
		Pages map[string]struct {
			ImageInfo []struct {
				ThumbURL    string `json:"thumburl"`
				ThumbWidth  int    `json:"thumbwidth"`
				ThumbHeight int    `json:"thumbheight"`
				URL         string `json:"url"`
				Width       int    `json:"width"`
				Height      int    `json:"height"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

func (p *wikiProvider) Search(ctx context.Context, query string) (*Candidate, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("generator", "search")
	params.Set("gsrsearch", query)
	params.Set("gsrlimit", "1")
	params.Set("gsrnamespace", "6")
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url|size")
	params.Set("iiurlwidth", "1280")

	parsed, err := fetchJSON[wikiResponse](ctx, p.client, p.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("wiki search: %w", err)
	}

	for _, page := range parsed.Query.Pages {
		for _, info := range page.ImageInfo {
			if info.ThumbURL != "" {
				return &Candidate{URL: info.ThumbURL, Width: info.ThumbWidth, Height: info.ThumbHeight}, nil
			}
			if info.URL != "" {
				return &Candidate{URL: info.URL, Width: info.Width, Height: info.Height}, nil
			}
		}
	}

	return nil, nil
}

// openverseProvider queries an Openverse-compatible search endpoint.
type openverseProvider struct {
	baseURL string
	client  *http.Client
	limiter *throttle.Limiter
}

// NewOpenverseProvider creates the general-purpose stock provider.
func NewOpenverseProvider(baseURL string, limiter *throttle.Limiter) Provider {
	if baseURL == "" {
		baseURL = "https://api.openverse.org/v1/images/"
	}
	return &openverseProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: limiter,
	}
}

func (p *openverseProvider) Name() string {
	return ProviderOpenverse
}

type openverseResponse struct {
	Results []struct {
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"results"`
}

func (p *openverseProvider) Search(ctx context.Context, query string) (*Candidate, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page_size", "1")

	parsed, err := fetchJSON[openverseResponse](ctx, p.client, p.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("openverse search: %w", err)
	}

	if len(parsed.Results) == 0 {
		return nil, nil
	}

	r := parsed.Results[0]
	return &Candidate{URL: r.URL, Width: r.Width, Height: r.Height}, nil
}

func fetchJSON[T any](ctx context.Context, client *http.Client, u string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return zero, fmt.Errorf("provider status %s", resp.Status)
	}

	var parsed T
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return zero, err
	}

	return parsed, nil
}
