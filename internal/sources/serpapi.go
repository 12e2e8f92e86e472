package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/models"
	"github.com/Prateekkumar12345/AI-Travel-Planner/pkg/utils"
)

const defaultSerpAPIBaseURL = "https://serpapi.com/search.json"

// SerpAPIConfig configures the SerpAPI client.
type SerpAPIConfig struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// SerpAPIClient calls the SerpAPI search endpoint for organic snippets,
// images, and hotel listings. Requests share a rate limiter so bursts of
// builds stay inside the API quota.
type SerpAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSerpAPIClient creates a client. The API key is required.
func NewSerpAPIClient(cfg SerpAPIConfig) (*SerpAPIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("serpapi: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultSerpAPIBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2
	}
	return &SerpAPIClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}, nil
}

type serpResponse struct {
	OrganicResults []struct {
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
	ImagesResults []struct {
		Original string `json:"original"`
	} `json:"images_results"`
	HotelsResults []struct {
		Name        string  `json:"name"`
		Rating      float64 `json:"rating"`
		Price       string  `json:"price"`
		Description string  `json:"description"`
	} `json:"hotels_results"`
	Error string `json:"error"`
}

func (c *SerpAPIClient) search(ctx context.Context, engine, query string) (*serpResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("engine", engine)
	params.Set("q", query)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("serpapi: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: status %d: %s", resp.StatusCode, utils.Truncate(string(body), 200))
	}
	var parsed serpResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("serpapi: decode response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("serpapi: %s", parsed.Error)
	}
	return &parsed, nil
}

// OrganicSnippets returns up to limit snippets from organic web results.
func (c *SerpAPIClient) OrganicSnippets(ctx context.Context, query string, limit int) ([]string, error) {
	parsed, err := c.search(ctx, "google", query)
	if err != nil {
		return nil, err
	}
	snippets := make([]string, 0, limit)
	for _, r := range parsed.OrganicResults {
		if len(snippets) >= limit {
			break
		}
		if s := utils.CleanSnippet(r.Snippet); s != "" {
			snippets = append(snippets, s)
		}
	}
	return snippets, nil
}

// Images returns up to limit original-size image URLs for the query.
func (c *SerpAPIClient) Images(ctx context.Context, query string, limit int) ([]string, error) {
	parsed, err := c.search(ctx, "google_images", query)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, limit)
	for _, img := range parsed.ImagesResults {
		if len(urls) >= limit {
			break
		}
		if img.Original != "" {
			urls = append(urls, img.Original)
		}
	}
	return urls, nil
}

// Hotels returns up to limit hotel listings for the query.
func (c *SerpAPIClient) Hotels(ctx context.Context, query string, limit int) ([]models.Hotel, error) {
	parsed, err := c.search(ctx, "google_travel", query)
	if err != nil {
		return nil, err
	}
	hotels := make([]models.Hotel, 0, limit)
	for _, h := range parsed.HotelsResults {
		if len(hotels) >= limit {
			break
		}
		hotel := models.Hotel{
			Name:        h.Name,
			Rating:      h.Rating,
			Price:       h.Price,
			Description: h.Description,
		}
		if hotel.Name == "" {
			hotel.Name = "Unknown"
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}

// NewAttractionsSource returns a fact source backed by a "top attractions in
// <subject>" web search.
func NewAttractionsSource(client *SerpAPIClient, limit int) Source {
	return newSerpQuerySource(client, "attractions", "top attractions in %s", limit)
}

// NewDiningSource returns a fact source backed by a "top restaurants in
// <subject>" web search.
func NewDiningSource(client *SerpAPIClient, limit int) Source {
	return newSerpQuerySource(client, "dining", "top restaurants in %s", limit)
}

type serpQuerySource struct {
	client  *SerpAPIClient
	name    string
	pattern string
	limit   int
}

func newSerpQuerySource(client *SerpAPIClient, name, pattern string, limit int) *serpQuerySource {
	if limit <= 0 {
		limit = 5
	}
	return &serpQuerySource{client: client, name: name, pattern: pattern, limit: limit}
}

func (s *serpQuerySource) Name() string { return s.name }

func (s *serpQuerySource) Fetch(ctx context.Context, subject string) ([]string, error) {
	return s.client.OrganicSnippets(ctx, fmt.Sprintf(s.pattern, subject), s.limit)
}
