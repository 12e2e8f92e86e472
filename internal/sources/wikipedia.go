package sources

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Prateekkumar12345/AI-Travel-Planner/pkg/utils"
)

const defaultWikipediaBaseURL = "https://en.wikipedia.org"

// WikipediaSource fetches the lead paragraph of a destination's Wikipedia
// article as an overview fact.
type WikipediaSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewWikipediaSource creates a Wikipedia overview source. baseURL overrides
// the live site, mainly for tests; empty means en.wikipedia.org.
func NewWikipediaSource(baseURL string) *WikipediaSource {
	if baseURL == "" {
		baseURL = defaultWikipediaBaseURL
	}
	return &WikipediaSource{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name returns the source name.
func (s *WikipediaSource) Name() string { return "overview" }

// Fetch returns the article overview as a single fact.
func (s *WikipediaSource) Fetch(ctx context.Context, subject string) ([]string, error) {
	overview, err := s.Overview(ctx, subject)
	if err != nil {
		return nil, err
	}
	if overview == "" {
		return nil, nil
	}
	return []string{overview}, nil
}

// Overview fetches the article for subject and extracts the first body
// paragraph (the first <p> without a class inside the parser output, which
// skips coordinate and disambiguation boilerplate).
func (s *WikipediaSource) Overview(ctx context.Context, subject string) (string, error) {
	articleURL := fmt.Sprintf("%s/wiki/%s", s.baseURL, strings.ReplaceAll(subject, " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", fmt.Errorf("wikipedia: build request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("wikipedia: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia: status %d for %s", resp.StatusCode, articleURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("wikipedia: parse page: %w", err)
	}

	var overview string
	doc.Find("div.mw-parser-output > p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if _, hasClass := sel.Attr("class"); hasClass {
			return true
		}
		text := utils.CleanSnippet(sel.Text())
		if text == "" {
			return true
		}
		overview = text
		return false
	})
	return overview, nil
}
