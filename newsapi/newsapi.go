// Package newsapi provides a client for the NewsAPI.org article search API.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phuslu/log"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://newsapi.org/v2"
	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 2 // requests per second
	DefaultPageSize  = 10
)

// Article is one news item.
type Article struct {
	Title       string
	URL         string
	Source      string
	PublishedAt time.Time
}

// Client fetches articles for keyword searches.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     log.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithPageSize sets how many articles a search returns.
func WithPageSize(n int) Option {
	return func(c *Client) { c.pageSize = n }
}

// New returns a rate-limited NewsAPI client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		pageSize:   DefaultPageSize,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:     log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Articles returns recent articles matching the keywords, newest first.
func (c *Client) Articles(ctx context.Context, keywords []string) ([]Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("newsapi key is required")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	query := strings.Join(keywords, " OR ")
	addr := fmt.Sprintf("%s/everything?q=%s&sortBy=publishedAt&pageSize=%d",
		c.baseURL, url.QueryEscape(query), c.pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch articles for %q: %w", query, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch articles for %q: %s", query, resp.Status)
	}

	var payload struct {
		Status   string `json:"status"`
		Articles []struct {
			Title  string `json:"title"`
			URL    string `json:"url"`
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode articles for %q: %w", query, err)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("fetch articles for %q: status %s", query, payload.Status)
	}

	articles := make([]Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, Article{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	c.logger.Debug().Str("query", query).Int("count", len(articles)).Msg("fetched articles")
	return articles, nil
}
