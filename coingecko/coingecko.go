// Package coingecko provides a client for the CoinGecko spot price API.
package coingecko

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
	DefaultBaseURL   = "https://api.coingecko.com/api/v3"
	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 2 // the free tier is tight, stay well below it
)

// Client fetches crypto spot prices.
type Client struct {
	baseURL    string
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

// WithRateLimit sets the outbound request rate limit.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// New returns a rate-limited CoinGecko client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:     log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Spot returns the current price of one coin in the quote currency.
// coinID is the CoinGecko id (e.g. "bitcoin"), quote an ISO currency code.
func (c *Client) Spot(ctx context.Context, coinID, quote string) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	vs := strings.ToLower(quote)
	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s",
		c.baseURL, url.QueryEscape(coinID), url.QueryEscape(vs))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s spot: %w", coinID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch %s spot: %s", coinID, resp.Status)
	}

	// {"bitcoin": {"jpy": 9876543.21}}
	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode %s spot: %w", coinID, err)
	}
	val, ok := payload[coinID][vs]
	if !ok {
		return 0, fmt.Errorf("no %s price for %s in response", vs, coinID)
	}
	c.logger.Debug().Str("coin", coinID).Str("quote", vs).Float64("price", val).Msg("fetched crypto spot")
	return val, nil
}
