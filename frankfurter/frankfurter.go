// Package frankfurter provides a client for the Frankfurter exchange-rate API.
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/phuslu/log"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://api.frankfurter.dev/v1"
	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client fetches fiat exchange rates.
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

// New returns a rate-limited Frankfurter client.
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

// Rate returns how much one unit of base is worth in quote.
func (c *Client) Rate(ctx context.Context, base, quote string) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	addr := fmt.Sprintf("%s/latest?base=%s&symbols=%s", c.baseURL, url.QueryEscape(base), url.QueryEscape(quote))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch %s/%s rate: %w", base, quote, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch %s/%s rate: %s", base, quote, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read %s/%s rate: %w", base, quote, err)
	}
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return 0, fmt.Errorf("decode %s/%s rate: %w", base, quote, err)
	}

	path := "$.rates." + quote
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("parse %s/%s rate: %q %w", base, quote, path, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("parse %s/%s rate: %q is not a number", base, quote, path)
	}
	c.logger.Debug().Str("base", base).Str("quote", quote).Float64("rate", val).Msg("fetched fx rate")
	return val, nil
}
