// Package yahoo provides a client for the Yahoo Finance chart API, used to
// fetch daily closes and the latest quote for a ticker.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/phuslu/log"
	"golang.org/x/time/rate"

	folio "github.com/okabe/folio"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com/v8/finance/chart"
	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client fetches price series for external market symbols.
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

// New returns a rate-limited Yahoo Finance client.
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

// chartResponse mirrors the subset of the v8 chart payload the engine needs.
// Close values can be null on halted days, hence the pointers.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				Currency           string  `json:"currency"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// rangeFor picks the shortest chart range that still covers days daily bars.
func rangeFor(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 22:
		return "1mo"
	case days <= 66:
		return "3mo"
	case days <= 132:
		return "6mo"
	case days <= 260:
		return "1y"
	default:
		return "2y"
	}
}

func (c *Client) chart(ctx context.Context, ticker, rng string) (*chartResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	addr := fmt.Sprintf("%s/%s?range=%s&interval=1d", c.baseURL, url.PathEscape(ticker), rng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects requests without a user agent.
	req.Header.Set("User-Agent", "folio/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch chart for %s: %w", ticker, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch chart for %s: %s", ticker, resp.Status)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode chart for %s: %w", ticker, err)
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("chart for %s: %s", ticker, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart for %s: empty result", ticker)
	}
	return &payload, nil
}

// LatestClose returns the most recent close for ticker from the shortest
// trailing window, preferring the live regular market price when present.
func (c *Client) LatestClose(ctx context.Context, ticker string) (float64, error) {
	payload, err := c.chart(ctx, ticker, "5d")
	if err != nil {
		return 0, err
	}
	result := payload.Chart.Result[0]
	if result.Meta.RegularMarketPrice > 0 {
		return result.Meta.RegularMarketPrice, nil
	}
	if len(result.Indicators.Quote) > 0 {
		closes := result.Indicators.Quote[0].Close
		for i := len(closes) - 1; i >= 0; i-- {
			if closes[i] != nil {
				return *closes[i], nil
			}
		}
	}
	return 0, fmt.Errorf("chart for %s: no close available", ticker)
}

// DailyCloses returns up to days daily closes for ticker, oldest first,
// keyed by trading day.
func (c *Client) DailyCloses(ctx context.Context, ticker string, days int) (*folio.History[float64], error) {
	payload, err := c.chart(ctx, ticker, rangeFor(days))
	if err != nil {
		return nil, err
	}
	result := payload.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart for %s: no quote data", ticker)
	}
	closes := result.Indicators.Quote[0].Close

	var h folio.History[float64]
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		day := time.Unix(ts, 0).UTC()
		h.Append(folio.NewDate(day.Date()), *closes[i])
	}
	c.logger.Debug().Str("ticker", ticker).Int("points", h.Len()).Msg("fetched daily closes")
	return &h, nil
}
