package folio

import (
	"context"
	"sync"
	"time"

	"github.com/phuslu/log"
)

// Default cache lifetimes per asset class. Fiat rates and equity closes move
// slowly enough for an hour; crypto is refreshed more often.
const (
	FiatTTL   = time.Hour
	CryptoTTL = 10 * time.Minute
	EquityTTL = time.Hour

	// FailureTTL bounds how long a failed fetch is remembered. Within this
	// window the same symbol degrades immediately instead of re-hitting the
	// provider.
	FailureTTL = time.Minute
)

// RateSource fetches a fiat exchange rate: how much one unit of base is worth
// in quote.
type RateSource interface {
	Rate(ctx context.Context, base, quote string) (float64, error)
}

// SpotSource fetches a crypto spot price versus a fiat quote currency.
type SpotSource interface {
	Spot(ctx context.Context, coinID, quote string) (float64, error)
}

// QuoteSource fetches equity prices for an external market symbol.
type QuoteSource interface {
	// LatestClose returns the most recent close from the shortest available
	// trailing window.
	LatestClose(ctx context.Context, ticker string) (float64, error)
	// DailyCloses returns up to days daily closes, oldest first.
	DailyCloses(ctx context.Context, ticker string, days int) (*History[float64], error)
}

// QuoteCache is an explicit TTL cache for resolved prices. It is owned by the
// valuation pass (threaded through the resolver), not ambient global state.
type QuoteCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	failures map[string]time.Time
	now      func() time.Time
}

type cacheEntry struct {
	value     float64
	fetchedAt time.Time
}

// NewQuoteCache returns an empty cache.
func NewQuoteCache() *QuoteCache {
	return &QuoteCache{
		entries:  make(map[string]cacheEntry),
		failures: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Get returns the cached value for key if it is younger than ttl.
func (c *QuoteCache) Get(key string, ttl time.Duration) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) > ttl {
		return 0, false
	}
	return e.value, true
}

// Put stores a value for key, stamped with the current time. A success clears
// any remembered failure for the key.
func (c *QuoteCache) Put(key string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
	delete(c.failures, key)
}

// Fail records a failed fetch for key.
func (c *QuoteCache) Fail(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[key] = c.now()
}

// Failed reports whether key failed within the last ttl.
func (c *QuoteCache) Failed(key string, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	at, ok := c.failures[key]
	return ok && c.now().Sub(at) <= ttl
}

// Resolver resolves prices and exchange rates for the valuation pass. Every
// lookup is cached with a per-asset-class TTL, so redundant calls for the same
// symbol within one pass hit the network at most once.
//
// A failed fetch never propagates: fiat rates degrade to a configured fallback
// constant, crypto prices to the 0 sentinel, and equity closes to a MISSING
// signal that the converter turns into a direct-amount valuation. Failures are
// memoized for FailureTTL so a provider outage costs one timeout per symbol,
// not one per holding.
type Resolver struct {
	cache  *QuoteCache
	rates  RateSource
	spots  SpotSource
	quotes QuoteSource

	reporting  string
	fxFallback map[string]float64 // base currency -> 1 unit in reporting currency
}

// NewResolver returns a resolver converting into the reporting currency.
// fxFallback gives the fixed constants used when a fiat fetch fails, keyed by
// base currency; a currency absent from the table passes through at rate 1.
func NewResolver(cache *QuoteCache, rates RateSource, spots SpotSource, quotes QuoteSource, reportingCurrency string, fxFallback map[string]float64) *Resolver {
	return &Resolver{
		cache:      cache,
		rates:      rates,
		spots:      spots,
		quotes:     quotes,
		reporting:  reportingCurrency,
		fxFallback: fxFallback,
	}
}

// FxRate resolves the value of one unit of base in the reporting currency.
// On fetch failure it returns the configured fallback constant so that the
// valuation degrades instead of crashing.
func (r *Resolver) FxRate(ctx context.Context, base string) float64 {
	if base == r.reporting {
		return 1
	}
	key := "fx:" + base + ":" + r.reporting
	if v, ok := r.cache.Get(key, FiatTTL); ok {
		return v
	}
	if r.cache.Failed(key, FailureTTL) {
		return r.fallbackRate(base)
	}
	v, err := r.rates.Rate(ctx, base, r.reporting)
	if err != nil {
		r.cache.Fail(key)
		fallback := r.fallbackRate(base)
		log.Warn().Err(err).Str("base", base).Float64("fallback", fallback).Msg("fx rate fetch failed, using fallback constant")
		return fallback
	}
	r.cache.Put(key, v)
	return v
}

// fallbackRate returns the configured constant for base. Without one the
// amount passes through unconverted.
func (r *Resolver) fallbackRate(base string) float64 {
	if v, ok := r.fxFallback[base]; ok {
		return v
	}
	return 1
}

// CryptoPrice resolves the spot price of a crypto code in the reporting
// currency. On fetch failure (or unknown code) it returns the 0 sentinel;
// callers must treat 0 as "unknown", not as a real price.
func (r *Resolver) CryptoPrice(ctx context.Context, code string) float64 {
	coinID, ok := CoinID(code)
	if !ok {
		return 0
	}
	key := "crypto:" + code + ":" + r.reporting
	if v, ok := r.cache.Get(key, CryptoTTL); ok {
		return v
	}
	if r.cache.Failed(key, FailureTTL) {
		return 0
	}
	v, err := r.spots.Spot(ctx, coinID, r.reporting)
	if err != nil {
		r.cache.Fail(key)
		log.Warn().Err(err).Str("code", code).Msg("crypto price fetch failed, using zero sentinel")
		return 0
	}
	r.cache.Put(key, v)
	return v
}

// TickerClose resolves the most recent close for an external market symbol.
// On failure it returns ok=false (MISSING, not zero), signaling the caller to
// fall back to treating the holding's quantity as a direct currency amount.
func (r *Resolver) TickerClose(ctx context.Context, ticker string) (float64, bool) {
	key := "equity:" + ticker
	if v, ok := r.cache.Get(key, EquityTTL); ok {
		return v, true
	}
	if r.cache.Failed(key, FailureTTL) {
		return 0, false
	}
	v, err := r.quotes.LatestClose(ctx, ticker)
	if err != nil {
		r.cache.Fail(key)
		log.Warn().Err(err).Str("ticker", ticker).Msg("ticker close fetch failed, reporting missing")
		return 0, false
	}
	r.cache.Put(key, v)
	return v, true
}
