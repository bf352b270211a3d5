package folio

import (
	"context"

	"github.com/phuslu/log"
)

// Line is the valuation of a single holding within one pass.
type Line struct {
	Holding Holding
	Value   Money
	// Degraded is true when the value came from a fallback path: a missing
	// ticker close or a zero crypto sentinel.
	Degraded bool
}

// PassResult is the outcome of one full valuation pass.
type PassResult struct {
	On       Date
	Lines    []Line
	Total    Money
	Snapshot Snapshot
}

// Valuer converts holdings into the reporting currency and runs valuation
// passes over the whole registry.
type Valuer struct {
	resolver  *Resolver
	registry  *Registry
	snapshots *SnapshotHistory
	reporting string
}

// NewValuer wires a valuer from its collaborators. snapshots may be nil when
// only single-holding valuations are needed.
func NewValuer(resolver *Resolver, registry *Registry, snapshots *SnapshotHistory, reportingCurrency string) *Valuer {
	return &Valuer{
		resolver:  resolver,
		registry:  registry,
		snapshots: snapshots,
		reporting: reportingCurrency,
	}
}

// ValueOf converts one holding into the reporting currency.
//
// The rules, first match wins:
//  1. tickered holding: quantity x latest close x fx(quote currency). A
//     missing close degrades to the cash rules below.
//  2. crypto holding: quantity x spot price (0 sentinel flows through).
//  3. cash in a foreign fiat currency: quantity x fx rate.
//  4. cash in the reporting currency, or an unknown code: quantity unchanged.
//
// Every structurally valid holding yields a finite value; resolution failures
// degrade, they never error.
func (v *Valuer) ValueOf(ctx context.Context, h Holding) Line {
	switch a := h.Asset().(type) {
	case TickeredAsset:
		close, ok := v.resolver.TickerClose(ctx, a.Ticker)
		if !ok {
			// MISSING close: treat the quantity as a direct amount in the
			// holding's own currency.
			return v.valueCash(ctx, a.Holding, true)
		}
		unit := M(close, a.Currency)
		value := unit.Mul(a.Quantity)
		if a.Currency != v.reporting {
			value = value.Convert(v.resolver.FxRate(ctx, a.Currency), v.reporting)
		}
		return Line{Holding: h, Value: value}

	case CryptoAsset:
		spot := v.resolver.CryptoPrice(ctx, a.Currency)
		value := M(spot, v.reporting).Mul(a.Quantity)
		return Line{Holding: h, Value: value, Degraded: spot == 0}

	case CashAsset:
		return v.valueCash(ctx, a.Holding, false)
	}
	// Unreachable: Asset() is exhaustive.
	return Line{Holding: h, Value: M(0, v.reporting), Degraded: true}
}

// valueCash values a holding whose quantity already is a currency amount.
// An unknown currency code passes through as the reporting currency.
func (v *Valuer) valueCash(ctx context.Context, h Holding, degraded bool) Line {
	if h.Currency != v.reporting && !IsCryptoCode(h.Currency) && h.Currency != "" {
		rate := v.resolver.FxRate(ctx, h.Currency)
		amount := M(h.Quantity.Decimal(), h.Currency)
		return Line{Holding: h, Value: amount.Convert(rate, v.reporting), Degraded: degraded}
	}
	return Line{Holding: h, Value: M(h.Quantity.Decimal(), v.reporting), Degraded: degraded}
}

// Run executes one valuation pass: scan the registry, value every holding,
// total the lines, and upsert today's snapshot. One holding's resolution
// failure never prevents the others from being valued.
func (v *Valuer) Run(ctx context.Context) (PassResult, error) {
	holdings, err := v.registry.List(ctx)
	if err != nil {
		return PassResult{}, err
	}

	result := PassResult{On: Today(), Total: M(0, v.reporting)}
	for _, h := range holdings {
		line := v.ValueOf(ctx, h)
		if line.Degraded {
			log.Info().Str("holding", h.Name).Msg("holding valued through a degraded path")
		}
		result.Lines = append(result.Lines, line)
		result.Total = result.Total.Add(line.Value)
	}

	if v.snapshots != nil {
		snap, err := v.snapshots.UpsertToday(ctx, result.Total)
		if err != nil {
			return PassResult{}, err
		}
		result.Snapshot = snap
	}
	return result, nil
}
