package folio

import (
	"context"
	"fmt"

	"github.com/phuslu/log"

	"github.com/okabe/folio/store"
)

// Registry is the asset registry: the CRUD store of named holdings.
type Registry struct {
	st *store.Store
}

// NewRegistry returns a registry backed by the given store.
func NewRegistry(st *store.Store) *Registry { return &Registry{st: st} }

func holdingFromRow(r store.Holding) Holding {
	return Holding{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		Quantity: Q(r.Quantity),
		Currency: r.Currency,
		Ticker:   r.Ticker,
	}
}

// List returns every holding, ordered by name.
func (r *Registry) List(ctx context.Context) ([]Holding, error) {
	rows, err := r.st.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	holdings := make([]Holding, 0, len(rows))
	for _, row := range rows {
		holdings = append(holdings, holdingFromRow(row))
	}
	return holdings, nil
}

// Get returns one holding by id.
func (r *Registry) Get(ctx context.Context, id string) (Holding, error) {
	row, err := r.st.GetHolding(ctx, id)
	if err != nil {
		return Holding{}, err
	}
	return holdingFromRow(row), nil
}

// Find returns one holding by its exact name.
func (r *Registry) Find(ctx context.Context, name string) (Holding, error) {
	row, err := r.st.FindHolding(ctx, name)
	if err != nil {
		return Holding{}, err
	}
	return holdingFromRow(row), nil
}

// UpsertByName adds delta to the quantity of the holding with this exact name,
// creating the holding with delta as initial quantity when absent. On an
// existing holding the category, currency and ticker arguments are ignored:
// the stored row keeps its own.
//
// The resulting quantity may go negative; that is tolerated, not rejected.
func (r *Registry) UpsertByName(ctx context.Context, name, category string, delta Quantity, currency, ticker string) (Holding, error) {
	if name == "" {
		return Holding{}, fmt.Errorf("holding name is required")
	}
	row, err := r.st.UpsertHoldingByName(ctx, name, category, delta.AsFloat(), currency, ticker)
	if err != nil {
		return Holding{}, err
	}
	h := holdingFromRow(row)
	if h.Quantity.IsNegative() {
		log.Warn().Str("holding", name).Str("quantity", h.Quantity.String()).Msg("holding balance is overdrawn")
	}
	return h, nil
}

// Rename changes a holding's display name. Ledger rows keep pointing at the
// holding because they link by id.
func (r *Registry) Rename(ctx context.Context, id, newName string) error {
	if newName == "" {
		return fmt.Errorf("holding name is required")
	}
	row, err := r.st.GetHolding(ctx, id)
	if err != nil {
		return err
	}
	row.Name = newName
	return r.st.UpdateHolding(ctx, row)
}

// Delete removes a holding. Existing ledger rows are not cascaded.
func (r *Registry) Delete(ctx context.Context, id string) error {
	return r.st.DeleteHolding(ctx, id)
}
