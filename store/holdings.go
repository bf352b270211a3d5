package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Holding is one asset registry row.
type Holding struct {
	ID       string
	Name     string
	Category string
	Quantity float64
	Currency string
	Ticker   string
}

const holdingColumns = `id, name, category, quantity, currency, ticker`

func scanHolding(row interface{ Scan(...any) error }) (Holding, error) {
	var h Holding
	err := row.Scan(&h.ID, &h.Name, &h.Category, &h.Quantity, &h.Currency, &h.Ticker)
	return h, err
}

// ListHoldings returns every holding ordered by name.
func (s *Store) ListHoldings(ctx context.Context) ([]Holding, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+holdingColumns+` FROM holdings ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	defer rows.Close()

	var holdings []Holding
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("list holdings: %w", err)
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	return holdings, nil
}

// GetHolding returns one holding by id.
func (s *Store) GetHolding(ctx context.Context, id string) (Holding, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+holdingColumns+` FROM holdings WHERE id = ?`, id)
	h, err := scanHolding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Holding{}, ErrNotFound
	}
	if err != nil {
		return Holding{}, fmt.Errorf("get holding: %w", err)
	}
	return h, nil
}

// FindHolding returns one holding by its exact name.
func (s *Store) FindHolding(ctx context.Context, name string) (Holding, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+holdingColumns+` FROM holdings WHERE name = ?`, name)
	h, err := scanHolding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Holding{}, ErrNotFound
	}
	if err != nil {
		return Holding{}, fmt.Errorf("find holding: %w", err)
	}
	return h, nil
}

// UpsertHoldingByName inserts a new holding with the given quantity, or, when
// a holding with that exact name exists, adds delta to its quantity leaving
// category, currency and ticker untouched. The whole operation is one SQLite
// statement, so concurrent upserts on the same name cannot lose an update.
func (s *Store) UpsertHoldingByName(ctx context.Context, name, category string, delta float64, currency, ticker string) (Holding, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO holdings (id, name, category, quantity, currency, ticker)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET quantity = quantity + excluded.quantity
		 RETURNING `+holdingColumns,
		uuid.NewString(), name, category, delta, currency, ticker)
	h, err := scanHolding(row)
	if err != nil {
		return Holding{}, fmt.Errorf("upsert holding %q: %w", name, err)
	}
	return h, nil
}

// UpdateHolding overwrites every mutable field of a holding row.
func (s *Store) UpdateHolding(ctx context.Context, h Holding) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE holdings SET name = ?, category = ?, quantity = ?, currency = ?, ticker = ? WHERE id = ?`,
		h.Name, h.Category, h.Quantity, h.Currency, h.Ticker, h.ID)
	if err != nil {
		return fmt.Errorf("update holding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update holding: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHolding removes one holding row. Ledger rows that reference it are
// left untouched.
func (s *Store) DeleteHolding(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM holdings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete holding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete holding: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
