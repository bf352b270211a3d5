package store

import (
	"context"
	"fmt"
)

// Transaction is one append-only ledger row. Date is an ISO-8601 day string so
// that the index supports lexicographic range scans.
type Transaction struct {
	ID        string
	Date      string
	Type      string
	Category  string
	Amount    float64
	Memo      string
	HoldingID string
}

const transactionColumns = `id, date, type, category, amount, memo, holding_id`

func scanTransaction(row interface{ Scan(...any) error }) (Transaction, error) {
	var t Transaction
	err := row.Scan(&t.ID, &t.Date, &t.Type, &t.Category, &t.Amount, &t.Memo, &t.HoldingID)
	return t, err
}

// InsertTransaction appends one ledger row.
func (s *Store) InsertTransaction(ctx context.Context, t Transaction) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (`+transactionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.Type, t.Category, t.Amount, t.Memo, t.HoldingID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListTransactions returns ledger rows newest first. A limit of 0 means no limit.
func (s *Store) ListTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	q := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("list transactions: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// ListTransactionsRange returns ledger rows with from <= date <= to, newest first.
func (s *Store) ListTransactionsRange(ctx context.Context, from, to string) ([]Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		  WHERE date >= ? AND date <= ?
		  ORDER BY date DESC, rowid DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transactions range: %w", err)
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("list transactions range: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions range: %w", err)
	}
	return txs, nil
}

// DeleteTransaction removes one ledger row. Any balance mutation the row
// triggered when recorded stays in place.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
