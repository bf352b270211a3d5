package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Snapshot is one total-portfolio-value observation for a calendar day.
type Snapshot struct {
	ID         string
	Date       string
	TotalValue float64
}

// UpsertSnapshot writes the snapshot row for a day. A second write on the same
// day overwrites total_value instead of inserting a duplicate: the table holds
// at most one row per distinct date.
func (s *Store) UpsertSnapshot(ctx context.Context, date string, totalValue float64) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO snapshots (id, date, total_value) VALUES (?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET total_value = excluded.total_value
		 RETURNING id, date, total_value`,
		uuid.NewString(), date, totalValue)
	var snap Snapshot
	if err := row.Scan(&snap.ID, &snap.Date, &snap.TotalValue); err != nil {
		return Snapshot{}, fmt.Errorf("upsert snapshot %s: %w", date, err)
	}
	return snap, nil
}

// ListSnapshots returns snapshot rows with date >= since, oldest first. An
// empty since returns the whole table.
func (s *Store) ListSnapshots(ctx context.Context, since string) ([]Snapshot, error) {
	query := `SELECT id, date, total_value FROM snapshots ORDER BY date ASC`
	args := []any{}
	if since != "" {
		query = `SELECT id, date, total_value FROM snapshots WHERE date >= ? ORDER BY date ASC`
		args = append(args, since)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Date, &snap.TotalValue); err != nil {
			return nil, fmt.Errorf("list snapshots: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}
