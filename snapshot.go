package folio

import (
	"context"

	"github.com/okabe/folio/store"
)

// Snapshot is one persisted total-portfolio-value observation for a calendar day.
type Snapshot struct {
	ID    string `json:"id"`
	Date  Date   `json:"date"`
	Total Money  `json:"total_value"`
}

// SnapshotHistory keeps at most one valuation total per calendar day.
//
// Per day the lifecycle is NoSnapshot -> Snapshot(v1) -> Snapshot(v2) -> ...:
// later writes on the same day always win.
type SnapshotHistory struct {
	st        *store.Store
	reporting string
}

// NewSnapshotHistory returns a snapshot history backed by st with totals in
// the reporting currency.
func NewSnapshotHistory(st *store.Store, reportingCurrency string) *SnapshotHistory {
	return &SnapshotHistory{st: st, reporting: reportingCurrency}
}

// UpsertToday writes today's snapshot. Calling it several times in one day
// overwrites the total instead of creating duplicate rows.
func (s *SnapshotHistory) UpsertToday(ctx context.Context, total Money) (Snapshot, error) {
	return s.Upsert(ctx, Today(), total)
}

// Upsert writes the snapshot for an arbitrary day.
func (s *SnapshotHistory) Upsert(ctx context.Context, on Date, total Money) (Snapshot, error) {
	row, err := s.st.UpsertSnapshot(ctx, on.String(), total.AsFloat())
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{ID: row.ID, Date: on, Total: M(row.TotalValue, s.reporting)}, nil
}

// Range returns the ordered series of daily totals from since onward. The
// zero date means the whole history.
func (s *SnapshotHistory) Range(ctx context.Context, since Date) (*History[float64], error) {
	var cutoff string
	if !since.IsZero() {
		cutoff = since.String()
	}
	rows, err := s.st.ListSnapshots(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	var h History[float64]
	for _, row := range rows {
		on, err := ParseDate(row.Date)
		if err != nil {
			return nil, err
		}
		h.Append(on, row.TotalValue)
	}
	return &h, nil
}
