package folio

import (
	"context"
	"testing"
	"time"
)

func TestSnapshotUpsertIsIdempotentPerDay(t *testing.T) {
	snaps := NewSnapshotHistory(newTestStore(t), "JPY")
	ctx := context.Background()
	on := NewDate(2026, time.March, 2)

	first, err := snaps.Upsert(ctx, on, M(1000, "JPY"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := snaps.Upsert(ctx, on, M(2000, "JPY"))
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Errorf("same-day upsert changed the id from %s to %s", first.ID, second.ID)
	}

	h, err := snaps.Range(ctx, Date{})
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 1 {
		t.Fatalf("history has %d points after two same-day upserts, want 1", h.Len())
	}
	if v, _ := h.Get(on); v != 2000 {
		t.Errorf("snapshot total = %v, want the later 2000", v)
	}
}

func TestSnapshotRangeZeroDateReturnsAll(t *testing.T) {
	snaps := NewSnapshotHistory(newTestStore(t), "JPY")
	ctx := context.Background()

	for d := 1; d <= 3; d++ {
		if _, err := snaps.Upsert(ctx, NewDate(2026, time.March, d), M(d*100, "JPY")); err != nil {
			t.Fatal(err)
		}
	}

	h, err := snaps.Range(ctx, Date{})
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 3 {
		t.Fatalf("Range(zero date) has %d points, want the whole history of 3", h.Len())
	}
}

func TestSnapshotRangeSince(t *testing.T) {
	snaps := NewSnapshotHistory(newTestStore(t), "JPY")
	ctx := context.Background()

	for d := 1; d <= 5; d++ {
		if _, err := snaps.Upsert(ctx, NewDate(2026, time.March, d), M(d*100, "JPY")); err != nil {
			t.Fatal(err)
		}
	}

	h, err := snaps.Range(ctx, NewDate(2026, time.March, 3))
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 3 {
		t.Fatalf("Range(since 03) has %d points, want 3", h.Len())
	}
	days := h.Days()
	if days[0] != NewDate(2026, time.March, 3) {
		t.Errorf("first day = %v, want 2026-03-03 (since is inclusive)", days[0])
	}
	if days[len(days)-1] != NewDate(2026, time.March, 5) {
		t.Errorf("last day = %v, want 2026-03-05", days[len(days)-1])
	}
}
