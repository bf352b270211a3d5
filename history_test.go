package folio

import (
	"testing"
	"time"
)

func day(d int) Date { return NewDate(2026, time.March, d) }

func TestHistoryAppendKeepsChronologicalOrder(t *testing.T) {
	var h History[float64]
	h.Append(day(3), 30)
	h.Append(day(1), 10)
	h.Append(day(2), 20)

	want := []Date{day(1), day(2), day(3)}
	got := h.Days()
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHistoryAppendOverwritesSameDay(t *testing.T) {
	var h History[float64]
	h.Append(day(1), 10)
	h.Append(day(1), 99)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(day(1)); !ok || v != 99 {
		t.Errorf("Get() = %v, %v, want 99, true", v, ok)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(day(1), 10)
	h.Append(day(5), 50)

	tests := []struct {
		name   string
		on     Date
		want   float64
		wantOk bool
	}{
		{"before first", day(1).Add(-1), 0, false},
		{"exact", day(1), 10, true},
		{"gap uses previous", day(3), 10, true},
		{"after last", day(9), 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(tt.on)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("ValueAsOf(%v) = %v, %v, want %v, %v", tt.on, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestHistoryLatest(t *testing.T) {
	var h History[float64]
	if d, _ := h.Latest(); !d.IsZero() {
		t.Errorf("Latest() on empty history = %v, want zero date", d)
	}

	h.Append(day(1), 10)
	h.Append(day(7), 70)
	d, v := h.Latest()
	if d != day(7) || v != 70 {
		t.Errorf("Latest() = %v, %v, want %v, 70", d, v, day(7))
	}
}
