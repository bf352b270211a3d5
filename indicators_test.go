package folio

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSMA(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}
	got := SMA(series, 3)

	for i := 0; i < 2; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("SMA[%d] = %v, want NaN before the window fills", i, got[i])
		}
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		if !almostEqual(got[i+2], w) {
			t.Errorf("SMA[%d] = %v, want %v", i+2, got[i+2], w)
		}
	}
}

func TestSMAShortSeries(t *testing.T) {
	got := SMA([]float64{1, 2}, 3)
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("SMA[%d] = %v, want NaN when the series is shorter than the window", i, v)
		}
	}
}

func TestEMA(t *testing.T) {
	series := []float64{10, 20, 30}
	got := EMA(series, 3) // alpha = 0.5

	want := []float64{10, 15, 22.5}
	for i, w := range want {
		if !almostEqual(got[i], w) {
			t.Errorf("EMA[%d] = %v, want %v", i, got[i], w)
		}
	}
}

func TestEMAConstantSeries(t *testing.T) {
	got := EMA([]float64{42, 42, 42, 42}, 5)
	for i, v := range got {
		if !almostEqual(v, 42) {
			t.Errorf("EMA[%d] = %v, want 42 on a constant series", i, v)
		}
	}
}

func TestRSI(t *testing.T) {
	// strictly rising series: no losses, RSI pegs at 100.
	rising := []float64{1, 2, 3, 4, 5, 6}
	got := RSI(rising, 3)
	for i := 0; i < 3; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("RSI[%d] = %v, want NaN before the window fills", i, got[i])
		}
	}
	for i := 3; i < len(got); i++ {
		if got[i] != 100 {
			t.Errorf("RSI[%d] = %v, want 100 on a loss-free window", i, got[i])
		}
	}

	// strictly falling series: no gains, RSI is 0.
	falling := []float64{6, 5, 4, 3, 2, 1}
	got = RSI(falling, 3)
	for i := 3; i < len(got); i++ {
		if got[i] != 0 {
			t.Errorf("RSI[%d] = %v, want 0 on a gain-free window", i, got[i])
		}
	}
}

func TestRSIWithinBounds(t *testing.T) {
	series := []float64{44, 44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28}
	got := RSI(series, 14)
	for i, v := range got {
		if math.IsNaN(v) {
			continue
		}
		if v < 0 || v > 100 {
			t.Errorf("RSI[%d] = %v, out of [0, 100]", i, v)
		}
	}
	if math.IsNaN(got[len(got)-1]) {
		t.Error("RSI of the last point should be defined")
	}
}

func TestMACDConstantSeriesIsZero(t *testing.T) {
	series := make([]float64, 40)
	for i := range series {
		series[i] = 100
	}
	macd, signal := MACD(series)
	for i := range series {
		if !almostEqual(macd[i], 0) || !almostEqual(signal[i], 0) {
			t.Errorf("MACD[%d] = %v, signal %v, want 0 on a constant series", i, macd[i], signal[i])
		}
	}
}

func TestMACDLengths(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}
	macd, signal := MACD(series)
	if len(macd) != len(series) || len(signal) != len(series) {
		t.Errorf("MACD lengths = %d, %d, want %d", len(macd), len(signal), len(series))
	}
}

func corrHistory(values map[int]float64) *History[float64] {
	var h History[float64]
	for d, v := range values {
		h.Append(NewDate(2026, time.March, d), v)
	}
	return &h
}

func TestCorrelation(t *testing.T) {
	a := corrHistory(map[int]float64{1: 1, 2: 2, 3: 3, 4: 4})
	b := corrHistory(map[int]float64{1: 2, 2: 4, 3: 6, 4: 8})
	c := corrHistory(map[int]float64{1: 4, 2: 3, 3: 2, 4: 1})

	if r, ok := Correlation(a, b); !ok || !almostEqual(r, 1) {
		t.Errorf("Correlation(a, b) = %v, %v, want 1, true", r, ok)
	}
	if r, ok := Correlation(a, c); !ok || !almostEqual(r, -1) {
		t.Errorf("Correlation(a, c) = %v, %v, want -1, true", r, ok)
	}

	// symmetry
	r1, _ := Correlation(a, b)
	r2, _ := Correlation(b, a)
	if !almostEqual(r1, r2) {
		t.Errorf("Correlation is not symmetric: %v vs %v", r1, r2)
	}
}

func TestCorrelationAlignsOnSharedDates(t *testing.T) {
	// b misses day 2; only days 1, 3, 4 overlap.
	a := corrHistory(map[int]float64{1: 1, 2: 100, 3: 3, 4: 4})
	b := corrHistory(map[int]float64{1: 1, 3: 3, 4: 4})

	if r, ok := Correlation(a, b); !ok || !almostEqual(r, 1) {
		t.Errorf("Correlation over shared dates = %v, %v, want 1, true", r, ok)
	}
}

func TestCorrelationUndefined(t *testing.T) {
	flat := corrHistory(map[int]float64{1: 5, 2: 5, 3: 5})
	moving := corrHistory(map[int]float64{1: 1, 2: 2, 3: 3})
	if _, ok := Correlation(flat, moving); ok {
		t.Error("Correlation should be undefined when one side has zero variance")
	}

	short := corrHistory(map[int]float64{1: 1})
	if _, ok := Correlation(short, moving); ok {
		t.Error("Correlation should be undefined on fewer than 2 shared points")
	}

	disjointA := corrHistory(map[int]float64{1: 1, 2: 2})
	disjointB := corrHistory(map[int]float64{10: 1, 11: 2})
	if _, ok := Correlation(disjointA, disjointB); ok {
		t.Error("Correlation should be undefined on disjoint dates")
	}
}
