package folio

import "math"

// Technical indicators over an ordered, gap-free price series (one value per
// trading period, oldest first). All computations are pure and deterministic;
// leading points for which an indicator is undefined are math.NaN().

// SMA returns the simple moving average of series over window periods.
// The first window-1 points are undefined (NaN).
func SMA(series []float64, window int) []float64 {
	out := undefined(len(series))
	if window <= 0 || len(series) < window {
		return out
	}
	var sum float64
	for i, v := range series {
		sum += v
		if i >= window {
			sum -= series[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA returns the exponential moving average of series with the given span:
// alpha = 2/(span+1), seeded at the first value.
func EMA(series []float64, span int) []float64 {
	out := undefined(len(series))
	if span <= 0 || len(series) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	ema := series[0]
	out[0] = ema
	for i := 1; i < len(series); i++ {
		ema = (series[i]-ema)*alpha + ema
		out[i] = ema
	}
	return out
}

// RSI returns the relative strength index of series over window periods
// (14 by convention). Each point is 100 - 100/(1+rs) where rs is the ratio of
// the average gain to the average loss over the trailing window of deltas;
// a zero average loss maps to 100 by definition, never a division by zero.
// Defined values always lie within [0, 100]. The first window points are
// undefined (NaN): the window-th delta completes the first trailing window.
func RSI(series []float64, window int) []float64 {
	out := undefined(len(series))
	if window <= 0 || len(series) < window+1 {
		return out
	}
	for i := window; i < len(series); i++ {
		var gains, losses float64
		for j := i - window + 1; j <= i; j++ {
			delta := series[j] - series[j-1]
			if delta > 0 {
				gains += delta
			} else {
				losses -= delta
			}
		}
		avgGain := gains / float64(window)
		avgLoss := losses / float64(window)
		if avgLoss == 0 {
			out[i] = 100
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100 - 100/(1+rs)
	}
	return out
}

// MACD returns the moving average convergence divergence line (EMA12 - EMA26)
// and its signal line (the 9-period EMA of the MACD line).
func MACD(series []float64) (macd, signal []float64) {
	fast := EMA(series, 12)
	slow := EMA(series, 26)
	macd = make([]float64, len(series))
	for i := range series {
		macd[i] = fast[i] - slow[i]
	}
	signal = EMA(macd, 9)
	return macd, signal
}

// Correlation returns the Pearson correlation of two date-aligned series over
// their overlapping date range. It is undefined (ok=false) when the overlap
// has fewer than 2 points or either side has zero variance.
func Correlation(a, b *History[float64]) (float64, bool) {
	var xs, ys []float64
	for day, x := range a.Values() {
		if y, ok := b.Get(day); ok {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return pearson(xs, ys)
}

// pearson computes the Pearson correlation coefficient of two equal-length
// samples.
func pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0, false
	}
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/float64(n), sumY/float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}

// undefined returns a series of n NaN values.
func undefined(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
