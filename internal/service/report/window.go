package report

import (
	"gonum.org/v1/gonum/stat"
)

// ntile assigns 1-based buckets to n ranked rows, SQL NTILE style: bucket
// sizes differ by at most one, with the remainder going to the earliest
// buckets. Index i in the ranked order gets buckets[i].
func ntile(buckets, n int) []int {
	if n <= 0 || buckets <= 0 {
		return nil
	}
	out := make([]int, n)
	base := n / buckets
	remainder := n % buckets

	idx := 0
	for b := 1; b <= buckets; b++ {
		size := base
		if b <= remainder {
			size++
		}
		for j := 0; j < size && idx < n; j++ {
			out[idx] = b
			idx++
		}
	}
	return out
}

// minMaxScale maps v onto [0,100] over the observed [lo,hi] range. A
// degenerate range (hi == lo) scales everything to 0 instead of dividing
// by zero.
func minMaxScale(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo) * 100
}

// mean returns the arithmetic mean of vals, or false when vals is empty.
// Absent observations must be filtered out by the caller before this point —
// a null never contributes as zero.
func mean(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	return stat.Mean(vals, nil), true
}

// correlation returns the Pearson correlation of the paired samples, or
// false when there are fewer than two pairs.
func correlation(xs, ys []float64) (float64, bool) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, false
	}
	return stat.Correlation(xs, ys, nil), true
}

// deref unpacks a nullable metric.
func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// cell converts a nullable metric into a result cell.
func cell(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
