package stats

import (
	"math"
	"sort"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

// DefaultOutlierThreshold is the |z| cut-off above which a value counts as an
// outlier.
const DefaultOutlierThreshold = 3.0

// ZScores returns the standard score of every entry: (value - mean) / std,
// with mean and std computed over the non-missing values. Missing entries
// yield NaN. A column with zero standard deviation yields all-NaN scores
// since no value can deviate.
func ZScores(vals []float64) []float64 {
	var n int
	var mean, m2 float64
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		n++
		delta := v - mean
		mean += delta / float64(n)
		m2 += delta * (v - mean)
	}
	out := make([]float64, len(vals))
	var std float64
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	for i, v := range vals {
		if math.IsNaN(v) || std == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (v - mean) / std
	}
	return out
}

// DetectOutliers returns the sorted union of row indices whose standard score
// exceeds the threshold in absolute value in at least one of the given
// columns. Missing entries are never flagged.
func DetectOutliers(t *dataset.Table, columns []string, threshold float64) []int {
	if threshold <= 0 {
		threshold = DefaultOutlierThreshold
	}
	flagged := make(map[int]struct{})
	for _, name := range columns {
		vals, ok := t.Numeric[name]
		if !ok {
			continue
		}
		for i, z := range ZScores(vals) {
			if !math.IsNaN(z) && math.Abs(z) > threshold {
				flagged[i] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(flagged))
	for i := range flagged {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
