// Package stats computes read-only summaries of sensor tables: descriptive
// statistics, missing-value reports, standard-score outlier detection and
// Pearson correlations. Nothing in this package mutates a table.
package stats

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

// ColumnStats holds the describe() row for one numeric column. All statistics
// are computed over the non-missing values only.
type ColumnStats struct {
	Column  string  `json:"column"`
	Count   int     `json:"count"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Max     float64 `json:"max"`
}

// MarshalJSON renders NaN statistics (all-missing column) as null so the
// report stays serializable.
func (s ColumnStats) MarshalJSON() ([]byte, error) {
	type alias struct {
		Column  string   `json:"column"`
		Count   int      `json:"count"`
		Missing int      `json:"missing"`
		Mean    *float64 `json:"mean"`
		Std     *float64 `json:"std"`
		Min     *float64 `json:"min"`
		Q1      *float64 `json:"q1"`
		Median  *float64 `json:"median"`
		Q3      *float64 `json:"q3"`
		Max     *float64 `json:"max"`
	}
	opt := func(v float64) *float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	}
	return json.Marshal(alias{
		Column: s.Column, Count: s.Count, Missing: s.Missing,
		Mean: opt(s.Mean), Std: opt(s.Std), Min: opt(s.Min),
		Q1: opt(s.Q1), Median: opt(s.Median), Q3: opt(s.Q3), Max: opt(s.Max),
	})
}

// Describe summarizes one column of values. NaN entries count as missing and
// do not contribute to any statistic. Std is the sample standard deviation.
func Describe(name string, vals []float64) ColumnStats {
	s := ColumnStats{Column: name, Min: math.Inf(1), Max: math.Inf(-1)}

	// Welford accumulation over observed values.
	var mean, m2 float64
	obs := make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			s.Missing++
			continue
		}
		obs = append(obs, v)
		s.Count++
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		delta := v - mean
		mean += delta / float64(s.Count)
		m2 += delta * (v - mean)
	}
	if s.Count == 0 {
		s.Min, s.Max = math.NaN(), math.NaN()
		s.Mean, s.Std = math.NaN(), math.NaN()
		s.Q1, s.Median, s.Q3 = math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.Mean = mean
	if s.Count > 1 {
		s.Std = math.Sqrt(m2 / float64(s.Count-1))
	}
	sort.Float64s(obs)
	s.Q1 = Quantile(obs, 0.25)
	s.Median = Quantile(obs, 0.5)
	s.Q3 = Quantile(obs, 0.75)
	return s
}

// DescribeTable summarizes the given numeric columns in order.
func DescribeTable(t *dataset.Table, columns []string) []ColumnStats {
	out := make([]ColumnStats, 0, len(columns))
	for _, name := range columns {
		if vals, ok := t.Numeric[name]; ok {
			out = append(out, Describe(name, vals))
		}
	}
	return out
}

// Median returns the median of the non-missing values. ok is false when the
// column has no observed values at all.
func Median(vals []float64) (median float64, ok bool) {
	obs := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			obs = append(obs, v)
		}
	}
	if len(obs) == 0 {
		return 0, false
	}
	sort.Float64s(obs)
	return Quantile(obs, 0.5), true
}

// Quantile returns the linearly interpolated q-quantile of sorted values.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
