// Package compare summarizes one metric across several datasets, the way the
// original dashboard compared GHI/DNI/DHI between countries.
package compare

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
	"github.com/NoonWatt/solarscan-cli/internal/stats"
)

// RangeFilter keeps only rows whose filter-column value lies inside the
// closed interval. Nil bounds are open ends; rows missing the filter value
// are excluded.
type RangeFilter struct {
	Column string
	Min    *float64
	Max    *float64
}

func (f *RangeFilter) keep(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if f.Min != nil && v < *f.Min {
		return false
	}
	if f.Max != nil && v > *f.Max {
		return false
	}
	return true
}

// Row is one dataset's summary of the compared metric.
type Row struct {
	Dataset string  `json:"dataset"`
	Metric  string  `json:"metric"`
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Std     float64 `json:"std"`
}

// Summarize computes mean/median/std of the metric over one table, optionally
// restricted by a range filter.
func Summarize(name string, t *dataset.Table, metric string, filter *RangeFilter) (Row, error) {
	vals, ok := t.Numeric[metric]
	if !ok {
		return Row{}, fmt.Errorf("dataset %s: unknown metric %s", name, metric)
	}
	if filter != nil && filter.Column != "" {
		fvals, ok := t.Numeric[filter.Column]
		if !ok {
			return Row{}, fmt.Errorf("dataset %s: unknown filter column %s", name, filter.Column)
		}
		kept := make([]float64, 0, len(vals))
		for i, fv := range fvals {
			if filter.keep(fv) {
				kept = append(kept, vals[i])
			}
		}
		vals = kept
	}
	s := stats.Describe(metric, vals)
	row := Row{Dataset: name, Metric: metric, Count: s.Count}
	if s.Count > 0 {
		row.Mean = s.Mean
		row.Median = s.Median
		row.Std = s.Std
	}
	return row, nil
}

// Markdown renders comparison rows as a table, sorted by dataset name.
func Markdown(rows []Row) string {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Dataset < sorted[j].Dataset })

	var b strings.Builder
	b.WriteString("| Dataset | Metric | Count | Mean | Median | Std |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, r := range sorted {
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %.2f | %.2f | %.2f |\n",
			r.Dataset, r.Metric, r.Count, r.Mean, r.Median, r.Std))
	}
	return b.String()
}
