package stats

import (
	"math"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix across numeric columns.
type CorrMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"` // row-major, Values[i][j]
}

// Correlations computes pairwise Pearson correlations over the rows where
// both columns have observed values. Pairs with fewer than two complete rows
// or zero variance report r = 0.
func Correlations(t *dataset.Table, columns []string) *CorrMatrix {
	present := make([]string, 0, len(columns))
	for _, name := range columns {
		if _, ok := t.Numeric[name]; ok {
			present = append(present, name)
		}
	}
	n := len(present)
	m := &CorrMatrix{Columns: present, Values: make([][]float64, n)}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
		m.Values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		xs := t.Numeric[present[i]]
		for j := i + 1; j < n; j++ {
			ys := t.Numeric[present[j]]
			r := pearson(xs, ys)
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pearson(xs, ys []float64) float64 {
	var n, sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range xs {
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		n++
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	if n < 2 {
		return 0
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}
