package stats_test

import (
	"math"
	"testing"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
	"github.com/NoonWatt/solarscan-cli/internal/stats"
)

func TestCorrelations(t *testing.T) {
	tab := &dataset.Table{
		Header: []string{"GHI", "DNI", "Tamb"},
		Rows:   5,
		Numeric: map[string][]float64{
			"GHI":  {1, 2, 3, 4, 5},
			"DNI":  {2, 4, 6, 8, 10},         // perfectly correlated with GHI
			"Tamb": {5, 4, 3, math.NaN(), 1}, // anti-correlated, one gap
		},
	}
	m := stats.Correlations(tab, []string{"GHI", "DNI", "Tamb"})
	if len(m.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %v", m.Columns)
	}
	if m.Values[0][0] != 1 {
		t.Fatal("diagonal must be 1")
	}
	if math.Abs(m.Values[0][1]-1) > 1e-12 {
		t.Fatalf("expected r=1 for GHI~DNI, got %g", m.Values[0][1])
	}
	if math.Abs(m.Values[0][2]+1) > 1e-12 {
		t.Fatalf("expected r=-1 for GHI~Tamb over complete rows, got %g", m.Values[0][2])
	}
	if m.Values[1][2] != m.Values[2][1] {
		t.Fatal("matrix must be symmetric")
	}
}
