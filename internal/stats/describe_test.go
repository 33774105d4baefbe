package stats_test

import (
	"math"
	"testing"

	"github.com/NoonWatt/solarscan-cli/internal/stats"
)

func TestDescribe(t *testing.T) {
	vals := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := stats.Describe("GHI", vals)
	if s.Count != 8 || s.Missing != 0 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.Mean != 5 {
		t.Fatalf("expected mean 5, got %g", s.Mean)
	}
	// sample std of this classic set: sqrt(32/7)
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(s.Std-want) > 1e-12 {
		t.Fatalf("expected std %g, got %g", want, s.Std)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Fatalf("unexpected min/max: %+v", s)
	}
	if s.Median != 4.5 {
		t.Fatalf("expected median 4.5, got %g", s.Median)
	}
}

func TestDescribe_MissingExcluded(t *testing.T) {
	vals := []float64{1, math.NaN(), 3}
	s := stats.Describe("DNI", vals)
	if s.Count != 2 || s.Missing != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.Mean != 2 {
		t.Fatalf("expected mean 2 over observed values, got %g", s.Mean)
	}
}

func TestDescribe_AllMissing(t *testing.T) {
	s := stats.Describe("RH", []float64{math.NaN(), math.NaN()})
	if s.Count != 0 || s.Missing != 2 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.Median) {
		t.Fatalf("expected NaN statistics for empty column: %+v", s)
	}
}

func TestMedian(t *testing.T) {
	// per the cleaning contract: median of [1, 2, missing, 100] is 2
	m, ok := stats.Median([]float64{1, 2, math.NaN(), 100})
	if !ok {
		t.Fatal("expected a median")
	}
	if m != 2 {
		t.Fatalf("expected median 2, got %g", m)
	}

	if _, ok := stats.Median([]float64{math.NaN()}); ok {
		t.Fatal("expected no median for all-missing column")
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{1, 4},
	}
	for _, c := range cases {
		if got := stats.Quantile(sorted, c.q); got != c.want {
			t.Fatalf("q=%g: expected %g, got %g", c.q, c.want, got)
		}
	}
}
