package compare_test

import (
	"math"
	"strings"
	"testing"

	"github.com/NoonWatt/solarscan-cli/internal/compare"
	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

func table(ghi []float64) *dataset.Table {
	return &dataset.Table{
		Header:  []string{"GHI"},
		Rows:    len(ghi),
		Numeric: map[string][]float64{"GHI": ghi},
	}
}

func TestSummarize(t *testing.T) {
	row, err := compare.Summarize("benin", table([]float64{1, 2, 3, math.NaN()}), "GHI", nil)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if row.Count != 3 {
		t.Fatalf("expected 3 observed values, got %d", row.Count)
	}
	if row.Mean != 2 || row.Median != 2 {
		t.Fatalf("unexpected stats: %+v", row)
	}
}

func TestSummarize_RangeFilter(t *testing.T) {
	lo, hi := 2.0, 4.0
	f := &compare.RangeFilter{Column: "GHI", Min: &lo, Max: &hi}
	row, err := compare.Summarize("togo", table([]float64{1, 2, 3, 4, 5, math.NaN()}), "GHI", f)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if row.Count != 3 {
		t.Fatalf("expected rows 2..4 kept, got count %d", row.Count)
	}
	if row.Mean != 3 {
		t.Fatalf("expected mean 3, got %g", row.Mean)
	}
}

func TestSummarize_UnknownMetric(t *testing.T) {
	if _, err := compare.Summarize("benin", table([]float64{1}), "Albedo", nil); err == nil {
		t.Fatal("expected error for unknown metric")
	}
}

func TestMarkdown_SortedByDataset(t *testing.T) {
	rows := []compare.Row{
		{Dataset: "togo", Metric: "GHI", Count: 1, Mean: 1, Median: 1},
		{Dataset: "benin", Metric: "GHI", Count: 1, Mean: 2, Median: 2},
	}
	md := compare.Markdown(rows)
	if strings.Index(md, "benin") > strings.Index(md, "togo") {
		t.Fatalf("expected benin before togo:\n%s", md)
	}
	if !strings.HasPrefix(md, "| Dataset |") {
		t.Fatalf("unexpected header:\n%s", md)
	}
}
