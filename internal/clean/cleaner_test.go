package clean_test

import (
	"math"
	"testing"

	"github.com/NoonWatt/solarscan-cli/internal/clean"
	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

func sensorTable() *dataset.Table {
	return &dataset.Table{
		Name:   "benin.csv",
		Header: []string{"Timestamp", "GHI", "DNI", "Cleaning", "Comments"},
		Rows:   4,
		Numeric: map[string][]float64{
			"GHI":      {1, 2, math.NaN(), 100},
			"DNI":      {-5, 0, 3, 4},
			"Cleaning": {0, 0, 1, 0},
		},
		Text: map[string][]string{
			"Timestamp": {"00:01", "00:02", "00:03", "00:04"},
			"Comments":  {"", "wiped", "", ""},
		},
	}
}

func newCleaner() *clean.Cleaner {
	return clean.New(clean.Options{KeyColumns: []string{"GHI", "DNI"}})
}

func TestClean_Pipeline(t *testing.T) {
	tab := sensorTable()
	rep, err := newCleaner().Clean(tab)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}

	if tab.Rows != 4 {
		t.Fatalf("row count must be unchanged, got %d", tab.Rows)
	}
	for _, name := range []string{"GHI", "DNI"} {
		for i, v := range tab.Numeric[name] {
			if math.IsNaN(v) {
				t.Fatalf("%s[%d] still missing after clean", name, i)
			}
			if v < 0 {
				t.Fatalf("%s[%d] negative after clean: %g", name, i, v)
			}
		}
	}
	// median of [1, 2, missing, 100] is 2; clipping leaves it unchanged
	if got := tab.Numeric["GHI"][2]; got != 2 {
		t.Fatalf("expected imputed median 2, got %g", got)
	}
	// -5 clips to 0
	if got := tab.Numeric["DNI"][0]; got != 0 {
		t.Fatalf("expected -5 clipped to 0, got %g", got)
	}
	if tab.Column("Comments") {
		t.Fatal("Comments column must be dropped")
	}
	// the Cleaning flag is passthrough
	if got := tab.Numeric["Cleaning"][2]; got != 1 {
		t.Fatalf("Cleaning flag altered: %g", got)
	}

	if rep.RunID == "" {
		t.Fatal("report must carry a run ID")
	}
	if rep.Columns["GHI"].Imputed != 1 || rep.Columns["GHI"].Median != 2 {
		t.Fatalf("unexpected GHI change record: %+v", rep.Columns["GHI"])
	}
	if rep.Columns["DNI"].Clipped != 1 {
		t.Fatalf("unexpected DNI change record: %+v", rep.Columns["DNI"])
	}
	if len(rep.DroppedColumns) != 1 || rep.DroppedColumns[0] != "Comments" {
		t.Fatalf("unexpected dropped columns: %v", rep.DroppedColumns)
	}
}

func TestClean_OutlierRowsRetained(t *testing.T) {
	tab := &dataset.Table{
		Name:   "togo.csv",
		Header: []string{"GHI"},
		Rows:   21,
		Numeric: map[string][]float64{
			"GHI": append(repeat(1, 2, 20), 1000),
		},
	}
	rep, err := clean.New(clean.Options{KeyColumns: []string{"GHI"}}).Clean(tab)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if len(rep.OutlierRows) != 1 || rep.OutlierRows[0] != 20 {
		t.Fatalf("expected row 20 in outlier report, got %v", rep.OutlierRows)
	}
	if tab.Rows != 21 {
		t.Fatalf("outlier row must be retained, got %d rows", tab.Rows)
	}
	if tab.Numeric["GHI"][20] != 1000 {
		t.Fatalf("outlier value must be untouched, got %g", tab.Numeric["GHI"][20])
	}
}

func TestClean_Idempotent(t *testing.T) {
	tab := sensorTable()
	if _, err := newCleaner().Clean(tab); err != nil {
		t.Fatalf("first clean: %v", err)
	}
	first := append([]float64(nil), tab.Numeric["GHI"]...)

	rep, err := newCleaner().Clean(tab)
	if err != nil {
		t.Fatalf("second clean: %v", err)
	}
	if rep.TotalImputed() != 0 || rep.TotalClipped() != 0 {
		t.Fatalf("second clean must be a no-op, got %s", rep.Summary())
	}
	if tab.Rows != 4 {
		t.Fatalf("row count changed on re-clean: %d", tab.Rows)
	}
	for i, v := range tab.Numeric["GHI"] {
		if v != first[i] {
			t.Fatalf("GHI[%d] changed on re-clean: %g != %g", i, v, first[i])
		}
	}
}

func TestClean_MissingKeyColumnFatal(t *testing.T) {
	tab := &dataset.Table{
		Name:    "sierraleone.csv",
		Header:  []string{"GHI"},
		Rows:    1,
		Numeric: map[string][]float64{"GHI": {1}},
	}
	_, err := newCleaner().Clean(tab)
	if err == nil {
		t.Fatal("expected error for missing DNI key column")
	}
}

func TestClean_AllMissingColumnFatal(t *testing.T) {
	tab := &dataset.Table{
		Name:   "benin.csv",
		Header: []string{"GHI", "DNI"},
		Rows:   2,
		Numeric: map[string][]float64{
			"GHI": {1, 2},
			"DNI": {math.NaN(), math.NaN()},
		},
	}
	_, err := newCleaner().Clean(tab)
	if err == nil {
		t.Fatal("expected error for column with no observed values")
	}
}

// repeat builds n alternating copies of a and b.
func repeat(a, b float64, n int) []float64 {
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			out = append(out, a)
		} else {
			out = append(out, b)
		}
	}
	return out
}
