package dataset_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

var fixtureRows = []string{
	"Timestamp,GHI,DNI,Cleaning,Comments",
	"2021-08-09 00:01,-1.2,0.5,0,",
	"2021-08-09 00:02,,1.5,0,sensor wiped",
	"2021-08-09 00:03,3.4,2.5,1,",
}

func writeFixture(t *testing.T, rows []string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "benin.csv")
	if err := os.WriteFile(p, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestReadCSV(t *testing.T) {
	p := writeFixture(t, fixtureRows)
	tab, err := dataset.ReadCSV(p, []string{"GHI", "DNI"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if tab.Rows != 3 {
		t.Fatalf("expected 3 rows, got %d", tab.Rows)
	}
	ghi := tab.Numeric["GHI"]
	if ghi[0] != -1.2 || !math.IsNaN(ghi[1]) || ghi[2] != 3.4 {
		t.Fatalf("unexpected GHI column: %v", ghi)
	}
	if got := tab.Text["Comments"][1]; got != "sensor wiped" {
		t.Fatalf("expected comment preserved, got %q", got)
	}
	if !tab.Column("Cleaning") {
		t.Fatal("expected Cleaning column present")
	}
}

func TestReadCSV_MissingRequiredColumn(t *testing.T) {
	p := writeFixture(t, []string{
		"Timestamp,GHI,Cleaning",
		"2021-08-09 00:01,1.0,0",
	})
	_, err := dataset.ReadCSV(p, []string{"GHI", "DNI"})
	if err == nil {
		t.Fatal("expected error for missing DNI column")
	}
	if !strings.Contains(err.Error(), "DNI") {
		t.Fatalf("expected error to name the missing column, got: %v", err)
	}
}

func TestDropColumn(t *testing.T) {
	p := writeFixture(t, fixtureRows)
	tab, err := dataset.ReadCSV(p, []string{"GHI", "DNI"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !tab.DropColumn("Comments") {
		t.Fatal("expected Comments to be dropped")
	}
	if tab.Column("Comments") {
		t.Fatal("Comments still present after drop")
	}
	// dropping an absent column is a no-op, not an error
	if tab.DropColumn("Comments") {
		t.Fatal("second drop should report absent")
	}
	if len(tab.Header) != 4 {
		t.Fatalf("expected 4 columns after drop, got %d", len(tab.Header))
	}
}

func TestCell(t *testing.T) {
	p := writeFixture(t, fixtureRows)
	tab, err := dataset.ReadCSV(p, []string{"GHI", "DNI"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := tab.Cell("GHI", 0); got != "-1.2" {
		t.Fatalf("expected -1.2, got %q", got)
	}
	if got := tab.Cell("GHI", 1); got != "" {
		t.Fatalf("expected empty cell for missing value, got %q", got)
	}
	if got := tab.Cell("Timestamp", 2); got != "2021-08-09 00:03" {
		t.Fatalf("unexpected timestamp cell: %q", got)
	}
}
