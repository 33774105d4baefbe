package stats

import (
	"math"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

// MissingReport counts the missing entries of one column.
type MissingReport struct {
	Column  string `json:"column"`
	Missing int    `json:"missing"`
	Total   int    `json:"total"`
}

// Percent returns the missing share in percent of the total row count.
func (m MissingReport) Percent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Missing) * 100 / float64(m.Total)
}

// MissingByColumn counts missing entries per numeric column, in the given
// column order. Columns absent from the table are skipped.
func MissingByColumn(t *dataset.Table, columns []string) []MissingReport {
	out := make([]MissingReport, 0, len(columns))
	for _, name := range columns {
		vals, ok := t.Numeric[name]
		if !ok {
			continue
		}
		r := MissingReport{Column: name, Total: len(vals)}
		for _, v := range vals {
			if math.IsNaN(v) {
				r.Missing++
			}
		}
		out = append(out, r)
	}
	return out
}

// FlagMissing returns the subset of reports whose missing share exceeds
// warnPct percent.
func FlagMissing(reports []MissingReport, warnPct float64) []MissingReport {
	var out []MissingReport
	for _, r := range reports {
		if r.Percent() > warnPct {
			out = append(out, r)
		}
	}
	return out
}
