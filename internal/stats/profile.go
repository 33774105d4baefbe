package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
)

// ProfileOptions controls which sections a profile includes.
type ProfileOptions struct {
	// Columns to profile; defaults to the key columns.
	Columns []string
	// MissingWarnPct is the percentage above which a column lands in the
	// missing-value report.
	MissingWarnPct float64
	// OutlierThreshold is the |z| cut-off for the outlier section.
	OutlierThreshold float64
	// Correlations adds a Pearson correlation matrix.
	Correlations bool
}

// DefaultProfileOptions returns the thresholds used by the CLI unless
// overridden by config or flags.
func DefaultProfileOptions() ProfileOptions {
	return ProfileOptions{
		Columns:          dataset.KeyColumns(),
		MissingWarnPct:   5,
		OutlierThreshold: DefaultOutlierThreshold,
	}
}

// Profile is a read-only report over one sensor table: descriptive statistics,
// missing-value counts, flagged outlier rows and optionally a correlation
// matrix.
type Profile struct {
	Name             string          `json:"name"`
	Rows             int             `json:"rows"`
	Columns          []ColumnStats   `json:"columns"`
	Missing          []MissingReport `json:"missing"`
	MissingFlagged   []MissingReport `json:"missing_flagged"`
	MissingWarnPct   float64         `json:"missing_warn_pct"`
	OutlierThreshold float64         `json:"outlier_threshold"`
	OutlierRows      []int           `json:"outlier_rows"`
	Corr             *CorrMatrix     `json:"correlations,omitempty"`
}

// NewProfile profiles a table without mutating it.
func NewProfile(t *dataset.Table, opt ProfileOptions) *Profile {
	cols := opt.Columns
	if len(cols) == 0 {
		cols = dataset.KeyColumns()
	}
	if opt.MissingWarnPct <= 0 {
		opt.MissingWarnPct = 5
	}
	if opt.OutlierThreshold <= 0 {
		opt.OutlierThreshold = DefaultOutlierThreshold
	}
	p := &Profile{
		Name:             t.Name,
		Rows:             t.Rows,
		Columns:          DescribeTable(t, cols),
		Missing:          MissingByColumn(t, cols),
		MissingWarnPct:   opt.MissingWarnPct,
		OutlierThreshold: opt.OutlierThreshold,
		OutlierRows:      DetectOutliers(t, cols, opt.OutlierThreshold),
	}
	p.MissingFlagged = FlagMissing(p.Missing, opt.MissingWarnPct)
	if opt.Correlations {
		p.Corr = Correlations(t, cols)
	}
	return p
}

// Markdown renders a compact report suitable for the terminal or a doc file.
func (p *Profile) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET PROFILE]\n")
	if p.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", p.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n\n", p.Rows))

	b.WriteString("[SUMMARY STATISTICS]\n")
	for _, c := range p.Columns {
		if c.Count == 0 {
			b.WriteString(fmt.Sprintf("- %s: no observed values\n", c.Column))
			continue
		}
		b.WriteString(fmt.Sprintf(
			"- %s: count %d — mean %.4g, std %.4g, min %.4g, q1 %.4g, median %.4g, q3 %.4g, max %.4g\n",
			c.Column, c.Count, c.Mean, c.Std, c.Min, c.Q1, c.Median, c.Q3, c.Max))
	}

	b.WriteString("\n[MISSING VALUES]\n")
	if len(p.MissingFlagged) == 0 {
		b.WriteString(fmt.Sprintf("(no column above %.1f%% missing)\n", p.MissingWarnPct))
	}
	for _, m := range p.MissingFlagged {
		b.WriteString(fmt.Sprintf("- %s: %d missing (%.1f%%)\n", m.Column, m.Missing, m.Percent()))
	}

	b.WriteString("\n[OUTLIERS]\n")
	b.WriteString(fmt.Sprintf("%d row(s) with |z| > %.1f in at least one key column\n",
		len(p.OutlierRows), p.OutlierThreshold))

	if p.Corr != nil && len(p.Corr.Columns) >= 2 {
		b.WriteString("\n[CORRELATIONS]\n")
		// top pairs by |r|, strongest first
		type pair struct {
			a, b string
			r    float64
		}
		var pairs []pair
		for i := 0; i < len(p.Corr.Columns); i++ {
			for j := i + 1; j < len(p.Corr.Columns); j++ {
				pairs = append(pairs, pair{p.Corr.Columns[i], p.Corr.Columns[j], p.Corr.Values[i][j]})
			}
		}
		for i := 0; i < len(pairs); i++ {
			for j := i + 1; j < len(pairs); j++ {
				if math.Abs(pairs[j].r) > math.Abs(pairs[i].r) {
					pairs[i], pairs[j] = pairs[j], pairs[i]
				}
			}
		}
		limit := 10
		if len(pairs) < limit {
			limit = len(pairs)
		}
		for _, pr := range pairs[:limit] {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f\n", pr.a, pr.b, pr.r))
		}
	}
	return b.String()
}
