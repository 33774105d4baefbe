// Package clean implements the in-place cleaning pipeline for sensor tables:
// outlier flagging, median imputation of missing values, removal of the
// free-text comments column and zero-clipping of negative readings. Rows are
// never dropped; the cleaned table keeps the input row count and order.
package clean

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
	"github.com/NoonWatt/solarscan-cli/internal/stats"
)

// Options configures a Cleaner.
type Options struct {
	// KeyColumns are the numeric fields to impute and clip.
	KeyColumns []string
	// OutlierThreshold is the |z| cut-off used for the outlier report.
	OutlierThreshold float64
	// DropColumns are removed if present; absence is not an error.
	DropColumns []string
}

// DefaultOptions returns the cleaning parameters used by the CLI unless
// overridden by config or flags.
func DefaultOptions() Options {
	return Options{
		KeyColumns:       dataset.KeyColumns(),
		OutlierThreshold: stats.DefaultOutlierThreshold,
		DropColumns:      []string{dataset.ColComments},
	}
}

// Cleaner runs the cleaning pipeline over one table at a time.
type Cleaner struct {
	opt Options
}

// New returns a Cleaner with the given options, filling in defaults for
// unset fields.
func New(opt Options) *Cleaner {
	if len(opt.KeyColumns) == 0 {
		opt.KeyColumns = dataset.KeyColumns()
	}
	if opt.OutlierThreshold <= 0 {
		opt.OutlierThreshold = stats.DefaultOutlierThreshold
	}
	if opt.DropColumns == nil {
		opt.DropColumns = []string{dataset.ColComments}
	}
	return &Cleaner{opt: opt}
}

// Clean mutates the table through the four pipeline steps in order:
//
//  1. flag outlier rows (|z| above the threshold in any key column) for the
//     report only; the rows stay in the table
//  2. replace missing entries per key column with that column's median over
//     the currently observed values
//  3. drop the configured free-text columns if present
//  4. clip every key-column value to a minimum of zero
//
// A key column absent from the table, or one with no observed values to take
// a median from, aborts the run before any output is produced.
func (c *Cleaner) Clean(t *dataset.Table) (*Report, error) {
	for _, name := range c.opt.KeyColumns {
		if _, ok := t.Numeric[name]; !ok {
			return nil, fmt.Errorf("clean %s: missing key column %s", t.Name, name)
		}
	}

	rep := &Report{
		RunID:            uuid.New().String(),
		Source:           t.Name,
		Rows:             t.Rows,
		OutlierThreshold: c.opt.OutlierThreshold,
		Columns:          make(map[string]ColumnChange, len(c.opt.KeyColumns)),
		CreatedAt:        time.Now().UTC(),
	}

	// Step 1: outlier rows are reported, not removed. Removing them would
	// break row-aligned joins across the per-country dataset variants.
	rep.OutlierRows = stats.DetectOutliers(t, c.opt.KeyColumns, c.opt.OutlierThreshold)

	// Step 2: median imputation, column by column.
	for _, name := range c.opt.KeyColumns {
		vals := t.Numeric[name]
		median, ok := stats.Median(vals)
		if !ok {
			return nil, fmt.Errorf("clean %s: column %s has no observed values to impute from", t.Name, name)
		}
		ch := ColumnChange{Median: median}
		for i, v := range vals {
			if math.IsNaN(v) {
				vals[i] = median
				ch.Imputed++
			}
		}
		rep.Columns[name] = ch
	}

	// Step 3: best-effort removal of free-text columns.
	for _, name := range c.opt.DropColumns {
		if t.DropColumn(name) {
			rep.DroppedColumns = append(rep.DroppedColumns, name)
		}
	}

	// Step 4: floor key columns at zero.
	for _, name := range c.opt.KeyColumns {
		vals := t.Numeric[name]
		ch := rep.Columns[name]
		for i, v := range vals {
			if v < 0 {
				vals[i] = 0
				ch.Clipped++
			}
		}
		rep.Columns[name] = ch
	}
	return rep, nil
}
