package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Table is an in-memory columnar view of one sensor CSV. Measurement columns
// are stored as float64 slices with NaN marking a missing entry; everything
// else (Timestamp, Comments) is kept as raw text. Row order is the file order
// and is never changed.
type Table struct {
	Name   string
	Header []string
	Rows   int

	Numeric map[string][]float64
	Text    map[string][]string
}

// ReadCSV loads a sensor CSV and validates that the timestamp, every key
// column and the cleaning flag are present. A missing required column is
// fatal; extra columns are carried through as text.
func ReadCSV(path string, keyColumns []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset %s is empty", filepath.Base(path))
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	var missing []string
	for _, name := range append([]string{ColTimestamp}, keyColumns...) {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if _, ok := idx[ColCleaning]; !ok {
		missing = append(missing, ColCleaning)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset %s: missing required column(s): %s",
			filepath.Base(path), strings.Join(missing, ", "))
	}

	numericSet := make(map[string]bool, len(keyColumns)+1)
	for _, name := range keyColumns {
		numericSet[name] = true
	}
	numericSet[ColCleaning] = true

	t := &Table{
		Name:    filepath.Base(path),
		Header:  header,
		Numeric: make(map[string][]float64),
		Text:    make(map[string][]string),
	}
	for _, name := range header {
		if numericSet[name] {
			t.Numeric[name] = nil
		} else {
			t.Text[name] = nil
		}
	}

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", t.Rows+1, err)
		}
		for i, name := range header {
			var raw string
			if i < len(rec) {
				raw = strings.TrimSpace(rec[i])
			}
			if numericSet[name] {
				v := math.NaN()
				if raw != "" {
					if x, perr := strconv.ParseFloat(raw, 64); perr == nil {
						v = x
					}
				}
				t.Numeric[name] = append(t.Numeric[name], v)
			} else {
				t.Text[name] = append(t.Text[name], raw)
			}
		}
		t.Rows++
	}
	return t, nil
}

// Column reports whether the table currently contains the named column.
func (t *Table) Column(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// DropColumn removes the named column from the table. It reports whether the
// column was present; dropping an absent column is not an error.
func (t *Table) DropColumn(name string) bool {
	if !t.Column(name) {
		return false
	}
	out := t.Header[:0]
	for _, h := range t.Header {
		if h != name {
			out = append(out, h)
		}
	}
	t.Header = out
	delete(t.Numeric, name)
	delete(t.Text, name)
	return true
}

// Cell renders the value at the given column and row as it is written on
// export: raw text for text columns, compact float formatting for numeric
// ones, empty string for a missing numeric entry.
func (t *Table) Cell(name string, row int) string {
	if vals, ok := t.Numeric[name]; ok {
		v := vals[row]
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if vals, ok := t.Text[name]; ok {
		return vals[row]
	}
	return ""
}
