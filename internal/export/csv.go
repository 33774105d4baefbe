// Package export serializes cleaned tables and profile reports to disk.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NoonWatt/solarscan-cli/internal/dataset"
	"github.com/NoonWatt/solarscan-cli/internal/utils"
)

// WriteCSV serializes the table to a CSV file: header row first, then one row
// per observation in table order, no index column. The file is written to a
// temp path and renamed into place so a failed run leaves no partial output.
func WriteCSV(t *dataset.Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write header: %w", err)
	}
	rec := make([]string, len(t.Header))
	for i := 0; i < t.Rows; i++ {
		for j, name := range t.Header {
			rec[j] = t.Cell(name, i)
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			_ = os.Remove(tmp)
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("flush output: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
