package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/NoonWatt/solarscan-cli/internal/stats"
)

// WriteProfileWorkbook writes a profile report as an Excel workbook with one
// sheet per section: Summary, Missing and, when present, Correlations.
func WriteProfileWorkbook(p *stats.Profile, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	f.SetSheetName(f.GetSheetName(0), summarySheet)

	head := []any{"Column", "Count", "Missing", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max"}
	if err := f.SetSheetRow(summarySheet, "A1", &head); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for i, c := range p.Columns {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{c.Column, c.Count, c.Missing, c.Mean, c.Std, c.Min, c.Q1, c.Median, c.Q3, c.Max}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	const missingSheet = "Missing"
	if _, err := f.NewSheet(missingSheet); err != nil {
		return fmt.Errorf("create missing sheet: %w", err)
	}
	mhead := []any{"Column", "Missing", "Total", "Percent"}
	if err := f.SetSheetRow(missingSheet, "A1", &mhead); err != nil {
		return fmt.Errorf("write missing header: %w", err)
	}
	for i, m := range p.Missing {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{m.Column, m.Missing, m.Total, m.Percent()}
		if err := f.SetSheetRow(missingSheet, cell, &row); err != nil {
			return fmt.Errorf("write missing row %d: %w", i+1, err)
		}
	}

	if p.Corr != nil && len(p.Corr.Columns) >= 2 {
		const corrSheet = "Correlations"
		if _, err := f.NewSheet(corrSheet); err != nil {
			return fmt.Errorf("create correlations sheet: %w", err)
		}
		head := make([]any, 0, len(p.Corr.Columns)+1)
		head = append(head, "")
		for _, name := range p.Corr.Columns {
			head = append(head, name)
		}
		if err := f.SetSheetRow(corrSheet, "A1", &head); err != nil {
			return fmt.Errorf("write correlations header: %w", err)
		}
		for i, name := range p.Corr.Columns {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := make([]any, 0, len(p.Corr.Columns)+1)
			row = append(row, name)
			for _, v := range p.Corr.Values[i] {
				row = append(row, v)
			}
			if err := f.SetSheetRow(corrSheet, cell, &row); err != nil {
				return fmt.Errorf("write correlations row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
