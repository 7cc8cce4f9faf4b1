// Package export renders record views as CSV and Excel files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/example/trolleypm/internal/ports/secondary"
)

// Dataset is a rendered record view: a header row plus data rows, all
// as strings.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// MaintenanceDataset renders maintenance records for export.
func MaintenanceDataset(records []*secondary.MaintenanceRecord) Dataset {
	ds := Dataset{
		Headers: []string{"ID", "Trolley ID", "PM Date", "Next Due", "Failure Type", "Failure Note", "Technician", "Amount", "Created At"},
	}
	for _, rec := range records {
		ds.Rows = append(ds.Rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.TrolleyID,
			rec.PMDate,
			rec.NextDue,
			rec.FailureType,
			rec.FailureNote,
			rec.Technician,
			rec.Amount,
			rec.CreatedAt,
		})
	}
	return ds
}

// RegistryDataset renders registry actions for export.
func RegistryDataset(records []*secondary.RegistryRecord) Dataset {
	ds := Dataset{
		Headers: []string{"ID", "Old ID", "New ID", "Action", "Note", "Created At"},
	}
	for _, rec := range records {
		ds.Rows = append(ds.Rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.OldID,
			rec.NewID,
			rec.Action,
			rec.Note,
			rec.CreatedAt,
		})
	}
	return ds
}

// ScrapDataset renders scrap rows for export.
func ScrapDataset(records []*secondary.ScrapRecord) Dataset {
	ds := Dataset{
		Headers: []string{"ID", "Trolley ID", "Scrap Date", "Reason", "Recorded By", "Created At"},
	}
	for _, rec := range records {
		ds.Rows = append(ds.Rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.TrolleyID,
			rec.ScrapDate,
			rec.Reason,
			rec.RecordedBy,
			rec.CreatedAt,
		})
	}
	return ds
}

// WriteCSV writes the dataset as CSV.
func WriteCSV(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ds.Headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range ds.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteXLSX writes the dataset as an Excel workbook with a single
// sheet.
func WriteXLSX(w io.Writer, ds Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	for col, header := range ds.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell: %w", err)
		}
	}

	for row, values := range ds.Rows {
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
