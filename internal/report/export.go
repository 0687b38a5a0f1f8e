package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// SheetName is the single worksheet in the spreadsheet export.
const SheetName = "Contributions"

// Export file names are fixed regardless of active filters.
const (
	CSVFileName  = "contributions.csv"
	XLSXFileName = "contributions.xlsx"
)

var exportHeader = []string{"user", "month", "year", "amount"}

// WriteCSV serializes rows as delimited text with a header row. Row
// content and order match the filtered (not paginated) on-screen list.
func WriteCSV(w io.Writer, rows []domain.Contribution) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range rows {
		record := []string{c.User, c.Month, c.Year, formatAmount(c.Amount)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX builds a single-sheet workbook from rows and writes it to w.
// The sheet carries the same header and row content as the CSV export.
func WriteXLSX(w io.Writer, rows []domain.Contribution) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write sheet header: %w", err)
	}

	for i, c := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row coordinates: %w", err)
		}
		row := []any{c.User, c.Month, c.Year, c.Amount}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write sheet row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
