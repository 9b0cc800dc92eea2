// Package workbook reads .xlsx training plan workbooks into ordered sheets of
// row records, the input boundary of the plan transformer.
package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/TagorPetrosian/my-weigh/internal/models"
)

// Read opens the workbook at path and returns its sheets in workbook order.
func Read(path string) ([]models.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return readSheets(f)
}

// ReadFrom reads a workbook from an in-memory stream (uploads, tests).
func ReadFrom(r io.Reader) ([]models.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return readSheets(f)
}

func readSheets(f *excelize.File) ([]models.Sheet, error) {
	var sheets []models.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		sheets = append(sheets, models.Sheet{
			Name: name,
			Rows: recordRows(rows),
		})
	}
	return sheets, nil
}

// recordRows turns raw cell rows into row records keyed by the header row's
// column labels. A record gets a key only for cells with content, so the
// transformer can distinguish absent cells from empty ones. Cells beyond the
// header width have no label and are ignored; rows with no content at all are
// dropped.
func recordRows(raw [][]string) []models.Row {
	if len(raw) == 0 {
		return nil
	}
	header := raw[0]

	var records []models.Row
	for _, cells := range raw[1:] {
		record := models.Row{}
		for i, cell := range cells {
			if cell == "" || i >= len(header) || header[i] == "" {
				continue
			}
			record[header[i]] = cell
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}
	return records
}
