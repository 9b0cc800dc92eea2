package models

// Row is one spreadsheet row as a column-label → cell-text mapping. A key is
// present only when the cell actually had content; the transformer relies on
// key absence, not empty strings, to tell which cells exist.
type Row map[string]string

// Sheet is one workbook sheet: its name and its rows in source order.
type Sheet struct {
	Name string
	Rows []Row
}
