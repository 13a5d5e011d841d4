package validate

import "strings"

// Cell is a single value in a parsed table. A cell that was absent from the
// source row (short record) has Valid=false, which is distinct from a present
// but empty string.
type Cell struct {
	Raw   string
	Valid bool
}

// IsBlank reports whether the cell is absent or contains only whitespace.
// This matches how spreadsheet tools treat blank fields as missing values.
func (c Cell) IsBlank() bool {
	return !c.Valid || strings.TrimSpace(c.Raw) == ""
}

// Row is a sequence of cells aligned positionally to the table's columns.
type Row []Cell

// Table is the in-memory parsed representation of an uploaded file.
// Column names are whitespace-trimmed but NOT deduplicated here; duplicate
// detection is a checker's responsibility, keeping parsing and semantics
// separate.
type Table struct {
	Columns []string
	Rows    []Row
}

// Empty reports whether the table has no data rows. A header-only file is
// considered empty.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// dataLine converts a zero-based data row index to the physical line number
// in the file. The header is line 1, so the first data row is line 2.
func dataLine(idx int) int {
	return idx + 2
}
