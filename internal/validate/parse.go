package validate

// parse.go splits decoded text into a header row and data rows. The primary
// delimiter is a comma; when the column count is inconsistent across a sample
// of rows, parsing is retried once with a semicolon. Full CSV-dialect
// auto-detection is deliberately out of scope.

import (
	"encoding/csv"
	"strings"
)

// delimiterSampleRows is how many records are inspected when judging whether
// the chosen delimiter produced a consistent column count.
const delimiterSampleRows = 25

func parseTable(text string) (*Table, error) {
	records, err := readRecords(text, ',')
	if err != nil {
		return nil, err
	}

	if !consistentWidth(records) {
		// Only adopt the fallback when it actually splits the header further;
		// a file with one short record must not collapse into a single column.
		alt, altErr := readRecords(text, ';')
		if altErr == nil && consistentWidth(alt) && headerWidth(alt) > headerWidth(records) {
			records = alt
		}
	}

	return buildTable(records), nil
}

func readRecords(text string, comma rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = comma
	// Column-count defects are findings, not parse errors.
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func headerWidth(records [][]string) int {
	if len(records) == 0 {
		return 0
	}
	return len(records[0])
}

// consistentWidth reports whether the first delimiterSampleRows+1 records all
// have the header's field count.
func consistentWidth(records [][]string) bool {
	if len(records) == 0 {
		return true
	}
	want := len(records[0])
	limit := len(records)
	if limit > delimiterSampleRows+1 {
		limit = delimiterSampleRows + 1
	}
	for _, rec := range records[1:limit] {
		if len(rec) != want {
			return false
		}
	}
	return true
}

// buildTable aligns records positionally to the header. Short records leave
// trailing cells absent (Valid=false); cells beyond the header width are
// dropped. Column names are whitespace-trimmed but never deduplicated here.
func buildTable(records [][]string) *Table {
	t := &Table{}
	if len(records) == 0 {
		return t
	}

	header := records[0]
	t.Columns = make([]string, len(header))
	for i, name := range header {
		t.Columns[i] = strings.TrimSpace(name)
	}

	t.Rows = make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(t.Columns))
		for i := range t.Columns {
			if i < len(rec) {
				row[i] = Cell{Raw: rec[i], Valid: true}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
